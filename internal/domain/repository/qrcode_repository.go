package repository

import (
	"context"

	"lifelink/internal/domain/entity"
	"lifelink/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrQRCodeNotFound is returned when no registry entry exists for a code.
	ErrQRCodeNotFound = errors.New("qr code not found")
	// ErrQRCodeDuplicate is returned when a code value is already issued.
	ErrQRCodeDuplicate = errors.New("qr code already exists")
)

// QRCodeRepository persists the registry of issued QR codes.
type QRCodeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.QRCode, error)

	// FindByCode looks up a code by its exact, case-sensitive value.
	FindByCode(ctx context.Context, code string) (*entity.QRCode, error)

	// ListAll returns every code, used by snapshot export.
	ListAll(ctx context.Context) ([]*entity.QRCode, error)

	Count(ctx context.Context) (int64, error)

	// Create inserts a new code. Returns ErrQRCodeDuplicate when the value is taken.
	Create(ctx context.Context, code *entity.QRCode) error

	// Save creates or replaces a code keyed by ID.
	Save(ctx context.Context, code *entity.QRCode) error

	// IncrementScans adds one to the scan counter of the given code.
	IncrementScans(ctx context.Context, code string) error
}
