package repository

import (
	"context"
	"time"

	"lifelink/internal/domain/entity"
	"lifelink/internal/errors"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when no emergency profile matches the lookup.
var ErrProfileNotFound = errors.New("emergency profile not found")

// ProfileRepository persists emergency profiles.
type ProfileRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.EmergencyProfile, error)

	// FindActiveByCode returns the first active profile bound to the code.
	FindActiveByCode(ctx context.Context, code string) (*entity.EmergencyProfile, error)

	// FindByCodes returns the profiles bound to any of the given codes, in no particular order.
	FindByCodes(ctx context.Context, codes []string) ([]*entity.EmergencyProfile, error)

	// ListAll returns every profile, used by snapshot export.
	ListAll(ctx context.Context) ([]*entity.EmergencyProfile, error)

	// Save creates or replaces a profile keyed by ID.
	Save(ctx context.Context, profile *entity.EmergencyProfile) error

	// TouchLastScanned records the time of the most recent successful scan.
	TouchLastScanned(ctx context.Context, id uuid.UUID, at time.Time) error
}
