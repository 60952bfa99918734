package usecase

import (
	"context"

	"lifelink/internal/domain/entity"
)

// MaxIssueBatch caps how many codes one request may issue.
const MaxIssueBatch = 500

// ListCodesInput selects a page of codes. An empty status or "all" lists every code.
type ListCodesInput struct {
	Status string
	Page   int
}

// CodeUsecase covers the admin side of the QR code registry.
type CodeUsecase interface {
	// IssueCode creates one new unused code with a unique value.
	IssueCode(ctx context.Context) (*entity.QRCode, error)

	// IssueCodes creates count unused codes for a print batch.
	IssueCodes(ctx context.Context, count int) ([]*entity.QRCode, error)

	ListCodes(ctx context.Context, input ListCodesInput) (*entity.CodePage, error)

	GetStats(ctx context.Context) (*entity.AdminStats, error)

	// RenderCodePNG returns a printable image that resolves to the code's emergency page.
	RenderCodePNG(ctx context.Context, code string) ([]byte, error)

	// SeedIfEmpty issues the configured number of codes when the registry holds none.
	SeedIfEmpty(ctx context.Context) (int, error)
}
