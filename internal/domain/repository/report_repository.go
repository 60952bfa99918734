package repository

import (
	"context"

	"lifelink/internal/domain/entity"
)

// ReportRepository serves read-only aggregate queries for the admin views.
type ReportRepository interface {
	// Stats computes registry-wide counters.
	Stats(ctx context.Context) (*entity.AdminStats, error)

	// ListCodes returns codes ordered newest first together with the total matching the filter.
	ListCodes(ctx context.Context, filter entity.CodeFilter) ([]*entity.QRCode, int64, error)
}
