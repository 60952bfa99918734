package usecase

import (
	"context"

	"lifelink/internal/domain/entity"
)

// ResolverUsecase serves the public scan path.
type ResolverUsecase interface {
	// Resolve returns the active profile for an exact code value and records the scan.
	Resolve(ctx context.Context, code string) (*entity.EmergencyProfile, error)
}
