package usecase

import (
	"context"

	"lifelink/internal/domain/entity"

	"github.com/google/uuid"
)

// SaveProfileInput is the owner-submitted form for one code.
type SaveProfileInput struct {
	Code    string
	Details entity.ProfileDetails
}

// ProfileUsecase lets a signed-in owner link and maintain emergency profiles.
type ProfileUsecase interface {
	// SaveProfile creates or overwrites the active profile of a code and links the code to the owner.
	SaveProfile(ctx context.Context, userID uuid.UUID, input SaveProfileInput) (*entity.EmergencyProfile, error)

	// ListMyProfiles returns the profiles of every code the owner has linked.
	ListMyProfiles(ctx context.Context, userID uuid.UUID) ([]*entity.EmergencyProfile, error)

	// GetMyProfile returns the active profile of one of the owner's codes.
	GetMyProfile(ctx context.Context, userID uuid.UUID, code string) (*entity.EmergencyProfile, error)
}
