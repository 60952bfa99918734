package store

import (
	"context"
	"time"

	"lifelink/internal/domain/entity"
	domainerrors "lifelink/internal/domain/errors"
	"lifelink/internal/domain/repository"
	"lifelink/internal/errors"
	"lifelink/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// profileRepository implements the domain.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.EmergencyProfile, error) {
	var profileM model.EmergencyProfileModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by id")
	}

	return toProfileDomain(&profileM), nil
}

// FindActiveByCode returns the oldest active profile for the exact code value.
func (repo *profileRepository) FindActiveByCode(ctx context.Context, code string) (*entity.EmergencyProfile, error) {
	var profileM model.EmergencyProfileModel
	err := repo.db.WithContext(ctx).
		Where("qr_code = ? AND is_active = ?", code, true).
		Order("created_at ASC").
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by code")
	}

	return toProfileDomain(&profileM), nil
}

func (repo *profileRepository) FindByCodes(ctx context.Context, codes []string) ([]*entity.EmergencyProfile, error) {
	if len(codes) == 0 {
		return []*entity.EmergencyProfile{}, nil
	}

	var profileModels []*model.EmergencyProfileModel
	if err := repo.db.WithContext(ctx).Where("qr_code IN ?", codes).Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find profiles by codes")
	}

	return toProfileDomains(profileModels), nil
}

func (repo *profileRepository) ListAll(ctx context.Context) ([]*entity.EmergencyProfile, error) {
	var profileModels []*model.EmergencyProfileModel
	if err := repo.db.WithContext(ctx).Order("created_at ASC").Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	return toProfileDomains(profileModels), nil
}

// Save inserts the profile or fully replaces the row with the same ID.
func (repo *profileRepository) Save(ctx context.Context, profile *entity.EmergencyProfile) error {
	profileM := fromProfileDomain(profile)
	if profileM.ID == uuid.Nil {
		profileM.ID = uuid.Must(uuid.NewV7())
	}
	if profileM.CreatedAt.IsZero() {
		profileM.CreatedAt = repo.db.NowFunc()
	}

	if err := repo.db.WithContext(ctx).Save(profileM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt

	return nil
}

func (repo *profileRepository) TouchLastScanned(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EmergencyProfileModel{}).
		Where("id = ?", id).
		UpdateColumn("last_scanned", at.UTC())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to record scan time")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

func toProfileDomains(profileModels []*model.EmergencyProfileModel) []*entity.EmergencyProfile {
	profiles := make([]*entity.EmergencyProfile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles
}
