package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "lifelink/internal/delivery/context"
	"lifelink/internal/domain/entity"
	domainerrors "lifelink/internal/domain/errors"
	"lifelink/internal/domain/repository"
	"lifelink/internal/errors"
	"lifelink/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

// profileForm mirrors the owner's edit form.
type profileForm struct {
	Name                 string `validate:"required,max=200"`
	EmergencyContact     string `validate:"required,max=100"`
	EmergencyContactName string `validate:"required,max=200"`
	BloodGroup           string `validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Allergies            string `validate:"max=2000"`
	MedicalConditions    string `validate:"max=2000"`
	CustomMessage        string `validate:"max=2000"`
}

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	validate    *validator.Validate
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		profileRepo: params.ProfileRepo,
		validate:    validator.New(),
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func normalizeDetails(d entity.ProfileDetails) entity.ProfileDetails {
	return entity.ProfileDetails{
		Name:                 strings.TrimSpace(d.Name),
		EmergencyContact:     strings.TrimSpace(d.EmergencyContact),
		EmergencyContactName: strings.TrimSpace(d.EmergencyContactName),
		BloodGroup:           strings.ToUpper(strings.TrimSpace(d.BloodGroup)),
		Allergies:            strings.TrimSpace(d.Allergies),
		MedicalConditions:    strings.TrimSpace(d.MedicalConditions),
		CustomMessage:        strings.TrimSpace(d.CustomMessage),
	}
}

func (srv *profileService) validateDetails(d entity.ProfileDetails) error {
	form := profileForm(d)
	if err := srv.validate.Struct(form); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return domainerrors.ErrValidationFailed.WithDetails(
				fieldErrs[0].Field() + " failed on " + fieldErrs[0].Tag())
		}

		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

// SaveProfile links the code to the owner and upserts its active profile in one transaction.
func (srv *profileService) SaveProfile(ctx context.Context, userID uuid.UUID, input usecase.SaveProfileInput) (*entity.EmergencyProfile, error) {
	if input.Code == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("code is required")
	}

	details := normalizeDetails(input.Details)
	if err := srv.validateDetails(details); err != nil {
		return nil, err
	}

	var saved *entity.EmergencyProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		codeRepo := repoFactory.NewQRCodeRepository()
		profileRepo := repoFactory.NewProfileRepository()
		userRepo := repoFactory.NewUserRepository()

		code, err := codeRepo.FindByCode(ctx, input.Code)
		if err != nil {
			if errors.Is(err, repository.ErrQRCodeNotFound) {
				return errors.Wrap(domainerrors.ErrQRCodeNotFound, input.Code)
			}

			return errors.Wrap(err, "failed to find code")
		}
		if code.Status == entity.CodeStatusSold {
			return domainerrors.ErrQRCodeNotLinkable.WithDetails("code has been sold")
		}
		if !code.CanLinkTo(userID) {
			return domainerrors.ErrForbidden.WithDetails("code is linked to another user")
		}

		profile, err := profileRepo.FindActiveByCode(ctx, input.Code)
		switch {
		case errors.Is(err, repository.ErrProfileNotFound):
			profile = &entity.EmergencyProfile{
				ID:        uuid.Must(uuid.NewV7()),
				QRCode:    input.Code,
				CreatedAt: time.Now().UTC(),
			}
		case err != nil:
			return errors.Wrap(err, "failed to find existing profile")
		}

		profile.Apply(details)
		profile.IsActive = true
		if err := profileRepo.Save(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to save profile")
		}

		code.Link(userID, profile.ID)
		if err := codeRepo.Save(ctx, code); err != nil {
			return errors.Wrap(err, "failed to link code")
		}

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "session user no longer exists")
			}

			return errors.Wrap(err, "failed to load owner")
		}
		if user.AddCode(input.Code) {
			if err := userRepo.Update(ctx, user); err != nil {
				return errors.Wrap(err, "failed to record linked code on owner")
			}
		}

		saved = profile

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to save profile", slog.String("code", input.Code), slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute save profile transaction")
	}

	srv.log(ctx).Info("Profile saved", slog.String("code", input.Code), slog.Any("profileID", saved.ID))

	return saved, nil
}

// ListMyProfiles returns the active profiles of the owner's codes in the order the codes were linked.
func (srv *profileService) ListMyProfiles(ctx context.Context, userID uuid.UUID) ([]*entity.EmergencyProfile, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "session user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load owner")
	}

	profiles, err := srv.profileRepo.FindByCodes(ctx, user.QRCodes)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profiles")
	}

	byCode := make(map[string]*entity.EmergencyProfile, len(profiles))
	for _, p := range profiles {
		if !p.IsActive {
			continue
		}
		if existing, ok := byCode[p.QRCode]; ok && !existing.CreatedAt.After(p.CreatedAt) {
			continue
		}
		byCode[p.QRCode] = p
	}

	result := make([]*entity.EmergencyProfile, 0, len(byCode))
	for _, code := range user.QRCodes {
		if p, ok := byCode[code]; ok {
			result = append(result, p)
		}
	}

	return result, nil
}

// GetMyProfile returns the owner's active profile for a code. Codes the owner has not linked are reported as not found.
func (srv *profileService) GetMyProfile(ctx context.Context, userID uuid.UUID, code string) (*entity.EmergencyProfile, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "session user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load owner")
	}
	if !user.HasCode(code) {
		return nil, errors.Wrap(domainerrors.ErrProfileNotFound, code)
	}

	profile, err := srv.profileRepo.FindActiveByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, code)
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return profile, nil
}
