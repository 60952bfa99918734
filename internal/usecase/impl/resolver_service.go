package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "lifelink/internal/delivery/context"
	"lifelink/internal/domain/entity"
	domainerrors "lifelink/internal/domain/errors"
	"lifelink/internal/domain/lifecycle"
	"lifelink/internal/domain/repository"
	"lifelink/internal/domain/service"
	"lifelink/internal/errors"
	"lifelink/internal/usecase"

	"go.uber.org/fx"
)

// resolverService implements the ResolverUsecase interface.
type resolverService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	notifier  service.ScanNotifier
	logger    *slog.Logger
	now       func() time.Time
}

// ResolverServiceParams holds dependencies for ResolverService, injected by Fx.
type ResolverServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Notifier  service.ScanNotifier
	Logger    *slog.Logger
}

// NewResolverService is the constructor for resolverService.
func NewResolverService(params ResolverServiceParams) usecase.ResolverUsecase {
	return &resolverService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		notifier:  params.Notifier,
		logger:    params.Logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (srv *resolverService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve looks the code up exactly as given. A known code is counted even when no profile is linked yet.
func (srv *resolverService) Resolve(ctx context.Context, code string) (*entity.EmergencyProfile, error) {
	var (
		profile *entity.EmergencyProfile
		scanned *entity.QRCode
		linked  bool
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		codeRepo := repoFactory.NewQRCodeRepository()
		profileRepo := repoFactory.NewProfileRepository()

		qr, err := codeRepo.FindByCode(ctx, code)
		if err != nil {
			if errors.Is(err, repository.ErrQRCodeNotFound) {
				return errors.Wrap(domainerrors.ErrQRCodeNotFound, code)
			}

			return errors.Wrap(err, "failed to find code")
		}

		if err := codeRepo.IncrementScans(ctx, code); err != nil {
			return errors.Wrap(err, "failed to count scan")
		}
		qr.ScansCount++
		scanned = qr

		found, err := profileRepo.FindActiveByCode(ctx, code)
		if errors.Is(err, repository.ErrProfileNotFound) {
			// Commit the scan count; the not-linked outcome is reported after commit.
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find profile")
		}

		scannedAt := srv.now()
		if err := profileRepo.TouchLastScanned(ctx, found.ID, scannedAt); err != nil {
			return errors.Wrap(err, "failed to record scan time")
		}
		found.LastScanned = &scannedAt

		profile = found
		linked = true

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve code")
	}

	if !linked {
		srv.log(ctx).Info("Scanned code has no profile", slog.String("code", code))

		return nil, errors.Wrap(domainerrors.ErrProfileNotFound, code)
	}

	srv.log(ctx).Info("Code resolved", slog.String("code", code), slog.Int64("scans", scanned.ScansCount))
	srv.notifyOwner(ctx, scanned, profile)

	return profile, nil
}

// notifyOwner sends the scan alert in the background. The request context is
// detached so the alert survives the response being written.
func (srv *resolverService) notifyOwner(ctx context.Context, code *entity.QRCode, profile *entity.EmergencyProfile) {
	if srv.notifier == nil || code.LinkedUserID == nil {
		return
	}

	logger := srv.log(ctx)
	ownerID := *code.LinkedUserID
	bg := context.WithoutCancel(ctx)

	go func() {
		notifyCtx, cancel := context.WithTimeout(bg, lifecycle.DefaultTimeout)
		defer cancel()

		user, err := srv.userRepo.FindByID(notifyCtx, ownerID)
		if err != nil {
			logger.Warn("Scan alert skipped, owner not loaded", slog.Any("userID", ownerID), slog.Any("error", err))

			return
		}

		if err := srv.notifier.NotifyScan(notifyCtx, user, profile); err != nil {
			logger.Warn("Scan alert failed", slog.Any("userID", ownerID), slog.Any("error", err))
		}
	}()
}
