package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"lifelink/config"
	deliverycontext "lifelink/internal/delivery/context"
	"lifelink/internal/domain/entity"
	domainerrors "lifelink/internal/domain/errors"
	"lifelink/internal/domain/repository"
	"lifelink/internal/domain/service"
	"lifelink/internal/errors"
	"lifelink/internal/usecase"
	"lifelink/internal/util"

	"go.uber.org/fx"
)

// maxIssueAttempts bounds how many values are drawn for one code before giving up.
const maxIssueAttempts = 5

// codeService implements the CodeUsecase interface.
type codeService struct {
	txManager  repository.TransactionManager
	qrCodeRepo repository.QRCodeRepository
	reportRepo repository.ReportRepository
	qrService  service.QRCodeService
	generator  service.CodeGenerator
	pageSize   int
	seedCount  int
	logger     *slog.Logger
}

// CodeServiceParams holds dependencies for CodeService, injected by Fx.
type CodeServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	QRCodeRepo repository.QRCodeRepository
	ReportRepo repository.ReportRepository
	QRService  service.QRCodeService
	Generator  service.CodeGenerator
	Config     *config.Config
	Logger     *slog.Logger
}

// NewCodeService is the constructor for codeService.
func NewCodeService(params CodeServiceParams) usecase.CodeUsecase {
	pageSize, seedCount := config.DefaultPageSize, 0
	if params.Config != nil && params.Config.Codes != nil {
		if params.Config.Codes.PageSize > 0 {
			pageSize = params.Config.Codes.PageSize
		}
		seedCount = params.Config.Codes.SeedCount
	}

	return &codeService{
		txManager:  params.TxManager,
		qrCodeRepo: params.QRCodeRepo,
		reportRepo: params.ReportRepo,
		qrService:  params.QRService,
		generator:  params.Generator,
		pageSize:   pageSize,
		seedCount:  seedCount,
		logger:     params.Logger,
	}
}

func (srv *codeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IssueCode creates a single unused code.
func (srv *codeService) IssueCode(ctx context.Context) (*entity.QRCode, error) {
	codes, err := srv.IssueCodes(ctx, 1)
	if err != nil {
		return nil, err
	}

	return codes[0], nil
}

// IssueCodes creates count unused codes in one transaction.
func (srv *codeService) IssueCodes(ctx context.Context, count int) ([]*entity.QRCode, error) {
	if count < 1 || count > usecase.MaxIssueBatch {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("count must be between 1 and %d", usecase.MaxIssueBatch))
	}

	issued := make([]*entity.QRCode, 0, count)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		codeRepo := repoFactory.NewQRCodeRepository()
		for range count {
			code, err := srv.issueOne(ctx, codeRepo)
			if err != nil {
				return err
			}
			issued = append(issued, code)
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to issue codes", slog.Int("count", count), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue codes")
	}

	srv.log(ctx).Info("Issued codes", slog.Int("count", len(issued)))

	return issued, nil
}

// issueOne draws values until one is free. The lookup comes first because a
// failed insert aborts the surrounding transaction on postgres.
func (srv *codeService) issueOne(ctx context.Context, codeRepo repository.QRCodeRepository) (*entity.QRCode, error) {
	for range maxIssueAttempts {
		value, err := srv.generator.Generate()
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate code value")
		}

		_, err = codeRepo.FindByCode(ctx, value)
		if err == nil {
			srv.log(ctx).Debug("Generated code already taken, retrying", slog.String("code", value))

			continue
		}
		if !errors.Is(err, repository.ErrQRCodeNotFound) {
			return nil, errors.Wrap(err, "failed to check code value")
		}

		code := &entity.QRCode{Code: value, Status: entity.CodeStatusUnused}
		if err := codeRepo.Create(ctx, code); err != nil {
			return nil, errors.Wrap(err, "failed to create code")
		}

		return code, nil
	}

	return nil, domainerrors.ErrQRCodeIssueFailed.WithDetails(
		fmt.Sprintf("no free value after %d attempts", maxIssueAttempts))
}

// ListCodes returns one page of codes, newest first.
func (srv *codeService) ListCodes(ctx context.Context, input usecase.ListCodesInput) (*entity.CodePage, error) {
	filter := entity.CodeFilter{Page: max(input.Page, 1), PageSize: srv.pageSize}
	if filter.Page > filter.MaxPage() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("page out of range")
	}

	status := strings.ToLower(strings.TrimSpace(input.Status))
	if status != "" && status != "all" {
		s := entity.CodeStatus(status)
		if !s.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status " + input.Status)
		}
		filter.Status = &s
	}

	codes, total, err := srv.reportRepo.ListCodes(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list codes")
	}

	return &entity.CodePage{
		Codes:      codes,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: util.PageCount(total, filter.PageSize),
	}, nil
}

// GetStats returns the registry counters.
func (srv *codeService) GetStats(ctx context.Context) (*entity.AdminStats, error) {
	stats, err := srv.reportRepo.Stats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute stats")
	}

	return stats, nil
}

// RenderCodePNG renders an issued code. Unknown values are rejected so nothing unregistered gets printed.
func (srv *codeService) RenderCodePNG(ctx context.Context, code string) ([]byte, error) {
	if _, err := srv.qrCodeRepo.FindByCode(ctx, code); err != nil {
		if errors.Is(err, repository.ErrQRCodeNotFound) {
			return nil, errors.Wrap(domainerrors.ErrQRCodeNotFound, code)
		}

		return nil, errors.Wrap(err, "failed to find code")
	}

	png, err := srv.qrService.RenderPNG(code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render code")
	}

	return png, nil
}

// SeedIfEmpty issues the configured seed batch on an empty registry.
func (srv *codeService) SeedIfEmpty(ctx context.Context) (int, error) {
	if srv.seedCount <= 0 {
		return 0, nil
	}

	total, err := srv.qrCodeRepo.Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count codes")
	}
	if total > 0 {
		return 0, nil
	}

	issued := 0
	for remaining := srv.seedCount; remaining > 0; remaining -= usecase.MaxIssueBatch {
		codes, err := srv.IssueCodes(ctx, min(remaining, usecase.MaxIssueBatch))
		if err != nil {
			return issued, err
		}
		issued += len(codes)
	}

	srv.log(ctx).Info("Seeded empty registry", slog.Int("count", issued))

	return issued, nil
}
