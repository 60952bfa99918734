package store

import (
	"context"

	"lifelink/internal/domain/entity"
	domainerrors "lifelink/internal/domain/errors"
	"lifelink/internal/domain/repository"
	"lifelink/internal/errors"
	"lifelink/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// qrCodeRepository implements the domain.QRCodeRepository interface.
type qrCodeRepository struct {
	db *gorm.DB
}

// NewQRCodeRepository is the constructor for qrCodeRepository.
func NewQRCodeRepository(db *gorm.DB) repository.QRCodeRepository {
	return &qrCodeRepository{db: db}
}

func (repo *qrCodeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.QRCode, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *qrCodeRepository) FindByCode(ctx context.Context, code string) (*entity.QRCode, error) {
	return repo.findOne(ctx, "code = ?", code)
}

func (repo *qrCodeRepository) findOne(ctx context.Context, query string, arg any) (*entity.QRCode, error) {
	var codeM model.QRCodeModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&codeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQRCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find qr code")
	}

	return toQRCodeDomain(&codeM), nil
}

func (repo *qrCodeRepository) ListAll(ctx context.Context) ([]*entity.QRCode, error) {
	var codeModels []*model.QRCodeModel
	if err := repo.db.WithContext(ctx).Order("created_at ASC").Find(&codeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list qr codes")
	}

	codes := make([]*entity.QRCode, 0, len(codeModels))
	for _, codeM := range codeModels {
		codes = append(codes, toQRCodeDomain(codeM))
	}

	return codes, nil
}

func (repo *qrCodeRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.QRCodeModel{}).Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count qr codes")
	}

	return total, nil
}

// Create inserts a newly issued code.
func (repo *qrCodeRepository) Create(ctx context.Context, code *entity.QRCode) error {
	codeM := fromQRCodeDomain(code)
	if codeM.ID == uuid.Nil {
		codeM.ID = uuid.Must(uuid.NewV7())
	}

	if err := repo.db.WithContext(ctx).Create(codeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrQRCodeDuplicate
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create qr code")
	}

	code.ID = codeM.ID
	code.CreatedAt = codeM.CreatedAt

	return nil
}

// Save inserts the code or fully replaces the row with the same ID.
func (repo *qrCodeRepository) Save(ctx context.Context, code *entity.QRCode) error {
	codeM := fromQRCodeDomain(code)
	if codeM.CreatedAt.IsZero() {
		codeM.CreatedAt = repo.db.NowFunc()
	}

	if err := repo.db.WithContext(ctx).Save(codeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrQRCodeDuplicate
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save qr code")
	}

	code.CreatedAt = codeM.CreatedAt

	return nil
}

// IncrementScans adds one to scans_count in a single statement.
func (repo *qrCodeRepository) IncrementScans(ctx context.Context, code string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.QRCodeModel{}).
		Where("code = ?", code).
		UpdateColumn("scans_count", gorm.Expr("scans_count + ?", 1))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment scans")
	}
	if result.RowsAffected == 0 {
		return repository.ErrQRCodeNotFound
	}

	return nil
}
