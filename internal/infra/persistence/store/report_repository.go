package store

import (
	"context"
	"time"

	"lifelink/internal/domain/entity"
	"lifelink/internal/domain/repository"
	"lifelink/internal/errors"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"  // dialect registration
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

const (
	tableQRCodes = "qr_codes"

	colID              = "id"
	colCode            = "code"
	colStatus          = "status"
	colLinkedUserID    = "linked_user_id"
	colEmergencyInfoID = "emergency_info_id"
	colScansCount      = "scans_count"
	colCreatedAt       = "created_at"

	dialectPostgres = "postgres"
	dialectSQLite   = "sqlite3"
)

// reportRepository runs the admin read models as hand-built SQL over the shared pool.
type reportRepository struct {
	db      *sqlx.DB
	dialect goqu.DialectWrapper
}

type codeRow struct {
	ID              uuid.UUID     `db:"id"`
	Code            string        `db:"code"`
	Status          string        `db:"status"`
	LinkedUserID    uuid.NullUUID `db:"linked_user_id"`
	EmergencyInfoID uuid.NullUUID `db:"emergency_info_id"`
	ScansCount      int64         `db:"scans_count"`
	CreatedAt       time.Time     `db:"created_at"`
}

type codeTotalsRow struct {
	TotalCodes int64 `db:"total_codes"`
	TotalScans int64 `db:"total_scans"`
}

type linkTotalsRow struct {
	LinkedCodes int64 `db:"linked_codes"`
	ActiveUsers int64 `db:"active_users"`
}

// NewReportRepository wraps the GORM connection pool with sqlx and picks the goqu dialect from the driver.
func NewReportRepository(db *gorm.DB) (repository.ReportRepository, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB for reports")
	}

	dialectName := dialectSQLite
	if db.Dialector.Name() == dialectPostgres {
		dialectName = dialectPostgres
	}

	return &reportRepository{
		db:      sqlx.NewDb(sqlDB, dialectName),
		dialect: goqu.Dialect(dialectName),
	}, nil
}

// Stats computes registry-wide counters. Active users are the distinct owners of linked codes.
func (repo *reportRepository) Stats(ctx context.Context) (*entity.AdminStats, error) {
	totalsQuery, totalsArgs, err := repo.dialect.
		From(tableQRCodes).
		Prepared(true).
		Select(
			goqu.COUNT(goqu.Star()).As("total_codes"),
			goqu.COALESCE(goqu.SUM(colScansCount), 0).As("total_scans"),
		).
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build code totals query")
	}

	var totals codeTotalsRow
	if err := repo.db.GetContext(ctx, &totals, totalsQuery, totalsArgs...); err != nil {
		return nil, errors.Wrap(err, "failed to query code totals")
	}

	linkQuery, linkArgs, err := repo.dialect.
		From(tableQRCodes).
		Prepared(true).
		Select(
			goqu.COUNT(goqu.Star()).As("linked_codes"),
			goqu.COUNT(goqu.DISTINCT(colLinkedUserID)).As("active_users"),
		).
		Where(goqu.C(colStatus).Eq(entity.CodeStatusLinked.String())).
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build link totals query")
	}

	var links linkTotalsRow
	if err := repo.db.GetContext(ctx, &links, linkQuery, linkArgs...); err != nil {
		return nil, errors.Wrap(err, "failed to query link totals")
	}

	return &entity.AdminStats{
		TotalCodes:  totals.TotalCodes,
		LinkedCodes: links.LinkedCodes,
		TotalScans:  totals.TotalScans,
		ActiveUsers: links.ActiveUsers,
	}, nil
}

// ListCodes returns one page of codes, newest first, and the number of codes matching the filter.
func (repo *reportRepository) ListCodes(ctx context.Context, filter entity.CodeFilter) ([]*entity.QRCode, int64, error) {
	base := repo.dialect.From(tableQRCodes).Prepared(true)
	if filter.Status != nil {
		base = base.Where(goqu.C(colStatus).Eq(filter.Status.String()))
	}

	countQuery, countArgs, err := base.Select(goqu.COUNT(goqu.Star())).ToSQL()
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to build code count query")
	}

	var total int64
	if err := repo.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, errors.Wrap(err, "failed to count codes")
	}

	pageQuery := base.
		Select(colID, colCode, colStatus, colLinkedUserID, colEmergencyInfoID, colScansCount, colCreatedAt).
		Order(goqu.C(colCreatedAt).Desc(), goqu.C(colID).Desc())
	if filter.PageSize > 0 {
		pageQuery = pageQuery.Limit(uint(filter.PageSize)).Offset(uint(filter.Offset()))
	}

	query, args, err := pageQuery.ToSQL()
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to build code page query")
	}

	var rows []codeRow
	if err := repo.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, errors.Wrap(err, "failed to list codes")
	}

	codes := make([]*entity.QRCode, 0, len(rows))
	for _, row := range rows {
		codes = append(codes, row.toDomain())
	}

	return codes, total, nil
}

func (row codeRow) toDomain() *entity.QRCode {
	code := &entity.QRCode{
		ID:         row.ID,
		Code:       row.Code,
		Status:     entity.CodeStatus(row.Status),
		ScansCount: row.ScansCount,
		CreatedAt:  row.CreatedAt,
	}
	if row.LinkedUserID.Valid {
		id := row.LinkedUserID.UUID
		code.LinkedUserID = &id
	}
	if row.EmergencyInfoID.Valid {
		id := row.EmergencyInfoID.UUID
		code.EmergencyInfoID = &id
	}

	return code
}
