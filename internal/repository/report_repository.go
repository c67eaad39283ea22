package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"prime-property/internal/domain"
)

type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	GetByID(ctx context.Context, id int64) (*domain.Report, error)
	List(ctx context.Context, includeResolved bool) ([]domain.ReportView, error)
	Resolve(ctx context.Context, id int64) (bool, error)
	RemoveListing(ctx context.Context, reportID int64) (*domain.Report, error)
}

type reportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *domain.Report) error {
	query := r.db.Rebind(`
		INSERT INTO reports (property_id, user_id, reason, resolved, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id`)

	return r.db.QueryRowxContext(ctx, query,
		report.PropertyID, report.UserID, report.Reason, report.Resolved, report.CreatedAt,
	).Scan(&report.ID)
}

func (r *reportRepository) GetByID(ctx context.Context, id int64) (*domain.Report, error) {
	return getReport(ctx, r.db, id)
}

func getReport(ctx context.Context, q sqlx.ExtContext, id int64) (*domain.Report, error) {
	var report domain.Report
	query := q.Rebind(`SELECT id, property_id, user_id, reason, resolved, created_at FROM reports WHERE id = ?`)

	err := sqlx.GetContext(ctx, q, &report, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) List(ctx context.Context, includeResolved bool) ([]domain.ReportView, error) {
	reports := []domain.ReportView{}
	query := `
		SELECT rp.id, rp.property_id, rp.user_id, rp.reason, rp.resolved, rp.created_at,
			p.title AS property_title, u.name AS reporter_name
		FROM reports rp
		LEFT JOIN properties p ON p.id = rp.property_id
		LEFT JOIN users u ON u.id = rp.user_id`
	args := []interface{}{}
	if !includeResolved {
		query += ` WHERE rp.resolved = ?`
		args = append(args, false)
	}
	query += ` ORDER BY rp.created_at DESC, rp.id DESC`

	err := r.db.SelectContext(ctx, &reports, r.db.Rebind(query), args...)
	return reports, err
}

func (r *reportRepository) Resolve(ctx context.Context, id int64) (bool, error) {
	query := r.db.Rebind(`UPDATE reports SET resolved = ? WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, query, true, id)
	if err != nil {
		return false, err
	}
	return affected(res)
}

// RemoveListing deletes the reported listing and resolves every report filed
// against it. It returns nil when the report does not exist.
func (r *reportRepository) RemoveListing(ctx context.Context, reportID int64) (*domain.Report, error) {
	var report *domain.Report
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var err error
		report, err = getReport(ctx, tx, reportID)
		if err != nil || report == nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM properties WHERE id = ?`), report.PropertyID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(`UPDATE reports SET resolved = ? WHERE property_id = ?`), true, report.PropertyID); err != nil {
			return err
		}

		report.Resolved = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}
