package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"prime-property/internal/domain"
)

type StatsRepository interface {
	Get(ctx context.Context) (*domain.Stats, error)
}

type statsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Get(ctx context.Context) (*domain.Stats, error) {
	var stats domain.Stats

	counts := []struct {
		dest  interface{}
		query string
		args  []interface{}
	}{
		{&stats.TotalProperties, `SELECT COUNT(1) FROM properties`, nil},
		{&stats.PendingApproval, `SELECT COUNT(1) FROM properties WHERE is_approved = ?`, []interface{}{false}},
		{&stats.TotalUsers, `SELECT COUNT(1) FROM users`, nil},
		{&stats.TotalSales, `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = ?`, []interface{}{domain.PaymentCompleted}},
		{&stats.ReportedCount, `SELECT COUNT(1) FROM reports WHERE resolved = ?`, []interface{}{false}},
	}

	for _, c := range counts {
		if err := r.db.GetContext(ctx, c.dest, r.db.Rebind(c.query), c.args...); err != nil {
			return nil, err
		}
	}

	return &stats, nil
}
