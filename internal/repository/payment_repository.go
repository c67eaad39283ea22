package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"prime-property/internal/domain"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Payment, error)
	ListAll(ctx context.Context) ([]domain.PaymentView, error)
	CountByProperty(ctx context.Context, propertyID int64) (int64, error)
}

type paymentRepository struct {
	db *sqlx.DB
}

func NewPaymentRepository(db *sqlx.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentColumns = `pm.id, pm.user_id, pm.property_id, pm.amount, pm.type, pm.status, pm.method, pm.plan, pm.created_at`

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	return insertPayment(ctx, r.db, payment)
}

func insertPayment(ctx context.Context, q sqlx.ExtContext, payment *domain.Payment) error {
	query := q.Rebind(`
		INSERT INTO payments (user_id, property_id, amount, type, status, method, plan, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`)

	return q.QueryRowxContext(ctx, query,
		payment.UserID, payment.PropertyID, payment.Amount, payment.Type, payment.Status,
		payment.Method, payment.Plan, payment.CreatedAt,
	).Scan(&payment.ID)
}

func (r *paymentRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Payment, error) {
	payments := []domain.Payment{}
	query := r.db.Rebind(`SELECT ` + paymentColumns + ` FROM payments pm
		WHERE pm.user_id = ? ORDER BY pm.created_at DESC, pm.id DESC`)

	err := r.db.SelectContext(ctx, &payments, query, userID)
	return payments, err
}

func (r *paymentRepository) ListAll(ctx context.Context) ([]domain.PaymentView, error) {
	payments := []domain.PaymentView{}
	query := `
		SELECT ` + paymentColumns + `, u.name AS user_name, p.title AS property_title
		FROM payments pm
		LEFT JOIN users u ON u.id = pm.user_id
		LEFT JOIN properties p ON p.id = pm.property_id
		ORDER BY pm.created_at DESC, pm.id DESC`

	err := r.db.SelectContext(ctx, &payments, query)
	return payments, err
}

func (r *paymentRepository) CountByProperty(ctx context.Context, propertyID int64) (int64, error) {
	var count int64
	query := r.db.Rebind(`SELECT COUNT(1) FROM payments WHERE property_id = ?`)
	err := r.db.GetContext(ctx, &count, query, propertyID)
	return count, err
}
