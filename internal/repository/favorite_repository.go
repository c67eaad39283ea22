package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"prime-property/internal/domain"
)

type FavoriteRepository interface {
	Add(ctx context.Context, userID, propertyID int64) error
	Remove(ctx context.Context, userID, propertyID int64) error
	ListProperties(ctx context.Context, userID int64) ([]domain.Property, error)
}

type favoriteRepository struct {
	db *sqlx.DB
}

func NewFavoriteRepository(db *sqlx.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Add(ctx context.Context, userID, propertyID int64) error {
	query := r.db.Rebind(`INSERT INTO favorites (user_id, property_id) VALUES (?, ?)`)
	_, err := r.db.ExecContext(ctx, query, userID, propertyID)
	if isUniqueViolation(err) {
		return domain.ErrAlreadyFavorited
	}
	return err
}

func (r *favoriteRepository) Remove(ctx context.Context, userID, propertyID int64) error {
	query := r.db.Rebind(`DELETE FROM favorites WHERE user_id = ? AND property_id = ?`)
	_, err := r.db.ExecContext(ctx, query, userID, propertyID)
	return err
}

// ListProperties returns the user's favorites that are still visible to
// them: approved listings and their own drafts.
func (r *favoriteRepository) ListProperties(ctx context.Context, userID int64) ([]domain.Property, error) {
	properties := []domain.Property{}
	query := r.db.Rebind(`SELECT ` + propertyColumns + ` FROM properties p
		JOIN favorites f ON f.property_id = p.id
		WHERE f.user_id = ? AND (p.is_approved = ? OR p.seller_id = ?)
		ORDER BY p.id ASC`)

	err := r.db.SelectContext(ctx, &properties, query, userID, true, userID)
	return properties, err
}
