package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"prime-property/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, user *domain.User) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	UpdateRoleStatus(ctx context.Context, id int64, role domain.UserRole, status domain.UserStatus) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ListWithListingCount(ctx context.Context) ([]domain.UserWithListings, error)
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, name, email, password, role, status, created_at`

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := r.db.Rebind(`
		INSERT INTO users (name, email, password, role, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id`)

	err := r.db.QueryRowxContext(ctx, query,
		user.Name, user.Email, user.PasswordHash, user.Role, user.Status, user.CreatedAt,
	).Scan(&user.ID)
	if isUniqueViolation(err) {
		return domain.ErrEmailExists
	}
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	query := r.db.Rebind(`SELECT ` + userColumns + ` FROM users WHERE id = ?`)

	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	query := r.db.Rebind(`SELECT ` + userColumns + ` FROM users WHERE email = ?`)

	err := r.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	query := r.db.Rebind(`SELECT COUNT(1) FROM users WHERE email = ?`)
	err := r.db.GetContext(ctx, &count, query, email)
	return count > 0, err
}

func (r *userRepository) UpdateProfile(ctx context.Context, user *domain.User) error {
	query := r.db.Rebind(`UPDATE users SET name = ?, email = ? WHERE id = ?`)

	res, err := r.db.ExecContext(ctx, query, user.Name, user.Email, user.ID)
	if isUniqueViolation(err) {
		return domain.ErrEmailExists
	}
	if err != nil {
		return err
	}
	ok, err := affected(res)
	if err == nil && !ok {
		return domain.ErrUserNotFound
	}
	return err
}

func (r *userRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	query := r.db.Rebind(`UPDATE users SET password = ? WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, query, passwordHash, id)
	if err != nil {
		return err
	}
	ok, err := affected(res)
	if err == nil && !ok {
		return domain.ErrUserNotFound
	}
	return err
}

func (r *userRepository) UpdateRoleStatus(ctx context.Context, id int64, role domain.UserRole, status domain.UserStatus) (bool, error) {
	query := r.db.Rebind(`UPDATE users SET role = ?, status = ? WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, query, role, status, id)
	if err != nil {
		return false, err
	}
	return affected(res)
}

// Delete removes the user row only. Listings, messages and payments that
// reference the user are left in place.
func (r *userRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := r.db.Rebind(`DELETE FROM users WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func (r *userRepository) ListWithListingCount(ctx context.Context) ([]domain.UserWithListings, error) {
	users := []domain.UserWithListings{}
	query := `
		SELECT u.id, u.name, u.email, u.password, u.role, u.status, u.created_at,
			(SELECT COUNT(1) FROM properties p WHERE p.seller_id = u.id) AS listing_count
		FROM users u
		ORDER BY u.created_at DESC, u.id DESC`

	err := r.db.SelectContext(ctx, &users, query)
	return users, err
}
