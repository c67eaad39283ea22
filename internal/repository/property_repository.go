package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"prime-property/internal/domain"
)

type PropertyRepository interface {
	Create(ctx context.Context, property *domain.Property) error
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
	GetWithSeller(ctx context.Context, id int64) (*domain.PropertyWithSeller, error)
	Search(ctx context.Context, filter domain.SearchFilter) ([]domain.Property, error)
	ListBySeller(ctx context.Context, sellerID int64) ([]domain.Property, error)
	ListPending(ctx context.Context) ([]domain.PropertyWithSeller, error)
	ListAll(ctx context.Context) ([]domain.PropertyWithSeller, error)
	Update(ctx context.Context, property *domain.Property, actor domain.Actor, resetApproval bool) (*domain.Property, error)
	Delete(ctx context.Context, id int64, actor domain.Actor) (bool, error)
	Approve(ctx context.Context, id int64) (bool, error)
	SetFeatured(ctx context.Context, id int64, featured bool) (bool, error)
	Promote(ctx context.Context, payment *domain.Payment, actor domain.Actor) (bool, error)
	AppendImage(ctx context.Context, id int64, url string, actor domain.Actor) (*domain.Property, error)
}

type propertyRepository struct {
	db *sqlx.DB
}

func NewPropertyRepository(db *sqlx.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

const propertyColumns = `p.id, p.title, p.description, p.price, p.location, p.type, p.status,
	p.images, p.details, p.phone_contact, p.email_contact, p.seller_id,
	p.is_approved, p.is_featured, p.created_at`

const propertyWithSellerSelect = `SELECT ` + propertyColumns + `, u.name AS seller_name, u.email AS seller_email
	FROM properties p
	LEFT JOIN users u ON u.id = p.seller_id`

// ownedBy narrows a write to the actor's own rows unless the actor is an
// admin. The predicate lives in the same statement as the write.
func ownedBy(actor domain.Actor) (string, []interface{}) {
	if actor.Role == domain.RoleAdmin {
		return "", nil
	}
	return " AND seller_id = ?", []interface{}{actor.ID}
}

func (r *propertyRepository) Create(ctx context.Context, property *domain.Property) error {
	query := r.db.Rebind(`
		INSERT INTO properties (title, description, price, location, type, status, images, details,
			phone_contact, email_contact, seller_id, is_approved, is_featured, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`)

	return r.db.QueryRowxContext(ctx, query,
		property.Title, property.Description, property.Price, property.Location, property.Type,
		property.Status, property.Images, property.Details, property.PhoneContact,
		property.EmailContact, property.SellerID, property.IsApproved, property.IsFeatured,
		property.CreatedAt,
	).Scan(&property.ID)
}

func (r *propertyRepository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	return getProperty(ctx, r.db, id)
}

func getProperty(ctx context.Context, q sqlx.ExtContext, id int64) (*domain.Property, error) {
	var property domain.Property
	query := q.Rebind(`SELECT ` + propertyColumns + ` FROM properties p WHERE p.id = ?`)

	err := sqlx.GetContext(ctx, q, &property, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepository) GetWithSeller(ctx context.Context, id int64) (*domain.PropertyWithSeller, error) {
	var property domain.PropertyWithSeller
	query := r.db.Rebind(propertyWithSellerSelect + ` WHERE p.id = ?`)

	err := r.db.GetContext(ctx, &property, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepository) Search(ctx context.Context, filter domain.SearchFilter) ([]domain.Property, error) {
	conditions := []string{"p.is_approved = ?"}
	args := []interface{}{true}

	if filter.Location != "" {
		conditions = append(conditions, "LOWER(p.location) LIKE ?")
		args = append(args, "%"+strings.ToLower(filter.Location)+"%")
	}
	if filter.Type != "" {
		conditions = append(conditions, "p.type = ?")
		args = append(args, filter.Type)
	}
	if filter.MinPrice != nil {
		conditions = append(conditions, "p.price >= ?")
		args = append(args, *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		conditions = append(conditions, "p.price <= ?")
		args = append(args, *filter.MaxPrice)
	}
	if filter.FeaturedOnly {
		conditions = append(conditions, "p.is_featured = ?")
		args = append(args, true)
	}

	query := `SELECT ` + propertyColumns + ` FROM properties p WHERE ` +
		strings.Join(conditions, " AND ") + orderBy(filter.Sort)

	properties := []domain.Property{}
	err := r.db.SelectContext(ctx, &properties, r.db.Rebind(query), args...)
	return properties, err
}

func orderBy(sort domain.SortOrder) string {
	switch sort {
	case domain.SortNewest:
		return " ORDER BY p.created_at DESC, p.id DESC"
	case domain.SortPriceAsc:
		return " ORDER BY p.price ASC, p.id ASC"
	case domain.SortPriceDesc:
		return " ORDER BY p.price DESC, p.id ASC"
	default:
		return " ORDER BY p.id ASC"
	}
}

func (r *propertyRepository) ListBySeller(ctx context.Context, sellerID int64) ([]domain.Property, error) {
	properties := []domain.Property{}
	query := r.db.Rebind(`SELECT ` + propertyColumns + ` FROM properties p
		WHERE p.seller_id = ? ORDER BY p.created_at DESC, p.id DESC`)

	err := r.db.SelectContext(ctx, &properties, query, sellerID)
	return properties, err
}

func (r *propertyRepository) ListPending(ctx context.Context) ([]domain.PropertyWithSeller, error) {
	properties := []domain.PropertyWithSeller{}
	query := r.db.Rebind(propertyWithSellerSelect + ` WHERE p.is_approved = ? ORDER BY p.created_at ASC, p.id ASC`)

	err := r.db.SelectContext(ctx, &properties, query, false)
	return properties, err
}

func (r *propertyRepository) ListAll(ctx context.Context) ([]domain.PropertyWithSeller, error) {
	properties := []domain.PropertyWithSeller{}
	query := propertyWithSellerSelect + ` ORDER BY p.created_at DESC, p.id DESC`

	err := r.db.SelectContext(ctx, &properties, query)
	return properties, err
}

// Update writes the content fields and returns the stored row, or nil when
// the listing is missing or not the actor's. Approval is only ever cleared,
// and only when resetApproval is set, so a concurrent approval survives.
func (r *propertyRepository) Update(ctx context.Context, property *domain.Property, actor domain.Actor, resetApproval bool) (*domain.Property, error) {
	set := `title = ?, description = ?, price = ?, location = ?, type = ?, status = ?,
		images = ?, details = ?, phone_contact = ?, email_contact = ?`
	args := []interface{}{
		property.Title, property.Description, property.Price, property.Location, property.Type,
		property.Status, property.Images, property.Details, property.PhoneContact,
		property.EmailContact,
	}
	if resetApproval {
		set += `, is_approved = ?`
		args = append(args, false)
	}

	scope, scopeArgs := ownedBy(actor)
	args = append(append(args, property.ID), scopeArgs...)

	var stored *domain.Property
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, tx.Rebind(`UPDATE properties SET `+set+` WHERE id = ?`+scope), args...)
		if err != nil {
			return err
		}
		ok, err := affected(res)
		if err != nil || !ok {
			return err
		}

		stored, err = getProperty(ctx, tx, property.ID)
		return err
	})
	return stored, err
}

func (r *propertyRepository) Delete(ctx context.Context, id int64, actor domain.Actor) (bool, error) {
	scope, scopeArgs := ownedBy(actor)
	query := r.db.Rebind(`DELETE FROM properties WHERE id = ?` + scope)

	res, err := r.db.ExecContext(ctx, query, append([]interface{}{id}, scopeArgs...)...)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func (r *propertyRepository) Approve(ctx context.Context, id int64) (bool, error) {
	query := r.db.Rebind(`UPDATE properties SET is_approved = ? WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, query, true, id)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func (r *propertyRepository) SetFeatured(ctx context.Context, id int64, featured bool) (bool, error) {
	query := r.db.Rebind(`UPDATE properties SET is_featured = ? WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, query, featured, id)
	if err != nil {
		return false, err
	}
	return affected(res)
}

// Promote features the listing and records the payment in one transaction.
// It reports false, writing nothing, when the listing is missing or not the
// actor's.
func (r *propertyRepository) Promote(ctx context.Context, payment *domain.Payment, actor domain.Actor) (bool, error) {
	promoted := false
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		scope, scopeArgs := ownedBy(actor)
		query := tx.Rebind(`UPDATE properties SET is_featured = ? WHERE id = ?` + scope)

		res, err := tx.ExecContext(ctx, query, append([]interface{}{true, *payment.PropertyID}, scopeArgs...)...)
		if err != nil {
			return err
		}
		if promoted, err = affected(res); err != nil || !promoted {
			return err
		}

		return insertPayment(ctx, tx, payment)
	})
	return promoted, err
}

// AppendImage adds url to the end of the listing's image list.
func (r *propertyRepository) AppendImage(ctx context.Context, id int64, url string, actor domain.Actor) (*domain.Property, error) {
	var property *domain.Property
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		current, err := getProperty(ctx, tx, id)
		if err != nil || current == nil {
			return err
		}

		images := append(domain.StringList{}, current.Images...)
		images = append(images, url)

		scope, scopeArgs := ownedBy(actor)
		query := tx.Rebind(`UPDATE properties SET images = ? WHERE id = ?` + scope)
		res, err := tx.ExecContext(ctx, query, append([]interface{}{images, id}, scopeArgs...)...)
		if err != nil {
			return err
		}
		ok, err := affected(res)
		if err != nil || !ok {
			return err
		}

		current.Images = images
		property = current
		return nil
	})
	return property, err
}
