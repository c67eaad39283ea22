package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"prime-property/internal/domain"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Connect("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(context.Background(), db))
	return db
}

var clock = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// tick returns strictly increasing timestamps so created_at ordering is stable.
func tick() time.Time {
	clock = clock.Add(time.Second)
	return clock
}

func createUser(t *testing.T, repos *Repositories, name string, role domain.UserRole) *domain.User {
	t.Helper()
	u := &domain.User{
		Name:         name,
		Email:        fmt.Sprintf("%s@example.com", name),
		PasswordHash: "hash",
		Role:         role,
		Status:       domain.StatusActive,
		CreatedAt:    tick(),
	}
	require.NoError(t, repos.User.Create(context.Background(), u))
	return u
}

func createProperty(t *testing.T, repos *Repositories, seller *domain.User, mutate func(p *domain.Property)) *domain.Property {
	t.Helper()
	p := &domain.Property{
		Title:      "Listing",
		Price:      100000,
		Location:   "Austin",
		Type:       domain.TypeHouse,
		Status:     domain.SaleStatusForSale,
		Images:     domain.StringList{},
		SellerID:   seller.ID,
		IsApproved: true,
		CreatedAt:  tick(),
	}
	if mutate != nil {
		mutate(p)
	}
	require.NoError(t, repos.Property.Create(context.Background(), p))
	return p
}
