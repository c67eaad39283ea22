package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prime-property/internal/domain"
)

func titles(properties []domain.Property) []string {
	out := make([]string, 0, len(properties))
	for _, p := range properties {
		out = append(out, p.Title)
	}
	return out
}

func TestSearchNeverReturnsUnapproved(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(newTestDB(t))
	seller := createUser(t, repos, "seller", domain.RoleSeller)

	createProperty(t, repos, seller, func(p *domain.Property) { p.Title = "approved" })
	createProperty(t, repos, seller, func(p *domain.Property) {
		p.Title = "hidden"
		p.IsApproved = false
		p.IsFeatured = true
	})

	lo := 0.0
	hi := 1e9
	filters := []domain.SearchFilter{
		{},
		{Location: "austin"},
		{Type: domain.TypeHouse},
		{MinPrice: &lo, MaxPrice: &hi},
		{FeaturedOnly: true},
		{Sort: domain.SortNewest},
	}
	for _, f := range filters {
		got, err := repos.Property.Search(ctx, f)
		require.NoError(t, err)
		assert.NotContains(t, titles(got), "hidden", "filter %+v", f)
	}
}

func TestSearchFiltersAndSort(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(newTestDB(t))
	seller := createUser(t, repos, "seller", domain.RoleSeller)

	createProperty(t, repos, seller, func(p *domain.Property) {
		p.Title = "downtown"
		p.Price = 500000
		p.Location = "Austin, TX"
	})
	createProperty(t, repos, seller, func(p *domain.Property) {
		p.Title = "suburb"
		p.Price = 300000
		p.Location = "North AUSTIN"
	})
	createProperty(t, repos, seller, func(p *domain.Property) {
		p.Title = "plot"
		p.Price = 50000
		p.Location = "Dallas"
		p.Type = domain.TypeLand
		p.IsFeatured = true
	})

	got, err := repos.Property.Search(ctx, domain.SearchFilter{Location: "austin", Sort: domain.SortPriceAsc})
	require.NoError(t, err)
	assert.Equal(t, []string{"suburb", "downtown"}, titles(got))

	got, err = repos.Property.Search(ctx, domain.SearchFilter{Sort: domain.SortPriceDesc})
	require.NoError(t, err)
	assert.Equal(t, []string{"downtown", "suburb", "plot"}, titles(got))

	got, err = repos.Property.Search(ctx, domain.SearchFilter{Sort: domain.SortNewest})
	require.NoError(t, err)
	assert.Equal(t, []string{"plot", "suburb", "downtown"}, titles(got))

	got, err = repos.Property.Search(ctx, domain.SearchFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"downtown", "suburb", "plot"}, titles(got))

	got, err = repos.Property.Search(ctx, domain.SearchFilter{Type: domain.TypeLand})
	require.NoError(t, err)
	assert.Equal(t, []string{"plot"}, titles(got))

	got, err = repos.Property.Search(ctx, domain.SearchFilter{FeaturedOnly: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"plot"}, titles(got))

	lo := 100000.0
	hi := 400000.0
	got, err = repos.Property.Search(ctx, domain.SearchFilter{MinPrice: &lo, MaxPrice: &hi})
	require.NoError(t, err)
	assert.Equal(t, []string{"suburb"}, titles(got))
}

func TestPropertyRoundTripsDetails(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(newTestDB(t))
	seller := createUser(t, repos, "seller", domain.RoleSeller)

	p := createProperty(t, repos, seller, func(p *domain.Property) {
		p.Images = domain.StringList{"a.jpg", "b.jpg"}
		p.Details = domain.PropertyDetails{Residential: &domain.ResidentialDetails{Bedrooms: 4, HasGarden: true}}
		p.PhoneContact = "+1 555 0100"
	})

	got, err := repos.Property.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.StringList{"a.jpg", "b.jpg"}, got.Images)
	require.NotNil(t, got.Details.Residential)
	assert.Equal(t, 4, got.Details.Residential.Bedrooms)
	assert.True(t, got.Details.Residential.HasGarden)
	assert.Equal(t, "+1 555 0100", got.PhoneContact)
	assert.True(t, got.IsApproved)
	assert.Equal(t, p.CreatedAt.Unix(), got.CreatedAt.Unix())

	missing, err := repos.Property.GetByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUpdateRequiresOwnership(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(newTestDB(t))
	owner := createUser(t, repos, "owner", domain.RoleSeller)
	other := createUser(t, repos, "other", domain.RoleSeller)
	admin := createUser(t, repos, "admin", domain.RoleAdmin)

	p := createProperty(t, repos, owner, func(p *domain.Property) { p.Title = "original" })

	edited := *p
	edited.Title = "hijacked"
	updated, err := repos.Property.Update(ctx, &edited, other.Actor(), false)
	require.NoError(t, err)
	assert.Nil(t, updated)

	stored, err := repos.Property.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", stored.Title)

	edited.Title = "by owner"
	updated, err = repos.Property.Update(ctx, &edited, owner.Actor(), false)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "by owner", updated.Title)

	edited.Title = "by admin"
	updated, err = repos.Property.Update(ctx, &edited, admin.Actor(), false)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "by admin", updated.Title)

	ok, err := repos.Property.Delete(ctx, p.ID, other.Actor())
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repos.Property.Delete(ctx, p.ID, owner.Actor())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUpdateKeepsConcurrentApproval(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(newTestDB(t))
	owner := createUser(t, repos, "owner", domain.RoleSeller)
	p := createProperty(t, repos, owner, func(p *domain.Property) { p.IsApproved = false })

	stale, err := repos.Property.GetByID(ctx, p.ID)
	require.NoError(t, err)

	ok, err := repos.Property.Approve(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, ok)

	stale.Title = "edited"
	updated, err := repos.Property.Update(ctx, stale, owner.Actor(), false)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "edited", updated.Title)
	assert.True(t, updated.IsApproved)

	stored, err := repos.Property.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsApproved)

	updated, err = repos.Property.Update(ctx, stale, owner.Actor(), true)
	require.NoError(t, err)
	assert.False(t, updated.IsApproved)
}

func TestPromoteTwiceWritesTwoPayments(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(newTestDB(t))
	owner := createUser(t, repos, "owner", domain.RoleSeller)
	p := createProperty(t, repos, owner, nil)

	for i := 0; i < 2; i++ {
		payment := p.Promote(owner.Actor(), 49.99, "", tick())
		ok, err := repos.Property.Promote(ctx, payment, owner.Actor())
		require.NoError(t, err)
		assert.True(t, ok)
		assert.NotZero(t, payment.ID)
	}

	count, err := repos.Payment.CountByProperty(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	stored, err := repos.Property.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsFeatured)
}

func TestPromoteByStrangerWritesNothing(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(newTestDB(t))
	owner := createUser(t, repos, "owner", domain.RoleSeller)
	other := createUser(t, repos, "other", domain.RoleBuyer)
	p := createProperty(t, repos, owner, nil)

	ok, err := repos.Property.Promote(ctx, p.Promote(other.Actor(), 49.99, "", tick()), other.Actor())
	require.NoError(t, err)
	assert.False(t, ok)

	count, err := repos.Payment.CountByProperty(ctx, p.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAppendImage(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(newTestDB(t))
	owner := createUser(t, repos, "owner", domain.RoleSeller)
	other := createUser(t, repos, "other", domain.RoleSeller)
	p := createProperty(t, repos, owner, func(p *domain.Property) { p.Images = domain.StringList{"first.jpg"} })

	updated, err := repos.Property.AppendImage(ctx, p.ID, "second.jpg", owner.Actor())
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, domain.StringList{"first.jpg", "second.jpg"}, updated.Images)

	denied, err := repos.Property.AppendImage(ctx, p.ID, "third.jpg", other.Actor())
	require.NoError(t, err)
	assert.Nil(t, denied)
}

func TestApproveAndPendingQueue(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(newTestDB(t))
	seller := createUser(t, repos, "seller", domain.RoleSeller)
	p := createProperty(t, repos, seller, func(p *domain.Property) { p.IsApproved = false })

	pending, err := repos.Property.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "seller", *pending[0].SellerName)

	for i := 0; i < 2; i++ {
		ok, err := repos.Property.Approve(ctx, p.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	pending, err = repos.Property.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	ok, err := repos.Property.Approve(ctx, 9999)
	require.NoError(t, err)
	assert.False(t, ok)
}
