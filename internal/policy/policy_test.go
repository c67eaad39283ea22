package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"prime-property/internal/domain"
)

func TestIsOwnerOrAdmin(t *testing.T) {
	tests := []struct {
		name    string
		actor   domain.Actor
		ownerID int64
		want    bool
	}{
		{"owner", domain.Actor{ID: 7, Role: domain.RoleSeller}, 7, true},
		{"admin on foreign listing", domain.Actor{ID: 1, Role: domain.RoleAdmin}, 7, true},
		{"seller on foreign listing", domain.Actor{ID: 8, Role: domain.RoleSeller}, 7, false},
		{"buyer on foreign listing", domain.Actor{ID: 9, Role: domain.RoleBuyer}, 7, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOwnerOrAdmin(tt.actor, tt.ownerID))
		})
	}
}

func TestIsActive(t *testing.T) {
	assert.True(t, IsActive(&domain.User{Status: domain.StatusActive}))
	assert.False(t, IsActive(&domain.User{Status: domain.StatusBlocked}))
	assert.False(t, IsActive(nil))
}

func TestRequire(t *testing.T) {
	assert.NoError(t, Require(true))
	assert.ErrorIs(t, Require(false), domain.ErrForbidden)
}

func TestCanView(t *testing.T) {
	pending := &domain.Property{SellerID: 7}
	approved := &domain.Property{SellerID: 7, IsApproved: true}
	owner := &domain.Actor{ID: 7, Role: domain.RoleSeller}
	stranger := &domain.Actor{ID: 8, Role: domain.RoleBuyer}
	admin := &domain.Actor{ID: 1, Role: domain.RoleAdmin}

	assert.True(t, CanView(nil, approved))
	assert.False(t, CanView(nil, pending))
	assert.False(t, CanView(stranger, pending))
	assert.True(t, CanView(owner, pending))
	assert.True(t, CanView(admin, pending))
}
