package announcement

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"prime-property/internal/domain"
	"prime-property/internal/repository/mocks"
)

func TestCreate(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.AnnouncementRepository)
	svc := NewService(repo)
	admin := domain.Actor{ID: 1, Role: domain.RoleAdmin}

	repo.On("Create", ctx, mock.AnythingOfType("*domain.Announcement")).Return(nil).Once()

	_, err := svc.Create(ctx, admin, domain.CreateAnnouncementInput{Title: "Maintenance", Content: "Sunday 2am"})
	assert.NoError(t, err)

	_, err = svc.Create(ctx, admin, domain.CreateAnnouncementInput{Title: "Empty"})
	assert.True(t, domain.IsValidationError(err))

	_, err = svc.Create(ctx, domain.Actor{ID: 2, Role: domain.RoleSeller}, domain.CreateAnnouncementInput{Title: "x", Content: "y"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	repo.AssertExpectations(t)
}
