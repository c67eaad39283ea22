package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"prime-property/internal/domain"
)

type PropertyRepository struct {
	mock.Mock
}

func (m *PropertyRepository) Create(ctx context.Context, property *domain.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

func (m *PropertyRepository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *PropertyRepository) GetWithSeller(ctx context.Context, id int64) (*domain.PropertyWithSeller, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PropertyWithSeller), args.Error(1)
}

func (m *PropertyRepository) Search(ctx context.Context, filter domain.SearchFilter) ([]domain.Property, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Property), args.Error(1)
}

func (m *PropertyRepository) ListBySeller(ctx context.Context, sellerID int64) ([]domain.Property, error) {
	args := m.Called(ctx, sellerID)
	return args.Get(0).([]domain.Property), args.Error(1)
}

func (m *PropertyRepository) ListPending(ctx context.Context) ([]domain.PropertyWithSeller, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.PropertyWithSeller), args.Error(1)
}

func (m *PropertyRepository) ListAll(ctx context.Context) ([]domain.PropertyWithSeller, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.PropertyWithSeller), args.Error(1)
}

func (m *PropertyRepository) Update(ctx context.Context, property *domain.Property, actor domain.Actor, resetApproval bool) (*domain.Property, error) {
	args := m.Called(ctx, property, actor, resetApproval)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *PropertyRepository) Delete(ctx context.Context, id int64, actor domain.Actor) (bool, error) {
	args := m.Called(ctx, id, actor)
	return args.Bool(0), args.Error(1)
}

func (m *PropertyRepository) Approve(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *PropertyRepository) SetFeatured(ctx context.Context, id int64, featured bool) (bool, error) {
	args := m.Called(ctx, id, featured)
	return args.Bool(0), args.Error(1)
}

func (m *PropertyRepository) Promote(ctx context.Context, payment *domain.Payment, actor domain.Actor) (bool, error) {
	args := m.Called(ctx, payment, actor)
	return args.Bool(0), args.Error(1)
}

func (m *PropertyRepository) AppendImage(ctx context.Context, id int64, url string, actor domain.Actor) (*domain.Property, error) {
	args := m.Called(ctx, id, url, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}
