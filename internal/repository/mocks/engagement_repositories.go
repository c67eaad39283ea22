package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"prime-property/internal/domain"
)

type FavoriteRepository struct {
	mock.Mock
}

func (m *FavoriteRepository) Add(ctx context.Context, userID, propertyID int64) error {
	args := m.Called(ctx, userID, propertyID)
	return args.Error(0)
}

func (m *FavoriteRepository) Remove(ctx context.Context, userID, propertyID int64) error {
	args := m.Called(ctx, userID, propertyID)
	return args.Error(0)
}

func (m *FavoriteRepository) ListProperties(ctx context.Context, userID int64) ([]domain.Property, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Property), args.Error(1)
}

type MessageRepository struct {
	mock.Mock
}

func (m *MessageRepository) Create(ctx context.Context, message *domain.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MessageRepository) GetByID(ctx context.Context, id int64) (*domain.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Message), args.Error(1)
}

func (m *MessageRepository) ListForUser(ctx context.Context, userID int64) ([]domain.MessageView, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.MessageView), args.Error(1)
}

type PaymentRepository struct {
	mock.Mock
}

func (m *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *PaymentRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *PaymentRepository) ListAll(ctx context.Context) ([]domain.PaymentView, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.PaymentView), args.Error(1)
}

func (m *PaymentRepository) CountByProperty(ctx context.Context, propertyID int64) (int64, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).(int64), args.Error(1)
}

type ReportRepository struct {
	mock.Mock
}

func (m *ReportRepository) Create(ctx context.Context, report *domain.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *ReportRepository) GetByID(ctx context.Context, id int64) (*domain.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func (m *ReportRepository) List(ctx context.Context, includeResolved bool) ([]domain.ReportView, error) {
	args := m.Called(ctx, includeResolved)
	return args.Get(0).([]domain.ReportView), args.Error(1)
}

func (m *ReportRepository) Resolve(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *ReportRepository) RemoveListing(ctx context.Context, reportID int64) (*domain.Report, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

type AnnouncementRepository struct {
	mock.Mock
}

func (m *AnnouncementRepository) Create(ctx context.Context, announcement *domain.Announcement) error {
	args := m.Called(ctx, announcement)
	return args.Error(0)
}

func (m *AnnouncementRepository) List(ctx context.Context) ([]domain.Announcement, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Announcement), args.Error(1)
}

type StatsRepository struct {
	mock.Mock
}

func (m *StatsRepository) Get(ctx context.Context) (*domain.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stats), args.Error(1)
}
