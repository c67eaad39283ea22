package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type EmailService struct {
	mock.Mock
}

func (m *EmailService) SendNewMessageEmail(ctx context.Context, toEmail, recipientName, senderName, propertyTitle, content string) error {
	args := m.Called(ctx, toEmail, recipientName, senderName, propertyTitle, content)
	return args.Error(0)
}

func (m *EmailService) SendListingApprovedEmail(ctx context.Context, toEmail, sellerName, propertyTitle string, propertyID int64) error {
	args := m.Called(ctx, toEmail, sellerName, propertyTitle, propertyID)
	return args.Error(0)
}

func (m *EmailService) Enabled() bool {
	args := m.Called()
	return args.Bool(0)
}
