package message

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"prime-property/internal/domain"
	"prime-property/internal/repository"
	"prime-property/internal/service/email"
)

type Service interface {
	Send(ctx context.Context, actor domain.Actor, input domain.SendMessageInput) (*domain.Message, error)
	Reply(ctx context.Context, actor domain.Actor, originalID int64, input domain.ReplyInput) (*domain.Message, error)
	List(ctx context.Context, actor domain.Actor) ([]domain.MessageView, error)
}

type service struct {
	messageRepo  repository.MessageRepository
	userRepo     repository.UserRepository
	propertyRepo repository.PropertyRepository
	emailService email.Service
}

func NewService(messageRepo repository.MessageRepository, userRepo repository.UserRepository, propertyRepo repository.PropertyRepository, emailService email.Service) Service {
	return &service{
		messageRepo:  messageRepo,
		userRepo:     userRepo,
		propertyRepo: propertyRepo,
		emailService: emailService,
	}
}

// Send does not check that the receiver or property exist.
func (s *service) Send(ctx context.Context, actor domain.Actor, input domain.SendMessageInput) (*domain.Message, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, domain.NewValidationError("content", "is required")
	}
	if input.ReceiverID == 0 {
		return nil, domain.NewValidationError("receiver_id", "is required")
	}

	m := &domain.Message{
		SenderID:   actor.ID,
		ReceiverID: input.ReceiverID,
		PropertyID: input.PropertyID,
		Content:    content,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.messageRepo.Create(ctx, m); err != nil {
		return nil, err
	}

	s.notify(m)
	return m, nil
}

// Reply answers the other participant of the original message about the same
// property.
func (s *service) Reply(ctx context.Context, actor domain.Actor, originalID int64, input domain.ReplyInput) (*domain.Message, error) {
	original, err := s.messageRepo.GetByID(ctx, originalID)
	if err != nil {
		return nil, err
	}
	if original == nil {
		return nil, domain.ErrMessageNotFound
	}
	if !original.IsParticipant(actor.ID) {
		return nil, domain.ErrForbidden
	}

	return s.Send(ctx, actor, domain.SendMessageInput{
		ReceiverID: original.Counterpart(actor.ID),
		PropertyID: original.PropertyID,
		Content:    input.Content,
	})
}

func (s *service) List(ctx context.Context, actor domain.Actor) ([]domain.MessageView, error) {
	return s.messageRepo.ListForUser(ctx, actor.ID)
}

func (s *service) notify(m *domain.Message) {
	if !s.emailService.Enabled() {
		return
	}

	go func() {
		ctx := context.Background()
		receiver, err := s.userRepo.GetByID(ctx, m.ReceiverID)
		if err != nil || receiver == nil {
			return
		}
		senderName := "A user"
		if sender, err := s.userRepo.GetByID(ctx, m.SenderID); err == nil && sender != nil {
			senderName = sender.Name
		}
		propertyTitle := "a listing"
		if p, err := s.propertyRepo.GetByID(ctx, m.PropertyID); err == nil && p != nil {
			propertyTitle = p.Title
		}

		err = s.emailService.SendNewMessageEmail(ctx, receiver.Email, receiver.Name, senderName, propertyTitle, m.Content)
		if err != nil {
			logrus.WithError(err).WithField("message_id", m.ID).Warn("failed to send message notification")
		}
	}()
}
