package announcement

import (
	"context"
	"strings"
	"time"

	"prime-property/internal/domain"
	"prime-property/internal/policy"
	"prime-property/internal/repository"
)

type Service interface {
	Create(ctx context.Context, actor domain.Actor, input domain.CreateAnnouncementInput) (*domain.Announcement, error)
	List(ctx context.Context) ([]domain.Announcement, error)
}

type service struct {
	announcementRepo repository.AnnouncementRepository
}

func NewService(announcementRepo repository.AnnouncementRepository) Service {
	return &service{announcementRepo: announcementRepo}
}

func (s *service) Create(ctx context.Context, actor domain.Actor, input domain.CreateAnnouncementInput) (*domain.Announcement, error) {
	if err := policy.Require(policy.IsAdmin(actor)); err != nil {
		return nil, err
	}

	a := &domain.Announcement{
		Title:     strings.TrimSpace(input.Title),
		Content:   strings.TrimSpace(input.Content),
		CreatedAt: time.Now().UTC(),
	}
	if a.Title == "" || a.Content == "" {
		return nil, domain.NewValidationError("", "title and content are required")
	}

	if err := s.announcementRepo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) List(ctx context.Context) ([]domain.Announcement, error) {
	return s.announcementRepo.List(ctx)
}
