package favorite

import (
	"context"

	"prime-property/internal/domain"
	"prime-property/internal/policy"
	"prime-property/internal/repository"
)

type Service interface {
	Add(ctx context.Context, actor domain.Actor, propertyID int64) error
	Remove(ctx context.Context, actor domain.Actor, propertyID int64) error
	List(ctx context.Context, actor domain.Actor) ([]domain.Property, error)
}

type service struct {
	favoriteRepo repository.FavoriteRepository
	propertyRepo repository.PropertyRepository
}

func NewService(favoriteRepo repository.FavoriteRepository, propertyRepo repository.PropertyRepository) Service {
	return &service{
		favoriteRepo: favoriteRepo,
		propertyRepo: propertyRepo,
	}
}

// Add fails with domain.ErrAlreadyFavorited when the pair already exists.
// Listings the actor may not view are reported as missing.
func (s *service) Add(ctx context.Context, actor domain.Actor, propertyID int64) error {
	p, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return err
	}
	if p == nil || !policy.CanView(&actor, p) {
		return domain.ErrPropertyNotFound
	}
	return s.favoriteRepo.Add(ctx, actor.ID, propertyID)
}

func (s *service) Remove(ctx context.Context, actor domain.Actor, propertyID int64) error {
	return s.favoriteRepo.Remove(ctx, actor.ID, propertyID)
}

func (s *service) List(ctx context.Context, actor domain.Actor) ([]domain.Property, error) {
	return s.favoriteRepo.ListProperties(ctx, actor.ID)
}
