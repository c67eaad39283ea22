package admin

import (
	"context"

	"github.com/sirupsen/logrus"

	"prime-property/internal/domain"
	"prime-property/internal/pkg/cache"
	"prime-property/internal/policy"
	"prime-property/internal/repository"
)

type Service interface {
	GetStats(ctx context.Context, actor domain.Actor) (*domain.Stats, error)
	ListUsers(ctx context.Context, actor domain.Actor) ([]domain.UserWithListings, error)
	UpdateUser(ctx context.Context, actor domain.Actor, userID int64, input domain.AdminUpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, actor domain.Actor, userID int64) error
}

type service struct {
	userRepo  repository.UserRepository
	statsRepo repository.StatsRepository
	cache     *cache.Cache
}

func NewService(userRepo repository.UserRepository, statsRepo repository.StatsRepository, statsCache *cache.Cache) Service {
	return &service{
		userRepo:  userRepo,
		statsRepo: statsRepo,
		cache:     statsCache,
	}
}

func (s *service) GetStats(ctx context.Context, actor domain.Actor) (*domain.Stats, error) {
	if err := policy.Require(policy.IsAdmin(actor)); err != nil {
		return nil, err
	}

	var cached domain.Stats
	if s.cache.GetJSON(ctx, cache.StatsKey, &cached) {
		return &cached, nil
	}

	stats, err := s.statsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, cache.StatsKey, stats, cache.StatsTTL)
	return stats, nil
}

func (s *service) ListUsers(ctx context.Context, actor domain.Actor) ([]domain.UserWithListings, error) {
	if err := policy.Require(policy.IsAdmin(actor)); err != nil {
		return nil, err
	}
	return s.userRepo.ListWithListingCount(ctx)
}

// UpdateUser sets role and status together. An admin may not demote or block
// their own account.
func (s *service) UpdateUser(ctx context.Context, actor domain.Actor, userID int64, input domain.AdminUpdateUserInput) (*domain.User, error) {
	if err := policy.Require(policy.IsAdmin(actor)); err != nil {
		return nil, err
	}
	if !input.Role.IsValid() {
		return nil, domain.NewValidationError("role", "must be one of buyer, seller, admin")
	}
	if !input.Status.IsValid() {
		return nil, domain.NewValidationError("status", "must be active or blocked")
	}
	if userID == actor.ID && (input.Role != domain.RoleAdmin || input.Status != domain.StatusActive) {
		return nil, domain.NewValidationError("", "you cannot demote or block your own account")
	}

	ok, err := s.userRepo.UpdateRoleStatus(ctx, userID, input.Role, input.Status)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  userID,
		"role":     input.Role,
		"status":   input.Status,
		"admin_id": actor.ID,
	}).Info("user updated by admin")

	return s.userRepo.GetByID(ctx, userID)
}

// DeleteUser removes the account row only; the user's listings, messages and
// payments stay behind with a dangling user id.
func (s *service) DeleteUser(ctx context.Context, actor domain.Actor, userID int64) error {
	if err := policy.Require(policy.IsAdmin(actor)); err != nil {
		return err
	}
	if userID == actor.ID {
		return domain.NewValidationError("", "you cannot delete your own account")
	}

	ok, err := s.userRepo.Delete(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUserNotFound
	}

	s.cache.Invalidate(ctx, cache.StatsKey)
	return nil
}
