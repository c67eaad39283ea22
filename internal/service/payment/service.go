package payment

import (
	"context"
	"strings"
	"time"

	"prime-property/internal/config"
	"prime-property/internal/domain"
	"prime-property/internal/pkg/cache"
	"prime-property/internal/policy"
	"prime-property/internal/repository"
)

type Service interface {
	Subscribe(ctx context.Context, actor domain.Actor, input domain.SubscribeInput) (*domain.Payment, error)
	ListMine(ctx context.Context, actor domain.Actor) ([]domain.Payment, error)
	ListAll(ctx context.Context, actor domain.Actor) ([]domain.PaymentView, error)
}

type service struct {
	paymentRepo repository.PaymentRepository
	pricing     *config.Pricing
	cache       *cache.Cache
}

func NewService(paymentRepo repository.PaymentRepository, pricing *config.Pricing, statsCache *cache.Cache) Service {
	return &service{
		paymentRepo: paymentRepo,
		pricing:     pricing,
		cache:       statsCache,
	}
}

// Subscribe records a simulated, always successful subscription charge.
func (s *service) Subscribe(ctx context.Context, actor domain.Actor, input domain.SubscribeInput) (*domain.Payment, error) {
	plan := strings.ToLower(strings.TrimSpace(input.Plan))
	price, ok := s.pricing.PlanPrice(plan)
	if !ok {
		return nil, domain.NewValidationError("plan", "is not a known subscription plan")
	}

	method := input.Method
	if method == "" {
		method = domain.DefaultPaymentMethod
	}

	p := &domain.Payment{
		UserID:    actor.ID,
		Amount:    price,
		Type:      domain.PaymentSubscription,
		Status:    domain.PaymentCompleted,
		Method:    method,
		Plan:      plan,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.paymentRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, cache.StatsKey)
	return p, nil
}

func (s *service) ListMine(ctx context.Context, actor domain.Actor) ([]domain.Payment, error) {
	return s.paymentRepo.ListByUser(ctx, actor.ID)
}

func (s *service) ListAll(ctx context.Context, actor domain.Actor) ([]domain.PaymentView, error) {
	if err := policy.Require(policy.IsAdmin(actor)); err != nil {
		return nil, err
	}
	return s.paymentRepo.ListAll(ctx)
}
