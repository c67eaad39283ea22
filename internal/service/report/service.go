package report

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"prime-property/internal/domain"
	"prime-property/internal/pkg/cache"
	"prime-property/internal/policy"
	"prime-property/internal/repository"
)

type Service interface {
	Create(ctx context.Context, actor domain.Actor, propertyID int64, input domain.CreateReportInput) (*domain.Report, error)
	List(ctx context.Context, actor domain.Actor, includeResolved bool) ([]domain.ReportView, error)
	Dismiss(ctx context.Context, actor domain.Actor, id int64) error
	RemoveListing(ctx context.Context, actor domain.Actor, id int64) (*domain.Report, error)
}

type service struct {
	reportRepo   repository.ReportRepository
	propertyRepo repository.PropertyRepository
	cache        *cache.Cache
}

func NewService(reportRepo repository.ReportRepository, propertyRepo repository.PropertyRepository, statsCache *cache.Cache) Service {
	return &service{
		reportRepo:   reportRepo,
		propertyRepo: propertyRepo,
		cache:        statsCache,
	}
}

func (s *service) Create(ctx context.Context, actor domain.Actor, propertyID int64, input domain.CreateReportInput) (*domain.Report, error) {
	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		return nil, domain.NewValidationError("reason", "is required")
	}

	p, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if p == nil || !policy.CanView(&actor, p) {
		return nil, domain.ErrPropertyNotFound
	}

	r := &domain.Report{
		PropertyID: propertyID,
		UserID:     actor.ID,
		Reason:     reason,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.reportRepo.Create(ctx, r); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, cache.StatsKey)
	return r, nil
}

func (s *service) List(ctx context.Context, actor domain.Actor, includeResolved bool) ([]domain.ReportView, error) {
	if err := policy.Require(policy.IsAdmin(actor)); err != nil {
		return nil, err
	}
	return s.reportRepo.List(ctx, includeResolved)
}

// Dismiss resolves the report and leaves the listing untouched.
func (s *service) Dismiss(ctx context.Context, actor domain.Actor, id int64) error {
	if err := policy.Require(policy.IsAdmin(actor)); err != nil {
		return err
	}

	ok, err := s.reportRepo.Resolve(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrReportNotFound
	}

	s.cache.Invalidate(ctx, cache.StatsKey)
	return nil
}

func (s *service) RemoveListing(ctx context.Context, actor domain.Actor, id int64) (*domain.Report, error) {
	if err := policy.Require(policy.IsAdmin(actor)); err != nil {
		return nil, err
	}

	r, err := s.reportRepo.RemoveListing(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrReportNotFound
	}

	s.cache.Invalidate(ctx, cache.StatsKey)
	logrus.WithFields(logrus.Fields{
		"report_id":   r.ID,
		"property_id": r.PropertyID,
		"admin_id":    actor.ID,
	}).Info("reported listing removed")
	return r, nil
}
