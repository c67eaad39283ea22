package property

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"prime-property/internal/config"
	"prime-property/internal/domain"
	"prime-property/internal/pkg/cache"
	"prime-property/internal/policy"
	"prime-property/internal/repository"
	"prime-property/internal/service/email"
	"prime-property/internal/service/media"
)

type Service interface {
	Create(ctx context.Context, actor domain.Actor, input domain.CreatePropertyInput) (*domain.Property, error)
	Get(ctx context.Context, viewer *domain.Actor, id int64) (*domain.PropertyWithSeller, error)
	Search(ctx context.Context, filter domain.SearchFilter) ([]domain.Property, error)
	ListMine(ctx context.Context, actor domain.Actor) ([]domain.Property, error)
	Update(ctx context.Context, actor domain.Actor, id int64, input domain.UpdatePropertyInput) (*domain.Property, error)
	Delete(ctx context.Context, actor domain.Actor, id int64) error
	Promote(ctx context.Context, actor domain.Actor, id int64, method string) (*domain.Payment, error)
	UploadImage(ctx context.Context, actor domain.Actor, id int64, fileName string, fileSize int64, mimeType string, reader io.Reader) (*domain.Property, error)

	Approve(ctx context.Context, actor domain.Actor, id int64) (*domain.Property, error)
	Reject(ctx context.Context, actor domain.Actor, id int64) error
	SetFeatured(ctx context.Context, actor domain.Actor, id int64, featured bool) (*domain.Property, error)
	ListPending(ctx context.Context, actor domain.Actor) ([]domain.PropertyWithSeller, error)
	ListAll(ctx context.Context, actor domain.Actor) ([]domain.PropertyWithSeller, error)
}

type service struct {
	propertyRepo repository.PropertyRepository
	userRepo     repository.UserRepository
	emailService email.Service
	mediaService media.Service
	cache        *cache.Cache
	pricing      *config.Pricing
	remoderate   bool
}

func NewService(
	propertyRepo repository.PropertyRepository,
	userRepo repository.UserRepository,
	emailService email.Service,
	mediaService media.Service,
	statsCache *cache.Cache,
	pricing *config.Pricing,
	cfg *config.Config,
) Service {
	return &service{
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		emailService: emailService,
		mediaService: mediaService,
		cache:        statsCache,
		pricing:      pricing,
		remoderate:   cfg.RemoderateOnEdit,
	}
}

func (s *service) Create(ctx context.Context, actor domain.Actor, input domain.CreatePropertyInput) (*domain.Property, error) {
	p, err := domain.NewListing(actor, input, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := s.propertyRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, cache.StatsKey)
	return p, nil
}

func (s *service) Get(ctx context.Context, viewer *domain.Actor, id int64) (*domain.PropertyWithSeller, error) {
	p, err := s.propertyRepo.GetWithSeller(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil || !policy.CanView(viewer, &p.Property) {
		return nil, domain.ErrPropertyNotFound
	}
	return p, nil
}

func (s *service) Search(ctx context.Context, filter domain.SearchFilter) ([]domain.Property, error) {
	if !filter.Sort.IsValid() {
		return nil, domain.NewValidationError("sort", "must be one of newest, price_asc, price_desc")
	}
	if filter.Type != "" && !filter.Type.IsValid() {
		return nil, domain.NewValidationError("type", "must be one of house, land, apartment, office, commercial")
	}
	return s.propertyRepo.Search(ctx, filter)
}

func (s *service) ListMine(ctx context.Context, actor domain.Actor) ([]domain.Property, error) {
	return s.propertyRepo.ListBySeller(ctx, actor.ID)
}

// load fetches a listing and checks that actor may mutate it.
func (s *service) load(ctx context.Context, actor domain.Actor, id int64) (*domain.Property, error) {
	p, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrPropertyNotFound
	}
	if err := policy.Require(policy.IsOwnerOrAdmin(actor, p.SellerID)); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Update(ctx context.Context, actor domain.Actor, id int64, input domain.UpdatePropertyInput) (*domain.Property, error) {
	p, err := s.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if err := p.ApplyEdit(actor, input, s.remoderate); err != nil {
		return nil, err
	}

	reset := domain.EditResetsApproval(actor, s.remoderate)
	updated, err := s.propertyRepo.Update(ctx, p, actor, reset)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrPropertyNotFound
	}

	if reset {
		s.cache.Invalidate(ctx, cache.StatsKey)
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	p, err := s.load(ctx, actor, id)
	if err != nil {
		return err
	}

	ok, err := s.propertyRepo.Delete(ctx, p.ID, actor)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrPropertyNotFound
	}

	s.cache.Invalidate(ctx, cache.StatsKey)
	return nil
}

// Promote charges the configured fee and features the listing. Promoting an
// already featured listing charges again.
func (s *service) Promote(ctx context.Context, actor domain.Actor, id int64, method string) (*domain.Payment, error) {
	p, err := s.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	payment := p.Promote(actor, s.pricing.PromotionFee, method, time.Now().UTC())
	ok, err := s.propertyRepo.Promote(ctx, payment, actor)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}

	s.cache.Invalidate(ctx, cache.StatsKey)
	logrus.WithFields(logrus.Fields{
		"property_id": p.ID,
		"user_id":     actor.ID,
		"amount":      payment.Amount,
	}).Info("listing promoted")
	return payment, nil
}

func (s *service) UploadImage(ctx context.Context, actor domain.Actor, id int64, fileName string, fileSize int64, mimeType string, reader io.Reader) (*domain.Property, error) {
	p, err := s.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	url, err := s.mediaService.UploadPropertyImage(ctx, p.ID, fileName, fileSize, mimeType, reader)
	if err != nil {
		return nil, err
	}

	updated, err := s.propertyRepo.AppendImage(ctx, p.ID, url, actor)
	if err == nil && updated == nil {
		err = domain.ErrPropertyNotFound
	}
	if err != nil {
		if rmErr := s.mediaService.Remove(ctx, url); rmErr != nil {
			logrus.WithError(rmErr).WithField("url", url).Warn("failed to remove orphaned upload")
		}
		return nil, err
	}
	return updated, nil
}

// Approve is idempotent. The seller is notified only on the first approval.
func (s *service) Approve(ctx context.Context, actor domain.Actor, id int64) (*domain.Property, error) {
	if err := policy.Require(policy.IsAdmin(actor)); err != nil {
		return nil, err
	}

	p, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrPropertyNotFound
	}

	if p.IsApproved {
		return p, nil
	}

	ok, err := s.propertyRepo.Approve(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	p.Approve()

	s.cache.Invalidate(ctx, cache.StatsKey)
	s.notifyApproved(p)
	return p, nil
}

func (s *service) notifyApproved(p *domain.Property) {
	if !s.emailService.Enabled() {
		return
	}
	go func() {
		ctx := context.Background()
		seller, err := s.userRepo.GetByID(ctx, p.SellerID)
		if err != nil || seller == nil {
			return
		}
		if err := s.emailService.SendListingApprovedEmail(ctx, seller.Email, seller.Name, p.Title, p.ID); err != nil {
			logrus.WithError(err).WithField("property_id", p.ID).Warn("failed to send approval email")
		}
	}()
}

// Reject removes the listing outright.
func (s *service) Reject(ctx context.Context, actor domain.Actor, id int64) error {
	if err := policy.Require(policy.IsAdmin(actor)); err != nil {
		return err
	}

	ok, err := s.propertyRepo.Delete(ctx, id, actor)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrPropertyNotFound
	}

	s.cache.Invalidate(ctx, cache.StatsKey)
	return nil
}

func (s *service) SetFeatured(ctx context.Context, actor domain.Actor, id int64, featured bool) (*domain.Property, error) {
	if err := policy.Require(policy.IsAdmin(actor)); err != nil {
		return nil, err
	}

	ok, err := s.propertyRepo.SetFeatured(ctx, id, featured)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}

	return s.propertyRepo.GetByID(ctx, id)
}

func (s *service) ListPending(ctx context.Context, actor domain.Actor) ([]domain.PropertyWithSeller, error) {
	if err := policy.Require(policy.IsAdmin(actor)); err != nil {
		return nil, err
	}
	return s.propertyRepo.ListPending(ctx)
}

func (s *service) ListAll(ctx context.Context, actor domain.Actor) ([]domain.PropertyWithSeller, error) {
	if err := policy.Require(policy.IsAdmin(actor)); err != nil {
		return nil, err
	}
	return s.propertyRepo.ListAll(ctx)
}
