package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"prime-property/internal/config"
	"prime-property/internal/pkg/cache"
	"prime-property/internal/repository"
	"prime-property/internal/service/admin"
	"prime-property/internal/service/announcement"
	"prime-property/internal/service/auth"
	"prime-property/internal/service/email"
	"prime-property/internal/service/favorite"
	"prime-property/internal/service/media"
	"prime-property/internal/service/message"
	"prime-property/internal/service/payment"
	"prime-property/internal/service/property"
	"prime-property/internal/service/report"
)

type Services struct {
	Auth         auth.Service
	Property     property.Service
	Favorite     favorite.Service
	Message      message.Service
	Payment      payment.Service
	Report       report.Service
	Announcement announcement.Service
	Admin        admin.Service
	Email        email.Service
	Media        media.Service
}

// NewServices wires every service. redis and minioClient may be nil.
func NewServices(repos *repository.Repositories, redis *redis.Client, minioClient *minio.Client, pricing *config.Pricing, cfg *config.Config) *Services {
	statsCache := cache.New(redis)
	emailService := email.NewService(cfg)
	mediaService := media.NewService(minioClient, cfg)

	return &Services{
		Auth:         auth.NewService(repos.User, cfg),
		Property:     property.NewService(repos.Property, repos.User, emailService, mediaService, statsCache, pricing, cfg),
		Favorite:     favorite.NewService(repos.Favorite, repos.Property),
		Message:      message.NewService(repos.Message, repos.User, repos.Property, emailService),
		Payment:      payment.NewService(repos.Payment, pricing, statsCache),
		Report:       report.NewService(repos.Report, repos.Property, statsCache),
		Announcement: announcement.NewService(repos.Announcement),
		Admin:        admin.NewService(repos.User, repos.Stats, statsCache),
		Email:        emailService,
		Media:        mediaService,
	}
}
