package handler

import "prime-property/internal/service"

type Handlers struct {
	Auth         *AuthHandler
	Property     *PropertyHandler
	Favorite     *FavoriteHandler
	Message      *MessageHandler
	Payment      *PaymentHandler
	Announcement *AnnouncementHandler
	Admin        *AdminHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		Property:     NewPropertyHandler(services.Property, services.Report),
		Favorite:     NewFavoriteHandler(services.Favorite),
		Message:      NewMessageHandler(services.Message),
		Payment:      NewPaymentHandler(services.Payment),
		Announcement: NewAnnouncementHandler(services.Announcement),
		Admin:        NewAdminHandler(services.Admin, services.Property, services.Payment, services.Report, services.Announcement),
	}
}
