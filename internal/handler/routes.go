package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"prime-property/internal/config"
	"prime-property/internal/domain"
	"prime-property/internal/middleware"
	"prime-property/internal/service"
)

// NewApp builds the fiber application with the full middleware chain and
// every route mounted.
func NewApp(cfg *config.Config, services *service.Services) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Prime Property API",
		ErrorHandler: middleware.ErrorHandler,
		BodyLimit:    12 * 1024 * 1024,
	})

	app.Use(middleware.RequestLogger())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))
	app.Use(middleware.Metrics())

	SetupRoutes(app, NewHandlers(services), services.Auth)
	return app
}

func SetupRoutes(app *fiber.App, h *Handlers, authn middleware.Authenticator) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", middleware.MetricsHandler())

	authRequired := middleware.AuthRequired(authn)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Get("/profile", authRequired, h.Auth.GetProfile)
	auth.Put("/profile", authRequired, h.Auth.UpdateProfile)
	auth.Put("/password", authRequired, h.Auth.ChangePassword)

	properties := api.Group("/properties")
	properties.Get("/", h.Property.Search)
	properties.Post("/", authRequired, h.Property.Create)
	properties.Get("/:id", middleware.OptionalAuth(authn), h.Property.Get)
	properties.Put("/:id", authRequired, h.Property.Update)
	properties.Delete("/:id", authRequired, h.Property.Delete)
	properties.Post("/:id/promote", authRequired, h.Property.Promote)
	properties.Post("/:id/images", authRequired, h.Property.UploadImage)
	properties.Post("/:id/report", authRequired, h.Property.Report)

	api.Get("/announcements", h.Announcement.List)

	protected := api.Group("", authRequired)

	protected.Get("/my/properties", h.Property.ListMine)

	favorites := protected.Group("/favorites")
	favorites.Get("/", h.Favorite.List)
	favorites.Post("/:id", h.Favorite.Add)
	favorites.Delete("/:id", h.Favorite.Remove)

	messages := protected.Group("/messages")
	messages.Get("/", h.Message.List)
	messages.Post("/", h.Message.Send)
	messages.Post("/:id/reply", h.Message.Reply)

	payments := protected.Group("/payments")
	payments.Get("/", h.Payment.ListMine)
	payments.Post("/subscribe", h.Payment.Subscribe)

	admin := protected.Group("/admin", middleware.RequireRole(domain.RoleAdmin))
	admin.Get("/stats", h.Admin.GetStats)
	admin.Get("/pending", h.Admin.ListPending)
	admin.Post("/approve/:id", h.Admin.Approve)
	admin.Post("/reject/:id", h.Admin.Reject)
	admin.Get("/properties", h.Admin.ListProperties)
	admin.Put("/properties/:id/feature", h.Admin.SetFeatured)
	admin.Get("/users", h.Admin.ListUsers)
	admin.Put("/users/:id", h.Admin.UpdateUser)
	admin.Delete("/users/:id", h.Admin.DeleteUser)
	admin.Get("/payments", h.Admin.ListPayments)
	admin.Get("/reports", h.Admin.ListReports)
	admin.Post("/reports/:id/dismiss", h.Admin.DismissReport)
	admin.Post("/reports/:id/remove-listing", h.Admin.RemoveReportedListing)
	admin.Post("/announcements", h.Admin.CreateAnnouncement)
}
