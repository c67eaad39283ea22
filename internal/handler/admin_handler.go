package handler

import (
	"github.com/gofiber/fiber/v2"

	"prime-property/internal/domain"
	"prime-property/internal/middleware"
	"prime-property/internal/service/admin"
	"prime-property/internal/service/announcement"
	"prime-property/internal/service/payment"
	"prime-property/internal/service/property"
	"prime-property/internal/service/report"
)

// AdminHandler serves /api/admin. Every route is mounted behind
// RequireRole(admin); the services check the role again.
type AdminHandler struct {
	adminService        admin.Service
	propertyService     property.Service
	paymentService      payment.Service
	reportService       report.Service
	announcementService announcement.Service
}

func NewAdminHandler(
	adminService admin.Service,
	propertyService property.Service,
	paymentService payment.Service,
	reportService report.Service,
	announcementService announcement.Service,
) *AdminHandler {
	return &AdminHandler{
		adminService:        adminService,
		propertyService:     propertyService,
		paymentService:      paymentService,
		reportService:       reportService,
		announcementService: announcementService,
	}
}

func (h *AdminHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.adminService.GetStats(c.UserContext(), middleware.MustActor(c))
	if err != nil {
		return err
	}

	return c.JSON(stats)
}

func (h *AdminHandler) ListPending(c *fiber.Ctx) error {
	properties, err := h.propertyService.ListPending(c.UserContext(), middleware.MustActor(c))
	if err != nil {
		return err
	}

	return c.JSON(properties)
}

func (h *AdminHandler) ListProperties(c *fiber.Ctx) error {
	properties, err := h.propertyService.ListAll(c.UserContext(), middleware.MustActor(c))
	if err != nil {
		return err
	}

	return c.JSON(properties)
}

func (h *AdminHandler) Approve(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	p, err := h.propertyService.Approve(c.UserContext(), middleware.MustActor(c), id)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message":  "Property approved",
		"property": p,
	})
}

func (h *AdminHandler) Reject(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.propertyService.Reject(c.UserContext(), middleware.MustActor(c), id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Property rejected and removed"})
}

func (h *AdminHandler) SetFeatured(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var input struct {
		IsFeatured *bool `json:"is_featured"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.IsFeatured == nil {
		return domain.NewValidationError("is_featured", "is required")
	}

	p, err := h.propertyService.SetFeatured(c.UserContext(), middleware.MustActor(c), id, *input.IsFeatured)
	if err != nil {
		return err
	}

	return c.JSON(p)
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.adminService.ListUsers(c.UserContext(), middleware.MustActor(c))
	if err != nil {
		return err
	}

	return c.JSON(users)
}

func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var input domain.AdminUpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	user, err := h.adminService.UpdateUser(c.UserContext(), middleware.MustActor(c), id, input)
	if err != nil {
		return err
	}

	return c.JSON(user)
}

func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.adminService.DeleteUser(c.UserContext(), middleware.MustActor(c), id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "User deleted"})
}

func (h *AdminHandler) ListPayments(c *fiber.Ctx) error {
	payments, err := h.paymentService.ListAll(c.UserContext(), middleware.MustActor(c))
	if err != nil {
		return err
	}

	return c.JSON(payments)
}

func (h *AdminHandler) ListReports(c *fiber.Ctx) error {
	reports, err := h.reportService.List(c.UserContext(), middleware.MustActor(c), c.QueryBool("all", false))
	if err != nil {
		return err
	}

	return c.JSON(reports)
}

func (h *AdminHandler) DismissReport(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.reportService.Dismiss(c.UserContext(), middleware.MustActor(c), id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Report dismissed"})
}

func (h *AdminHandler) RemoveReportedListing(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	r, err := h.reportService.RemoveListing(c.UserContext(), middleware.MustActor(c), id)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Listing removed",
		"report":  r,
	})
}

func (h *AdminHandler) CreateAnnouncement(c *fiber.Ctx) error {
	var input domain.CreateAnnouncementInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	a, err := h.announcementService.Create(c.UserContext(), middleware.MustActor(c), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(a)
}
