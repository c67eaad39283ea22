package handler

import (
	"github.com/gofiber/fiber/v2"

	"prime-property/internal/domain"
	"prime-property/internal/middleware"
	"prime-property/internal/service/media"
	"prime-property/internal/service/property"
	"prime-property/internal/service/report"
)

type PropertyHandler struct {
	propertyService property.Service
	reportService   report.Service
}

func NewPropertyHandler(propertyService property.Service, reportService report.Service) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
		reportService:   reportService,
	}
}

func (h *PropertyHandler) Search(c *fiber.Ctx) error {
	filter, err := searchFilter(c)
	if err != nil {
		return err
	}

	properties, err := h.propertyService.Search(c.UserContext(), filter)
	if err != nil {
		return err
	}

	return c.JSON(properties)
}

func (h *PropertyHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	p, err := h.propertyService.Get(c.UserContext(), middleware.GetActor(c), id)
	if err != nil {
		return err
	}

	return c.JSON(p)
}

func (h *PropertyHandler) Create(c *fiber.Ctx) error {
	var input domain.CreatePropertyInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	p, err := h.propertyService.Create(c.UserContext(), middleware.MustActor(c), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *PropertyHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var input domain.UpdatePropertyInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	p, err := h.propertyService.Update(c.UserContext(), middleware.MustActor(c), id, input)
	if err != nil {
		return err
	}

	return c.JSON(p)
}

func (h *PropertyHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.propertyService.Delete(c.UserContext(), middleware.MustActor(c), id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Property deleted"})
}

func (h *PropertyHandler) ListMine(c *fiber.Ctx) error {
	properties, err := h.propertyService.ListMine(c.UserContext(), middleware.MustActor(c))
	if err != nil {
		return err
	}

	return c.JSON(properties)
}

func (h *PropertyHandler) Promote(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var input domain.PromoteInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return middleware.BadRequest("Invalid request body")
		}
	}

	payment, err := h.propertyService.Promote(c.UserContext(), middleware.MustActor(c), id, input.Method)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Property promoted",
		"payment": payment,
	})
}

func (h *PropertyHandler) UploadImage(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("File is required")
	}

	if file.Size > media.MaxImageSize {
		return middleware.BadRequest("File size must be less than 10MB")
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	src, err := file.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to read uploaded file")
	}
	defer src.Close()

	p, err := h.propertyService.UploadImage(c.UserContext(), middleware.MustActor(c), id, file.Filename, file.Size, mimeType, src)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *PropertyHandler) Report(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var input domain.CreateReportInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	r, err := h.reportService.Create(c.UserContext(), middleware.MustActor(c), id, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(r)
}
