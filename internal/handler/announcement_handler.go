package handler

import (
	"github.com/gofiber/fiber/v2"

	"prime-property/internal/service/announcement"
)

type AnnouncementHandler struct {
	announcementService announcement.Service
}

func NewAnnouncementHandler(announcementService announcement.Service) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService}
}

func (h *AnnouncementHandler) List(c *fiber.Ctx) error {
	announcements, err := h.announcementService.List(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(announcements)
}
