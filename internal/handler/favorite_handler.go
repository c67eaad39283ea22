package handler

import (
	"github.com/gofiber/fiber/v2"

	"prime-property/internal/middleware"
	"prime-property/internal/service/favorite"
)

type FavoriteHandler struct {
	favoriteService favorite.Service
}

func NewFavoriteHandler(favoriteService favorite.Service) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

func (h *FavoriteHandler) List(c *fiber.Ctx) error {
	properties, err := h.favoriteService.List(c.UserContext(), middleware.MustActor(c))
	if err != nil {
		return err
	}

	return c.JSON(properties)
}

func (h *FavoriteHandler) Add(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.favoriteService.Add(c.UserContext(), middleware.MustActor(c), id); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Added to favorites"})
}

func (h *FavoriteHandler) Remove(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.favoriteService.Remove(c.UserContext(), middleware.MustActor(c), id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Removed from favorites"})
}
