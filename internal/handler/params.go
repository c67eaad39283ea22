package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"prime-property/internal/domain"
	"prime-property/internal/middleware"
)

func parseID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, middleware.BadRequest("Invalid " + name)
	}
	return id, nil
}

func parseOptionalFloat(c *fiber.Ctx, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, middleware.BadRequest("Invalid " + name)
	}
	return &v, nil
}

// searchFilter reads the public search query. Unknown sort and type values
// are left for the service to reject.
func searchFilter(c *fiber.Ctx) (domain.SearchFilter, error) {
	filter := domain.SearchFilter{
		Location:     c.Query("location"),
		Type:         domain.PropertyType(c.Query("type")),
		Sort:         domain.SortOrder(c.Query("sort")),
		FeaturedOnly: c.QueryBool("featured", false),
	}

	var err error
	if filter.MinPrice, err = parseOptionalFloat(c, "minPrice"); err != nil {
		return filter, err
	}
	if filter.MaxPrice, err = parseOptionalFloat(c, "maxPrice"); err != nil {
		return filter, err
	}
	return filter, nil
}
