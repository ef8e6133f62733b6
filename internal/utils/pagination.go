package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Pagination holds optional pagination parameters. A Limit of 0 means
// unbounded, so list endpoints return everything unless the caller asks
// for a page.
type Pagination struct {
	Page   int
	Limit  int
	Offset int
}

// ParsePagination reads page and limit query params. Both are optional.
func ParsePagination(c *fiber.Ctx) Pagination {
	page := parseInt(c.Query("page", "1"), 1)
	limit := parseInt(c.Query("limit", "0"), 0)
	if limit < 0 {
		limit = 0
	}
	if page <= 0 {
		page = 1
	}

	return Pagination{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// Apply adds limit/offset clauses when a page size was requested.
func (p Pagination) Apply(query *gorm.DB) *gorm.DB {
	if p.Limit > 0 {
		return query.Limit(p.Limit).Offset(p.Offset)
	}
	return query
}

func parseInt(value string, fallback int) int {
	if parsed, err := strconv.Atoi(value); err == nil {
		return parsed
	}
	return fallback
}
