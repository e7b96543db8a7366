package utils

import (
	"github.com/gofiber/fiber/v2"
)

// Pagination is the metadata block attached to every list response.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// ParsePagination reads the 1-based `page` and `limit` query parameters,
// falling back to page 1 and 10 items.
func ParsePagination(c *fiber.Ctx) (page, limit int) {
	page = c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit = c.QueryInt("limit", 10)
	if limit < 1 {
		limit = 10
	}
	return page, limit
}

// NewPagination builds the metadata for a page of a total result set.
func NewPagination(page, limit int, total int64) Pagination {
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}
