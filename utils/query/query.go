// Package query parses list parameters shared by paginated endpoints
package query

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Page is a normalized page/limit pair
type Page struct {
	Page   int
	Limit  int
	Offset int
}

// ParsePage reads ?page=&limit=, clamping limit to MaxLimit. Bad values fall
// back to the defaults instead of failing the request.
func ParsePage(c *fiber.Ctx) Page {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(DefaultLimit)))
	if err != nil || limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Page{Page: page, Limit: limit, Offset: (page - 1) * limit}
}

// ParseUintParam reads a positive integer route parameter
func ParseUintParam(c *fiber.Ctx, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}

// Lower returns a trimmed, lower-cased query value
func Lower(c *fiber.Ctx, key string) string {
	return strings.ToLower(strings.TrimSpace(c.Query(key)))
}
