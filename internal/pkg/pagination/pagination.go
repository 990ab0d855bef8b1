package pagination

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Params represents pagination and sorting parameters
type Params struct {
	Page      int    `json:"page"`
	Limit     int    `json:"limit"`
	Offset    int    `json:"-"`
	SortBy    string `json:"-"`
	SortOrder string `json:"-"`
}

// Default page sizes. Item and order listings page at 200 rows, the log
// feed at 25.
const (
	DefaultLimit    = 200
	DefaultLogLimit = 25
)

// GetParams extracts pagination and sorting parameters from the request
// query string (page, limit, sortby, sortorder).
func GetParams(c *fiber.Ctx, defaultLimit int) *Params {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", strconv.Itoa(defaultLimit)))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}

	return &Params{
		Page:      page,
		Limit:     limit,
		Offset:    (page - 1) * limit,
		SortBy:    c.Query("sortby"),
		SortOrder: c.Query("sortorder"),
	}
}

// OrderClause builds a SQL ORDER BY expression from the params. The sort
// column must be in the caller's whitelist; anything else falls back to
// created_at so an unknown field cannot break the query.
func (p *Params) OrderClause(sortable map[string]bool) string {
	column := p.SortBy
	if !sortable[column] {
		column = "created_at"
	}
	direction := "ASC"
	if p.SortOrder == "desc" || p.SortOrder == "descend" {
		direction = "DESC"
	}
	return column + " " + direction
}
