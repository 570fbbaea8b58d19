package utils

import (
	"math"
	"strconv"
)

// MaxPageSize caps the limit a client may request
const MaxPageSize = 500

// PaginationParams holds list window parameters. A zero Limit means the
// whole collection.
type PaginationParams struct {
	Page  int
	Limit int
}

// PaginationMeta describes the window that was served
type PaginationMeta struct {
	Page       int
	Limit      int
	TotalCount int64
	TotalPages int
}

// ParsePaginationParams reads raw "page" and "limit" query values.
// Missing or malformed values fall back to page 1 and no limit.
func ParsePaginationParams(page, limit string) PaginationParams {
	p, _ := strconv.Atoi(page)
	l, _ := strconv.Atoi(limit)
	return GetPaginationParams(p, l)
}

// GetPaginationParams normalizes page and limit
func GetPaginationParams(page, limit int) PaginationParams {
	if page < 1 {
		page = 1
	}
	if limit < 0 {
		limit = 0
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return PaginationParams{Page: page, Limit: limit}
}

// Paginated reports whether a window was requested
func (p PaginationParams) Paginated() bool {
	return p.Limit > 0
}

// CalculateOffset returns the SQL offset
func (p PaginationParams) CalculateOffset() int {
	if p.Page < 1 || p.Limit <= 0 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// CalculateMeta generates pagination metadata
func CalculateMeta(totalCount int64, p PaginationParams) PaginationMeta {
	if !p.Paginated() {
		return PaginationMeta{
			Page:       1,
			Limit:      int(totalCount),
			TotalCount: totalCount,
			TotalPages: 1,
		}
	}

	return PaginationMeta{
		Page:       p.Page,
		Limit:      p.Limit,
		TotalCount: totalCount,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(p.Limit))),
	}
}
