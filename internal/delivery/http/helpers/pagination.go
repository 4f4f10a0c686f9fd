package helpers

import (
	"net/http"
	"strconv"

	"roomscheduler/internal/domain"
)

// Pagination query parameter defaults and limits.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ParsePagination reads page and page_size from the query string. Missing or
// non-positive values fall back to the defaults; page_size is capped.
func ParsePagination(r *http.Request) domain.PaginationParams {
	q := r.URL.Query()
	return domain.PaginationParams{
		Page:     positiveQueryInt(q.Get("page"), DefaultPage),
		PageSize: min(positiveQueryInt(q.Get("page_size"), DefaultPageSize), MaxPageSize),
	}
}

func positiveQueryInt(s string, fallback int) int {
	if v, err := strconv.Atoi(s); err == nil && v >= 1 {
		return v
	}
	return fallback
}

// PaginationMeta is the pagination metadata included in paginated list responses.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPaginationMeta computes TotalPages as ceil(total / pageSize), 0 when pageSize is 0.
func NewPaginationMeta(page, pageSize, total int) PaginationMeta {
	meta := PaginationMeta{Page: page, PageSize: pageSize, Total: total}
	if pageSize > 0 {
		meta.TotalPages = (total + pageSize - 1) / pageSize
	}
	return meta
}

// Page is the data payload of a paginated list response.
type Page[T any] struct {
	Items      []T            `json:"items"`
	Pagination PaginationMeta `json:"pagination"`
}

// NewPage wraps items with metadata for params and total.
func NewPage[T any](items []T, params domain.PaginationParams, total int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Pagination: NewPaginationMeta(params.Page, params.PageSize, total)}
}
