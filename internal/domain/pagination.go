package domain

// PaginationParams selects one page of a participant listing. Page is 1-based.
type PaginationParams struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Offset returns the number of rows before the page; pages below 1 start at 0.
func (p PaginationParams) Offset() int {
	return max(p.Page-1, 0) * p.Limit()
}

// Limit returns the page size, never negative.
func (p PaginationParams) Limit() int {
	return max(p.PageSize, 0)
}
