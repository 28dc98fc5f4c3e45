package dto

// Pagination is a generic pagination envelope for list results.
// Page is 1-based; Limit is the requested page size; Total counts all items
// matching the filters without pagination.
type Pagination[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

// NewPagination assembles the envelope and derives TotalPages from the
// total count and page size.
func NewPagination[T any](data []T, page, limit int, total int64) Pagination[T] {
	if data == nil {
		data = []T{}
	}
	var totalPages int64
	if limit > 0 {
		totalPages = (total + int64(limit) - 1) / int64(limit)
	}
	return Pagination[T]{
		Data:       data,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
