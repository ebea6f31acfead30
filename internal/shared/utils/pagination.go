package utils

import "codergrounds/internal/shared/constants"

// Pagination holds normalized pagination parameters.
type Pagination struct {
	Page     int
	PageSize int
}

// ValidatePagination normalizes page and page size.
// Page falls back to DefaultPage when less than 1. PageSize falls back
// to DefaultPageSize when out of the [1, MaxPageSize] range.
func ValidatePagination(page, pageSize int) Pagination {
	if page < 1 {
		page = constants.DefaultPage
	}
	if pageSize < 1 || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}
	return Pagination{Page: page, PageSize: pageSize}
}

// Offset returns the database offset for the current page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// TotalPages calculates how many pages a total count spans.
// A zero total still counts as one page.
func TotalPages(total int64, pageSize int) int {
	if total == 0 || pageSize == 0 {
		return 1
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
