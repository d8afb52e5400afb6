// Package paginate slices a filtered view into fixed-size pages.
package paginate

import "github.com/taxops/perdcomp/internal/model"

// Page is one slice of a sequence plus the page count for the whole of
// it. Pages are 1-based.
type Page struct {
	Items      []model.Order
	TotalPages int
}

// Paginate returns the given page. It does not clamp: callers own the
// contract of resetting to page 1 when the query or page size changes.
// Slicing past the end yields an empty page, never an error.
func Paginate(orders []model.Order, page, size int) Page {
	if size <= 0 {
		return Page{}
	}
	total := (len(orders) + size - 1) / size

	start := (page - 1) * size
	if start < 0 || start >= len(orders) {
		return Page{TotalPages: total}
	}
	end := start + size
	if end > len(orders) {
		end = len(orders)
	}
	return Page{Items: orders[start:end], TotalPages: total}
}
