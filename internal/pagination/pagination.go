// Package pagination slices ordered lists into fixed-size display pages.
// It is shared by the order and invoice listings.
package pagination

// TotalPages returns ceil(n / pageSize). An empty list has zero pages.
// pageSize must be positive; callers guarantee that.
func TotalPages(n, pageSize int) int {
	return (n + pageSize - 1) / pageSize
}

// Page returns the 1-based page of list along with the total page count.
// Callers clamp the page number to [1, total] beforehand; out-of-range
// pages still yield an empty slice rather than panicking.
func Page[T any](list []T, pageSize, page int) ([]T, int) {
	total := TotalPages(len(list), pageSize)

	start := (page - 1) * pageSize
	if start < 0 || start >= len(list) {
		return nil, total
	}

	end := start + pageSize
	if end > len(list) {
		end = len(list)
	}

	return list[start:end], total
}

// Clamp normalizes a requested page number to [1, total]. With zero pages
// it returns 1 so an empty first page is still addressable.
func Clamp(page, total int) int {
	if page < 1 {
		return 1
	}
	if total > 0 && page > total {
		return total
	}
	return page
}
