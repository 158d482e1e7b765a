package util

import "math"

// Calculate turns a 1-based page into an offset. Pages past the int range
// saturate at math.MaxInt, which is past any real list.
func Calculate(page, size int) (from, limit int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 10
	}
	if page-1 > math.MaxInt/size {
		return math.MaxInt, size
	}
	from = (page - 1) * size
	return from, size
}

// Page cuts items[from:from+limit], clamped to the slice.
func Page[T any](items []T, from, limit int) []T {
	if from < 0 {
		from = 0
	}
	if limit <= 0 || from >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit < end-from {
		end = from + limit
	}
	return items[from:end]
}
