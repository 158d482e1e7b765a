package catalog

import (
	"context"
	"strings"

	"github.com/Skotchmaster/rockstar_shop/internal/i18n"
)

// Searcher finds catalog products by free text. total counts every match,
// products holds the requested page.
type Searcher interface {
	Search(ctx context.Context, lang i18n.Language, query string, from, size int) (total int64, products []Product, err error)
}

// MemorySearcher matches case-insensitive substrings of title and features.
type MemorySearcher struct{}

func (MemorySearcher) Search(ctx context.Context, lang i18n.Language, query string, from, size int) (int64, []Product, error) {
	if err := ctx.Err(); err != nil {
		return 0, nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))

	var hits []Product
	for _, p := range Products(lang) {
		if q == "" || matches(p, q) {
			hits = append(hits, p)
		}
	}
	return int64(len(hits)), page(hits, from, size), nil
}

func matches(p Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Title), q) {
		return true
	}
	for _, f := range p.Features {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func page(items []Product, from, size int) []Product {
	if from < 0 {
		from = 0
	}
	if from >= len(items) {
		return []Product{}
	}
	end := len(items)
	if size > 0 && from+size < end {
		end = from + size
	}
	return items[from:end]
}
