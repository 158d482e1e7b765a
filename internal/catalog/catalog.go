// Package catalog holds the fixed storefront offering and product search.
package catalog

import (
	"errors"
	"fmt"

	"github.com/Skotchmaster/rockstar_shop/internal/i18n"
)

var ErrNotFound = errors.New("product not found")

type Product struct {
	ID        int      `json:"id"`
	Title     string   `json:"title"`
	Price     string   `json:"price"`
	Duration  string   `json:"duration"`
	Features  []string `json:"features"`
	IsPopular bool     `json:"isPopular,omitempty"`
}

type entry struct {
	id       int
	title    string
	price    string
	months   int
	features []i18n.Key
	popular  bool
}

var entries = []entry{
	{
		id: 1, title: "Rockstar Beta", price: "3000₽", popular: true,
		features: []i18n.Key{i18n.FeatureBeta, i18n.FeatureLifetime, i18n.FeaturePriority, i18n.FeatureExclusive},
	},
	{
		id: 2, title: "Rockstar Recode", price: "600₽",
		features: []i18n.Key{i18n.FeatureRecode, i18n.FeatureLifetime, i18n.FeatureTech, i18n.FeatureRegular},
	},
	{
		id: 3, title: "Rockstar Recode", price: "300₽", months: 3,
		features: []i18n.Key{i18n.FeatureRecode, i18n.FeatureUpdates, i18n.FeatureBasic, i18n.FeatureStandard},
	},
}

func (e entry) localize(lang i18n.Language) Product {
	p := Product{
		ID:        e.id,
		Title:     e.title,
		Price:     e.price,
		Duration:  i18n.T(lang, i18n.ShopForever),
		Features:  make([]string, len(e.features)),
		IsPopular: e.popular,
	}
	if e.months > 0 {
		p.Duration = fmt.Sprintf("%d %s", e.months, i18n.T(lang, i18n.ShopMonths))
	}
	for i, k := range e.features {
		p.Features[i] = i18n.T(lang, k)
	}
	return p
}

// Products returns the offering in display order with texts in lang.
func Products(lang i18n.Language) []Product {
	out := make([]Product, len(entries))
	for i, e := range entries {
		out[i] = e.localize(lang)
	}
	return out
}

func Find(lang i18n.Language, id int) (Product, error) {
	for _, e := range entries {
		if e.id == id {
			return e.localize(lang), nil
		}
	}
	return Product{}, fmt.Errorf("%w: id=%d", ErrNotFound, id)
}

// IsPerpetual reports whether duration is the "forever" term in any
// supported language. Purchases made under one language stay perpetual
// after the user switches to another.
func IsPerpetual(duration string) bool {
	for _, forever := range i18n.All(i18n.ShopForever) {
		if duration == forever {
			return true
		}
	}
	return false
}
