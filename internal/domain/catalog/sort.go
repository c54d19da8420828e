package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"avrstore/internal/domain/entity"
)

type SortKey string

const (
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortName      SortKey = "name"
	SortPopular   SortKey = "popular"
	SortNewest    SortKey = "newest"
)

func (k SortKey) Valid() bool {
	switch k {
	case SortPriceLow, SortPriceHigh, SortRating, SortName, SortPopular, SortNewest:
		return true
	}
	return false
}

// SortProducts orders a fetched page in place, independent of the order
// the database returned. The sort is stable; unknown keys sort as newest.
func SortProducts(products []*entity.Product, key SortKey) {
	var less func(a, b *entity.Product) bool

	switch key {
	case SortPriceLow:
		less = func(a, b *entity.Product) bool { return a.Price < b.Price }
	case SortPriceHigh:
		less = func(a, b *entity.Product) bool { return a.Price > b.Price }
	case SortRating:
		less = func(a, b *entity.Product) bool { return a.Rating > b.Rating }
	case SortName:
		col := collate.New(language.English, collate.Loose)
		less = func(a, b *entity.Product) bool { return col.CompareString(a.Name, b.Name) < 0 }
	case SortPopular:
		less = func(a, b *entity.Product) bool { return a.IsBestseller && !b.IsBestseller }
	default:
		// Zero CreatedAt sorts last, as the earliest possible date.
		less = func(a, b *entity.Product) bool { return a.CreatedAt.After(b.CreatedAt) }
	}

	sort.SliceStable(products, func(i, j int) bool {
		return less(products[i], products[j])
	})
}
