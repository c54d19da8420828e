// Package catalog turns storefront filter state into database query plans,
// applies the filters the database cannot express, and orders result pages.
package catalog

import "slices"

const (
	DefaultMinPrice = 0.0
	DefaultMaxPrice = 1000.0
	DefaultPageSize = 10
)

const (
	AvailabilityInStock    = "in-stock"
	AvailabilityOutOfStock = "out-of-stock"
)

// Filters is the filter half of the storefront state.
type Filters struct {
	Category     string
	PriceRange   [2]float64
	Rating       float64
	Author       string
	Availability string
	Format       string
	Tags         []string
	IsBestseller bool
}

// DefaultFilters returns the state with nothing narrowed.
func DefaultFilters() Filters {
	return Filters{
		PriceRange: [2]float64{DefaultMinPrice, DefaultMaxPrice},
	}
}

// HasPriceRange reports whether the price range differs from the full default range.
func (f Filters) HasPriceRange() bool {
	return f.PriceRange != [2]float64{DefaultMinPrice, DefaultMaxPrice}
}

// ActiveCount counts the fields that differ from their defaults.
func (f Filters) ActiveCount() int {
	count := 0
	if f.Category != "" {
		count++
	}
	if f.HasPriceRange() {
		count++
	}
	if f.Rating > 0 {
		count++
	}
	if f.Author != "" {
		count++
	}
	if f.Availability != "" {
		count++
	}
	if f.Format != "" {
		count++
	}
	if len(f.Tags) > 0 {
		count++
	}
	if f.IsBestseller {
		count++
	}
	return count
}

// Equal compares field by field; nil and empty tag lists are equal.
func (f Filters) Equal(o Filters) bool {
	return f.Category == o.Category &&
		f.PriceRange == o.PriceRange &&
		f.Rating == o.Rating &&
		f.Author == o.Author &&
		f.Availability == o.Availability &&
		f.Format == o.Format &&
		f.IsBestseller == o.IsBestseller &&
		slices.Equal(f.Tags, o.Tags)
}
