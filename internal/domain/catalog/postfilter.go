package catalog

import (
	"strings"

	"avrstore/internal/domain/entity"
)

// formatFlags maps a format filter value to the product flag it selects.
var formatFlags = map[string]func(p *entity.Product) bool{
	"childrens":    func(p *entity.Product) bool { return p.IsChildrens },
	"non-fiction":  func(p *entity.Product) bool { return p.IsNonFiction },
	"stationery":   func(p *entity.Product) bool { return p.IsStationery },
	"gift":         func(p *entity.Product) bool { return p.IsGift },
	"eco-friendly": func(p *entity.Product) bool { return p.IsEcoFriendly },
}

// PostFilter applies the filters that are not part of the query plan to
// one fetched page. The page may shrink below the requested page size.
func PostFilter(products []*entity.Product, f Filters) []*entity.Product {
	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if matchesPostFilters(p, f) {
			out = append(out, p)
		}
	}
	return out
}

func matchesPostFilters(p *entity.Product, f Filters) bool {
	if f.Rating > 0 && p.Rating < f.Rating {
		return false
	}

	switch f.Availability {
	case AvailabilityInStock:
		if p.Stock <= 0 {
			return false
		}
	case AvailabilityOutOfStock:
		if p.Stock != 0 {
			return false
		}
	}

	// The database already enforces the range, except after a
	// reduced-plan fallback dropped it.
	if f.HasPriceRange() && (p.Price < f.PriceRange[0] || p.Price > f.PriceRange[1]) {
		return false
	}

	if f.Author != "" && !strings.Contains(strings.ToLower(p.Author), strings.ToLower(f.Author)) {
		return false
	}

	if f.Format != "" && !matchesFormat(p, f.Format) {
		return false
	}

	if len(f.Tags) > 0 && !hasAnyTag(p, f.Tags) {
		return false
	}

	return true
}

func matchesFormat(p *entity.Product, format string) bool {
	if flag, ok := formatFlags[strings.ToLower(format)]; ok {
		return flag(p)
	}
	return p.HasTag(format)
}

func hasAnyTag(p *entity.Product, tags []string) bool {
	for _, tag := range tags {
		if p.HasTag(tag) {
			return true
		}
	}
	return false
}

// MatchesSearch is the free-text storefront search over name, author and tags.
func MatchesSearch(p *entity.Product, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), query) || strings.Contains(strings.ToLower(p.Author), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
