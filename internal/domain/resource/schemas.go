package resource

import (
	"net/url"
	"strconv"
	"strings"

	"avrstore/internal/domain/entity"
)

const (
	ArtisansCollection   = "artisans"
	CategoriesCollection = "categories"
)

// Artisans lists by name; status, featured, eco and craft narrow the list.
func Artisans() Schema[entity.Artisan] {
	return Schema[entity.Artisan]{
		Name:       "Artisan",
		Collection: ArtisansCollection,
		Path:       "/v1/admin/artisans",
		Filter: func(a *entity.Artisan, params url.Values) bool {
			if !matchStatus(a.IsActive, params.Get("status")) {
				return false
			}
			if !matchFlag(a.IsFeatured, params.Get("featured")) {
				return false
			}
			if !matchFlag(a.IsEcoFriendly, params.Get("eco")) {
				return false
			}
			if craft := params.Get("craft"); craft != "" && !strings.EqualFold(a.Craft, craft) {
				return false
			}
			return true
		},
		Less: func(a, b *entity.Artisan) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		},
	}
}

// Categories lists by display order, then name.
func Categories() Schema[entity.Category] {
	return Schema[entity.Category]{
		Name:       "Category",
		Collection: CategoriesCollection,
		Path:       "/v1/admin/categories",
		Filter: func(c *entity.Category, params url.Values) bool {
			return matchStatus(c.IsActive, params.Get("status"))
		},
		Less: func(a, b *entity.Category) bool {
			if a.Order != b.Order {
				return a.Order < b.Order
			}
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		},
	}
}

func matchStatus(active bool, status string) bool {
	switch status {
	case "active":
		return active
	case "inactive":
		return !active
	}
	return true
}

func matchFlag(value bool, raw string) bool {
	if raw == "" {
		return true
	}
	want, err := strconv.ParseBool(raw)
	if err != nil {
		return true
	}
	return value == want
}
