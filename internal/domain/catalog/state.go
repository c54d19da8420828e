package catalog

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// URL query parameter names for shareable filtered views.
const (
	ParamSearch       = "search"
	ParamCategory     = "category"
	ParamMinPrice     = "minPrice"
	ParamMaxPrice     = "maxPrice"
	ParamRating       = "rating"
	ParamAuthor       = "author"
	ParamAvailability = "availability"
	ParamFormat       = "format"
	ParamTags         = "tags"
	ParamSort         = "sort"
	ParamBestseller   = "bestseller"
)

// State is the storefront's canonical search/filter/sort state.
type State struct {
	SearchQuery string
	Filters     Filters
	SortBy      SortKey
}

func DefaultState() State {
	return State{
		Filters: DefaultFilters(),
		SortBy:  SortNewest,
	}
}

// ParseState reads state from URL query parameters. Missing or malformed
// values fall back to their defaults.
func ParseState(values url.Values) State {
	state := DefaultState()

	state.SearchQuery = values.Get(ParamSearch)
	state.Filters.Category = values.Get(ParamCategory)
	state.Filters.Author = values.Get(ParamAuthor)
	state.Filters.Availability = values.Get(ParamAvailability)
	state.Filters.Format = values.Get(ParamFormat)

	state.Filters.PriceRange[0] = parseFloat(values.Get(ParamMinPrice), DefaultMinPrice)
	state.Filters.PriceRange[1] = parseFloat(values.Get(ParamMaxPrice), DefaultMaxPrice)
	state.Filters.Rating = parseFloat(values.Get(ParamRating), 0)

	if raw := values.Get(ParamTags); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag != "" {
				state.Filters.Tags = append(state.Filters.Tags, tag)
			}
		}
	}

	state.Filters.IsBestseller, _ = strconv.ParseBool(values.Get(ParamBestseller))

	if sortBy := SortKey(values.Get(ParamSort)); sortBy.Valid() {
		state.SortBy = sortBy
	}

	return state
}

// Values encodes the fields that differ from their defaults.
func (s State) Values() url.Values {
	values := url.Values{}
	f := s.Filters

	setIf(values, ParamSearch, s.SearchQuery)
	setIf(values, ParamCategory, f.Category)
	if f.PriceRange[0] != DefaultMinPrice {
		values.Set(ParamMinPrice, formatFloat(f.PriceRange[0]))
	}
	if f.PriceRange[1] != DefaultMaxPrice {
		values.Set(ParamMaxPrice, formatFloat(f.PriceRange[1]))
	}
	if f.Rating != 0 {
		values.Set(ParamRating, formatFloat(f.Rating))
	}
	setIf(values, ParamAuthor, f.Author)
	setIf(values, ParamAvailability, f.Availability)
	setIf(values, ParamFormat, f.Format)
	if len(f.Tags) > 0 {
		values.Set(ParamTags, strings.Join(f.Tags, ","))
	}
	if f.IsBestseller {
		values.Set(ParamBestseller, "true")
	}
	if s.SortBy != "" && s.SortBy != SortNewest {
		values.Set(ParamSort, string(s.SortBy))
	}

	return values
}

// Encode is the canonical query string, suitable for replacing the
// current history entry.
func (s State) Encode() string {
	return s.Values().Encode()
}

func (s State) ActiveFilterCount() int {
	return s.Filters.ActiveCount()
}

func (s State) Equal(o State) bool {
	return s.SearchQuery == o.SearchQuery && s.SortBy == o.SortBy && s.Filters.Equal(o.Filters)
}

func setIf(values url.Values, key, value string) {
	if value != "" {
		values.Set(key, value)
	}
}

func parseFloat(raw string, fallback float64) float64 {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
