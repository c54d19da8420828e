package catalog

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseState_Defaults(t *testing.T) {
	state := ParseState(url.Values{})

	assert.True(t, state.Equal(DefaultState()))
	assert.Equal(t, [2]float64{0, 1000}, state.Filters.PriceRange)
	assert.Equal(t, 0.0, state.Filters.Rating)
	assert.Equal(t, "", state.Filters.Category)
	assert.Equal(t, SortNewest, state.SortBy)
	assert.Empty(t, state.Encode())
}

func TestParseState_Values(t *testing.T) {
	values, _ := url.ParseQuery("search=owl&category=books&minPrice=10&maxPrice=45.5&rating=4&author=Le+Guin" +
		"&availability=in-stock&format=gift&tags=poetry,,handmade,&sort=price-high&bestseller=true")

	state := ParseState(values)

	assert.Equal(t, "owl", state.SearchQuery)
	assert.Equal(t, "books", state.Filters.Category)
	assert.Equal(t, [2]float64{10, 45.5}, state.Filters.PriceRange)
	assert.Equal(t, 4.0, state.Filters.Rating)
	assert.Equal(t, "Le Guin", state.Filters.Author)
	assert.Equal(t, AvailabilityInStock, state.Filters.Availability)
	assert.Equal(t, "gift", state.Filters.Format)
	assert.Equal(t, []string{"poetry", "handmade"}, state.Filters.Tags)
	assert.True(t, state.Filters.IsBestseller)
	assert.Equal(t, SortPriceHigh, state.SortBy)
	assert.Equal(t, 8, state.ActiveFilterCount())
}

func TestParseState_MalformedFallsBack(t *testing.T) {
	values, _ := url.ParseQuery("minPrice=abc&maxPrice=NaN&rating=&sort=random")

	state := ParseState(values)

	assert.Equal(t, [2]float64{0, 1000}, state.Filters.PriceRange)
	assert.Equal(t, SortNewest, state.SortBy)
}

// Every subset of fields set to a non-default value must survive
// encode -> parse unchanged.
func TestState_RoundTrip(t *testing.T) {
	setters := []func(s *State){
		func(s *State) { s.SearchQuery = "tea & cake" },
		func(s *State) { s.Filters.Category = "stationery" },
		func(s *State) { s.Filters.PriceRange[0] = 12.25 },
		func(s *State) { s.Filters.PriceRange[1] = 300 },
		func(s *State) { s.Filters.Rating = 3.5 },
		func(s *State) { s.Filters.Author = "Tove Jansson" },
		func(s *State) { s.Filters.Availability = AvailabilityOutOfStock },
		func(s *State) { s.Filters.Format = "childrens" },
		func(s *State) { s.Filters.Tags = []string{"eco", "wool"} },
		func(s *State) { s.Filters.IsBestseller = true },
		func(s *State) { s.SortBy = SortName },
	}

	for mask := 0; mask < 1<<len(setters); mask++ {
		state := DefaultState()
		for i, set := range setters {
			if mask&(1<<i) != 0 {
				set(&state)
			}
		}

		encoded := state.Encode()
		values, err := url.ParseQuery(encoded)
		if !assert.NoError(t, err) {
			return
		}

		parsed := ParseState(values)
		if !assert.True(t, state.Equal(parsed), "mask %b: %q", mask, encoded) {
			return
		}
	}
}
