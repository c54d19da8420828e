package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"avrstore/internal/domain/entity"
)

func TestPostFilter_Rating(t *testing.T) {
	products := []*entity.Product{
		{ID: "a", Rating: 5},
		{ID: "b", Rating: 3},
		{ID: "c", Rating: 4.5},
		{ID: "d", Rating: 2},
	}
	f := DefaultFilters()
	f.Rating = 4

	assert.Equal(t, []string{"a", "c"}, ids(PostFilter(products, f)))
}

func TestPostFilter_Availability(t *testing.T) {
	products := []*entity.Product{{ID: "a", Stock: 3}, {ID: "b", Stock: 0}}

	f := DefaultFilters()
	f.Availability = AvailabilityInStock
	assert.Equal(t, []string{"a"}, ids(PostFilter(products, f)))

	f.Availability = AvailabilityOutOfStock
	assert.Equal(t, []string{"b"}, ids(PostFilter(products, f)))

	f.Availability = ""
	assert.Len(t, PostFilter(products, f), 2)
}

func TestPostFilter_PriceAuthorFormatTags(t *testing.T) {
	products := []*entity.Product{
		{ID: "a", Price: 10, Author: "Ursula K. Le Guin", Tags: []string{"scifi"}},
		{ID: "b", Price: 50, Author: "Tove Jansson", IsChildrens: true, Tags: []string{"Moomin"}},
		{ID: "c", Price: 5000, IsGift: true},
	}

	f := DefaultFilters()
	f.PriceRange = [2]float64{0, 100}
	assert.Equal(t, []string{"a", "b"}, ids(PostFilter(products, f)))

	f = DefaultFilters()
	f.Author = "le guin"
	assert.Equal(t, []string{"a"}, ids(PostFilter(products, f)))

	f = DefaultFilters()
	f.Format = "childrens"
	assert.Equal(t, []string{"b"}, ids(PostFilter(products, f)))

	f = DefaultFilters()
	f.Tags = []string{"moomin", "scifi"}
	assert.Equal(t, []string{"a", "b"}, ids(PostFilter(products, f)))
}

func TestMatchesSearch(t *testing.T) {
	p := &entity.Product{Name: "Linen Journal", Author: "Studio North", Tags: []string{"handmade"}}

	assert.True(t, MatchesSearch(p, ""))
	assert.True(t, MatchesSearch(p, "journal"))
	assert.True(t, MatchesSearch(p, "north"))
	assert.True(t, MatchesSearch(p, "HAND"))
	assert.False(t, MatchesSearch(p, "pottery"))
}
