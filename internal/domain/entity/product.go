package entity

import (
	"time"
)

type Product struct {
	ID            string   `json:"id" firestore:"id"`
	Name          string   `json:"name" firestore:"name"`
	Description   string   `json:"description" firestore:"description"`
	Price         float64  `json:"price" firestore:"price"`
	OriginalPrice float64  `json:"original_price,omitempty" firestore:"originalPrice,omitempty"`
	Category      string   `json:"category" firestore:"category"`
	Author        string   `json:"author,omitempty" firestore:"author,omitempty"`
	Stock         int      `json:"stock" firestore:"stock"`
	Rating        float64  `json:"rating" firestore:"rating"`
	ReviewCount   int      `json:"review_count" firestore:"reviewCount"`
	Tags          []string `json:"tags" firestore:"tags"`
	Images        []string `json:"images" firestore:"images"`

	IsActive      bool `json:"is_active" firestore:"isActive"`
	IsBestseller  bool `json:"is_bestseller" firestore:"isBestseller"`
	IsFeatured    bool `json:"is_featured" firestore:"isFeatured"`
	IsChildrens   bool `json:"is_childrens" firestore:"isChildrens"`
	IsNonFiction  bool `json:"is_non_fiction" firestore:"isNonFiction"`
	IsStationery  bool `json:"is_stationery" firestore:"isStationery"`
	IsGift        bool `json:"is_gift" firestore:"isGift"`
	IsEcoFriendly bool `json:"is_eco_friendly" firestore:"isEcoFriendly"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

const (
	MaxRating = 5.0
)

// InStock reports whether at least one unit is available.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// HasTag matches case-insensitively.
func (p *Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if equalFold(t, tag) {
			return true
		}
	}
	return false
}

// PrimaryImage is the first image or "".
func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// Normalize clamps values into the ranges the storefront relies on.
func (p *Product) Normalize() {
	if p.Price < 0 {
		p.Price = 0
	}
	if p.Rating < 0 {
		p.Rating = 0
	}
	if p.Rating > MaxRating {
		p.Rating = MaxRating
	}
	if p.Stock < 0 {
		p.Stock = 0
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Images == nil {
		p.Images = []string{}
	}
}
