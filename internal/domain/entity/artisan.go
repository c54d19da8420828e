package entity

import (
	"strings"
	"time"
)

// Artisan is a maker profile managed from the admin console.
type Artisan struct {
	ID              string   `json:"id" firestore:"id"`
	Name            string   `json:"name" firestore:"name" validate:"required"`
	Email           string   `json:"email,omitempty" firestore:"email,omitempty" validate:"omitempty,email"`
	Phone           string   `json:"phone,omitempty" firestore:"phone,omitempty"`
	Website         string   `json:"website,omitempty" firestore:"website,omitempty" validate:"omitempty,url"`
	Location        string   `json:"location" firestore:"location" validate:"required"`
	Craft           string   `json:"craft" firestore:"craft" validate:"required"`
	Specialty       string   `json:"specialty,omitempty" firestore:"specialty,omitempty"`
	Bio             string   `json:"bio,omitempty" firestore:"bio,omitempty"`
	ImageURL        string   `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`
	ExperienceYears int      `json:"experience_years" firestore:"experienceYears" validate:"gte=0"`
	Techniques      []string `json:"techniques" firestore:"techniques"`
	Awards          []string `json:"awards" firestore:"awards"`

	IsActive      bool    `json:"is_active" firestore:"isActive"`
	IsFeatured    bool    `json:"is_featured" firestore:"isFeatured"`
	IsEcoFriendly bool    `json:"is_eco_friendly" firestore:"isEcoFriendly"`
	Rating        float64 `json:"rating" firestore:"rating" validate:"gte=0,lte=5"`
	ProductsCount int     `json:"products_count" firestore:"productsCount" validate:"gte=0"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func (a *Artisan) GetID() string   { return a.ID }
func (a *Artisan) SetID(id string) { a.ID = id }

func (a *Artisan) GetCreatedAt() time.Time  { return a.CreatedAt }
func (a *Artisan) SetCreatedAt(t time.Time) { a.CreatedAt = t }

func (a *Artisan) Touch(now time.Time) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
}

func (a *Artisan) Normalize() {
	a.Name = strings.TrimSpace(a.Name)
	a.Craft = strings.TrimSpace(a.Craft)
	a.Location = strings.TrimSpace(a.Location)
	a.Email = strings.TrimSpace(a.Email)
	a.Website = strings.TrimSpace(a.Website)
	a.Techniques = trimAll(a.Techniques)
	a.Awards = trimAll(a.Awards)
}

// Matches is the admin list search: name, craft, location or specialty.
func (a *Artisan) Matches(search string) bool {
	search = strings.TrimSpace(search)
	if search == "" {
		return true
	}
	return containsFold(a.Name, search) ||
		containsFold(a.Craft, search) ||
		containsFold(a.Location, search) ||
		containsFold(a.Specialty, search)
}
