package seed

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"avrstore/internal/domain/entity"
	"avrstore/internal/usecase"
	"avrstore/pkg/logger"
)

// File is the layout of a catalog seed document.
type File struct {
	Categories []Category `yaml:"categories"`
	Artisans   []Artisan  `yaml:"artisans"`
	Products   []Product  `yaml:"products"`
}

type Category struct {
	Name        string `yaml:"name"`
	Slug        string `yaml:"slug"`
	Description string `yaml:"description"`
	Order       int    `yaml:"order"`
	Active      *bool  `yaml:"active"`
}

type Artisan struct {
	Name            string   `yaml:"name"`
	Email           string   `yaml:"email"`
	Location        string   `yaml:"location"`
	Craft           string   `yaml:"craft"`
	Specialty       string   `yaml:"specialty"`
	Bio             string   `yaml:"bio"`
	ExperienceYears int      `yaml:"experience_years"`
	Techniques      []string `yaml:"techniques"`
	Featured        bool     `yaml:"featured"`
	EcoFriendly     bool     `yaml:"eco_friendly"`
	Active          *bool    `yaml:"active"`
}

type Product struct {
	Name          string   `yaml:"name"`
	Description   string   `yaml:"description"`
	Price         float64  `yaml:"price"`
	OriginalPrice float64  `yaml:"original_price"`
	Category      string   `yaml:"category"`
	Author        string   `yaml:"author"`
	Stock         int      `yaml:"stock"`
	Rating        float64  `yaml:"rating"`
	Tags          []string `yaml:"tags"`
	Images        []string `yaml:"images"`
	Flags         []string `yaml:"flags"`
	Active        *bool    `yaml:"active"`
}

// Parse decodes a seed document, rejecting unknown keys.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return &f, nil
		}
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	return &f, nil
}

// Targets are the writers a seed run goes through, so every record passes
// the same validation as the admin API.
type Targets struct {
	Products   ProductCreator
	Artisans   ArtisanCreator
	Categories CategoryCreator
}

type ProductCreator interface {
	CreateProduct(ctx context.Context, input usecase.ProductInput) (*entity.Product, error)
}

type ArtisanCreator interface {
	Create(ctx context.Context, doc *entity.Artisan) (*entity.Artisan, error)
}

type CategoryCreator interface {
	Create(ctx context.Context, doc *entity.Category) (*entity.Category, error)
}

// Result counts what a run wrote.
type Result struct {
	Categories int
	Artisans   int
	Products   int
}

// Apply writes categories, then artisans, then products. It stops at the
// first failure and reports how far it got.
func Apply(ctx context.Context, f *File, t Targets) (Result, error) {
	var res Result

	for i, c := range f.Categories {
		doc := &entity.Category{
			Name:        c.Name,
			Slug:        c.Slug,
			Description: c.Description,
			Order:       c.Order,
			IsActive:    active(c.Active),
		}
		if _, err := t.Categories.Create(ctx, doc); err != nil {
			return res, fmt.Errorf("category %d (%q): %w", i, c.Name, err)
		}
		res.Categories++
	}

	for i, a := range f.Artisans {
		doc := &entity.Artisan{
			Name:            a.Name,
			Email:           a.Email,
			Location:        a.Location,
			Craft:           a.Craft,
			Specialty:       a.Specialty,
			Bio:             a.Bio,
			ExperienceYears: a.ExperienceYears,
			Techniques:      a.Techniques,
			IsFeatured:      a.Featured,
			IsEcoFriendly:   a.EcoFriendly,
			IsActive:        active(a.Active),
		}
		if _, err := t.Artisans.Create(ctx, doc); err != nil {
			return res, fmt.Errorf("artisan %d (%q): %w", i, a.Name, err)
		}
		res.Artisans++
	}

	for i, p := range f.Products {
		input, err := p.input()
		if err != nil {
			return res, fmt.Errorf("product %d (%q): %w", i, p.Name, err)
		}
		if _, err := t.Products.CreateProduct(ctx, input); err != nil {
			return res, fmt.Errorf("product %d (%q): %w", i, p.Name, err)
		}
		res.Products++
	}

	logger.Info("Seed applied: %s", logger.Fields(map[string]interface{}{
		"categories": res.Categories,
		"artisans":   res.Artisans,
		"products":   res.Products,
	}))
	return res, nil
}

func (p Product) input() (usecase.ProductInput, error) {
	in := usecase.ProductInput{
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Category:      p.Category,
		Author:        p.Author,
		Stock:         p.Stock,
		Rating:        p.Rating,
		Tags:          p.Tags,
		Images:        p.Images,
		IsActive:      active(p.Active),
	}
	for _, flag := range p.Flags {
		switch flag {
		case "bestseller":
			in.IsBestseller = true
		case "featured":
			in.IsFeatured = true
		case "childrens":
			in.IsChildrens = true
		case "non_fiction":
			in.IsNonFiction = true
		case "stationery":
			in.IsStationery = true
		case "gift":
			in.IsGift = true
		case "eco_friendly":
			in.IsEcoFriendly = true
		default:
			return in, fmt.Errorf("unknown flag %q", flag)
		}
	}
	return in, nil
}

// Records are active unless the file says otherwise.
func active(v *bool) bool {
	return v == nil || *v
}
