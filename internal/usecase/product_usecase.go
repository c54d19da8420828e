package usecase

import (
	"context"
	"strings"
	"time"

	"avrstore/internal/domain/catalog"
	"avrstore/internal/domain/entity"
	"avrstore/internal/domain/repository"
	"avrstore/pkg/errors"
	"avrstore/pkg/logger"
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
	now         func() time.Time
}

func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		now:         time.Now,
	}
}

// ProductPage is one fetched page. HasMore reflects the raw page before
// post-filtering, so len(Items) can be below the page size while HasMore
// is still true.
type ProductPage struct {
	Items      []*entity.Product `json:"items"`
	NextCursor string            `json:"next_cursor,omitempty"`
	HasMore    bool              `json:"has_more"`
}

// BrowseResult is a storefront listing: a page plus the state it was
// derived from.
type BrowseResult struct {
	Items         []*entity.Product `json:"items"`
	NextCursor    string            `json:"next_cursor,omitempty"`
	HasMore       bool              `json:"has_more"`
	ActiveFilters int               `json:"active_filters"`
	SortBy        string            `json:"sort_by"`
	Query         string            `json:"query"`
}

// FetchProducts runs the filter query, retrying once with the reduced plan
// when the database reports a missing composite index.
func (uc *ProductUseCase) FetchProducts(ctx context.Context, filters catalog.Filters, cursor string, pageSize int) (*ProductPage, error) {
	if pageSize <= 0 {
		pageSize = catalog.DefaultPageSize
	}

	plan := catalog.Build(filters)

	raw, next, err := uc.productRepo.Query(ctx, plan, cursor, pageSize)
	if errors.Is(err, errors.CodeIndexRequired) {
		logger.Warn("Product query needs an index, retrying without ordering: %v", err)
		raw, next, err = uc.productRepo.Query(ctx, plan.Reduced(), cursor, pageSize)
	}
	if err != nil {
		if errors.Is(err, errors.CodeBadRequest) {
			return nil, err
		}
		logger.Error("Failed to fetch products: %v", err)
		return nil, errors.Unavailable("We couldn't load products right now. Please try again.", err)
	}

	return &ProductPage{
		Items:      catalog.PostFilter(raw, filters),
		NextCursor: next,
		HasMore:    len(raw) == pageSize,
	}, nil
}

// Browse serves the storefront grid: fetch, search, then sort the page.
func (uc *ProductUseCase) Browse(ctx context.Context, state catalog.State, cursor string, pageSize int) (*BrowseResult, error) {
	page, err := uc.FetchProducts(ctx, state.Filters, cursor, pageSize)
	if err != nil {
		return nil, err
	}

	items := page.Items
	if strings.TrimSpace(state.SearchQuery) != "" {
		matched := make([]*entity.Product, 0, len(items))
		for _, p := range items {
			if catalog.MatchesSearch(p, state.SearchQuery) {
				matched = append(matched, p)
			}
		}
		items = matched
	}

	catalog.SortProducts(items, state.SortBy)

	return &BrowseResult{
		Items:         items,
		NextCursor:    page.NextCursor,
		HasMore:       page.HasMore,
		ActiveFilters: state.ActiveFilterCount(),
		SortBy:        string(state.SortBy),
		Query:         state.Encode(),
	}, nil
}

func (uc *ProductUseCase) ListFeatured(ctx context.Context, limit int) ([]*entity.Product, error) {
	if limit <= 0 {
		limit = 8
	}

	products, _, err := uc.productRepo.Query(ctx, catalog.FeaturedPlan(), "", limit)
	if errors.Is(err, errors.CodeIndexRequired) {
		products, _, err = uc.productRepo.Query(ctx, catalog.FeaturedPlan().Reduced(), "", limit)
	}
	if err != nil {
		return nil, errors.Unavailable("We couldn't load featured products right now.", err)
	}
	return products, nil
}

// GetProduct hides inactive products from the storefront.
func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, errors.NotFound("Product", nil)
	}
	return product, nil
}

type ProductInput struct {
	Name          string
	Description   string
	Price         float64
	OriginalPrice float64
	Category      string
	Author        string
	Stock         int
	Rating        float64
	Tags          []string
	Images        []string
	IsActive      bool
	IsBestseller  bool
	IsFeatured    bool
	IsChildrens   bool
	IsNonFiction  bool
	IsStationery  bool
	IsGift        bool
	IsEcoFriendly bool
}

func validateProductInput(input ProductInput) error {
	fields := map[string]string{}
	if strings.TrimSpace(input.Name) == "" {
		fields["name"] = "name is required"
	}
	if input.Price < 0 {
		fields["price"] = "price must be at least 0"
	}
	if input.Rating < 0 || input.Rating > entity.MaxRating {
		fields["rating"] = "rating must be between 0 and 5"
	}
	if input.Stock < 0 {
		fields["stock"] = "stock must be at least 0"
	}
	if len(fields) > 0 {
		return errors.Validation(fields)
	}
	return nil
}

func (input ProductInput) apply(p *entity.Product) {
	p.Name = strings.TrimSpace(input.Name)
	p.Description = input.Description
	p.Price = input.Price
	p.OriginalPrice = input.OriginalPrice
	p.Category = input.Category
	p.Author = input.Author
	p.Stock = input.Stock
	p.Rating = input.Rating
	p.Tags = input.Tags
	p.Images = input.Images
	p.IsActive = input.IsActive
	p.IsBestseller = input.IsBestseller
	p.IsFeatured = input.IsFeatured
	p.IsChildrens = input.IsChildrens
	p.IsNonFiction = input.IsNonFiction
	p.IsStationery = input.IsStationery
	p.IsGift = input.IsGift
	p.IsEcoFriendly = input.IsEcoFriendly
	p.Normalize()
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, input ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	now := uc.now()
	product := &entity.Product{CreatedAt: now, UpdatedAt: now}
	input.apply(product)

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id string, input ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	input.apply(product)
	product.UpdatedAt = uc.now()

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}
