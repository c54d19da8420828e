package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"avrstore/internal/domain/catalog"
	"avrstore/internal/usecase"
	"avrstore/pkg/response"
	"avrstore/pkg/utils"
)

type ProductHandler struct {
	productUseCase  *usecase.ProductUseCase
	defaultPageSize int
}

func NewProductHandler(productUseCase *usecase.ProductUseCase, defaultPageSize int) *ProductHandler {
	if defaultPageSize <= 0 {
		defaultPageSize = catalog.DefaultPageSize
	}
	return &ProductHandler{
		productUseCase:  productUseCase,
		defaultPageSize: defaultPageSize,
	}
}

type productRequest struct {
	Name          string   `json:"name" validate:"required"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" validate:"gte=0"`
	OriginalPrice float64  `json:"original_price" validate:"gte=0"`
	Category      string   `json:"category"`
	Author        string   `json:"author"`
	Stock         int      `json:"stock" validate:"gte=0"`
	Rating        float64  `json:"rating" validate:"gte=0,lte=5"`
	Tags          []string `json:"tags"`
	Images        []string `json:"images" validate:"dive,url"`
	IsActive      bool     `json:"is_active"`
	IsBestseller  bool     `json:"is_bestseller"`
	IsFeatured    bool     `json:"is_featured"`
	IsChildrens   bool     `json:"is_childrens"`
	IsNonFiction  bool     `json:"is_non_fiction"`
	IsStationery  bool     `json:"is_stationery"`
	IsGift        bool     `json:"is_gift"`
	IsEcoFriendly bool     `json:"is_eco_friendly"`
}

func (r productRequest) input() usecase.ProductInput {
	return usecase.ProductInput{
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Category:      r.Category,
		Author:        r.Author,
		Stock:         r.Stock,
		Rating:        r.Rating,
		Tags:          r.Tags,
		Images:        r.Images,
		IsActive:      r.IsActive,
		IsBestseller:  r.IsBestseller,
		IsFeatured:    r.IsFeatured,
		IsChildrens:   r.IsChildrens,
		IsNonFiction:  r.IsNonFiction,
		IsStationery:  r.IsStationery,
		IsGift:        r.IsGift,
		IsEcoFriendly: r.IsEcoFriendly,
	}
}

// ListProducts is the storefront grid. The filter state comes from the
// query string; cursor and limit page through it.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	state := catalog.ParseState(c.QueryParams())
	page := utils.GetCursorParams(c, h.defaultPageSize)

	result, err := h.productUseCase.Browse(c.Request().Context(), state, page.Cursor, page.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *ProductHandler) ListFeatured(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	products, err := h.productUseCase.ListFeatured(c.Request().Context(), limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUseCase.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), req.input())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.UpdateProduct(c.Request().Context(), c.Param("id"), req.input())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}
