package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"avrstore/internal/adapter/api/middleware"
	"avrstore/internal/usecase"
	"avrstore/pkg/response"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type createReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

func (h *ReviewHandler) ListReviews(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	reviews, err := h.reviewUseCase.ListProductReviews(c.Request().Context(), c.Param("id"), limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reviews)
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userName := ""
	if identity, ok := middleware.IdentityFrom(c); ok {
		userName = identity.Name
	}

	review, err := h.reviewUseCase.CreateReview(c.Request().Context(), currentUID(c), usecase.CreateReviewInput{
		ProductID: c.Param("id"),
		UserName:  userName,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}
