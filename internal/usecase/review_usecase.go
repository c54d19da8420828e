package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"avrstore/internal/domain/entity"
	"avrstore/internal/domain/repository"
	"avrstore/pkg/errors"
	"avrstore/pkg/logger"
)

const defaultReviewLimit = 20

type ReviewUseCase struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	now         func() time.Time
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	productRepo repository.ProductRepository,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		now:         time.Now,
	}
}

type CreateReviewInput struct {
	ProductID string
	UserName  string
	Rating    int
	Comment   string
}

func (uc *ReviewUseCase) CreateReview(ctx context.Context, userID string, input CreateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > entity.MaxRating {
		return nil, errors.Validation(map[string]string{"rating": "rating must be between 1 and 5"})
	}

	product, err := uc.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, errors.NotFound("Product", nil)
	}

	review := &entity.Review{
		ID:        uuid.New().String(),
		ProductID: product.ID,
		UserID:    userID,
		UserName:  strings.TrimSpace(input.UserName),
		Rating:    input.Rating,
		Comment:   strings.TrimSpace(input.Comment),
		CreatedAt: uc.now(),
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	// The running average is best effort; the review itself is already stored.
	product.Rating = (product.Rating*float64(product.ReviewCount) + float64(input.Rating)) / float64(product.ReviewCount+1)
	product.ReviewCount++
	product.UpdatedAt = review.CreatedAt
	if err := uc.productRepo.Update(ctx, product); err != nil {
		logger.Warn("Failed to update rating for product %s: %v", product.ID, err)
	}

	return review, nil
}

func (uc *ReviewUseCase) ListProductReviews(ctx context.Context, productID string, limit int) ([]*entity.Review, error) {
	if limit <= 0 {
		limit = defaultReviewLimit
	}
	return uc.reviewRepo.ListByProduct(ctx, productID, limit)
}
