package repository

import (
	"context"

	"avrstore/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	ListByProduct(ctx context.Context, productID string, limit int) ([]*entity.Review, error)
}
