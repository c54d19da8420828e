package repository

import (
	"context"

	"avrstore/internal/domain/catalog"
	"avrstore/internal/domain/entity"
)

type ProductRepository interface {
	// Query runs plan and returns one raw page plus the cursor of its last
	// document. An empty cursor starts from the beginning.
	Query(ctx context.Context, plan catalog.Plan, cursor string, limit int) ([]*entity.Product, string, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	AdjustStock(ctx context.Context, id string, delta int) error
	AttachImage(ctx context.Context, id, url string) error
}
