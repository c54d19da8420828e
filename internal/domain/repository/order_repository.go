package repository

import (
	"context"

	"avrstore/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Order, error)
	List(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error)
	// Mutate applies fn to the stored order inside a transaction.
	Mutate(ctx context.Context, id string, fn func(order *entity.Order) error) (*entity.Order, error)
}

type OrderItemRepository interface {
	CreateAll(ctx context.Context, items []entity.OrderItem) error
	ListByOrder(ctx context.Context, orderID string) ([]entity.OrderItem, error)
}
