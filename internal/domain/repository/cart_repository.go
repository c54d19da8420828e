package repository

import (
	"context"

	"avrstore/internal/domain/entity"
)

type CartRepository interface {
	GetByUserID(ctx context.Context, userID string) (*entity.Cart, error)
	// Mutate reads the cart (an empty one when absent), applies fn and
	// writes the result atomically. Concurrent mutations are retried by the
	// store rather than overwriting each other.
	Mutate(ctx context.Context, userID string, fn func(cart *entity.Cart) error) (*entity.Cart, error)
}
