package repository

import (
	"context"

	"avrstore/internal/domain/entity"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	GetByOrderID(ctx context.Context, orderID string) (*entity.Payment, error)
	Update(ctx context.Context, payment *entity.Payment) error
}
