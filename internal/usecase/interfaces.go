package usecase

import (
	"context"

	"avrstore/internal/domain/entity"
)

// Identity is the verified caller behind a bearer token.
type Identity struct {
	UID     string
	Name    string
	Email   string
	IsAdmin bool
}

type IdentityVerifier interface {
	VerifyToken(ctx context.Context, token string) (*Identity, error)
}

// OrderNotifier pushes order changes to the customer's open sessions.
type OrderNotifier interface {
	NotifyOrderStatus(userID string, order *entity.Order)
}
