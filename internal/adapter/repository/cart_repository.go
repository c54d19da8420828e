package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"avrstore/internal/domain/entity"
	"avrstore/internal/domain/repository"
	"avrstore/pkg/errors"
)

type firestoreCartRepository struct {
	client *firestore.Client
}

func NewFirestoreCartRepository(client *firestore.Client) repository.CartRepository {
	return &firestoreCartRepository{
		client: client,
	}
}

func (r *firestoreCartRepository) GetByUserID(ctx context.Context, userID string) (*entity.Cart, error) {
	doc, err := r.client.Collection(cartsCollection).Doc(userID).Get(ctx)
	if err != nil {
		return nil, mapError(err, "Cart", "get cart")
	}

	var cart entity.Cart
	if err := doc.DataTo(&cart); err != nil {
		return nil, errors.Internal("Failed to parse cart data", err)
	}
	cart.UserID = userID
	return &cart, nil
}

func (r *firestoreCartRepository) Mutate(ctx context.Context, userID string, fn func(cart *entity.Cart) error) (*entity.Cart, error) {
	docRef := r.client.Collection(cartsCollection).Doc(userID)

	var result *entity.Cart
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		cart := entity.NewCart(userID)

		doc, err := tx.Get(docRef)
		switch {
		case status.Code(err) == codes.NotFound:
		case err != nil:
			return err
		default:
			if err := doc.DataTo(cart); err != nil {
				return errors.Internal("Failed to parse cart data", err)
			}
			cart.UserID = userID
		}

		if err := fn(cart); err != nil {
			return err
		}

		cart.Recalculate()
		cart.Version++
		cart.UpdatedAt = time.Now()

		if err := tx.Set(docRef, cart); err != nil {
			return err
		}
		result = cart
		return nil
	})
	if err != nil {
		return nil, mapError(err, "Cart", "update cart")
	}

	return result, nil
}
