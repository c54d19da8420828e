package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"avrstore/internal/domain/entity"
	"avrstore/internal/domain/repository"
	"avrstore/pkg/errors"
)

type firestorePaymentRepository struct {
	client *firestore.Client
}

func NewFirestorePaymentRepository(client *firestore.Client) repository.PaymentRepository {
	return &firestorePaymentRepository{
		client: client,
	}
}

func (r *firestorePaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	if _, err := r.client.Collection(paymentsCollection).Doc(payment.ID).Set(ctx, payment); err != nil {
		return errors.Internal("Failed to create payment", err)
	}
	return nil
}

// GetByOrderID returns the most recently created payment for the order.
func (r *firestorePaymentRepository) GetByOrderID(ctx context.Context, orderID string) (*entity.Payment, error) {
	iter := r.client.Collection(paymentsCollection).Where("orderId", "==", orderID).Documents(ctx)
	defer iter.Stop()

	var latest *entity.Payment
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapError(err, "Payment", "get payment")
		}

		var payment entity.Payment
		if err := doc.DataTo(&payment); err != nil {
			return nil, errors.Internal("Failed to parse payment data", err)
		}
		if latest == nil || payment.CreatedAt.After(latest.CreatedAt) {
			latest = &payment
		}
	}

	if latest == nil {
		return nil, errors.NotFound("Payment", nil)
	}
	return latest, nil
}

func (r *firestorePaymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	if _, err := r.client.Collection(paymentsCollection).Doc(payment.ID).Set(ctx, payment); err != nil {
		return errors.Internal("Failed to update payment", err)
	}
	return nil
}
