package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"avrstore/internal/domain/entity"
	"avrstore/internal/domain/repository"
	"avrstore/pkg/errors"
)

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{
		client: client,
	}
}

func (r *firestoreOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	if _, err := r.client.Collection(ordersCollection).Doc(order.ID).Create(ctx, order); err != nil {
		return mapError(err, "Order", "create order")
	}
	return nil
}

func (r *firestoreOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	doc, err := r.client.Collection(ordersCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapError(err, "Order", "get order")
	}

	var order entity.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, errors.Internal("Failed to parse order data", err)
	}
	order.ID = doc.Ref.ID
	return &order, nil
}

func (r *firestoreOrderRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	query := r.client.Collection(ordersCollection).Where("userId", "==", userID)
	return r.list(ctx, query)
}

func (r *firestoreOrderRepository) List(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error) {
	query := r.client.Collection(ordersCollection).Query
	if status != "" {
		query = query.Where("status", "==", string(status))
	}
	return r.list(ctx, query)
}

func (r *firestoreOrderRepository) list(ctx context.Context, query firestore.Query) ([]*entity.Order, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	var orders []*entity.Order
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapError(err, "Order", "list orders")
		}

		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			return nil, errors.Internal("Failed to parse order data", err)
		}
		order.ID = doc.Ref.ID
		orders = append(orders, &order)
	}
	return orders, nil
}

func (r *firestoreOrderRepository) Mutate(ctx context.Context, id string, fn func(order *entity.Order) error) (*entity.Order, error) {
	docRef := r.client.Collection(ordersCollection).Doc(id)

	var result *entity.Order
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			return err
		}

		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			return errors.Internal("Failed to parse order data", err)
		}
		order.ID = id

		if err := fn(&order); err != nil {
			return err
		}

		if err := tx.Set(docRef, order); err != nil {
			return err
		}
		result = &order
		return nil
	})
	if err != nil {
		return nil, mapError(err, "Order", "update order")
	}

	return result, nil
}

type firestoreOrderItemRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderItemRepository(client *firestore.Client) repository.OrderItemRepository {
	return &firestoreOrderItemRepository{
		client: client,
	}
}

// CreateAll writes the line items through a bulk writer. Items are written
// independently; the first failed write is returned.
func (r *firestoreOrderItemRepository) CreateAll(ctx context.Context, items []entity.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	bw := r.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(items))
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.New().String()
		}
		job, err := bw.Create(r.client.Collection(orderItemsCollection).Doc(items[i].ID), items[i])
		if err != nil {
			bw.End()
			return errors.Internal("Failed to queue order item", err)
		}
		jobs = append(jobs, job)
	}
	bw.End()

	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return mapError(err, "Order item", "create order items")
		}
	}
	return nil
}

func (r *firestoreOrderItemRepository) ListByOrder(ctx context.Context, orderID string) ([]entity.OrderItem, error) {
	iter := r.client.Collection(orderItemsCollection).Where("orderId", "==", orderID).Documents(ctx)
	defer iter.Stop()

	var items []entity.OrderItem
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapError(err, "Order item", "list order items")
		}

		var item entity.OrderItem
		if err := doc.DataTo(&item); err != nil {
			return nil, errors.Internal("Failed to parse order item data", err)
		}
		items = append(items, item)
	}
	return items, nil
}
