package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"avrstore/internal/domain/catalog"
	"avrstore/internal/domain/entity"
	"avrstore/internal/domain/repository"
	"avrstore/pkg/errors"
)

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{
		client: client,
	}
}

func (r *firestoreProductRepository) Query(ctx context.Context, plan catalog.Plan, cursor string, limit int) ([]*entity.Product, string, error) {
	query := r.client.Collection(productsCollection).Query

	for _, pred := range plan.Predicates {
		query = query.Where(pred.Field, string(pred.Op), pred.Value)
	}
	for _, order := range plan.Order {
		direction := firestore.Asc
		if order.Direction == catalog.Desc {
			direction = firestore.Desc
		}
		query = query.OrderBy(order.Field, direction)
	}

	if cursor != "" {
		snap, err := r.client.Collection(productsCollection).Doc(cursor).Get(ctx)
		if err != nil {
			mapped := mapError(err, "Product", "read cursor")
			if errors.Is(mapped, errors.CodeNotFound) {
				return nil, "", errors.BadRequest("Invalid cursor", err)
			}
			return nil, "", mapped
		}
		query = query.StartAfter(snap)
	}

	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var products []*entity.Product
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, "", mapError(err, "Product", "query products")
		}

		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, "", errors.Internal("Failed to parse product data", err)
		}
		product.ID = doc.Ref.ID
		products = append(products, &product)
	}

	next := ""
	if len(products) > 0 {
		next = products[len(products)-1].ID
	}
	return products, next, nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.client.Collection(productsCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapError(err, "Product", "get product")
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}
	product.ID = doc.Ref.ID

	return &product, nil
}

func (r *firestoreProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = r.client.Collection(productsCollection).NewDoc().ID
	}

	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	if _, err := r.client.Collection(productsCollection).Doc(product.ID).Set(ctx, product); err != nil {
		return errors.Internal("Failed to create product", err)
	}
	return nil
}

func (r *firestoreProductRepository) Update(ctx context.Context, product *entity.Product) error {
	if _, err := r.client.Collection(productsCollection).Doc(product.ID).Set(ctx, product); err != nil {
		return errors.Internal("Failed to update product", err)
	}
	return nil
}

// AdjustStock applies delta with a server-side increment so concurrent
// checkouts do not overwrite each other.
func (r *firestoreProductRepository) AdjustStock(ctx context.Context, id string, delta int) error {
	_, err := r.client.Collection(productsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "stock", Value: firestore.Increment(delta)},
		{Path: "updatedAt", Value: time.Now()},
	})
	return mapError(err, "Product", "update stock")
}

func (r *firestoreProductRepository) AttachImage(ctx context.Context, id, url string) error {
	_, err := r.client.Collection(productsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "images", Value: firestore.ArrayUnion(url)},
		{Path: "updatedAt", Value: time.Now()},
	})
	return mapError(err, "Product", "attach image")
}
