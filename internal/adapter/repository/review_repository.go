package repository

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"avrstore/internal/domain/entity"
	"avrstore/internal/domain/repository"
	"avrstore/pkg/errors"
)

type firestoreReviewRepository struct {
	client *firestore.Client
}

func NewFirestoreReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &firestoreReviewRepository{
		client: client,
	}
}

func (r *firestoreReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == "" {
		review.ID = r.client.Collection(reviewsCollection).NewDoc().ID
	}
	if _, err := r.client.Collection(reviewsCollection).Doc(review.ID).Set(ctx, review); err != nil {
		return errors.Internal("Failed to create review", err)
	}
	return nil
}

// ListByProduct sorts in memory so the query needs only the single-field
// productId index.
func (r *firestoreReviewRepository) ListByProduct(ctx context.Context, productID string, limit int) ([]*entity.Review, error) {
	iter := r.client.Collection(reviewsCollection).Where("productId", "==", productID).Documents(ctx)
	defer iter.Stop()

	var reviews []*entity.Review
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapError(err, "Review", "list reviews")
		}

		var review entity.Review
		if err := doc.DataTo(&review); err != nil {
			return nil, errors.Internal("Failed to parse review data", err)
		}
		review.ID = doc.Ref.ID
		reviews = append(reviews, &review)
	}

	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	if limit > 0 && len(reviews) > limit {
		reviews = reviews[:limit]
	}
	return reviews, nil
}
