package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"avrstore/internal/domain/repository"
	"avrstore/internal/domain/resource"
	"avrstore/pkg/errors"
)

// firestoreDocumentRepository stores one admin-managed type in the
// collection named by its schema.
type firestoreDocumentRepository[T any, PT resource.Record[T]] struct {
	client     *firestore.Client
	collection string
	name       string
}

func NewFirestoreDocumentRepository[T any, PT resource.Record[T]](client *firestore.Client, schema resource.Schema[T]) repository.DocumentRepository[T] {
	return &firestoreDocumentRepository[T, PT]{
		client:     client,
		collection: schema.Collection,
		name:       schema.Name,
	}
}

func (r *firestoreDocumentRepository[T, PT]) Create(ctx context.Context, doc *T) error {
	record := PT(doc)
	if record.GetID() == "" {
		record.SetID(r.client.Collection(r.collection).NewDoc().ID)
	}

	if _, err := r.client.Collection(r.collection).Doc(record.GetID()).Create(ctx, doc); err != nil {
		return mapError(err, r.name, "create "+r.collection)
	}
	return nil
}

func (r *firestoreDocumentRepository[T, PT]) GetByID(ctx context.Context, id string) (*T, error) {
	snap, err := r.client.Collection(r.collection).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapError(err, r.name, "get "+r.collection)
	}

	var doc T
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Internal("Failed to parse "+r.collection+" data", err)
	}
	PT(&doc).SetID(snap.Ref.ID)
	return &doc, nil
}

func (r *firestoreDocumentRepository[T, PT]) List(ctx context.Context) ([]*T, error) {
	iter := r.client.Collection(r.collection).Documents(ctx)
	defer iter.Stop()

	var docs []*T
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapError(err, r.name, "list "+r.collection)
		}

		var doc T
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Internal("Failed to parse "+r.collection+" data", err)
		}
		PT(&doc).SetID(snap.Ref.ID)
		docs = append(docs, &doc)
	}
	return docs, nil
}

func (r *firestoreDocumentRepository[T, PT]) Update(ctx context.Context, doc *T) error {
	if _, err := r.client.Collection(r.collection).Doc(PT(doc).GetID()).Set(ctx, doc); err != nil {
		return mapError(err, r.name, "update "+r.collection)
	}
	return nil
}

func (r *firestoreDocumentRepository[T, PT]) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection(r.collection).Doc(id).Delete(ctx); err != nil {
		return mapError(err, r.name, "delete "+r.collection)
	}
	return nil
}

func (r *firestoreDocumentRepository[T, PT]) SetField(ctx context.Context, id, field string, value interface{}) error {
	_, err := r.client.Collection(r.collection).Doc(id).Update(ctx, []firestore.Update{
		{Path: field, Value: value},
		{Path: "updatedAt", Value: time.Now()},
	})
	return mapError(err, r.name, "update "+r.collection)
}
