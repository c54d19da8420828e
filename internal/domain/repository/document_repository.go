package repository

import "context"

// DocumentRepository stores whole documents of one admin-managed type.
type DocumentRepository[T any] interface {
	Create(ctx context.Context, doc *T) error
	GetByID(ctx context.Context, id string) (*T, error)
	List(ctx context.Context) ([]*T, error)
	Update(ctx context.Context, doc *T) error
	Delete(ctx context.Context, id string) error
	SetField(ctx context.Context, id, field string, value interface{}) error
}
