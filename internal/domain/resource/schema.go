// Package resource describes admin-managed document types so one list,
// create, edit and delete flow can serve all of them.
package resource

import (
	"net/url"
	"time"
)

// Record is the pointer method set every managed document provides.
type Record[T any] interface {
	*T
	GetID() string
	SetID(id string)
	GetCreatedAt() time.Time
	SetCreatedAt(t time.Time)
	Touch(now time.Time)
	Normalize()
	Matches(search string) bool
}

// Schema is the descriptor for one managed document type.
type Schema[T any] struct {
	// Name is the singular display name used in messages.
	Name string
	// Collection is the Firestore collection holding the documents.
	Collection string
	// Path is the admin list location edit screens fall back to.
	Path string
	// Filter applies list query parameters beyond free-text search.
	Filter func(doc *T, params url.Values) bool
	// Less orders list results.
	Less func(a, b *T) bool
}
