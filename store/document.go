// Package store persists Map documents as JSON or YAML files, one file per
// document, plus decorators that log or announce every change.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	libcsd "github.com/bellrise/libcsd"
)

// Document is an ordered set of named values stored under a unique ID.
type Document[V any] struct {
	ID        string                 `json:"id" yaml:"id"`
	Values    *libcsd.Map[string, V] `json:"values" yaml:"values"`
	Timestamp time.Time              `json:"timestamp" yaml:"timestamp"`
}

// NewDocument wraps values in a Document with a fresh random ID. A nil map
// is replaced by an empty one.
func NewDocument[V any](values *libcsd.Map[string, V]) Document[V] {
	if values == nil {
		values = libcsd.NewMap[string, V]()
	}
	return Document[V]{
		ID:        uuid.NewString(),
		Values:    values,
		Timestamp: time.Now().UTC(),
	}
}

// Len returns the number of values, treating a nil map as empty.
func (d Document[V]) Len() int {
	if d.Values == nil {
		return 0
	}
	return d.Values.Len()
}

// Persister saves and restores documents.
type Persister[V any] interface {
	Save(ctx context.Context, doc Document[V]) error
	Load(ctx context.Context, id string) (Document[V], error)
	Delete(ctx context.Context, id string) error
	IDs(ctx context.Context) (*libcsd.List[string], error)
}
