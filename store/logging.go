package store

import (
	"context"
	"log"
	"time"

	libcsd "github.com/bellrise/libcsd"
)

// LoggingPersister wraps a Persister and logs every call with its duration.
type LoggingPersister[V any] struct {
	inner  Persister[V]
	logger *log.Logger
}

// NewLoggingPersister wraps inner. A nil logger means log.Default().
func NewLoggingPersister[V any](inner Persister[V], logger *log.Logger) *LoggingPersister[V] {
	if logger == nil {
		logger = log.Default()
	}
	return &LoggingPersister[V]{inner: inner, logger: logger}
}

func (p *LoggingPersister[V]) Save(ctx context.Context, doc Document[V]) error {
	p.logger.Printf("LOG: Saving document %q with %d values", doc.ID, doc.Len())
	start := time.Now()
	err := p.inner.Save(ctx, doc)
	p.logger.Printf("LOG: Save %q completed in %v: %v", doc.ID, time.Since(start), err)
	return err
}

func (p *LoggingPersister[V]) Load(ctx context.Context, id string) (Document[V], error) {
	p.logger.Printf("LOG: Loading document %q", id)
	start := time.Now()
	doc, err := p.inner.Load(ctx, id)
	p.logger.Printf("LOG: Load %q completed in %v: %v", id, time.Since(start), err)
	return doc, err
}

func (p *LoggingPersister[V]) Delete(ctx context.Context, id string) error {
	p.logger.Printf("LOG: Deleting document %q", id)
	start := time.Now()
	err := p.inner.Delete(ctx, id)
	p.logger.Printf("LOG: Delete %q completed in %v: %v", id, time.Since(start), err)
	return err
}

func (p *LoggingPersister[V]) IDs(ctx context.Context) (*libcsd.List[string], error) {
	start := time.Now()
	ids, err := p.inner.IDs(ctx)
	n := 0
	if ids != nil {
		n = ids.Len()
	}
	p.logger.Printf("LOG: Listed %d documents in %v: %v", n, time.Since(start), err)
	return ids, err
}
