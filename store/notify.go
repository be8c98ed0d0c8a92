package store

import (
	"context"
	"time"

	libcsd "github.com/bellrise/libcsd"
)

// Op is the kind of change a Change announces.
type Op int

const (
	OpSave Op = iota + 1
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpSave:
		return "save"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Change describes one successful write to a store.
type Change struct {
	Op Op
	ID string
	At time.Time
}

// ChannelNotifier wraps a Persister and forwards every successful Save and
// Delete to a channel. Publishing never blocks: when the channel is full the
// change is dropped.
type ChannelNotifier[V any] struct {
	inner Persister[V]
	ch    chan<- Change
}

// NewChannelNotifier wraps inner, publishing to ch.
func NewChannelNotifier[V any](inner Persister[V], ch chan<- Change) *ChannelNotifier[V] {
	return &ChannelNotifier[V]{inner: inner, ch: ch}
}

func (n *ChannelNotifier[V]) Save(ctx context.Context, doc Document[V]) error {
	if err := n.inner.Save(ctx, doc); err != nil {
		return err
	}
	return n.publish(ctx, Change{Op: OpSave, ID: doc.ID, At: time.Now()})
}

func (n *ChannelNotifier[V]) Load(ctx context.Context, id string) (Document[V], error) {
	return n.inner.Load(ctx, id)
}

func (n *ChannelNotifier[V]) Delete(ctx context.Context, id string) error {
	if err := n.inner.Delete(ctx, id); err != nil {
		return err
	}
	return n.publish(ctx, Change{Op: OpDelete, ID: id, At: time.Now()})
}

func (n *ChannelNotifier[V]) IDs(ctx context.Context) (*libcsd.List[string], error) {
	return n.inner.IDs(ctx)
}

// Close closes the output channel.
func (n *ChannelNotifier[V]) Close() error {
	close(n.ch)
	return nil
}

func (n *ChannelNotifier[V]) publish(ctx context.Context, c Change) error {
	select {
	case n.ch <- c:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
