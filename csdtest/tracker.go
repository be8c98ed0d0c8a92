// Package csdtest provides test doubles for code built on libcsd.
// Tracked values count their own allocations and releases so tests can
// assert exact ownership behaviour instead of relying on leak checks.
package csdtest

import (
	"fmt"
	"sync/atomic"
)

// Tracker records allocations and releases of the Tracked values it created.
// Safe for concurrent use.
type Tracker struct {
	allocs      atomic.Int64
	frees       atomic.Int64
	doubleFrees atomic.Int64
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// New allocates a Tracked value.
func (t *Tracker) New(id int) Tracked {
	t.allocs.Add(1)
	return Tracked{ID: id, tracker: t, freed: new(atomic.Bool)}
}

// Allocs returns the number of Tracked values created, clones included.
func (t *Tracker) Allocs() int64 { return t.allocs.Load() }

// Frees returns the number of Tracked values released.
func (t *Tracker) Frees() int64 { return t.frees.Load() }

// DoubleFrees returns how many releases hit an already released value.
func (t *Tracker) DoubleFrees() int64 { return t.doubleFrees.Load() }

// Live returns allocations not yet released.
func (t *Tracker) Live() int64 { return t.allocs.Load() - t.frees.Load() }

// Tracked is a value whose copies and releases are visible to its Tracker.
// Every Clone is a new allocation with its own release state.
type Tracked struct {
	ID      int
	tracker *Tracker
	freed   *atomic.Bool
}

// Clone implements libcsd.Cloner.
func (v Tracked) Clone() Tracked {
	return v.tracker.New(v.ID)
}

// Release implements libcsd.Releaser.
func (v Tracked) Release() {
	if v.freed == nil {
		return
	}
	if v.freed.Swap(true) {
		v.tracker.doubleFrees.Add(1)
		return
	}
	v.tracker.frees.Add(1)
}

// Released reports whether this allocation has been released.
func (v Tracked) Released() bool {
	return v.freed != nil && v.freed.Load()
}

// Equal compares by ID.
func (v Tracked) Equal(other Tracked) bool { return v.ID == other.ID }

func (v Tracked) String() string { return fmt.Sprintf("tracked#%d", v.ID) }
