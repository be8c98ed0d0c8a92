package libcsd

import (
	"iter"
	"strings"
)

// Pair is one key-value entry of a Map.
type Pair[K comparable, V any] struct {
	Key   K `json:"key" yaml:"key"`
	Value V `json:"value" yaml:"value"`
}

// Clone copies both halves through their Cloner implementations.
func (p Pair[K, V]) Clone() Pair[K, V] {
	return Pair[K, V]{Key: copyOf(p.Key), Value: copyOf(p.Value)}
}

// Release releases both halves.
func (p Pair[K, V]) Release() {
	release(&p.Key)
	release(&p.Value)
}

func (p Pair[K, V]) String() string {
	k, ok := render(any(p.Key))
	if !ok {
		k = "?"
	}
	v, ok := render(any(p.Value))
	if !ok {
		v = "?"
	}
	return "{" + k + ": " + v + "}"
}

// Map stores key-value pairs in insertion order. Keys are unique and lookups
// scan linearly; there is no hashing. Removing a pair shifts the later pairs
// down, so the remaining order is unchanged.
//
// A missing key is never inserted implicitly: Update and Ref fail with an
// *IndexError, Get and Pop return an empty Maybe.
//
// The zero value is an empty map ready to use.
type Map[K comparable, V any] struct {
	pairs List[Pair[K, V]]
}

// NewMap returns a map built by appending pairs in order.
func NewMap[K comparable, V any](pairs ...Pair[K, V]) *Map[K, V] {
	m := &Map[K, V]{}
	for _, p := range pairs {
		m.Append(p.Key, p.Value)
	}
	return m
}

// Len returns the number of pairs.
func (m *Map[K, V]) Len() int { return m.pairs.Len() }

// HasKey reports whether key is present.
func (m *Map[K, V]) HasKey(key K) bool { return m.find(key) >= 0 }

// Append adds a new pair, or updates the value when key is already present.
func (m *Map[K, V]) Append(key K, value V) *Map[K, V] {
	if i := m.find(key); i >= 0 {
		m.set(i, value)
		return m
	}
	m.pairs.Append(Pair[K, V]{Key: key, Value: value})
	return m
}

// Update overwrites the value of key in place.
func (m *Map[K, V]) Update(key K, value V) error {
	i := m.find(key)
	if i < 0 {
		return newKeyError(key)
	}
	m.set(i, value)
	return nil
}

// Get returns the value of key, or an empty Maybe.
func (m *Map[K, V]) Get(key K) Maybe[V] {
	i := m.find(key)
	if i < 0 {
		return None[V]()
	}
	return Some(m.pairs.slots[i].Value)
}

// Pop removes key and returns what Get would have returned. The value is
// handed over to the caller and is not released.
func (m *Map[K, V]) Pop(key K) Maybe[V] {
	i := m.find(key)
	if i < 0 {
		return None[V]()
	}
	p, _ := m.pairs.Pop(i)
	release(&p.Key)
	return Some(p.Value)
}

// PopItem removes and returns the oldest pair.
func (m *Map[K, V]) PopItem() (Pair[K, V], error) {
	return m.pairs.Pop(0)
}

// Remove removes the pair for key. It reports whether a pair was removed.
func (m *Map[K, V]) Remove(key K) bool {
	i := m.find(key)
	if i < 0 {
		return false
	}
	_ = m.pairs.Remove(i)
	return true
}

// Ref returns a pointer to the value of key, valid until the pair is removed.
func (m *Map[K, V]) Ref(key K) (*V, error) {
	i := m.find(key)
	if i < 0 {
		return nil, newKeyError(key)
	}
	return &m.pairs.slots[i].Value, nil
}

// Keys returns a new list of the keys in insertion order.
func (m *Map[K, V]) Keys() *List[K] {
	keys := NewListWith[K](WithCapacity(m.Len()))
	for i := 0; i < m.pairs.n; i++ {
		keys.Append(m.pairs.slots[i].Key)
	}
	return keys
}

// Values returns a new list of the values in insertion order.
func (m *Map[K, V]) Values() *List[V] {
	values := NewListWith[V](WithCapacity(m.Len()))
	for i := 0; i < m.pairs.n; i++ {
		values.Append(m.pairs.slots[i].Value)
	}
	return values
}

// Items returns a new list of the pairs in insertion order.
func (m *Map[K, V]) Items() *List[Pair[K, V]] {
	return m.pairs.Clone()
}

// Clear removes every pair.
func (m *Map[K, V]) Clear() { m.pairs.Clear() }

// Clone returns a deep copy.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{pairs: *m.pairs.Clone()}
}

// Merge appends every pair of other, updating keys that already exist.
func (m *Map[K, V]) Merge(other *Map[K, V]) *Map[K, V] {
	for _, p := range other.pairs.Slice() {
		m.Append(p.Key, p.Value)
	}
	return m
}

// Subtract removes every key present in other.
func (m *Map[K, V]) Subtract(other *Map[K, V]) *Map[K, V] {
	for _, k := range other.Keys().Slice() {
		m.Remove(k)
	}
	return m
}

// Equal reports whether both maps hold equal pairs in the same order.
func (m *Map[K, V]) Equal(other *Map[K, V]) bool {
	if m.Len() != other.Len() {
		return false
	}
	for i := 0; i < m.pairs.n; i++ {
		a, b := m.pairs.slots[i], other.pairs.slots[i]
		if a.Key != b.Key {
			return false
		}
		if eq, ok := equalValues(a.Value, b.Value); !ok || !eq {
			return false
		}
	}
	return true
}

// All iterates over key/value pairs in insertion order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := 0; i < m.pairs.n; i++ {
			p := m.pairs.slots[i]
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// String renders the map as "{k: v, k2: v2}".
func (m *Map[K, V]) String() string {
	if m.Len() == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteByte('{')
	for i := 0; i < m.pairs.n; i++ {
		p := m.pairs.slots[i]
		k, ok := renderCell(&p.Key)
		if !ok {
			return "<map (non-printable elements)>"
		}
		v, ok := renderCell(&p.Value)
		if !ok {
			return "<map (non-printable elements)>"
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
	}
	b.WriteByte('}')
	return b.String()
}

func (m *Map[K, V]) find(key K) int {
	for i := 0; i < m.pairs.n; i++ {
		if m.pairs.slots[i].Key == key {
			return i
		}
	}
	return -1
}

func (m *Map[K, V]) set(i int, value V) {
	cell := &m.pairs.slots[i].Value
	c := copyOf(value)
	release(cell)
	*cell = c
}
