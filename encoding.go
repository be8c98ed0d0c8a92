package libcsd

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the list as a JSON array.
func (l *List[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Slice())
}

// UnmarshalJSON replaces the contents with the decoded array.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("list: %w", err)
	}
	l.Clear()
	l.reserve(len(values))
	for _, v := range values {
		l.Append(v)
	}
	return nil
}

// MarshalYAML encodes the list as a YAML sequence.
func (l *List[T]) MarshalYAML() (any, error) {
	return l.Slice(), nil
}

// UnmarshalYAML replaces the contents with the decoded sequence.
func (l *List[T]) UnmarshalYAML(node *yaml.Node) error {
	var values []T
	if err := node.Decode(&values); err != nil {
		return fmt.Errorf("list: %w", err)
	}
	l.Clear()
	l.reserve(len(values))
	for _, v := range values {
		l.Append(v)
	}
	return nil
}

// MarshalJSON encodes the map as an array of {"key", "value"} objects so
// that insertion order and non-string keys survive.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.pairs.Slice())
}

// UnmarshalJSON replaces the contents with the decoded pairs. Repeated keys
// keep the last value.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	var pairs []Pair[K, V]
	if err := json.Unmarshal(data, &pairs); err != nil {
		return fmt.Errorf("map: %w", err)
	}
	m.Clear()
	for _, p := range pairs {
		m.Append(p.Key, p.Value)
	}
	return nil
}

// MarshalYAML encodes the map as a YAML mapping in insertion order.
func (m *Map[K, V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i := 0; i < m.pairs.n; i++ {
		p := m.pairs.slots[i]
		var k, v yaml.Node
		if err := k.Encode(p.Key); err != nil {
			return nil, fmt.Errorf("map: key: %w", err)
		}
		if err := v.Encode(p.Value); err != nil {
			return nil, fmt.Errorf("map: value: %w", err)
		}
		node.Content = append(node.Content, &k, &v)
	}
	return node, nil
}

// UnmarshalYAML replaces the contents with the decoded mapping, keeping the
// document order.
func (m *Map[K, V]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("map: line %d: expected a mapping, got %s", node.Line, node.Tag)
	}
	m.Clear()
	for i := 0; i+1 < len(node.Content); i += 2 {
		var k K
		var v V
		if err := node.Content[i].Decode(&k); err != nil {
			return fmt.Errorf("map: key: %w", err)
		}
		if err := node.Content[i+1].Decode(&v); err != nil {
			return fmt.Errorf("map: value of %v: %w", k, err)
		}
		m.Append(k, v)
	}
	return nil
}

// MarshalJSON encodes an empty Maybe as null.
func (m Maybe[T]) MarshalJSON() ([]byte, error) {
	if !m.ok {
		return []byte("null"), nil
	}
	return json.Marshal(*m.value)
}

// UnmarshalJSON decodes null as an empty Maybe.
func (m *Maybe[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = None[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("maybe: %w", err)
	}
	*m = Some(v)
	return nil
}

// MarshalYAML encodes an empty Maybe as null.
func (m Maybe[T]) MarshalYAML() (any, error) {
	if !m.ok {
		return nil, nil
	}
	return *m.value, nil
}

// UnmarshalYAML decodes null as an empty Maybe.
func (m *Maybe[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.ShortTag() == "!!null" {
		*m = None[T]()
		return nil
	}
	var v T
	if err := node.Decode(&v); err != nil {
		return fmt.Errorf("maybe: %w", err)
	}
	*m = Some(v)
	return nil
}
