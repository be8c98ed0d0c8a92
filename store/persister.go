package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	libcsd "github.com/bellrise/libcsd"
)

var (
	_ Persister[any] = (*JSONPersister[any])(nil)
	_ Persister[any] = (*YAMLPersister[any])(nil)
)

// JSONPersister stores each document as <dir>/<id>.json.
type JSONPersister[V any] struct {
	files files
}

// NewJSONPersister creates a JSONPersister, ensuring the directory exists.
func NewJSONPersister[V any](dir string, opts ...Option) (*JSONPersister[V], error) {
	f, err := openDir(dir, newOptions(".json", opts))
	if err != nil {
		return nil, err
	}
	return &JSONPersister[V]{files: f}, nil
}

func (p *JSONPersister[V]) Save(ctx context.Context, doc Document[V]) error {
	data, err := p.marshal(doc)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	return p.files.write(ctx, doc.ID, data)
}

// marshal writes compact JSON when the indent is zero.
func (p *JSONPersister[V]) marshal(doc Document[V]) ([]byte, error) {
	if p.files.indent <= 0 {
		return json.Marshal(doc)
	}
	return json.MarshalIndent(doc, "", strings.Repeat(" ", p.files.indent))
}

func (p *JSONPersister[V]) Load(ctx context.Context, id string) (Document[V], error) {
	data, err := p.files.read(ctx, id)
	if err != nil {
		return Document[V]{}, err
	}
	var doc Document[V]
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document[V]{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return restored(doc, id), nil
}

func (p *JSONPersister[V]) Delete(ctx context.Context, id string) error {
	return p.files.remove(ctx, id)
}

func (p *JSONPersister[V]) IDs(ctx context.Context) (*libcsd.List[string], error) {
	return p.files.ids(ctx)
}

// YAMLPersister stores each document as <dir>/<id>.yaml. Values keep their
// insertion order in the file.
type YAMLPersister[V any] struct {
	files files
}

// NewYAMLPersister creates a YAMLPersister, ensuring the directory exists.
func NewYAMLPersister[V any](dir string, opts ...Option) (*YAMLPersister[V], error) {
	f, err := openDir(dir, newOptions(".yaml", opts))
	if err != nil {
		return nil, err
	}
	return &YAMLPersister[V]{files: f}, nil
}

func (p *YAMLPersister[V]) Save(ctx context.Context, doc Document[V]) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(p.files.indent)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	return p.files.write(ctx, doc.ID, buf.Bytes())
}

func (p *YAMLPersister[V]) Load(ctx context.Context, id string) (Document[V], error) {
	data, err := p.files.read(ctx, id)
	if err != nil {
		return Document[V]{}, err
	}
	var doc Document[V]
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document[V]{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return restored(doc, id), nil
}

func (p *YAMLPersister[V]) Delete(ctx context.Context, id string) error {
	return p.files.remove(ctx, id)
}

func (p *YAMLPersister[V]) IDs(ctx context.Context) (*libcsd.List[string], error) {
	return p.files.ids(ctx)
}

// restored pins the ID to the file name and fills in a missing value map.
func restored[V any](doc Document[V], id string) Document[V] {
	doc.ID = id
	if doc.Values == nil {
		doc.Values = libcsd.NewMap[string, V]()
	}
	return doc
}
