// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"

	"gopkg.in/yaml.v3"

	libcsd "github.com/bellrise/libcsd"
	"github.com/bellrise/libcsd/store"
)

// GenList creates a list holding 0..n-1.
func GenList(n int) *libcsd.List[int] {
	l := libcsd.NewListWith[int](libcsd.WithCapacity(n))
	for i := 0; i < n; i++ {
		l.Append(i)
	}
	return l
}

// GenMap creates a map with keys "k0".."k{n-1}" mapped to their index.
func GenMap(n int) *libcsd.Map[string, int] {
	m := libcsd.NewMapWith[string, int](libcsd.WithCapacity(n))
	for i := 0; i < n; i++ {
		m.Append(Key(i), i)
	}
	return m
}

// Key returns the key GenMap uses for index i.
func Key(i int) string {
	return fmt.Sprintf("k%d", i)
}

// GenDocument creates a document over GenMap(n).
func GenDocument(n int) store.Document[int] {
	return store.NewDocument(GenMap(n))
}

// GenDocumentYAML generates YAML bytes for a document with n values.
func GenDocumentYAML(n int) []byte {
	data, err := yaml.Marshal(GenDocument(n))
	if err != nil {
		panic(err)
	}
	return data
}
