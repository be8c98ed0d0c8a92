package benchmarks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bellrise/libcsd/store"
)

func TestGenerators(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2}, GenList(3).Slice())

	m := GenMap(3)
	assert.Equal(t, []string{"k0", "k1", "k2"}, m.Keys().Slice())

	var doc store.Document[int]
	require.NoError(t, yaml.Unmarshal(GenDocumentYAML(5), &doc))
	assert.Equal(t, 5, doc.Len())
	assert.Len(t, doc.ID, 36)
}
