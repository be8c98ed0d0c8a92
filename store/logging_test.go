package store

import (
	"bytes"
	"context"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingPersister(t *testing.T) {
	inner, err := NewJSONPersister[string](t.TempDir())
	require.NoError(t, err)

	var buf bytes.Buffer
	p := NewLoggingPersister[string](inner, log.New(&buf, "", 0))
	ctx := context.Background()

	doc := sampleDocument()
	require.NoError(t, p.Save(ctx, doc))
	_, err = p.Load(ctx, doc.ID)
	require.NoError(t, err)
	_, err = p.Load(ctx, "missing")
	require.Error(t, err)
	_, err = p.IDs(ctx)
	require.NoError(t, err)
	require.NoError(t, p.Delete(ctx, doc.ID))

	out := buf.String()
	assert.Contains(t, out, "LOG: Saving document \""+doc.ID+"\" with 3 values")
	assert.Contains(t, out, "LOG: Load \"missing\" completed in")
	assert.Contains(t, out, "file does not exist")
	assert.Contains(t, out, "LOG: Listed 1 documents")
	assert.Contains(t, out, "LOG: Deleting document")
	assert.Equal(t, 9, strings.Count(out, "\n"))
}

func TestLoggingPersister_DefaultLogger(t *testing.T) {
	inner, err := NewJSONPersister[string](t.TempDir())
	require.NoError(t, err)
	p := NewLoggingPersister[string](inner, nil)
	assert.Equal(t, log.Default(), p.logger)
}
