package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelNotifier(t *testing.T) {
	inner, err := NewYAMLPersister[string](t.TempDir())
	require.NoError(t, err)

	ch := make(chan Change, 4)
	n := NewChannelNotifier[string](inner, ch)
	ctx := context.Background()

	doc := sampleDocument()
	require.NoError(t, n.Save(ctx, doc))
	require.NoError(t, n.Delete(ctx, doc.ID))
	assert.Error(t, n.Delete(ctx, doc.ID), "failed writes are not announced")

	require.NoError(t, n.Close())
	var got []Change
	for c := range ch {
		got = append(got, c)
	}
	require.Len(t, got, 2)
	assert.Equal(t, OpSave, got[0].Op)
	assert.Equal(t, doc.ID, got[0].ID)
	assert.Equal(t, OpDelete, got[1].Op)
	assert.Equal(t, "delete", got[1].Op.String())
}

func TestChannelNotifier_DropsWhenFull(t *testing.T) {
	inner, err := NewJSONPersister[int](t.TempDir())
	require.NoError(t, err)

	ch := make(chan Change)
	n := NewChannelNotifier[int](inner, ch)
	doc := NewDocument[int](nil)
	require.NoError(t, n.Save(context.Background(), doc), "nobody listening, change dropped")

	ids, err := n.IDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{doc.ID}, ids.Slice())
}
