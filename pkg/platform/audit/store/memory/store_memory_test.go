package memory

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathwise/pkg/platform/audit"
)

func TestAppendAndRecent(t *testing.T) {
	store := New(10)
	ctx := context.Background()

	for i := range 3 {
		require.NoError(t, store.Append(ctx, audit.Event{RequestID: strconv.Itoa(i)}))
	}

	recent := store.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "1", recent[0].RequestID)
	assert.Equal(t, "2", recent[1].RequestID)

	all := store.Recent(0)
	assert.Len(t, all, 3)
}

func TestAppendEvictsOldest(t *testing.T) {
	store := New(3)
	ctx := context.Background()

	for i := range 5 {
		require.NoError(t, store.Append(ctx, audit.Event{RequestID: strconv.Itoa(i)}))
	}

	all := store.Recent(0)
	require.Len(t, all, 3)
	assert.Equal(t, "2", all[0].RequestID)
	assert.Equal(t, "4", all[2].RequestID)
}

func TestRecentCopiesEvents(t *testing.T) {
	store := New(10)
	require.NoError(t, store.Append(context.Background(), audit.Event{RequestID: "a"}))

	out := store.Recent(1)
	out[0].RequestID = "mutated"

	assert.Equal(t, "a", store.Recent(1)[0].RequestID)
}
