package notice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStore_PutAndPop(t *testing.T) {
	t.Run("pop returns stored notice exactly once", func(t *testing.T) {
		store := NewInMemoryStore()
		defer store.Close()
		ctx := context.Background()

		err := store.Put(ctx, "session-1", Notice{Kind: KindSuccess, Message: "Expense added successfully!"}, time.Minute)
		require.NoError(t, err)

		n, err := store.Pop(ctx, "session-1")
		require.NoError(t, err)
		require.NotNil(t, n)
		assert.Equal(t, KindSuccess, n.Kind)
		assert.Equal(t, "Expense added successfully!", n.Message)

		n, err = store.Pop(ctx, "session-1")
		require.NoError(t, err)
		assert.Nil(t, n)
	})

	t.Run("pop returns nil for unknown session", func(t *testing.T) {
		store := NewInMemoryStore()
		defer store.Close()

		n, err := store.Pop(context.Background(), "nobody")
		require.NoError(t, err)
		assert.Nil(t, n)
	})

	t.Run("put replaces pending notice", func(t *testing.T) {
		store := NewInMemoryStore()
		defer store.Close()
		ctx := context.Background()

		require.NoError(t, store.Put(ctx, "session-1", Notice{Kind: KindSuccess, Message: "first"}, time.Minute))
		require.NoError(t, store.Put(ctx, "session-1", Notice{Kind: KindError, Message: "second"}, time.Minute))

		n, err := store.Pop(ctx, "session-1")
		require.NoError(t, err)
		require.NotNil(t, n)
		assert.Equal(t, "second", n.Message)
		assert.Equal(t, 0, store.Size())
	})

	t.Run("expired notice is not returned", func(t *testing.T) {
		store := NewInMemoryStore()
		defer store.Close()
		ctx := context.Background()

		require.NoError(t, store.Put(ctx, "session-1", Notice{Kind: KindSuccess, Message: "stale"}, -time.Second))

		n, err := store.Pop(ctx, "session-1")
		require.NoError(t, err)
		assert.Nil(t, n)
	})

	t.Run("notices are isolated per session", func(t *testing.T) {
		store := NewInMemoryStore()
		defer store.Close()
		ctx := context.Background()

		require.NoError(t, store.Put(ctx, "alice", Notice{Kind: KindSuccess, Message: "for alice"}, time.Minute))

		n, err := store.Pop(ctx, "bob")
		require.NoError(t, err)
		assert.Nil(t, n)

		n, err = store.Pop(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, n)
		assert.Equal(t, "for alice", n.Message)
	})
}

func TestInMemoryStore_Cleanup(t *testing.T) {
	store := NewInMemoryStore()
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "session-1", Notice{Kind: KindSuccess, Message: "stale"}, -time.Second))
	require.NoError(t, store.Put(ctx, "session-2", Notice{Kind: KindSuccess, Message: "fresh"}, time.Hour))

	store.cleanup()

	assert.Equal(t, 1, store.Size())
}

func TestInMemoryStore_CloseIsIdempotent(t *testing.T) {
	store := NewInMemoryStore()
	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}
