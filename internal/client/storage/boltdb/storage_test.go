package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

// createTestStorage opens a temporary storage for tests
func createTestStorage(t *testing.T, opts ...Option) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := New(context.Background(), dbPath, opts...)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		if store.db != nil {
			require.NoError(t, store.Close())
		}
	})

	return store
}

func TestNew_Success(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "testdb.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() {
		require.NoError(t, store.Close())
	}()

	// The database file must actually exist
	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	// All buckets must exist
	err = store.db.View(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketQueue, bucketQueueIndex, bucketAbandoned, bucketSnapshot, bucketDevice, bucketSyncLock} {
			if tx.Bucket(b) == nil {
				return os.ErrNotExist
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestNew_InvalidPath(t *testing.T) {
	ctx := context.Background()
	invalidPath := string([]byte{0})
	store, err := New(ctx, invalidPath)
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNew_WithMaxAttempts(t *testing.T) {
	store := createTestStorage(t, WithMaxAttempts(3))
	assert.Equal(t, 3, store.maxAttempts)

	// Non-positive values keep the default
	store2 := createTestStorage(t, WithMaxAttempts(0))
	assert.Equal(t, DefaultMaxAttempts, store2.maxAttempts)
}

func TestClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "testdb.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	err = store.Close()
	assert.NoError(t, err)
	assert.Nil(t, store.db)

	// Second Close is a no-op
	err = store.Close()
	assert.NoError(t, err)
}
