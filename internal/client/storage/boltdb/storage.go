package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"
)

var (
	// BoltDB bucket names
	bucketQueue      = []byte("queue")
	bucketQueueIndex = []byte("queue_index") // operation id -> queue key
	bucketAbandoned  = []byte("abandoned")
	bucketSnapshot   = []byte("snapshot")
	bucketDevice     = []byte("device")
	bucketSyncLock   = []byte("sync_lock")
)

// DefaultMaxAttempts is the retry ceiling after which a pending operation
// is moved to the abandoned set.
const DefaultMaxAttempts = 8

// Storage represents BoltDB storage implementation for the POS device
type Storage struct {
	db          *bbolt.DB
	maxAttempts int
}

// Option configures optional Storage behavior
type Option func(*Storage)

// WithMaxAttempts overrides the retry ceiling for queued operations
func WithMaxAttempts(n int) Option {
	return func(s *Storage) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string, opts ...Option) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db, maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(storage)
	}

	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// initBuckets creates the required buckets if they do not exist
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		buckets := [][]byte{
			bucketQueue,
			bucketQueueIndex,
			bucketAbandoned,
			bucketSnapshot,
			bucketDevice,
			bucketSyncLock,
		}
		for _, name := range buckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}
