package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/RachelleMaina/stocka-sync/internal/client/storage"
	"github.com/RachelleMaina/stocka-sync/internal/models"
)

// queueKey encodes the bolt sequence number so that byte order equals
// creation order. Iterating the queue bucket yields FIFO.
func queueKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}

// Enqueue appends a new pending operation with a fresh idempotency key
func (s *Storage) Enqueue(ctx context.Context, kind models.OperationKind, payload json.RawMessage) (*models.PendingOperation, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	op := &models.PendingOperation{
		ID:        uuid.NewString(),
		Kind:      kind,
		Status:    models.OpStatusPending,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		index := tx.Bucket(bucketQueueIndex)

		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to allocate sequence: %w", err)
		}
		op.Seq = seq

		data, err := json.Marshal(op)
		if err != nil {
			return fmt.Errorf("failed to marshal operation: %w", err)
		}

		key := queueKey(seq)
		if err := bucket.Put(key, data); err != nil {
			return fmt.Errorf("failed to save operation: %w", err)
		}
		if err := index.Put([]byte(op.ID), key); err != nil {
			return fmt.Errorf("failed to index operation: %w", err)
		}
		return nil
	})

	if err != nil {
		// Most failures here are local storage exhaustion; the caller must
		// warn the operator because the sale was not recorded.
		return nil, fmt.Errorf("%w: %w", storage.ErrQueueWrite, err)
	}

	return op, nil
}

// ListPending returns all pending operations in creation (FIFO) order
func (s *Storage) ListPending(ctx context.Context) ([]*models.PendingOperation, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var ops []*models.PendingOperation

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var op models.PendingOperation
			if err := json.Unmarshal(v, &op); err != nil {
				return fmt.Errorf("failed to unmarshal operation: %w", err)
			}
			ops = append(ops, &op)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list pending operations: %w", err)
	}

	return ops, nil
}

// CountPending returns the number of pending operations
func (s *Storage) CountPending(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var count int
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return nil
		}
		count = bucket.Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count pending operations: %w", err)
	}

	return count, nil
}

// MarkConfirmed removes the operation after durable server acknowledgement
func (s *Storage) MarkConfirmed(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		index := tx.Bucket(bucketQueueIndex)

		key := index.Get([]byte(id))
		if key == nil {
			return storage.ErrOperationNotFound
		}

		if err := bucket.Delete(key); err != nil {
			return fmt.Errorf("failed to delete operation: %w", err)
		}
		if err := index.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete operation index: %w", err)
		}
		return nil
	})

	if err != nil {
		if err == storage.ErrOperationNotFound {
			return err
		}
		return fmt.Errorf("confirm transaction failed: %w", err)
	}

	return nil
}

// MarkFailed records a failed attempt. Terminal failures and operations that
// crossed the retry ceiling move to the abandoned bucket, retained for
// operator review.
func (s *Storage) MarkFailed(ctx context.Context, id string, cause string, nextAttemptAt time.Time, terminal bool) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		index := tx.Bucket(bucketQueueIndex)

		key := index.Get([]byte(id))
		if key == nil {
			return storage.ErrOperationNotFound
		}

		data := bucket.Get(key)
		if data == nil {
			return storage.ErrOperationNotFound
		}

		var op models.PendingOperation
		if err := json.Unmarshal(data, &op); err != nil {
			return fmt.Errorf("failed to unmarshal operation: %w", err)
		}

		op.Attempts++
		op.LastError = cause
		op.LastAttemptAt = time.Now().UTC()
		op.NextAttemptAt = nextAttemptAt

		abandon := terminal || op.Attempts >= s.maxAttempts
		if abandon {
			op.Status = models.OpStatusAbandoned
		}

		updated, err := json.Marshal(&op)
		if err != nil {
			return fmt.Errorf("failed to marshal operation: %w", err)
		}

		if !abandon {
			return bucket.Put(key, updated)
		}

		// Move out of the live queue but never silently delete.
		abandoned := tx.Bucket(bucketAbandoned)
		if err := abandoned.Put([]byte(op.ID), updated); err != nil {
			return fmt.Errorf("failed to save abandoned operation: %w", err)
		}
		if err := bucket.Delete(key); err != nil {
			return fmt.Errorf("failed to delete operation: %w", err)
		}
		if err := index.Delete([]byte(op.ID)); err != nil {
			return fmt.Errorf("failed to delete operation index: %w", err)
		}
		return nil
	})

	if err != nil {
		if err == storage.ErrOperationNotFound {
			return err
		}
		return fmt.Errorf("fail transaction failed: %w", err)
	}

	return nil
}

// ListAbandoned returns operations retained after terminal failure
func (s *Storage) ListAbandoned(ctx context.Context) ([]*models.PendingOperation, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var ops []*models.PendingOperation

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAbandoned)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var op models.PendingOperation
			if err := json.Unmarshal(v, &op); err != nil {
				return fmt.Errorf("failed to unmarshal operation: %w", err)
			}
			ops = append(ops, &op)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list abandoned operations: %w", err)
	}

	return ops, nil
}

// PurgeAbandoned removes one reviewed abandoned operation
func (s *Storage) PurgeAbandoned(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAbandoned)
		if bucket.Get([]byte(id)) == nil {
			return storage.ErrOperationNotFound
		}
		return bucket.Delete([]byte(id))
	})

	if err != nil {
		if err == storage.ErrOperationNotFound {
			return err
		}
		return fmt.Errorf("purge transaction failed: %w", err)
	}

	return nil
}
