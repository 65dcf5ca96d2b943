package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/RachelleMaina/stocka-sync/internal/client/storage"
)

// lockKey is the single key under which the sync lock record lives.
var lockKey = []byte("lock")

// AcquireSyncLock writes the lock record if no unexpired lock exists.
// The check and the write happen inside one Update transaction, so two
// processes racing for the same device database cannot both win.
func (s *Storage) AcquireSyncLock(ctx context.Context, owner string, ttl time.Duration) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	now := time.Now().UTC()

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncLock)

		if data := bucket.Get(lockKey); data != nil {
			var existing storage.SyncLock
			if err := json.Unmarshal(data, &existing); err != nil {
				return fmt.Errorf("failed to unmarshal lock record: %w", err)
			}
			// An expired lock belongs to a crashed holder and may be stolen.
			if now.Before(existing.ExpiresAt) && existing.Owner != owner {
				return storage.ErrSyncInFlight
			}
		}

		lock := storage.SyncLock{
			Owner:      owner,
			AcquiredAt: now,
			ExpiresAt:  now.Add(ttl),
		}
		data, err := json.Marshal(&lock)
		if err != nil {
			return fmt.Errorf("failed to marshal lock record: %w", err)
		}
		return bucket.Put(lockKey, data)
	})

	if err != nil {
		if err == storage.ErrSyncInFlight {
			return err
		}
		return fmt.Errorf("lock transaction failed: %w", err)
	}

	return nil
}

// RenewSyncLock extends the expiry of the lock held by owner. A missing
// record is re-established: the holder released or lost it and nobody else
// claimed it since.
func (s *Storage) RenewSyncLock(ctx context.Context, owner string, ttl time.Duration) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	now := time.Now().UTC()

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncLock)

		acquiredAt := now
		if data := bucket.Get(lockKey); data != nil {
			var existing storage.SyncLock
			if err := json.Unmarshal(data, &existing); err != nil {
				return fmt.Errorf("failed to unmarshal lock record: %w", err)
			}
			// Another session holds the record: the holder lost the lock
			// and must stop, even if the usurper has since expired.
			if existing.Owner != owner {
				return storage.ErrSyncInFlight
			}
			acquiredAt = existing.AcquiredAt
		}

		lock := storage.SyncLock{
			Owner:      owner,
			AcquiredAt: acquiredAt,
			ExpiresAt:  now.Add(ttl),
		}
		data, err := json.Marshal(&lock)
		if err != nil {
			return fmt.Errorf("failed to marshal lock record: %w", err)
		}
		return bucket.Put(lockKey, data)
	})

	if err != nil {
		if err == storage.ErrSyncInFlight {
			return err
		}
		return fmt.Errorf("lock renewal transaction failed: %w", err)
	}

	return nil
}

// ReleaseSyncLock removes the lock record if owned by owner
func (s *Storage) ReleaseSyncLock(ctx context.Context, owner string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncLock)

		data := bucket.Get(lockKey)
		if data == nil {
			return nil
		}

		var existing storage.SyncLock
		if err := json.Unmarshal(data, &existing); err != nil {
			return fmt.Errorf("failed to unmarshal lock record: %w", err)
		}
		if existing.Owner != owner {
			// Someone stole an expired lock; nothing to release.
			return nil
		}
		return bucket.Delete(lockKey)
	})

	if err != nil {
		return fmt.Errorf("unlock transaction failed: %w", err)
	}

	return nil
}
