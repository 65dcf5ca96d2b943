package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/RachelleMaina/stocka-sync/internal/client/storage"
	"github.com/RachelleMaina/stocka-sync/internal/models"
)

// snapshotKey is the single key under which the active snapshot lives.
var snapshotKey = []byte("active")

// ActiveSnapshot returns the current reference snapshot
func (s *Storage) ActiveSnapshot(ctx context.Context) (*models.ReferenceSnapshot, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var snap *models.ReferenceSnapshot

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSnapshot)
		if bucket == nil {
			return storage.ErrSnapshotNotFound
		}

		data := bucket.Get(snapshotKey)
		if data == nil {
			return storage.ErrSnapshotNotFound
		}

		snap = &models.ReferenceSnapshot{}
		if err := json.Unmarshal(data, snap); err != nil {
			return fmt.Errorf("failed to unmarshal snapshot: %w", err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return snap, nil
}

// ReplaceSnapshot swaps in a fully fetched snapshot. The single Update
// transaction is the atomicity boundary: a crash or error before commit
// leaves the previous snapshot untouched.
func (s *Storage) ReplaceSnapshot(ctx context.Context, snap *models.ReferenceSnapshot) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSnapshot)
		return bucket.Put(snapshotKey, data)
	})

	if err != nil {
		return fmt.Errorf("snapshot transaction failed: %w", err)
	}

	return nil
}
