package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/RachelleMaina/stocka-sync/internal/client/storage"
	"github.com/RachelleMaina/stocka-sync/internal/models"
)

var deviceKey = []byte("identity")

// SaveDevice stores or replaces the device identity after registration
func (s *Storage) SaveDevice(ctx context.Context, device *models.DeviceIdentity) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(device)
	if err != nil {
		return fmt.Errorf("failed to marshal device identity: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDevice)
		return bucket.Put(deviceKey, data)
	})
	if err != nil {
		return fmt.Errorf("device transaction failed: %w", err)
	}

	return nil
}

// GetDevice returns the stored device identity
func (s *Storage) GetDevice(ctx context.Context) (*models.DeviceIdentity, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var device *models.DeviceIdentity

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDevice)
		if bucket == nil {
			return storage.ErrDeviceNotRegistered
		}

		data := bucket.Get(deviceKey)
		if data == nil {
			return storage.ErrDeviceNotRegistered
		}

		device = &models.DeviceIdentity{}
		if err := json.Unmarshal(data, device); err != nil {
			return fmt.Errorf("failed to unmarshal device identity: %w", err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return device, nil
}

// DeleteDevice forgets the pairing
func (s *Storage) DeleteDevice(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDevice)
		return bucket.Delete(deviceKey)
	})
	if err != nil {
		return fmt.Errorf("device transaction failed: %w", err)
	}

	return nil
}
