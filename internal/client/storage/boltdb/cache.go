package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"
)

// Get returns values for the existing keys from the cache bucket
func (s *Storage) Get(ctx context.Context, keys ...string) (map[string][]byte, error) {
	result := make(map[string][]byte, len(keys))

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCache)
		if bucket == nil {
			return fmt.Errorf("cache bucket not found")
		}

		for _, key := range keys {
			data := bucket.Get([]byte(key))
			if data == nil {
				continue
			}
			// Значение валидно только внутри транзакции - копируем
			value := make([]byte, len(data))
			copy(value, data)
			result[key] = value
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Put writes all values in one transaction
func (s *Storage) Put(ctx context.Context, values map[string][]byte) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCache)
		if bucket == nil {
			return fmt.Errorf("cache bucket not found")
		}

		for key, value := range values {
			if err := bucket.Put([]byte(key), value); err != nil {
				return fmt.Errorf("failed to put %q: %w", key, err)
			}
		}
		return nil
	})
}

// Delete removes keys in one transaction
func (s *Storage) Delete(ctx context.Context, keys ...string) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCache)
		if bucket == nil {
			return fmt.Errorf("cache bucket not found")
		}

		for _, key := range keys {
			if err := bucket.Delete([]byte(key)); err != nil {
				return fmt.Errorf("failed to delete %q: %w", key, err)
			}
		}
		return nil
	})
}
