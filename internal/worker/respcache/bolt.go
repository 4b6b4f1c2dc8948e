package respcache

import (
	"context"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"
	bbolterrors "go.etcd.io/bbolt/errors"
)

var bucketCaches = []byte("caches")

// BoltStorage keeps every named cache as a nested bucket
type BoltStorage struct {
	db *bbolt.DB
}

var _ Storage = (*BoltStorage)(nil)

// OpenBolt opens (or creates) the worker's cache file
func OpenBolt(path string) (*BoltStorage, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open response cache: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketCaches)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize response cache: %w", err)
	}

	return &BoltStorage{db: db}, nil
}

// Close closes the database
func (s *BoltStorage) Close() error {
	return s.db.Close()
}

// Match implements Storage
func (s *BoltStorage) Match(ctx context.Context, cacheName, key string) (*Response, error) {
	var resp *Response

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCaches).Bucket([]byte(cacheName))
		if bucket == nil {
			return ErrNotFound
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return ErrNotFound
		}

		var err error
		resp, err = decode(data)
		return err
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// MatchAll implements Storage
func (s *BoltStorage) MatchAll(ctx context.Context, key string) (*Response, error) {
	var resp *Response

	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketCaches).Cursor()
		for name, v := c.First(); name != nil; name, v = c.Next() {
			// v != nil - это значение, а не вложенный bucket
			if v != nil {
				continue
			}
			data := tx.Bucket(bucketCaches).Bucket(name).Get([]byte(key))
			if data == nil {
				continue
			}

			var err error
			resp, err = decode(data)
			return err
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// Put implements Storage
func (s *BoltStorage) Put(ctx context.Context, cacheName, key string, resp *Response) error {
	data, err := encode(resp)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.Bucket(bucketCaches).CreateBucketIfNotExists([]byte(cacheName))
		if err != nil {
			return fmt.Errorf("failed to create cache %s: %w", cacheName, err)
		}
		return bucket.Put([]byte(key), data)
	})
}

// Names implements Storage
func (s *BoltStorage) Names(ctx context.Context) ([]string, error) {
	var names []string

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketCaches).ForEach(func(k, v []byte) error {
			if v == nil {
				names = append(names, string(k))
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return names, nil
}

// Delete implements Storage
func (s *BoltStorage) Delete(ctx context.Context, cacheName string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		err := tx.Bucket(bucketCaches).DeleteBucket([]byte(cacheName))
		if err != nil && !errors.Is(err, bbolterrors.ErrBucketNotFound) {
			return fmt.Errorf("failed to delete cache %s: %w", cacheName, err)
		}
		return nil
	})
}
