package respcache

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOptions describes the connection of the shared response cache
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	TLS      bool
	// Prefix namespaces all keys. Defaults to "solarsync".
	Prefix string
}

// RedisStorage keeps responses in Redis so several clients on one host share
// a warm cache. Keys look like {prefix}:{cache}:{requestKey}.
type RedisStorage struct {
	rdb    *redis.Client
	prefix string
}

var _ Storage = (*RedisStorage)(nil)

// NewRedisClient connects and pings the server with a short timeout
func NewRedisClient(ctx context.Context, opts RedisOptions) (*redis.Client, error) {
	var tlsConf *tls.Config
	if opts.TLS {
		tlsConf = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	client := redis.NewClient(&redis.Options{
		Addr:      opts.Addr,
		Password:  opts.Password,
		DB:        opts.DB,
		TLSConfig: tlsConf,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.Addr, err)
	}

	return client, nil
}

// NewRedisStorage wraps an established client
func NewRedisStorage(rdb *redis.Client, prefix string) *RedisStorage {
	if prefix == "" {
		prefix = "solarsync"
	}
	return &RedisStorage{rdb: rdb, prefix: prefix}
}

// Close closes the underlying client
func (s *RedisStorage) Close() error {
	return s.rdb.Close()
}

func (s *RedisStorage) namesKey() string {
	return s.prefix + ":names"
}

func (s *RedisStorage) entryKey(cacheName, key string) string {
	return s.prefix + ":" + cacheName + ":" + key
}

// Match implements Storage
func (s *RedisStorage) Match(ctx context.Context, cacheName, key string) (*Response, error) {
	data, err := s.rdb.Get(ctx, s.entryKey(cacheName, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached response: %w", err)
	}

	return decode(data)
}

// MatchAll implements Storage
func (s *RedisStorage) MatchAll(ctx context.Context, key string) (*Response, error) {
	names, err := s.Names(ctx)
	if err != nil {
		return nil, err
	}

	for _, name := range names {
		resp, err := s.Match(ctx, name, key)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		return resp, err
	}

	return nil, ErrNotFound
}

// Put implements Storage
func (s *RedisStorage) Put(ctx context.Context, cacheName, key string, resp *Response) error {
	data, err := encode(resp)
	if err != nil {
		return err
	}

	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, s.namesKey(), cacheName)
		pipe.Set(ctx, s.entryKey(cacheName, key), data, 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store cached response: %w", err)
	}

	return nil
}

// Names implements Storage
func (s *RedisStorage) Names(ctx context.Context) ([]string, error) {
	names, err := s.rdb.SMembers(ctx, s.namesKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list caches: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// Delete implements Storage
func (s *RedisStorage) Delete(ctx context.Context, cacheName string) error {
	pattern := s.entryKey(cacheName, "*")

	var cursor uint64
	for {
		keys, next, err := s.rdb.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return fmt.Errorf("failed to scan cache %s: %w", cacheName, err)
		}
		if len(keys) > 0 {
			if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to delete cache %s: %w", cacheName, err)
			}
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}

	if err := s.rdb.SRem(ctx, s.namesKey(), cacheName).Err(); err != nil {
		return fmt.Errorf("failed to delete cache %s: %w", cacheName, err)
	}

	return nil
}
