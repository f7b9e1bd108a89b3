package save

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/redis/go-redis/v9"
)

const (
	// Key pattern: {prefix}slot:{name}; the index set is {prefix}slots.
	defaultRedisPrefix = "dighack:"
)

// RedisStore keeps saves as redis strings and indexes slot names in a set.
type RedisStore struct {
	client redis.Cmdable
	prefix string
}

// NewRedisClient creates a client for a single redis instance.
func NewRedisClient(addr string) (*redis.Client, error) {
	if addr == "" {
		return nil, errors.New("redis: address is required")
	}
	return redis.NewClient(&redis.Options{Addr: addr}), nil
}

// NewRedisStore wraps client. An empty prefix uses "dighack:".
func NewRedisStore(client redis.Cmdable, prefix string) (*RedisStore, error) {
	if client == nil {
		return nil, errors.New("redis store: client is required")
	}
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &RedisStore{client: client, prefix: prefix}, nil
}

func (s *RedisStore) slotKey(slot string) string { return s.prefix + "slot:" + slot }
func (s *RedisStore) indexKey() string           { return s.prefix + "slots" }

// Put stores data and records the slot in the index.
func (s *RedisStore) Put(ctx context.Context, slot string, data []byte) error {
	if err := ValidateSlot(slot); err != nil {
		return err
	}
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, s.slotKey(slot), data, 0)
		p.SAdd(ctx, s.indexKey(), slot)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis put: %w", err)
	}
	return nil
}

// Get reads a slot.
func (s *RedisStore) Get(ctx context.Context, slot string) ([]byte, error) {
	if err := ValidateSlot(slot); err != nil {
		return nil, err
	}
	data, err := s.client.Get(ctx, s.slotKey(slot)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return data, nil
}

// List returns the indexed slot names in lexical order.
func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	slots, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("redis list: %w", err)
	}
	slices.Sort(slots)
	return slots, nil
}

// Delete removes a slot and its index entry.
func (s *RedisStore) Delete(ctx context.Context, slot string) error {
	if err := ValidateSlot(slot); err != nil {
		return err
	}
	var del *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		del = p.Del(ctx, s.slotKey(slot))
		p.SRem(ctx, s.indexKey(), slot)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis delete: %w", err)
	}
	if del.Val() == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
