package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore keeps session state in Redis so it survives restarts and can be
// shared by replicas. Keys carry the session TTL natively; every read
// refreshes it. Per-user locking stays in-process, which is enough as long
// as a user's requests are routed to one replica.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	locks  *lockTable
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
		locks:  newLockTable(),
	}
}

func contextKey(userID string) string {
	return "chat:context:" + userID
}

func pendingKey(userID string) string {
	return "chat:pending:" + userID
}

func (s *RedisStore) Context(ctx context.Context, userID string) (*SessionContext, error) {
	data, err := s.client.Get(ctx, contextKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return NewSessionContext(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session context failed: %w", err)
	}

	var sc SessionContext
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("decode session context failed: %w", err)
	}
	s.client.Expire(ctx, contextKey(userID), s.ttl)
	return &sc, nil
}

func (s *RedisStore) SetContext(ctx context.Context, userID string, sc *SessionContext) error {
	data, err := json.Marshal(sc)
	if err != nil {
		return fmt.Errorf("encode session context failed: %w", err)
	}
	if err := s.client.Set(ctx, contextKey(userID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("set session context failed: %w", err)
	}
	return nil
}

func (s *RedisStore) PendingBooking(ctx context.Context, userID string) (*PendingBooking, error) {
	data, err := s.client.Get(ctx, pendingKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get pending booking failed: %w", err)
	}

	var pb PendingBooking
	if err := json.Unmarshal(data, &pb); err != nil {
		return nil, fmt.Errorf("decode pending booking failed: %w", err)
	}
	return &pb, nil
}

func (s *RedisStore) SetPendingBooking(ctx context.Context, userID string, pb *PendingBooking) error {
	data, err := json.Marshal(pb)
	if err != nil {
		return fmt.Errorf("encode pending booking failed: %w", err)
	}
	if err := s.client.Set(ctx, pendingKey(userID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("set pending booking failed: %w", err)
	}
	return nil
}

func (s *RedisStore) ClearPendingBooking(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, pendingKey(userID)).Err(); err != nil {
		return fmt.Errorf("clear pending booking failed: %w", err)
	}
	return nil
}

func (s *RedisStore) Lock(userID string) func() {
	return s.locks.Lock(userID)
}
