package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/BorromeoLara/INVE/pkg/navigation"
)

const keyPrefix = "inve:nav:"

// RedisStore keeps each state as JSON under inve:nav:<sid>. Every Save
// refreshes the TTL, so idle sessions expire and active ones do not.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(addr string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func key(sid string) string { return keyPrefix + sid }

func (s *RedisStore) Load(ctx context.Context, sid string) (navigation.State, bool, error) {
	raw, err := s.client.Get(ctx, key(sid)).Bytes()
	if errors.Is(err, redis.Nil) {
		return navigation.State{}, false, nil
	}
	if err != nil {
		return navigation.State{}, false, fmt.Errorf("get session %s: %w", sid, err)
	}
	st, err := decodeState(raw)
	if err != nil {
		// a corrupt entry is treated as no session at all
		return navigation.State{}, false, nil
	}
	return st, true, nil
}

func (s *RedisStore) Save(ctx context.Context, sid string, st navigation.State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.client.Set(ctx, key(sid), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("set session %s: %w", sid, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sid string) error {
	return s.client.Del(ctx, key(sid)).Err()
}

func (s *RedisStore) Ping(ctx context.Context) error { return s.client.Ping(ctx).Err() }

func decodeState(raw []byte) (navigation.State, error) {
	var st navigation.State
	err := json.Unmarshal(raw, &st)
	return st, err
}
