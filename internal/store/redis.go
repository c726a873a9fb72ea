package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// snapshotTTL matches the cart retention of the hosted deployment.
const snapshotTTL = 30 * 24 * time.Hour

// RedisStore keeps snapshots in Redis, one key per snapshot, namespaced by
// session id so parallel sessions never see each other's state.
type RedisStore struct {
	client    *redis.Client
	sessionID string
}

// NewRedisStore returns a store bound to one session namespace.
func NewRedisStore(client *redis.Client, sessionID string) *RedisStore {
	return &RedisStore{client: client, sessionID: sessionID}
}

func (s *RedisStore) key(key string) string {
	return key + ":" + s.sessionID
}

func (s *RedisStore) Load(key string, into any) error {
	data, err := s.client.Get(context.Background(), s.key(key)).Result()
	if err == redis.Nil {
		return ErrNoSnapshot
	}
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), into)
}

func (s *RedisStore) Save(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.client.Set(context.Background(), s.key(key), data, snapshotTTL).Err()
}

func (s *RedisStore) Delete(key string) error {
	return s.client.Del(context.Background(), s.key(key)).Err()
}
