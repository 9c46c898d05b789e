package snapshot

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/wallery/wallery/pkg/wall"
)

// Redis key layout. Snapshots are small JSON blobs; one key per room
// plus one for the preferences.
const (
	redisRoomPrefix = "wallery:room:"
	redisPrefsKey   = "wallery:prefs"
)

// RedisConfig configures the Redis snapshot store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RedisStore keeps snapshots in Redis, for a wall shared between
// machines.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) LoadRoom(ctx context.Context, room wall.Room) ([]wall.Placement, error) {
	data, err := s.client.Get(ctx, redisRoomPrefix+string(room)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read room snapshot: %w", err)
	}

	var placements []wall.Placement
	if err := json.Unmarshal(data, &placements); err != nil {
		return nil, fmt.Errorf("parse room snapshot: %w", err)
	}
	return placements, nil
}

func (s *RedisStore) SaveRoom(ctx context.Context, room wall.Room, placements []wall.Placement) error {
	if placements == nil {
		placements = []wall.Placement{}
	}
	data, err := json.Marshal(placements)
	if err != nil {
		return fmt.Errorf("marshal room snapshot: %w", err)
	}
	if err := s.client.Set(ctx, redisRoomPrefix+string(room), data, 0).Err(); err != nil {
		return fmt.Errorf("write room snapshot: %w", err)
	}
	return nil
}

func (s *RedisStore) LoadPrefs(ctx context.Context) (*wall.Prefs, error) {
	data, err := s.client.Get(ctx, redisPrefsKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read preferences: %w", err)
	}

	var prefs wall.Prefs
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("parse preferences: %w", err)
	}
	return &prefs, nil
}

func (s *RedisStore) SavePrefs(ctx context.Context, prefs wall.Prefs) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}
	if err := s.client.Set(ctx, redisPrefsKey, data, 0).Err(); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ wall.Store = (*RedisStore)(nil)
