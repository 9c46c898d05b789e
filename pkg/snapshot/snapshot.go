package snapshot

import (
	"context"

	"github.com/wallery/wallery/pkg/errors"
	"github.com/wallery/wallery/pkg/wall"
)

// Backend names accepted by [Open].
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Options selects and configures a snapshot backend.
type Options struct {
	// Backend is one of the Backend constants. Empty means file.
	Backend string

	// Dir overrides the file backend's data directory.
	Dir string

	// Redis backend settings.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Mongo backend settings.
	MongoURI      string
	MongoDatabase string
}

// Open creates the store selected by opts.
func Open(ctx context.Context, opts Options) (wall.Store, error) {
	switch opts.Backend {
	case BackendFile, "":
		return NewFileStore(opts.Dir)
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendRedis:
		return NewRedisStore(ctx, RedisConfig{
			Addr:     opts.RedisAddr,
			Password: opts.RedisPassword,
			DB:       opts.RedisDB,
		})
	case BackendMongo:
		return NewMongoStore(ctx, opts.MongoURI, opts.MongoDatabase)
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown storage backend %q", opts.Backend)
	}
}
