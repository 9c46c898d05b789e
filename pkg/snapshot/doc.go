// Package snapshot persists room collections and preferences.
//
// This package implements [wall.Store] for different backends:
//   - file: JSON files in the user data directory, for the CLI and TUI
//   - memory: in-memory storage for tests and ephemeral runs
//   - redis: Redis-backed storage for a shared wall
//   - mongo: MongoDB-backed storage for a shared wall
//
// # Snapshots
//
// Each room's collection is stored as one complete snapshot, replaced
// wholesale on every save. There is no incremental update path: the
// collections are small (a wall holds tens of artworks, not thousands)
// and whole-snapshot writes keep every backend trivially consistent.
// A missing snapshot is reported as (nil, nil), never as an error.
//
// # Usage
//
// Open a store from options:
//
//	// CLI (default)
//	store, err := snapshot.Open(ctx, snapshot.Options{Backend: snapshot.BackendFile})
//
//	// Shared wall
//	store, err := snapshot.Open(ctx, snapshot.Options{
//	    Backend:   snapshot.BackendRedis,
//	    RedisAddr: "localhost:6379",
//	})
//
// Wire it into the room state:
//
//	state := wall.NewState(store, logger)
//	if err := state.Load(ctx); err != nil {
//	    return err
//	}
package snapshot
