package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/wallery/wallery/pkg/wall"
)

// FileStore keeps snapshots as JSON files in a data directory. Each
// room gets its own file, so saving one room never rewrites the other.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a file-based snapshot store.
// If baseDir is empty, defaults to ~/.local/share/wallery/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".local", "share", "wallery")
	}
	if err := os.MkdirAll(filepath.Join(baseDir, "rooms"), 0o700); err != nil {
		return nil, fmt.Errorf("create snapshot dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) roomPath(room wall.Room) string {
	return filepath.Join(s.baseDir, "rooms", string(room)+".json")
}

func (s *FileStore) prefsPath() string {
	return filepath.Join(s.baseDir, "prefs.json")
}

func (s *FileStore) LoadRoom(ctx context.Context, room wall.Room) ([]wall.Placement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.roomPath(room))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read room snapshot: %w", err)
	}

	var placements []wall.Placement
	if err := json.Unmarshal(data, &placements); err != nil {
		return nil, fmt.Errorf("parse room snapshot: %w", err)
	}
	return placements, nil
}

func (s *FileStore) SaveRoom(ctx context.Context, room wall.Room, placements []wall.Placement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if placements == nil {
		placements = []wall.Placement{}
	}
	data, err := json.MarshalIndent(placements, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal room snapshot: %w", err)
	}
	if err := os.WriteFile(s.roomPath(room), data, 0o600); err != nil {
		return fmt.Errorf("write room snapshot: %w", err)
	}
	return nil
}

func (s *FileStore) LoadPrefs(ctx context.Context) (*wall.Prefs, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.prefsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read preferences: %w", err)
	}

	var prefs wall.Prefs
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("parse preferences: %w", err)
	}
	return &prefs, nil
}

func (s *FileStore) SavePrefs(ctx context.Context, prefs wall.Prefs) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}
	if err := os.WriteFile(s.prefsPath(), data, 0o600); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }

// Path returns the base directory for snapshot files.
func (s *FileStore) Path() string {
	return s.baseDir
}

var _ wall.Store = (*FileStore)(nil)
