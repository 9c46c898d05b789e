package snapshot

import (
	"context"
	"sync"

	"github.com/wallery/wallery/pkg/wall"
)

// MemoryStore keeps snapshots in memory. Nothing survives the process;
// it backs tests and ephemeral runs on the memory backend.
type MemoryStore struct {
	mu    sync.RWMutex
	rooms map[wall.Room][]wall.Placement
	prefs *wall.Prefs
}

// NewMemoryStore creates an empty in-memory snapshot store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rooms: make(map[wall.Room][]wall.Placement)}
}

func (s *MemoryStore) LoadRoom(ctx context.Context, room wall.Room) ([]wall.Placement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	placements, ok := s.rooms[room]
	if !ok {
		return nil, nil
	}
	return wall.ClonePlacements(placements), nil
}

func (s *MemoryStore) SaveRoom(ctx context.Context, room wall.Room, placements []wall.Placement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if placements == nil {
		placements = []wall.Placement{}
	}
	s.rooms[room] = wall.ClonePlacements(placements)
	return nil
}

func (s *MemoryStore) LoadPrefs(ctx context.Context) (*wall.Prefs, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.prefs == nil {
		return nil, nil
	}
	prefs := *s.prefs
	return &prefs, nil
}

func (s *MemoryStore) SavePrefs(ctx context.Context, prefs wall.Prefs) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prefs = &prefs
	return nil
}

func (s *MemoryStore) Close() error { return nil }

var _ wall.Store = (*MemoryStore)(nil)
