package wall

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// Store persists room collections and preferences. Implementations live
// in pkg/snapshot; a missing snapshot is reported as (nil, nil), never as
// an error.
type Store interface {
	// LoadRoom returns the last persisted collection for a room, or
	// (nil, nil) if the room has never been saved.
	LoadRoom(ctx context.Context, room Room) ([]Placement, error)

	// SaveRoom overwrites the persisted collection for exactly one room.
	SaveRoom(ctx context.Context, room Room, placements []Placement) error

	// LoadPrefs returns the persisted preferences, or (nil, nil) if none
	// have been saved.
	LoadPrefs(ctx context.Context) (*Prefs, error)

	// SavePrefs overwrites the persisted preferences.
	SavePrefs(ctx context.Context, prefs Prefs) error

	// Close releases backend resources.
	Close() error
}

// State owns the two room collections and the user preferences.
//
// Every mutation persists the affected room (or the preferences) through
// the configured Store. Persistence is best-effort: failures are logged
// at warn level and never fail the mutating operation.
//
// State is not safe for concurrent use. All mutations must come from the
// single UI event loop or a one-shot command.
type State struct {
	collections map[Room][]Placement
	prefs       Prefs
	store       Store
	logger      *log.Logger
}

// NewState creates an empty state backed by the given store. A nil
// logger discards all output.
func NewState(store Store, logger *log.Logger) *State {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	collections := make(map[Room][]Placement, len(Rooms()))
	for _, room := range Rooms() {
		collections[room] = nil
	}
	return &State{
		collections: collections,
		prefs:       DefaultPrefs(),
		store:       store,
		logger:      logger,
	}
}

// Load initializes each room's collection and the preferences from their
// last persisted snapshots. Rooms without a snapshot start empty; a load
// failure for one room leaves that room empty and does not abort the
// others.
func (s *State) Load(ctx context.Context) error {
	for _, room := range Rooms() {
		placements, err := s.store.LoadRoom(ctx, room)
		if err != nil {
			s.logger.Warn("loading room snapshot", "room", room, "err", err)
			continue
		}
		s.collections[room] = placements
	}

	prefs, err := s.store.LoadPrefs(ctx)
	if err != nil {
		s.logger.Warn("loading preferences", "err", err)
		return nil
	}
	if prefs != nil {
		s.prefs = *prefs
	}
	return nil
}

// Collection returns the room's placements in insertion order. The
// returned slice is a copy.
func (s *State) Collection(room Room) []Placement {
	return ClonePlacements(s.collections[room])
}

// ActiveCollection returns the active room's placements.
func (s *State) ActiveCollection() []Placement {
	return s.Collection(s.prefs.ActiveRoom)
}

// SetCollection replaces a room's collection and persists exactly that
// room's snapshot. The other room's stored snapshot is untouched.
func (s *State) SetCollection(room Room, placements []Placement) {
	s.collections[room] = ClonePlacements(placements)
	s.persistRoom(room)
}

// Prefs returns the current preferences.
func (s *State) Prefs() Prefs { return s.prefs }

// ActiveRoom returns the room whose wall is currently shown.
func (s *State) ActiveRoom() Room { return s.prefs.ActiveRoom }

// SetActiveRoom switches the active room and persists the preferences.
func (s *State) SetActiveRoom(room Room) {
	if s.prefs.ActiveRoom == room {
		return
	}
	s.prefs.ActiveRoom = room
	s.persistPrefs()
}

// ToggleAppearance flips between light and dark appearance and persists
// the preferences.
func (s *State) ToggleAppearance() string {
	if s.prefs.Appearance == AppearanceDark {
		s.prefs.Appearance = AppearanceLight
	} else {
		s.prefs.Appearance = AppearanceDark
	}
	s.persistPrefs()
	return s.prefs.Appearance
}

// PlacedRoom reports which room, if any, holds a placement for the
// artwork id. At most one room can.
func (s *State) PlacedRoom(artworkID string) (Room, bool) {
	for _, room := range Rooms() {
		for _, p := range s.collections[room] {
			if p.ArtworkID == artworkID {
				return room, true
			}
		}
	}
	return "", false
}

// Find returns the placement for an artwork id in the given room.
func (s *State) Find(room Room, artworkID string) (Placement, bool) {
	for _, p := range s.collections[room] {
		if p.ArtworkID == artworkID {
			return p, true
		}
	}
	return Placement{}, false
}

func (s *State) persistRoom(room Room) {
	if err := s.store.SaveRoom(context.Background(), room, s.collections[room]); err != nil {
		s.logger.Warn("persisting room snapshot", "room", room, "err", err)
	}
}

func (s *State) persistPrefs() {
	if err := s.store.SavePrefs(context.Background(), s.prefs); err != nil {
		s.logger.Warn("persisting preferences", "err", err)
	}
}
