package wall

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/wallery/wallery/pkg/catalog"
	"github.com/wallery/wallery/pkg/errors"
)

// Engine implements the placement operations on top of a State. All
// operations are synchronous and act on the active room.
//
// Engine is not safe for concurrent use; see the package documentation.
type Engine struct {
	state   *State
	geo     Geometry
	catalog *catalog.Catalog
	logger  *log.Logger
	drag    *dragTarget
}

// dragTarget tracks the single in-progress drag: which artwork is being
// moved and where inside it the pointer grabbed.
type dragTarget struct {
	artworkID string
	offset    Point
}

// NewEngine creates an engine over the given state, geometry and catalog.
// A nil logger discards all output.
func NewEngine(state *State, geo Geometry, cat *catalog.Catalog, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Engine{state: state, geo: geo, catalog: cat, logger: logger}
}

// State returns the engine's underlying state.
func (e *Engine) State() *State { return e.state }

// Geometry returns the engine's wall geometry.
func (e *Engine) Geometry() Geometry { return e.geo }

// Catalog returns the engine's artwork catalog.
func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

// Place hangs an artwork on the active room's wall at the given position,
// clamped into the hangable band. The decoration must be fully resolved
// by the caller (tape color included) so the record appears complete in a
// single mutation.
//
// Placing an artwork that is already hung in either room is a no-op: the
// existing placement is returned and placed is false.
func (e *Engine) Place(art catalog.Artwork, pos Point, deco Decoration) (placement Placement, placed bool) {
	if room, ok := e.state.PlacedRoom(art.ID); ok {
		existing, _ := e.state.Find(room, art.ID)
		return existing, false
	}

	room := e.state.ActiveRoom()
	rendered := RenderedSize(art.Width, art.Height)
	p := e.geo.Clamp(room, pos, rendered)

	placement = Placement{
		ArtworkID:  art.ID,
		RecordID:   uuid.NewString(),
		X:          p.X,
		Y:          p.Y,
		Frame:      FrameNone,
		Decoration: deco,
		PlacedAt:   time.Now().UTC(),
	}

	collection := append(e.state.Collection(room), placement)
	e.state.SetCollection(room, collection)
	e.logger.Debug("placed artwork", "id", art.ID, "room", room, "x", p.X, "y", p.Y)
	return placement, true
}

// BeginDrag marks an artwork in the active room as the drag target and
// records the offset between the pointer and its top-left corner. Only
// one artwork can be a drag target at a time; beginning a new drag
// retargets.
func (e *Engine) BeginDrag(artworkID string, pointer Point) error {
	p, ok := e.state.Find(e.state.ActiveRoom(), artworkID)
	if !ok {
		return errors.New(errors.ErrCodeNotPlaced, "artwork %q is not hung in the %s", artworkID, e.state.ActiveRoom())
	}
	e.drag = &dragTarget{
		artworkID: artworkID,
		offset:    Point{X: pointer.X - p.X, Y: pointer.Y - p.Y},
	}
	return nil
}

// UpdateDrag moves the drag target so its grab point follows the
// pointer, clamped to the hangable band, and persists the new position.
// Without an active drag it is a no-op.
func (e *Engine) UpdateDrag(pointer Point) (Placement, bool) {
	if e.drag == nil {
		return Placement{}, false
	}

	room := e.state.ActiveRoom()
	collection := e.state.Collection(room)
	idx := -1
	for i, p := range collection {
		if p.ArtworkID == e.drag.artworkID {
			idx = i
			break
		}
	}
	if idx < 0 {
		// Target vanished (removed mid-drag); drop the drag.
		e.drag = nil
		return Placement{}, false
	}

	rendered := Size{}
	if art, ok := e.catalog.Get(e.drag.artworkID); ok {
		rendered = RenderedSize(art.Width, art.Height)
	}

	pos := e.geo.Clamp(room, Point{
		X: pointer.X - e.drag.offset.X,
		Y: pointer.Y - e.drag.offset.Y,
	}, rendered)

	collection[idx].X = pos.X
	collection[idx].Y = pos.Y
	e.state.SetCollection(room, collection)
	return collection[idx], true
}

// EndDrag clears the drag target. The position stays where the last
// UpdateDrag left it.
func (e *Engine) EndDrag() {
	e.drag = nil
}

// Dragging returns the artwork id of the active drag target, if any.
func (e *Engine) Dragging() (string, bool) {
	if e.drag == nil {
		return "", false
	}
	return e.drag.artworkID, true
}

// SetFrame overwrites the frame choice for an artwork hung in the active
// room.
func (e *Engine) SetFrame(artworkID string, frame Frame) error {
	room := e.state.ActiveRoom()
	collection := e.state.Collection(room)
	for i, p := range collection {
		if p.ArtworkID == artworkID {
			collection[i].Frame = frame
			e.state.SetCollection(room, collection)
			return nil
		}
	}
	return errors.New(errors.ErrCodeNotPlaced, "artwork %q is not hung in the %s", artworkID, room)
}

// CycleFrame advances an artwork's frame to the next choice offered in
// the active room and returns the new frame.
func (e *Engine) CycleFrame(artworkID string) (Frame, error) {
	room := e.state.ActiveRoom()
	p, ok := e.state.Find(room, artworkID)
	if !ok {
		return "", errors.New(errors.ErrCodeNotPlaced, "artwork %q is not hung in the %s", artworkID, room)
	}
	next := NextFrame(room, p.Frame)
	if err := e.SetFrame(artworkID, next); err != nil {
		return "", err
	}
	return next, nil
}

// Remove deletes an artwork's placement from the active room. Removing
// an id that is not hung is a no-op.
func (e *Engine) Remove(artworkID string) bool {
	room := e.state.ActiveRoom()
	collection := e.state.Collection(room)
	kept := collection[:0]
	removed := false
	for _, p := range collection {
		if p.ArtworkID == artworkID {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		return false
	}
	if e.drag != nil && e.drag.artworkID == artworkID {
		e.drag = nil
	}
	e.state.SetCollection(room, kept)
	e.logger.Debug("removed artwork", "id", artworkID, "room", room)
	return true
}

// SwitchRoom makes the given room active, dropping any in-progress drag.
func (e *Engine) SwitchRoom(room Room) {
	e.drag = nil
	e.state.SetActiveRoom(room)
}
