package wall

import (
	"strings"

	"github.com/wallery/wallery/pkg/errors"
)

// Room identifies one of the two walls.
type Room string

const (
	RoomGallery Room = "gallery"
	RoomBedroom Room = "bedroom"
)

// Rooms returns all rooms in display order.
func Rooms() []Room {
	return []Room{RoomGallery, RoomBedroom}
}

// Other returns the room that is not r. For an unknown room it returns
// the gallery.
func (r Room) Other() Room {
	if r == RoomGallery {
		return RoomBedroom
	}
	return RoomGallery
}

// ParseRoom parses a room name, case-insensitively.
func ParseRoom(s string) (Room, error) {
	switch Room(strings.ToLower(strings.TrimSpace(s))) {
	case RoomGallery:
		return RoomGallery, nil
	case RoomBedroom:
		return RoomBedroom, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidRoom, "unknown room %q (want gallery or bedroom)", s)
	}
}

// Frame is a decorative frame choice for a placed artwork.
type Frame string

const (
	FrameNone   Frame = "none"
	FramePlain  Frame = "plain"
	FrameOrnate Frame = "ornate"
	FrameWashi  Frame = "washi"
)

// ParseFrame parses a frame name, case-insensitively.
func ParseFrame(s string) (Frame, error) {
	switch Frame(strings.ToLower(strings.TrimSpace(s))) {
	case FrameNone:
		return FrameNone, nil
	case FramePlain:
		return FramePlain, nil
	case FrameOrnate:
		return FrameOrnate, nil
	case FrameWashi:
		return FrameWashi, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFrame,
			"unknown frame %q (want none, plain, ornate or washi)", s)
	}
}

// FramesFor returns the frame choices offered in a room, in the order the
// controls present them. Ornate frames suit the gallery, washi tape the
// bedroom; plain and none are offered everywhere. Placements themselves
// accept any frame; only the offered controls differ per room.
func FramesFor(room Room) []Frame {
	switch room {
	case RoomBedroom:
		return []Frame{FrameNone, FramePlain, FrameWashi}
	default:
		return []Frame{FrameNone, FramePlain, FrameOrnate}
	}
}

// FrameOffered reports whether a frame is among the choices offered in a
// room.
func FrameOffered(room Room, frame Frame) bool {
	for _, f := range FramesFor(room) {
		if f == frame {
			return true
		}
	}
	return false
}

// NextFrame returns the frame following f in the room's offered cycle,
// wrapping around at the end. Unoffered frames restart the cycle.
func NextFrame(room Room, f Frame) Frame {
	offered := FramesFor(room)
	for i, cur := range offered {
		if cur == f {
			return offered[(i+1)%len(offered)]
		}
	}
	return offered[0]
}

// Appearance is the UI color scheme preference.
const (
	AppearanceLight = "light"
	AppearanceDark  = "dark"
)

// Prefs holds user preferences persisted alongside the room collections.
type Prefs struct {
	ActiveRoom Room   `json:"active_room" bson:"active_room"`
	Appearance string `json:"appearance" bson:"appearance"`
}

// DefaultPrefs returns the preferences used when no snapshot exists yet.
func DefaultPrefs() Prefs {
	return Prefs{ActiveRoom: RoomGallery, Appearance: AppearanceLight}
}
