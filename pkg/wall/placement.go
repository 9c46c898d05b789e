package wall

import (
	"time"
)

// Point is a position in wall pixel space (see the package documentation
// for the coordinate system).
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Size is a rendered footprint in wall pixels.
type Size struct {
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// Decoration holds the seed attributes drawn once when an artwork is
// placed. They are frozen for the lifetime of the placement.
type Decoration struct {
	TapeTilt      bool   `json:"tape_tilt" bson:"tape_tilt"`
	TapeColor     string `json:"tape_color" bson:"tape_color"`
	WoodVariant   int    `json:"wood_variant" bson:"wood_variant"`     // 1..3, picks the plain-frame wood texture
	OrnateVariant int    `json:"ornate_variant" bson:"ornate_variant"` // 1..3, picks the ornate-frame molding
}

// Placement is one hung artwork: a catalog reference plus its position,
// frame and decoration. Placements serialize to JSON for file snapshots
// and the preview API, and to BSON for the Mongo backend.
type Placement struct {
	ArtworkID  string     `json:"artwork_id" bson:"artwork_id"`
	RecordID   string     `json:"record_id" bson:"record_id"` // fresh per placement, stable until removal
	X          float64    `json:"x" bson:"x"`
	Y          float64    `json:"y" bson:"y"`
	Frame      Frame      `json:"frame" bson:"frame"`
	Decoration Decoration `json:"decoration" bson:"decoration"`
	PlacedAt   time.Time  `json:"placed_at" bson:"placed_at"`
}

// Position returns the placement's top-left corner.
func (p Placement) Position() Point {
	return Point{X: p.X, Y: p.Y}
}

// ClonePlacements returns a copy of a collection. Placements contain no
// reference types, so a shallow element copy is a full copy.
func ClonePlacements(in []Placement) []Placement {
	if in == nil {
		return nil
	}
	out := make([]Placement, len(in))
	copy(out, in)
	return out
}
