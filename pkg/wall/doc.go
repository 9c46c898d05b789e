// Package wall implements the room state store and placement engine for
// the virtual art wall.
//
// # Overview
//
// A wall has two rooms ("gallery" and "bedroom"), each holding an ordered
// collection of placed artworks. [State] owns both collections plus user
// preferences and persists each room independently through a [Store] on
// every mutation. [Engine] implements the user-facing operations: placing
// an artwork, dragging it around, changing its frame and removing it.
//
// # Coordinates
//
// Placement positions are measured in wall pixel space: the origin sits at
// the left edge of the canvas, directly below the reserved header band.
// The hangable area ends above the room's furniture band, so the valid
// vertical range for an artwork's top edge is
//
//	0 <= y <= canvasHeight - headerHeight - furnitureHeight - renderedHeight
//
// [Geometry.Clamp] enforces these bounds. Horizontally only the left edge
// is clamped; an artwork may overhang the right edge. If an artwork is
// taller than the hangable band, the lower bound wins and the artwork
// overflows visually instead of failing.
//
// # Decoration
//
// Every placement carries seed attributes drawn once at placement time:
// a tape tilt flag, a tape color, and wood/ornate texture variant indices.
// They are never recomputed while the placement lives; removing and
// re-hanging an artwork draws a fresh, independent set. [Decorate] is pure
// given an injected random source, which keeps the draw testable.
//
// # Concurrency
//
// State and Engine are not safe for concurrent use. Every mutation is
// triggered synchronously by a discrete UI event (the TUI event loop or a
// one-shot CLI command), so no two mutations are ever in flight at once.
// Persistence is best-effort: store failures are logged and never fail
// the mutating operation.
package wall
