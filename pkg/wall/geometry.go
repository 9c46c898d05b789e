package wall

// Default wall geometry. The canvas values mirror the room backdrops the
// renderer draws; the display box bounds the rendered footprint of a hung
// artwork.
const (
	// DefaultCanvasWidth is the default wall canvas width in pixels.
	DefaultCanvasWidth = 1000.0

	// DefaultCanvasHeight is the default wall canvas height in pixels.
	DefaultCanvasHeight = 800.0

	// DefaultHeaderHeight is the reserved band at the top of the canvas
	// holding the room label and controls.
	DefaultHeaderHeight = 60.0

	// DefaultGalleryFurnitureHeight is the bench band at the bottom of the
	// gallery wall.
	DefaultGalleryFurnitureHeight = 160.0

	// DefaultBedroomFurnitureHeight is the bed band at the bottom of the
	// bedroom wall. The bed is taller than the bench, so the bedroom offers
	// a shorter hangable band.
	DefaultBedroomFurnitureHeight = 230.0

	// DisplayBoxWidth and DisplayBoxHeight bound the rendered size of a
	// hung artwork. Artworks scale down to fit the box; they are never
	// upscaled.
	DisplayBoxWidth  = 180.0
	DisplayBoxHeight = 240.0
)

// DefaultPlacePosition is where a click-placed artwork lands before
// clamping, when the user gives no explicit position.
var DefaultPlacePosition = Point{X: 100, Y: 120}

// Geometry describes the fixed coordinate system of the wall canvas and
// the reserved bands that bound the hangable area.
type Geometry struct {
	CanvasWidth  float64
	CanvasHeight float64
	HeaderHeight float64

	// FurnitureHeights maps each room to the height of its furniture band.
	FurnitureHeights map[Room]float64
}

// DefaultGeometry returns the built-in wall geometry.
func DefaultGeometry() Geometry {
	return Geometry{
		CanvasWidth:  DefaultCanvasWidth,
		CanvasHeight: DefaultCanvasHeight,
		HeaderHeight: DefaultHeaderHeight,
		FurnitureHeights: map[Room]float64{
			RoomGallery: DefaultGalleryFurnitureHeight,
			RoomBedroom: DefaultBedroomFurnitureHeight,
		},
	}
}

// FurnitureHeight returns the furniture band height for a room, falling
// back to the gallery's when the room is unknown.
func (g Geometry) FurnitureHeight(room Room) float64 {
	if h, ok := g.FurnitureHeights[room]; ok {
		return h
	}
	return g.FurnitureHeights[RoomGallery]
}

// HangableHeight returns the height of the band artworks may hang in for
// the given room.
func (g Geometry) HangableHeight(room Room) float64 {
	return g.CanvasHeight - g.HeaderHeight - g.FurnitureHeight(room)
}

// Clamp constrains a candidate top-left position to the room's hangable
// band, given the artwork's rendered size.
//
// The vertical bound is hangable height minus rendered height; when the
// artwork is taller than the band that bound goes negative and the lower
// bound 0 wins, letting the artwork overflow downward rather than fail.
// Horizontally only the left edge is clamped.
func (g Geometry) Clamp(room Room, p Point, rendered Size) Point {
	maxY := g.HangableHeight(room) - rendered.Height

	x := max(p.X, 0)
	y := min(p.Y, maxY)
	y = max(y, 0)

	return Point{X: x, Y: y}
}

// RenderedSize scales intrinsic artwork dimensions to fit the display
// box, preserving aspect ratio and never upscaling.
func RenderedSize(width, height int) Size {
	if width <= 0 || height <= 0 {
		return Size{}
	}
	w, h := float64(width), float64(height)
	scale := min(1, DisplayBoxWidth/w, DisplayBoxHeight/h)
	return Size{Width: w * scale, Height: h * scale}
}
