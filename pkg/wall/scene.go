package wall

import (
	"github.com/wallery/wallery/pkg/catalog"
)

// Scene is a self-contained description of one wall for rendering: the
// room, its placements in z-order, the geometry they were clamped
// against, and the catalog resolving artwork ids to images and titles.
type Scene struct {
	Room       Room
	Placements []Placement
	Geometry   Geometry
	Catalog    *catalog.Catalog

	// WallColor is the backdrop color. Empty means the renderer's
	// default for the appearance.
	WallColor string

	// Appearance is AppearanceLight or AppearanceDark.
	Appearance string
}

// Scene captures the active room as a renderable scene. The caller may
// override WallColor from configuration.
func (e *Engine) Scene() Scene {
	return Scene{
		Room:       e.state.ActiveRoom(),
		Placements: e.state.ActiveCollection(),
		Geometry:   e.geo,
		Catalog:    e.catalog,
		Appearance: e.state.Prefs().Appearance,
	}
}

// SceneFor captures a specific room, regardless of which is active.
func (e *Engine) SceneFor(room Room) Scene {
	return Scene{
		Room:       room,
		Placements: e.state.Collection(room),
		Geometry:   e.geo,
		Catalog:    e.catalog,
		Appearance: e.state.Prefs().Appearance,
	}
}
