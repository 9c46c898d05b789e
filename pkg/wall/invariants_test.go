package wall

import (
	"testing"

	"pgregory.net/rapid"
)

// TestPlacementInvariants drives the engine through random operation
// sequences and checks the structural invariants after every step:
// an artwork hangs in at most one room, and every placement sits inside
// its room's clamp bounds.
func TestPlacementInvariants(t *testing.T) {
	cat := testCatalog(t)
	geo := DefaultGeometry()
	arts := cat.Artworks()
	removeIDs := []string{"a1", "a2", "tall", "never-placed"}

	rapid.Check(t, func(rt *rapid.T) {
		e := NewEngine(NewState(newMemStore(), nil), geo, cat, nil)

		rt.Repeat(map[string]func(*rapid.T){
			"place": func(rt *rapid.T) {
				art := rapid.SampledFrom(arts).Draw(rt, "artwork")
				pos := Point{
					X: rapid.Float64Range(-300, 1500).Draw(rt, "x"),
					Y: rapid.Float64Range(-300, 1500).Draw(rt, "y"),
				}
				deco := Decorate(NewRand(rapid.Uint64().Draw(rt, "seed")), "#f2797b")

				_, wasPlaced := e.State().PlacedRoom(art.ID)
				gallery := len(e.State().Collection(RoomGallery))
				bedroom := len(e.State().Collection(RoomBedroom))

				_, placed := e.Place(art, pos, deco)

				if wasPlaced && placed {
					rt.Fatalf("placed %q twice", art.ID)
				}
				if wasPlaced {
					if len(e.State().Collection(RoomGallery)) != gallery ||
						len(e.State().Collection(RoomBedroom)) != bedroom {
						rt.Fatalf("idempotent re-place of %q changed a collection", art.ID)
					}
				}
			},
			"remove": func(rt *rapid.T) {
				e.Remove(rapid.SampledFrom(removeIDs).Draw(rt, "id"))
			},
			"switchRoom": func(rt *rapid.T) {
				e.SwitchRoom(rapid.SampledFrom(Rooms()).Draw(rt, "room"))
			},
			"drag": func(rt *rapid.T) {
				collection := e.State().ActiveCollection()
				if len(collection) == 0 {
					return
				}
				target := rapid.SampledFrom(collection).Draw(rt, "target")
				if err := e.BeginDrag(target.ArtworkID, Point{X: target.X + 3, Y: target.Y + 3}); err != nil {
					rt.Fatalf("BeginDrag(%q): %v", target.ArtworkID, err)
				}
				e.UpdateDrag(Point{
					X: rapid.Float64Range(-500, 2000).Draw(rt, "px"),
					Y: rapid.Float64Range(-500, 2000).Draw(rt, "py"),
				})
				e.EndDrag()
			},
			"": func(rt *rapid.T) {
				checkWallInvariants(rt, e, geo)
			},
		})
	})
}

func checkWallInvariants(rt *rapid.T, e *Engine, geo Geometry) {
	seen := make(map[string]Room)
	for _, room := range Rooms() {
		for _, p := range e.State().Collection(room) {
			if prev, dup := seen[p.ArtworkID]; dup {
				rt.Fatalf("artwork %q hangs in both %s and %s", p.ArtworkID, prev, room)
			}
			seen[p.ArtworkID] = room

			if p.X < 0 || p.Y < 0 {
				rt.Fatalf("artwork %q at negative position (%v, %v)", p.ArtworkID, p.X, p.Y)
			}
			art, ok := e.Catalog().Get(p.ArtworkID)
			if !ok {
				continue
			}
			maxY := geo.HangableHeight(room) - RenderedSize(art.Width, art.Height).Height
			maxY = max(maxY, 0)
			if p.Y > maxY {
				rt.Fatalf("artwork %q y = %v exceeds bound %v in %s", p.ArtworkID, p.Y, maxY, room)
			}
		}
	}
}
