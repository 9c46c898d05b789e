package wall

import (
	"testing"

	"github.com/wallery/wallery/pkg/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Artwork{
		{ID: "a1", Artist: "A", Title: "One", Image: "a1.png", Width: 50, Height: 50},
		{ID: "a2", Artist: "B", Title: "Two", Image: "a2.png", Width: 400, Height: 300},
		{ID: "tall", Artist: "C", Title: "Tall", Image: "tall.png", Width: 60, Height: 4000},
	})
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}
	return c
}

func newTestEngine(t *testing.T) (*Engine, *memStore) {
	t.Helper()
	store := newMemStore()
	state := NewState(store, nil)
	return NewEngine(state, DefaultGeometry(), testCatalog(t), nil), store
}

func testDeco() Decoration {
	return Decoration{TapeTilt: true, TapeColor: "#f2797b", WoodVariant: 2, OrnateVariant: 3}
}

func mustPlace(t *testing.T, e *Engine, id string, pos Point) Placement {
	t.Helper()
	art, ok := e.Catalog().Get(id)
	if !ok {
		t.Fatalf("artwork %q not in test catalog", id)
	}
	p, placed := e.Place(art, pos, testDeco())
	if !placed {
		t.Fatalf("Place(%q) placed = false", id)
	}
	return p
}

func TestPlaceClickScenario(t *testing.T) {
	// Gallery wall: canvas 800 high, header 60, furniture 160, artwork 50x50.
	e, _ := newTestEngine(t)

	p := mustPlace(t, e, "a1", DefaultPlacePosition)

	if p.X != 100 {
		t.Errorf("X = %v, want 100", p.X)
	}
	maxY := 800.0 - 60 - 160 - 50
	if p.Y < 0 || p.Y > maxY {
		t.Errorf("Y = %v, want within [0, %v]", p.Y, maxY)
	}
	if p.Frame != FrameNone {
		t.Errorf("Frame = %s, want none", p.Frame)
	}
	if p.Decoration.WoodVariant < 1 || p.Decoration.WoodVariant > 3 {
		t.Errorf("WoodVariant = %d, want 1..3", p.Decoration.WoodVariant)
	}
	if p.RecordID == "" {
		t.Error("RecordID is empty")
	}
	if p.PlacedAt.IsZero() {
		t.Error("PlacedAt is zero")
	}
}

func TestPlaceIdempotent(t *testing.T) {
	e, _ := newTestEngine(t)
	first := mustPlace(t, e, "a1", Point{X: 100, Y: 100})

	galleryBefore := e.State().Collection(RoomGallery)
	bedroomBefore := e.State().Collection(RoomBedroom)

	art, _ := e.Catalog().Get("a1")
	again, placed := e.Place(art, Point{X: 300, Y: 300}, Decoration{TapeColor: "#000000"})
	if placed {
		t.Fatal("second Place placed = true, want false")
	}
	if again.RecordID != first.RecordID {
		t.Errorf("returned RecordID = %s, want existing %s", again.RecordID, first.RecordID)
	}

	galleryAfter := e.State().Collection(RoomGallery)
	bedroomAfter := e.State().Collection(RoomBedroom)
	if len(galleryAfter) != len(galleryBefore) || len(bedroomAfter) != len(bedroomBefore) {
		t.Error("collections changed by idempotent re-place")
	}
	if galleryAfter[0] != first {
		t.Error("existing placement mutated by idempotent re-place")
	}
}

func TestPlaceIdempotentAcrossRooms(t *testing.T) {
	e, _ := newTestEngine(t)
	mustPlace(t, e, "a1", Point{X: 100, Y: 100})

	// a1 hangs in the gallery; placing it while the bedroom is active must
	// still be a no-op.
	e.SwitchRoom(RoomBedroom)
	art, _ := e.Catalog().Get("a1")
	if _, placed := e.Place(art, Point{X: 10, Y: 10}, testDeco()); placed {
		t.Error("Place in other room placed = true, want false")
	}
	if len(e.State().Collection(RoomBedroom)) != 0 {
		t.Error("bedroom gained a placement from idempotent re-place")
	}
}

func TestPlaceClamping(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		pos   Point
		wantX float64
		wantY float64
	}{
		// Gallery hangable band: 800-60-160 = 580.
		{"negative position", "a1", Point{X: -40, Y: -10}, 0, 0},
		{"below band", "a1", Point{X: 50, Y: 900}, 50, 580 - 50},
		{"inside band unchanged", "a1", Point{X: 200, Y: 300}, 200, 300},
		{"larger artwork tighter bound", "a2", Point{X: 0, Y: 580}, 0, 580 - 135},
		{"taller than band lower bound wins", "tall", Point{X: 10, Y: 400}, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(t)
			p := mustPlace(t, e, tt.id, tt.pos)
			if p.X != tt.wantX || p.Y != tt.wantY {
				t.Errorf("position = (%v, %v), want (%v, %v)", p.X, p.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestDragScenario(t *testing.T) {
	e, _ := newTestEngine(t)
	mustPlace(t, e, "a1", Point{X: 100, Y: 100})

	// Grab at (110,110): offset (10,10) into the artwork.
	if err := e.BeginDrag("a1", Point{X: 110, Y: 110}); err != nil {
		t.Fatalf("BeginDrag() error = %v", err)
	}

	p, moved := e.UpdateDrag(Point{X: 300, Y: 300})
	if !moved {
		t.Fatal("UpdateDrag() moved = false")
	}
	if p.X != 290 || p.Y != 290 {
		t.Errorf("position = (%v, %v), want (290, 290)", p.X, p.Y)
	}

	e.EndDrag()
	if _, dragging := e.Dragging(); dragging {
		t.Error("Dragging() = true after EndDrag")
	}

	// Position stays where the last update left it.
	got, _ := e.State().Find(RoomGallery, "a1")
	if got.X != 290 || got.Y != 290 {
		t.Errorf("persisted position = (%v, %v), want (290, 290)", got.X, got.Y)
	}
}

func TestDragClampsToBand(t *testing.T) {
	e, _ := newTestEngine(t)
	mustPlace(t, e, "a1", Point{X: 100, Y: 100})

	if err := e.BeginDrag("a1", Point{X: 100, Y: 100}); err != nil {
		t.Fatalf("BeginDrag() error = %v", err)
	}

	p, _ := e.UpdateDrag(Point{X: -500, Y: 2000})
	if p.X != 0 {
		t.Errorf("X = %v, want 0", p.X)
	}
	if want := 580.0 - 50; p.Y != want {
		t.Errorf("Y = %v, want %v", p.Y, want)
	}
}

func TestUpdateDragWithoutTarget(t *testing.T) {
	e, _ := newTestEngine(t)
	mustPlace(t, e, "a1", Point{X: 100, Y: 100})

	if _, moved := e.UpdateDrag(Point{X: 300, Y: 300}); moved {
		t.Error("UpdateDrag() without target moved = true")
	}

	got, _ := e.State().Find(RoomGallery, "a1")
	if got.X != 100 || got.Y != 100 {
		t.Errorf("position = (%v, %v), want unchanged (100, 100)", got.X, got.Y)
	}
}

func TestBeginDragRetargets(t *testing.T) {
	e, _ := newTestEngine(t)
	mustPlace(t, e, "a1", Point{X: 100, Y: 100})
	mustPlace(t, e, "a2", Point{X: 300, Y: 200})

	if err := e.BeginDrag("a1", Point{X: 100, Y: 100}); err != nil {
		t.Fatal(err)
	}
	if err := e.BeginDrag("a2", Point{X: 300, Y: 200}); err != nil {
		t.Fatal(err)
	}

	id, dragging := e.Dragging()
	if !dragging || id != "a2" {
		t.Errorf("Dragging() = %s, %v; want a2, true", id, dragging)
	}

	// Moving affects only the new target.
	e.UpdateDrag(Point{X: 310, Y: 210})
	a1, _ := e.State().Find(RoomGallery, "a1")
	if a1.X != 100 || a1.Y != 100 {
		t.Errorf("a1 moved to (%v, %v), want (100, 100)", a1.X, a1.Y)
	}
}

func TestBeginDragNotPlaced(t *testing.T) {
	e, _ := newTestEngine(t)
	if err := e.BeginDrag("a1", Point{}); err == nil {
		t.Error("BeginDrag(unplaced) error = nil, want error")
	}
}

func TestRemoveDropsActiveDrag(t *testing.T) {
	e, _ := newTestEngine(t)
	mustPlace(t, e, "a1", Point{X: 100, Y: 100})

	if err := e.BeginDrag("a1", Point{X: 100, Y: 100}); err != nil {
		t.Fatal(err)
	}
	if !e.Remove("a1") {
		t.Fatal("Remove(a1) = false")
	}
	if _, dragging := e.Dragging(); dragging {
		t.Error("Dragging() = true after removing the target")
	}
	if _, moved := e.UpdateDrag(Point{X: 1, Y: 1}); moved {
		t.Error("UpdateDrag() moved = true after removing the target")
	}
}

func TestDecorationFrozenAcrossMutations(t *testing.T) {
	e, _ := newTestEngine(t)
	placed := mustPlace(t, e, "a1", Point{X: 100, Y: 100})

	if err := e.BeginDrag("a1", Point{X: 110, Y: 110}); err != nil {
		t.Fatal(err)
	}
	e.UpdateDrag(Point{X: 300, Y: 300})
	e.EndDrag()
	if err := e.SetFrame("a1", FramePlain); err != nil {
		t.Fatal(err)
	}

	got, _ := e.State().Find(RoomGallery, "a1")
	if got.Decoration != placed.Decoration {
		t.Errorf("Decoration changed: %+v, want %+v", got.Decoration, placed.Decoration)
	}
	if got.RecordID != placed.RecordID {
		t.Errorf("RecordID changed: %s, want %s", got.RecordID, placed.RecordID)
	}
}

func TestReplaceDrawsFreshRecord(t *testing.T) {
	e, _ := newTestEngine(t)
	first := mustPlace(t, e, "a1", Point{X: 100, Y: 100})

	if !e.Remove("a1") {
		t.Fatal("Remove(a1) = false")
	}

	art, _ := e.Catalog().Get("a1")
	fresh := Decoration{TapeTilt: false, TapeColor: "#6ea4bf", WoodVariant: 1, OrnateVariant: 1}
	second, placed := e.Place(art, Point{X: 50, Y: 50}, fresh)
	if !placed {
		t.Fatal("re-place after remove placed = false")
	}
	if second.RecordID == first.RecordID {
		t.Error("re-place reused the old RecordID")
	}
	if second.Decoration != fresh {
		t.Errorf("Decoration = %+v, want the freshly drawn %+v", second.Decoration, fresh)
	}
}

func TestSetFrame(t *testing.T) {
	e, _ := newTestEngine(t)
	mustPlace(t, e, "a1", Point{X: 100, Y: 100})

	if err := e.SetFrame("a1", FrameOrnate); err != nil {
		t.Fatalf("SetFrame() error = %v", err)
	}
	got, _ := e.State().Find(RoomGallery, "a1")
	if got.Frame != FrameOrnate {
		t.Errorf("Frame = %s, want ornate", got.Frame)
	}

	if err := e.SetFrame("missing", FramePlain); err == nil {
		t.Error("SetFrame(missing) error = nil, want error")
	}
}

func TestSetFrameActiveRoomOnly(t *testing.T) {
	e, _ := newTestEngine(t)
	mustPlace(t, e, "a1", Point{X: 100, Y: 100})

	e.SwitchRoom(RoomBedroom)
	if err := e.SetFrame("a1", FramePlain); err == nil {
		t.Error("SetFrame from other room error = nil, want error")
	}

	got, _ := e.State().Find(RoomGallery, "a1")
	if got.Frame != FrameNone {
		t.Errorf("Frame = %s, want untouched none", got.Frame)
	}
}

func TestCycleFrame(t *testing.T) {
	e, _ := newTestEngine(t)
	mustPlace(t, e, "a1", Point{X: 100, Y: 100})

	// Gallery cycle: none -> plain -> ornate -> none.
	want := []Frame{FramePlain, FrameOrnate, FrameNone}
	for _, w := range want {
		got, err := e.CycleFrame("a1")
		if err != nil {
			t.Fatalf("CycleFrame() error = %v", err)
		}
		if got != w {
			t.Errorf("CycleFrame() = %s, want %s", got, w)
		}
	}
}

func TestRemove(t *testing.T) {
	e, _ := newTestEngine(t)
	mustPlace(t, e, "a1", Point{X: 100, Y: 100})
	mustPlace(t, e, "a2", Point{X: 300, Y: 200})

	if !e.Remove("a1") {
		t.Fatal("Remove(a1) = false")
	}

	collection := e.State().Collection(RoomGallery)
	if len(collection) != 1 || collection[0].ArtworkID != "a2" {
		t.Errorf("collection after remove = %+v, want only a2", collection)
	}

	if e.Remove("a1") {
		t.Error("Remove(absent) = true, want false")
	}
	if len(e.State().Collection(RoomGallery)) != 1 {
		t.Error("collection changed by removing absent id")
	}
}

func TestSwitchRoomShowsOtherCollection(t *testing.T) {
	e, _ := newTestEngine(t)
	mustPlace(t, e, "a1", Point{X: 100, Y: 100})

	e.SwitchRoom(RoomBedroom)
	if got := e.State().ActiveCollection(); len(got) != 0 {
		t.Errorf("bedroom collection = %d placements, want 0", len(got))
	}

	// a1 stays marked as placed in the gallery.
	room, ok := e.State().PlacedRoom("a1")
	if !ok || room != RoomGallery {
		t.Errorf("PlacedRoom(a1) = %s, %v; want gallery, true", room, ok)
	}

	e.SwitchRoom(RoomGallery)
	if got := e.State().ActiveCollection(); len(got) != 1 {
		t.Errorf("gallery collection = %d placements, want 1", len(got))
	}
}

func TestSwitchRoomDropsDrag(t *testing.T) {
	e, _ := newTestEngine(t)
	mustPlace(t, e, "a1", Point{X: 100, Y: 100})

	if err := e.BeginDrag("a1", Point{X: 100, Y: 100}); err != nil {
		t.Fatal(err)
	}
	e.SwitchRoom(RoomBedroom)
	if _, dragging := e.Dragging(); dragging {
		t.Error("Dragging() = true after room switch")
	}
}

func TestPlacePersistsActiveRoom(t *testing.T) {
	e, store := newTestEngine(t)
	mustPlace(t, e, "a1", Point{X: 100, Y: 100})

	if store.saveCalls[RoomGallery] != 1 {
		t.Errorf("gallery saves = %d, want 1", store.saveCalls[RoomGallery])
	}
	if store.saveCalls[RoomBedroom] != 0 {
		t.Errorf("bedroom saves = %d, want 0", store.saveCalls[RoomBedroom])
	}
}

func TestDragPersistsEachUpdate(t *testing.T) {
	e, store := newTestEngine(t)
	mustPlace(t, e, "a1", Point{X: 100, Y: 100})

	if err := e.BeginDrag("a1", Point{X: 100, Y: 100}); err != nil {
		t.Fatal(err)
	}
	e.UpdateDrag(Point{X: 150, Y: 150})
	e.UpdateDrag(Point{X: 200, Y: 200})
	e.EndDrag()

	// One save for the place, one per applied update.
	if store.saveCalls[RoomGallery] != 3 {
		t.Errorf("gallery saves = %d, want 3", store.saveCalls[RoomGallery])
	}
}
