package wall

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCollectionJSONRoundTrip(t *testing.T) {
	placedAt := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	collection := []Placement{
		{
			ArtworkID: "starry-night",
			RecordID:  "6a1b2c3d-0000-0000-0000-000000000001",
			X:         123.5,
			Y:         48,
			Frame:     FrameOrnate,
			Decoration: Decoration{
				TapeTilt:      true,
				TapeColor:     "#e8c547",
				WoodVariant:   3,
				OrnateVariant: 1,
			},
			PlacedAt: placedAt,
		},
		{
			ArtworkID: "great-wave",
			RecordID:  "6a1b2c3d-0000-0000-0000-000000000002",
			X:         0,
			Y:         0,
			Frame:     FrameNone,
			Decoration: Decoration{
				TapeTilt:      false,
				TapeColor:     "#dfa8b5",
				WoodVariant:   1,
				OrnateVariant: 2,
			},
			PlacedAt: placedAt.Add(time.Minute),
		},
	}

	data, err := json.Marshal(collection)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var back []Placement
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if len(back) != len(collection) {
		t.Fatalf("round trip length = %d, want %d", len(back), len(collection))
	}
	for i := range collection {
		if !back[i].PlacedAt.Equal(collection[i].PlacedAt) {
			t.Errorf("placement %d PlacedAt = %v, want %v", i, back[i].PlacedAt, collection[i].PlacedAt)
		}
		// Normalize times for the struct comparison; Equal above covers them.
		back[i].PlacedAt = collection[i].PlacedAt
		if back[i] != collection[i] {
			t.Errorf("placement %d = %+v, want %+v", i, back[i], collection[i])
		}
	}
}

func TestClonePlacements(t *testing.T) {
	original := []Placement{testPlacement("a1")}

	clone := ClonePlacements(original)
	clone[0].X = 999

	if original[0].X != 10 {
		t.Errorf("original mutated through clone: X = %v", original[0].X)
	}

	if got := ClonePlacements(nil); got != nil {
		t.Errorf("ClonePlacements(nil) = %v, want nil", got)
	}
}

func TestPosition(t *testing.T) {
	p := Placement{X: 12, Y: 34}
	if got := p.Position(); got != (Point{X: 12, Y: 34}) {
		t.Errorf("Position() = %+v, want {12 34}", got)
	}
}
