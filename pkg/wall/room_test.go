package wall

import (
	"testing"

	"github.com/wallery/wallery/pkg/errors"
)

func TestParseRoom(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Room
		wantErr bool
	}{
		{"gallery", "gallery", RoomGallery, false},
		{"bedroom", "bedroom", RoomBedroom, false},
		{"mixed case", "Gallery", RoomGallery, false},
		{"surrounding spaces", "  bedroom ", RoomBedroom, false},
		{"unknown", "attic", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRoom(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRoom(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if code := errors.GetCode(err); code != errors.ErrCodeInvalidRoom {
					t.Errorf("ParseRoom(%q) code = %v, want %v", tt.input, code, errors.ErrCodeInvalidRoom)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseRoom(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRoomOther(t *testing.T) {
	if got := RoomGallery.Other(); got != RoomBedroom {
		t.Errorf("gallery.Other() = %q, want bedroom", got)
	}
	if got := RoomBedroom.Other(); got != RoomGallery {
		t.Errorf("bedroom.Other() = %q, want gallery", got)
	}
	if got := Room("attic").Other(); got != RoomGallery {
		t.Errorf("attic.Other() = %q, want gallery", got)
	}
}

func TestParseFrame(t *testing.T) {
	tests := []struct {
		input   string
		want    Frame
		wantErr bool
	}{
		{"none", FrameNone, false},
		{"plain", FramePlain, false},
		{"Ornate", FrameOrnate, false},
		{"WASHI", FrameWashi, false},
		{"gilded", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFrame(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFrame(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseFrame(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFramesFor(t *testing.T) {
	gallery := FramesFor(RoomGallery)
	wantGallery := []Frame{FrameNone, FramePlain, FrameOrnate}
	if len(gallery) != len(wantGallery) {
		t.Fatalf("FramesFor(gallery) = %v, want %v", gallery, wantGallery)
	}
	for i, f := range gallery {
		if f != wantGallery[i] {
			t.Errorf("FramesFor(gallery)[%d] = %q, want %q", i, f, wantGallery[i])
		}
	}

	bedroom := FramesFor(RoomBedroom)
	wantBedroom := []Frame{FrameNone, FramePlain, FrameWashi}
	if len(bedroom) != len(wantBedroom) {
		t.Fatalf("FramesFor(bedroom) = %v, want %v", bedroom, wantBedroom)
	}
	for i, f := range bedroom {
		if f != wantBedroom[i] {
			t.Errorf("FramesFor(bedroom)[%d] = %q, want %q", i, f, wantBedroom[i])
		}
	}
}

func TestFrameOffered(t *testing.T) {
	tests := []struct {
		room  Room
		frame Frame
		want  bool
	}{
		{RoomGallery, FrameOrnate, true},
		{RoomGallery, FrameWashi, false},
		{RoomBedroom, FrameWashi, true},
		{RoomBedroom, FrameOrnate, false},
		{RoomGallery, FrameNone, true},
		{RoomBedroom, FramePlain, true},
	}

	for _, tt := range tests {
		if got := FrameOffered(tt.room, tt.frame); got != tt.want {
			t.Errorf("FrameOffered(%s, %s) = %v, want %v", tt.room, tt.frame, got, tt.want)
		}
	}
}

func TestNextFrame(t *testing.T) {
	tests := []struct {
		name string
		room Room
		from Frame
		want Frame
	}{
		{"gallery none to plain", RoomGallery, FrameNone, FramePlain},
		{"gallery plain to ornate", RoomGallery, FramePlain, FrameOrnate},
		{"gallery wraps", RoomGallery, FrameOrnate, FrameNone},
		{"bedroom plain to washi", RoomBedroom, FramePlain, FrameWashi},
		{"bedroom wraps", RoomBedroom, FrameWashi, FrameNone},
		{"unoffered restarts cycle", RoomBedroom, FrameOrnate, FrameNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextFrame(tt.room, tt.from); got != tt.want {
				t.Errorf("NextFrame(%s, %s) = %q, want %q", tt.room, tt.from, got, tt.want)
			}
		})
	}
}

func TestDefaultPrefs(t *testing.T) {
	p := DefaultPrefs()
	if p.ActiveRoom != RoomGallery {
		t.Errorf("DefaultPrefs().ActiveRoom = %q, want gallery", p.ActiveRoom)
	}
	if p.Appearance != AppearanceLight {
		t.Errorf("DefaultPrefs().Appearance = %q, want light", p.Appearance)
	}
}
