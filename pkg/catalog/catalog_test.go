package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func validArtworks() []Artwork {
	return []Artwork{
		{ID: "a1", Artist: "Artist One", Title: "First", Image: "a1.png", Width: 100, Height: 80},
		{ID: "a2", Artist: "Artist Two", Title: "Second", Image: "a2.png", Width: 50, Height: 50},
	}
}

func TestNew(t *testing.T) {
	c, err := New(validArtworks())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name     string
		artworks []Artwork
	}{
		{
			name: "duplicate id",
			artworks: []Artwork{
				{ID: "a1", Image: "x.png", Width: 10, Height: 10},
				{ID: "a1", Image: "y.png", Width: 10, Height: 10},
			},
		},
		{
			name:     "empty id",
			artworks: []Artwork{{ID: "", Image: "x.png", Width: 10, Height: 10}},
		},
		{
			name:     "id with path separator",
			artworks: []Artwork{{ID: "a/1", Image: "x.png", Width: 10, Height: 10}},
		},
		{
			name:     "missing image",
			artworks: []Artwork{{ID: "a1", Width: 10, Height: 10}},
		},
		{
			name:     "zero width",
			artworks: []Artwork{{ID: "a1", Image: "x.png", Width: 0, Height: 10}},
		},
		{
			name:     "negative height",
			artworks: []Artwork{{ID: "a1", Image: "x.png", Width: 10, Height: -5}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.artworks); err == nil {
				t.Error("New() error = nil, want validation error")
			}
		})
	}
}

func TestGet(t *testing.T) {
	c, err := New(validArtworks())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	a, ok := c.Get("a2")
	if !ok {
		t.Fatal("Get(a2) ok = false, want true")
	}
	if a.Title != "Second" {
		t.Errorf("Title = %q, want %q", a.Title, "Second")
	}

	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) ok = true, want false")
	}
}

func TestArtworksIsACopy(t *testing.T) {
	c, err := New(validArtworks())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	got := c.Artworks()
	got[0].Title = "mutated"

	again, _ := c.Get("a1")
	if again.Title != "First" {
		t.Errorf("catalog mutated through Artworks() copy: Title = %q", again.Title)
	}
}

func TestParseTOML(t *testing.T) {
	data := []byte(`
[[artwork]]
id = "starry"
artist = "Vincent van Gogh"
title = "The Starry Night"
year = 1889
image = "starry.png"
width = 640
height = 507

[[artwork]]
id = "wave"
artist = "Hokusai"
title = "The Great Wave"
year = "c. 1831"
image = "wave.png"
width = 640
height = 443
`)

	c, err := ParseTOML(data)
	if err != nil {
		t.Fatalf("ParseTOML() error = %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}

	starry, _ := c.Get("starry")
	if starry.Year.String() != "1889" || !starry.Year.IsNumeric() {
		t.Errorf("starry year = %q (numeric=%v), want numeric 1889",
			starry.Year.String(), starry.Year.IsNumeric())
	}

	wave, _ := c.Get("wave")
	if wave.Year.String() != "c. 1831" || wave.Year.IsNumeric() {
		t.Errorf("wave year = %q (numeric=%v), want textual \"c. 1831\"",
			wave.Year.String(), wave.Year.IsNumeric())
	}
}

func TestParseJSON(t *testing.T) {
	data := []byte(`[
		{"id": "starry", "artist": "Vincent van Gogh", "title": "The Starry Night",
		 "year": 1889, "image": "starry.png", "width": 640, "height": 507},
		{"id": "wave", "artist": "Hokusai", "title": "The Great Wave",
		 "year": "c. 1831", "image": "wave.png", "width": 640, "height": 443}
	]`)

	c, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}

	starry, _ := c.Get("starry")
	if !starry.Year.IsNumeric() {
		t.Error("starry year should be numeric")
	}
	wave, _ := c.Get("wave")
	if wave.Year.IsNumeric() {
		t.Error("wave year should be textual")
	}
}

func TestLoadByExtension(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "catalog.toml")
	tomlData := "[[artwork]]\nid = \"a1\"\nimage = \"a1.png\"\nwidth = 10\nheight = 10\n"
	if err := os.WriteFile(tomlPath, []byte(tomlData), 0o600); err != nil {
		t.Fatal(err)
	}

	jsonPath := filepath.Join(dir, "catalog.json")
	jsonData := `[{"id": "a1", "image": "a1.png", "width": 10, "height": 10}]`
	if err := os.WriteFile(jsonPath, []byte(jsonData), 0o600); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{tomlPath, jsonPath} {
		c, err := Load(path)
		if err != nil {
			t.Errorf("Load(%s) error = %v", filepath.Base(path), err)
			continue
		}
		if c.Len() != 1 {
			t.Errorf("Load(%s) Len() = %d, want 1", filepath.Base(path), c.Len())
		}
	}

	if _, err := Load(filepath.Join(dir, "catalog.yaml")); err == nil {
		t.Error("Load(.yaml) error = nil, want unsupported format error")
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("Load(missing) error = nil, want not-found error")
	}
}

func TestSample(t *testing.T) {
	c, err := Sample()
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	if c.Len() == 0 {
		t.Fatal("Sample() catalog is empty")
	}
	for _, a := range c.Artworks() {
		if a.Artist == "" || a.Title == "" {
			t.Errorf("sample artwork %q missing attribution", a.ID)
		}
	}
}
