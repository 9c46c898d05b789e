package cli

import (
	"testing"

	"github.com/wallery/wallery/pkg/wall"
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    wall.Point
		wantErr bool
	}{
		{"integers", "300,180", wall.Point{X: 300, Y: 180}, false},
		{"origin", "0,0", wall.Point{}, false},
		{"floats", "12.5,7.25", wall.Point{X: 12.5, Y: 7.25}, false},
		{"spaces around parts", " 40 , 60 ", wall.Point{X: 40, Y: 60}, false},
		{"missing comma", "300", wall.Point{}, true},
		{"too many parts", "1,2,3", wall.Point{}, true},
		{"not numbers", "a,b", wall.Point{}, true},
		{"empty", "", wall.Point{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePoint(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parsePoint(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parsePoint(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatPoint(t *testing.T) {
	if got := formatPoint(wall.Point{X: 100, Y: 120}); got != "(100, 120)" {
		t.Errorf("formatPoint = %q, want %q", got, "(100, 120)")
	}
	if got := formatPoint(wall.Point{X: 99.6, Y: 0.4}); got != "(100, 0)" {
		t.Errorf("formatPoint rounds = %q, want %q", got, "(100, 0)")
	}
}

func TestDecorationSeed(t *testing.T) {
	if got := decorationSeed(42); got != 42 {
		t.Errorf("decorationSeed(42) = %d, want 42", got)
	}
	if decorationSeed(0) == 0 {
		t.Error("decorationSeed(0) should substitute a time-based seed")
	}
}
