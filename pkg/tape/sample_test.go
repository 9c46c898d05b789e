package tape

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func uniformRGBA(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestSampleUniform(t *testing.T) {
	data := encodePNG(t, uniformRGBA(32, 32, color.RGBA{204, 51, 51, 255}))

	got, err := Sample(data)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	if got != (Color{204, 51, 51}) {
		t.Errorf("Sample = %v, want {204 51 51}", got)
	}
}

func TestSampleBlockPosition(t *testing.T) {
	// Red everywhere except the sampled block, which is blue.
	img := uniformRGBA(32, 32, color.RGBA{255, 0, 0, 255})
	for y := sampleInset; y < sampleInset+sampleSize; y++ {
		for x := sampleInset; x < sampleInset+sampleSize; x++ {
			img.SetRGBA(x, y, color.RGBA{0, 0, 255, 255})
		}
	}

	got, err := Sample(encodePNG(t, img))
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	if got != (Color{0, 0, 255}) {
		t.Errorf("Sample = %v, want the block color {0 0 255}", got)
	}
}

func TestSampleAverages(t *testing.T) {
	// Block is half blue, half green.
	img := uniformRGBA(32, 32, color.RGBA{255, 255, 255, 255})
	for y := sampleInset; y < sampleInset+sampleSize; y++ {
		for x := sampleInset; x < sampleInset+sampleSize; x++ {
			if x < sampleInset+sampleSize/2 {
				img.SetRGBA(x, y, color.RGBA{0, 0, 255, 255})
			} else {
				img.SetRGBA(x, y, color.RGBA{0, 255, 0, 255})
			}
		}
	}

	got, err := Sample(encodePNG(t, img))
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	if got != (Color{0, 128, 128}) {
		t.Errorf("Sample = %v, want {0 128 128}", got)
	}
}

func TestSampleSmallerThanInset(t *testing.T) {
	// 4x4 image: the inset clamps back inside the bounds.
	data := encodePNG(t, uniformRGBA(4, 4, color.RGBA{10, 200, 30, 255}))

	got, err := Sample(data)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	if got != (Color{10, 200, 30}) {
		t.Errorf("Sample = %v, want {10 200 30}", got)
	}
}

func TestSampleGIF(t *testing.T) {
	img := image.NewPaletted(image.Rect(0, 0, 32, 32), color.Palette{color.RGBA{204, 51, 51, 255}})
	var buf bytes.Buffer
	if err := gif.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode gif: %v", err)
	}

	got, err := Sample(buf.Bytes())
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	if got != (Color{204, 51, 51}) {
		t.Errorf("Sample = %v, want {204 51 51}", got)
	}
}

func TestSampleJPEG(t *testing.T) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, uniformRGBA(64, 64, color.RGBA{204, 51, 51, 255}), &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}

	got, err := Sample(buf.Bytes())
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	// JPEG is lossy; allow a small per-channel drift.
	for name, pair := range map[string][2]uint8{
		"R": {got.R, 204}, "G": {got.G, 51}, "B": {got.B, 51},
	} {
		diff := int(pair[0]) - int(pair[1])
		if diff < -10 || diff > 10 {
			t.Errorf("channel %s = %d, want within 10 of %d", name, pair[0], pair[1])
		}
	}
}

func TestSampleInvalidData(t *testing.T) {
	if _, err := Sample([]byte("not an image")); err == nil {
		t.Error("Sample should fail on undecodable data")
	}
	if _, err := Sample(nil); err == nil {
		t.Error("Sample should fail on empty data")
	}
}
