package tape

import (
	"bytes"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Sample block position and extent, in pixels from the image's
// top-left corner. The inset skips frame borders and scanner edges;
// both are clamped for images smaller than the block.
const (
	sampleInset = 8
	sampleSize  = 8
)

// Sample decodes an image and averages the pixel block near its
// top-left corner. The result is the base color [Derive] works from.
func Sample(data []byte) (Color, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Color{}, fmt.Errorf("decode image: %w", err)
	}

	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return Color{}, fmt.Errorf("empty image")
	}

	x0 := min(b.Min.X+sampleInset, b.Max.X-1)
	y0 := min(b.Min.Y+sampleInset, b.Max.Y-1)
	x1 := min(x0+sampleSize, b.Max.X)
	y1 := min(y0+sampleSize, b.Max.Y)

	// RGBA returns alpha-premultiplied 16-bit channels; a fully
	// transparent block reads as black and fails Derive's lightness
	// gate.
	var sumR, sumG, sumB, n uint64
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r, g, bb, _ := img.At(x, y).RGBA()
			sumR += uint64(r >> 8)
			sumG += uint64(g >> 8)
			sumB += uint64(bb >> 8)
			n++
		}
	}

	return Color{
		R: uint8((sumR + n/2) / n),
		G: uint8((sumG + n/2) / n),
		B: uint8((sumB + n/2) / n),
	}, nil
}
