package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/wallery/wallery/pkg/catalog"
	"github.com/wallery/wallery/pkg/fonts"
	"github.com/wallery/wallery/pkg/tape"
	"github.com/wallery/wallery/pkg/wall"
)

// Frame and tape dimensions in canvas pixels.
const (
	plainFrameWidth  = 10.0
	ornateFrameWidth = 16.0
	tapeWidth        = 56.0
	tapeHeight       = 22.0
	washiWidth       = 46.0
	washiHeight      = 18.0
	tapeTiltAngle    = 8.0
	plaqueWidth      = 150.0
	plaqueHeight     = 36.0
	plaqueGap        = 12.0
)

// Frame tone tables indexed by the decoration's 1-based variant.
var (
	woodTones   = [3]string{"#8a6248", "#6f4a33", "#a37b58"}
	ornateTones = [3]string{"#c9a227", "#a9852e", "#8c6d1f"}
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	furniture  bool
	imageHrefs bool
	plaques    bool
}

// WithFurniture draws the room's furniture silhouette in the bottom band.
func WithFurniture() SVGOption { return func(r *svgRenderer) { r.furniture = true } }

// WithImageHrefs references catalog image URLs from <image> elements
// instead of drawing placeholder rectangles.
func WithImageHrefs() SVGOption { return func(r *svgRenderer) { r.imageHrefs = true } }

// WithPlaques adds a title and artist label under each placement.
func WithPlaques() SVGOption { return func(r *svgRenderer) { r.plaques = true } }

// SVG renders the scene as a standalone SVG document.
func SVG(scene wall.Scene, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	s := schemeFor(scene)
	geo := scene.Geometry

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.0f %.0f" width="%.0f" height="%.0f">`+"\n",
		geo.CanvasWidth, geo.CanvasHeight, geo.CanvasWidth, geo.CanvasHeight)

	renderWall(&buf, scene, s)
	if r.furniture {
		renderFurniture(&buf, scene, s)
	}
	for _, p := range scene.Placements {
		r.renderPlacement(&buf, scene, s, p)
	}

	// Header last so it overlays anything poking out of the hangable band.
	renderHeader(&buf, scene, s)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	var r svgRenderer
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// scheme holds the palette for one appearance mode.
type scheme struct {
	wall              string
	header            string
	headerRule        string
	headerText        string
	wordmark          string
	furniture         string
	furnitureAccent   string
	linen             string
	placeholder       string
	placeholderStroke string
	placeholderText   string
	plaqueFill        string
	plaqueStroke      string
	plaqueText        string
}

var lightScheme = scheme{
	wall:              "#f4f1ec",
	header:            "#ffffff",
	headerRule:        "#ddd5c8",
	headerText:        "#2f2a26",
	wordmark:          "#8a8177",
	furniture:         "#9c8468",
	furnitureAccent:   "#d8cfc2",
	linen:             "#fffdf8",
	placeholder:       "#e9e2d6",
	placeholderStroke: "#b9ac99",
	placeholderText:   "#6b6257",
	plaqueFill:        "#fffdf8",
	plaqueStroke:      "#c9bfae",
	plaqueText:        "#3a342d",
}

var darkScheme = scheme{
	wall:              "#2a2622",
	header:            "#1d1a17",
	headerRule:        "#3f3930",
	headerText:        "#e8e2d8",
	wordmark:          "#7d7468",
	furniture:         "#54442f",
	furnitureAccent:   "#6e6154",
	linen:             "#8f857a",
	placeholder:       "#3a342d",
	placeholderStroke: "#5c5346",
	placeholderText:   "#b9ac99",
	plaqueFill:        "#332e28",
	plaqueStroke:      "#5c5346",
	plaqueText:        "#d8cfc2",
}

// schemeFor picks the palette for the scene. The configured wall color only
// applies in light mode; dark mode keeps its own wall tone so a pale
// configured color does not defeat the dark scheme.
func schemeFor(scene wall.Scene) scheme {
	if scene.Appearance == wall.AppearanceDark {
		return darkScheme
	}
	s := lightScheme
	if scene.WallColor != "" {
		s.wall = scene.WallColor
	}
	return s
}

func renderWall(buf *bytes.Buffer, scene wall.Scene, s scheme) {
	fmt.Fprintf(buf, `  <rect x="0" y="0" width="%.0f" height="%.0f" fill="%s"/>`+"\n",
		scene.Geometry.CanvasWidth, scene.Geometry.CanvasHeight, s.wall)
}

// renderHeader draws the top band with the room title on the left and the
// wordmark on the right.
func renderHeader(buf *bytes.Buffer, scene wall.Scene, s scheme) {
	geo := scene.Geometry
	fmt.Fprintf(buf, `  <rect x="0" y="0" width="%.0f" height="%.0f" fill="%s"/>`+"\n",
		geo.CanvasWidth, geo.HeaderHeight, s.header)
	fmt.Fprintf(buf, `  <line x1="0" y1="%.1f" x2="%.0f" y2="%.1f" stroke="%s" stroke-width="1"/>`+"\n",
		geo.HeaderHeight, geo.CanvasWidth, geo.HeaderHeight, s.headerRule)
	fmt.Fprintf(buf, `  <text x="28" y="%.1f" font-family="%s" font-size="22" font-weight="600" fill="%s">%s</text>`+"\n",
		geo.HeaderHeight/2+8, fonts.Family, s.headerText, xmlEscape(roomTitle(scene.Room)))
	renderWordmark(buf, geo.CanvasWidth, geo.HeaderHeight, s)
}

// renderWordmark draws the wallery mark, a small frame icon plus the name,
// near the right edge of the header.
func renderWordmark(buf *bytes.Buffer, canvasWidth, headerHeight float64, s scheme) {
	fmt.Fprintf(buf, `  <g transform="translate(%.1f, %.1f)" class="wordmark">
    <rect x="0" y="-9" width="18" height="18" rx="2" fill="none" stroke="%s" stroke-width="2"/>
    <rect x="5" y="-4" width="8" height="8" rx="1" fill="%s"/>
    <text x="26" y="6" font-family="%s" font-size="15" font-weight="500" fill="%s">wallery</text>
  </g>
`, canvasWidth-128, headerHeight/2, s.wordmark, s.wordmark, fonts.Family, s.wordmark)
}

func roomTitle(room wall.Room) string {
	name := string(room)
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func renderFurniture(buf *bytes.Buffer, scene wall.Scene, s scheme) {
	geo := scene.Geometry
	bandTop := geo.CanvasHeight - geo.FurnitureHeight(scene.Room)
	cx := geo.CanvasWidth / 2

	buf.WriteString(`  <g class="furniture">` + "\n")
	switch scene.Room {
	case wall.RoomBedroom:
		renderBed(buf, cx, bandTop, s)
	default:
		renderBench(buf, cx, bandTop, s)
	}
	buf.WriteString("  </g>\n")
}

// renderBench draws the gallery bench, a seat slab with a leg under each
// end.
func renderBench(buf *bytes.Buffer, cx, bandTop float64, s scheme) {
	fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="420" height="24" rx="6" fill="%s"/>`+"\n",
		cx-210, bandTop+46, s.furniture)
	fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="22" height="56" fill="%s"/>`+"\n",
		cx-192, bandTop+70, s.furniture)
	fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="22" height="56" fill="%s"/>`+"\n",
		cx+170, bandTop+70, s.furniture)
}

// renderBed draws the bedroom bed: headboard, mattress, pillow and a
// folded blanket.
func renderBed(buf *bytes.Buffer, cx, bandTop float64, s scheme) {
	fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="480" height="70" rx="10" fill="%s"/>`+"\n",
		cx-240, bandTop+10, s.furniture)
	fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="500" height="82" rx="12" fill="%s"/>`+"\n",
		cx-250, bandTop+68, s.furnitureAccent)
	fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="140" height="40" rx="12" fill="%s"/>`+"\n",
		cx-214, bandTop+80, s.linen)
	fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="500" height="72" rx="8" fill="%s" fill-opacity="0.5"/>`+"\n",
		cx-250, bandTop+118, s.furniture)
}

func (r *svgRenderer) renderPlacement(buf *bytes.Buffer, scene wall.Scene, s scheme, p wall.Placement) {
	if scene.Catalog == nil {
		return
	}
	art, ok := scene.Catalog.Get(p.ArtworkID)
	if !ok {
		// Snapshots can outlive catalog edits; skip records whose artwork
		// is gone.
		return
	}

	size := wall.RenderedSize(art.Width, art.Height)
	x := p.X
	y := scene.Geometry.HeaderHeight + p.Y

	// Records persisted before frames existed carry an empty frame.
	frame := p.Frame
	if frame == "" {
		frame = wall.FrameNone
	}

	fmt.Fprintf(buf, `  <g id="placement-%s" class="placement">`+"\n", xmlEscape(p.RecordID))

	switch frame {
	case wall.FramePlain:
		renderRectFrame(buf, x, y, size, plainFrameWidth, variantTone(woodTones, p.Decoration.WoodVariant))
	case wall.FrameOrnate:
		renderRectFrame(buf, x, y, size, ornateFrameWidth, variantTone(ornateTones, p.Decoration.OrnateVariant))
		fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#000" stroke-opacity="0.25" stroke-width="2"/>`+"\n",
			x-ornateFrameWidth/2, y-ornateFrameWidth/2, size.Width+ornateFrameWidth, size.Height+ornateFrameWidth)
	}

	r.renderArtwork(buf, s, art, x, y, size)

	tapeColor := p.Decoration.TapeColor
	if tapeColor == "" {
		tapeColor = tape.Fallback
	}
	switch frame {
	case wall.FrameNone:
		angle := tapeTiltAngle
		if p.Decoration.TapeTilt {
			angle = -tapeTiltAngle
		}
		renderTapeStrip(buf, x+size.Width/2, y, tapeWidth, tapeHeight, angle, tapeColor)
	case wall.FrameWashi:
		renderWashiCorners(buf, x, y, size, p.Decoration.TapeTilt, tapeColor)
	}

	if r.plaques {
		renderPlaque(buf, s, art, x, y, size)
	}

	buf.WriteString("  </g>\n")
}

// renderRectFrame draws a frame as a filled rect extending width pixels
// beyond each artwork edge. The artwork body draws over its middle.
func renderRectFrame(buf *bytes.Buffer, x, y float64, size wall.Size, width float64, tone string) {
	fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="2" fill="%s"/>`+"\n",
		x-width, y-width, size.Width+2*width, size.Height+2*width, tone)
}

func (r *svgRenderer) renderArtwork(buf *bytes.Buffer, s scheme, art catalog.Artwork, x, y float64, size wall.Size) {
	if r.imageHrefs && art.Image != "" {
		fmt.Fprintf(buf, `    <image href="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>`+"\n",
			xmlEscape(art.Image), x, y, size.Width, size.Height)
		return
	}
	fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
		x, y, size.Width, size.Height, s.placeholder, s.placeholderStroke)
	fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" font-family="%s" font-size="11" text-anchor="middle" fill="%s">%s</text>`+"\n",
		x+size.Width/2, y+size.Height/2+4, fonts.Family, s.placeholderText, xmlEscape(art.Title))
}

// renderTapeStrip draws one strip of tape centered on (cx, cy).
func renderTapeStrip(buf *bytes.Buffer, cx, cy, w, h, angle float64, color string) {
	fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="2" fill="%s" fill-opacity="0.85" transform="rotate(%.1f %.1f %.1f)"/>`+"\n",
		cx-w/2, cy-h/2, w, h, color, angle, cx, cy)
}

// renderWashiCorners puts a strip across each corner. The tilt flag flips
// which diagonal each strip runs along.
func renderWashiCorners(buf *bytes.Buffer, x, y float64, size wall.Size, tilt bool, color string) {
	angle := 45.0
	if tilt {
		angle = -45.0
	}
	renderTapeStrip(buf, x, y, washiWidth, washiHeight, -angle, color)
	renderTapeStrip(buf, x+size.Width, y, washiWidth, washiHeight, angle, color)
	renderTapeStrip(buf, x, y+size.Height, washiWidth, washiHeight, angle, color)
	renderTapeStrip(buf, x+size.Width, y+size.Height, washiWidth, washiHeight, -angle, color)
}

// renderPlaque draws a museum label centered under the artwork.
func renderPlaque(buf *bytes.Buffer, s scheme, art catalog.Artwork, x, y float64, size wall.Size) {
	px := x + size.Width/2 - plaqueWidth/2
	py := y + size.Height + plaqueGap

	fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="3" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
		px, py, plaqueWidth, plaqueHeight, s.plaqueFill, s.plaqueStroke)
	fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" font-family="%s" font-size="12" font-style="italic" text-anchor="middle" fill="%s">%s</text>`+"\n",
		px+plaqueWidth/2, py+15, fonts.PlaqueFamily, s.plaqueText, xmlEscape(art.Title))
	fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" font-family="%s" font-size="10" text-anchor="middle" fill="%s">%s</text>`+"\n",
		px+plaqueWidth/2, py+29, fonts.PlaqueFamily, s.plaqueText, xmlEscape(plaqueCredit(art)))
}

// plaqueCredit formats the artist line, appending the year when known.
func plaqueCredit(art catalog.Artwork) string {
	if art.Year.IsZero() {
		return art.Artist
	}
	return art.Artist + ", " + art.Year.String()
}

// variantTone maps a 1-based decoration variant onto a tone table,
// treating out-of-range values as the first entry.
func variantTone(tones [3]string, variant int) string {
	if variant < 1 || variant > len(tones) {
		return tones[0]
	}
	return tones[variant-1]
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// xmlEscape escapes text and attribute values for SVG output.
func xmlEscape(s string) string { return xmlEscaper.Replace(s) }
