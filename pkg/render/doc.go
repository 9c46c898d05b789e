// Package render turns a wall scene into an SVG picture of the room.
//
// # Overview
//
// The renderer is a pure function over [wall.Scene]: it never touches the
// store, the network or the catalog loader. Everything it draws comes from
// the scene snapshot handed to it, so the same scene always produces the
// same bytes.
//
//	scene := engine.Scene()
//	svg := render.SVG(scene, render.WithFurniture(), render.WithPlaques())
//	png, err := render.ToPNG(svg, 2.0)
//
// # Layout
//
// The canvas mirrors the wall coordinate system: a header band at the top
// holds the room title and wordmark, the furniture band at the bottom holds
// the room's bench or bed, and placements draw in between at their clamped
// positions. Placement coordinates are relative to the hangable band, so
// the renderer offsets them by the header height.
//
// # Options
//
// [WithFurniture] draws the room furniture silhouette, [WithPlaques] adds a
// museum label under each artwork, and [WithImageHrefs] emits <image>
// elements referencing the catalog image URLs instead of placeholder
// rectangles. Hrefs are off by default so the output stays self-contained;
// rsvg-convert does not fetch remote resources.
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert the SVG with the external rsvg-convert tool
// (from librsvg).
package render
