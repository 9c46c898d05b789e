package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wallery/wallery/pkg/render"
	"github.com/wallery/wallery/pkg/wall"
)

const (
	defaultRenderBase = "wall" // base output path when -o is not given
	defaultPNGScale   = 2.0    // raster scale for PNG output
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string   // output file path (or base path for multiple outputs)
	rooms     []string // rooms to render: "gallery", "bedroom"
	formats   []string // output formats: "svg", "pdf", "png"
	furniture bool     // draw the room furniture silhouettes
	images    bool     // reference catalog image URLs instead of placeholders
	plaques   bool     // draw museum plaques under each artwork
	scale     float64  // raster scale for PNG output
}

// newRenderCmd creates the render command for exporting wall snapshots.
func newRenderCmd(configPath *string) *cobra.Command {
	var roomsStr, formatsStr string
	opts := renderOpts{
		furniture: true,
		scale:     defaultPNGScale,
	}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a room's wall to SVG, PNG or PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			var err error
			if opts.rooms, err = parseRenderRooms(roomsStr); err != nil {
				return err
			}
			return runRender(cmd.Context(), *configPath, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single room/format) or base path (multiple)")
	cmd.Flags().StringVarP(&roomsStr, "room", "r", "", "room(s) to render: gallery, bedroom, all (default: the active room)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf (comma-separated)")
	cmd.Flags().BoolVar(&opts.furniture, "furniture", opts.furniture, "draw the room furniture")
	cmd.Flags().BoolVar(&opts.images, "images", false, "embed catalog image URLs instead of placeholder boxes")
	cmd.Flags().BoolVar(&opts.plaques, "plaques", false, "draw museum plaques under each artwork")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "raster scale for PNG output")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{"svg"}
	}
	return strings.Split(s, ",")
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"svg": true, "pdf": true, "png": true}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'svg', 'pdf', or 'png')", f)
		}
	}
	return nil
}

// parseRenderRooms parses the --room flag. Empty selects the active
// room, resolved after the snapshot loads and signalled here by a nil
// slice.
func parseRenderRooms(s string) ([]string, error) {
	switch s {
	case "":
		return nil, nil
	case "all":
		rooms := []string{}
		for _, r := range wall.Rooms() {
			rooms = append(rooms, string(r))
		}
		return rooms, nil
	}
	rooms := []string{}
	for _, part := range strings.Split(s, ",") {
		room, err := wall.ParseRoom(part)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, string(room))
	}
	return rooms, nil
}

// basePath derives the base output path from the output flag, stripping
// a known format extension so multiple outputs can share the stem.
func basePath(output string) string {
	if output == "" {
		return defaultRenderBase
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// runRender hydrates the wall state and writes one file per requested
// room/format combination.
func runRender(ctx context.Context, configPath string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	a, err := bootApp(ctx, configPath, true)
	if err != nil {
		return err
	}
	defer a.Close()

	rooms := opts.rooms
	if rooms == nil {
		rooms = []string{string(a.state.ActiveRoom())}
	}
	logger.Debug("rendering", "rooms", rooms, "formats", opts.formats)

	prog := newProgress(logger)
	if len(rooms) == 1 && len(opts.formats) == 1 {
		err = renderSingle(ctx, a, wall.Room(rooms[0]), opts.formats[0], opts)
	} else {
		err = renderMultiple(ctx, a, rooms, opts)
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d rooms as %s", len(rooms), strings.Join(opts.formats, ", ")))
	return nil
}

// renderSingle renders one room in one format to a single output file.
func renderSingle(ctx context.Context, a *app, room wall.Room, format string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	data, err := renderScene(a, room, format, opts)
	if err != nil {
		return err
	}
	logger.Debugf("Generated %s: %d bytes", format, len(data))

	outputPath := opts.output
	if outputPath == "" {
		outputPath = defaultRenderBase + "." + format
	}

	if err := writeOutput(outputPath, data); err != nil {
		return err
	}
	if outputPath != "-" {
		printSuccess("Rendered the %s", room)
		printFile(outputPath)
	}
	return nil
}

// renderMultiple renders all requested room/format combinations to
// separate files named base_room.format.
func renderMultiple(ctx context.Context, a *app, rooms []string, opts *renderOpts) error {
	base := basePath(opts.output)
	written := 0

	for _, room := range rooms {
		for _, format := range opts.formats {
			data, err := renderScene(a, wall.Room(room), format, opts)
			if err != nil {
				return fmt.Errorf("%s/%s: %w", room, format, err)
			}

			var path string
			if len(rooms) == 1 {
				path = fmt.Sprintf("%s.%s", base, format)
			} else {
				path = fmt.Sprintf("%s_%s.%s", base, room, format)
			}
			if err := writeOutput(path, data); err != nil {
				return err
			}
			printFile(path)
			written++
		}
	}
	printSuccess("Rendered %d files", written)
	return nil
}

// renderScene produces the bytes for one room in one format.
func renderScene(a *app, room wall.Room, format string, opts *renderOpts) ([]byte, error) {
	svgOpts := []render.SVGOption{}
	if opts.furniture {
		svgOpts = append(svgOpts, render.WithFurniture())
	}
	if opts.images {
		svgOpts = append(svgOpts, render.WithImageHrefs())
	}
	if opts.plaques {
		svgOpts = append(svgOpts, render.WithPlaques())
	}

	svg := render.SVG(a.scene(room), svgOpts...)

	switch format {
	case "svg":
		return svg, nil
	case "pdf":
		return render.ToPDF(svg)
	case "png":
		return render.ToPNG(svg, opts.scale)
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path. "-" selects
// standard output.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// writeOutput writes rendered bytes to a file, or to stdout for "-".
func writeOutput(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = out.Write(data)
	return err
}
