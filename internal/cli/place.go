package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wallery/wallery/pkg/errors"
	"github.com/wallery/wallery/pkg/wall"
)

// placeOpts holds the command-line flags for the place command.
type placeOpts struct {
	at      string // target position "X,Y"; empty means the default landing spot
	seed    uint64 // decoration seed; 0 means time-based
	noCache bool   // skip the tape sample cache
}

// newPlaceCmd creates the place command, the one-shot equivalent of
// clicking a catalog entry.
func newPlaceCmd(configPath *string) *cobra.Command {
	var opts placeOpts

	cmd := &cobra.Command{
		Use:   "place <artwork-id>",
		Short: "Hang an artwork on the active room's wall",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlace(cmd.Context(), *configPath, args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.at, "at", "", "position as X,Y (default: the standard landing spot)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "decoration seed for reproducible tape and frame draws (0 = random)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the tape sample cache")

	return cmd
}

func runPlace(ctx context.Context, configPath, artworkID string, opts *placeOpts) error {
	a, err := bootApp(ctx, configPath, opts.noCache)
	if err != nil {
		return err
	}
	defer a.Close()

	art, err := a.mustArtwork(artworkID)
	if err != nil {
		return err
	}

	if room, ok := a.state.PlacedRoom(art.ID); ok {
		printInfo("%q is already hung in the %s", art.Title, room)
		return nil
	}

	pos := wall.DefaultPlacePosition
	if opts.at != "" {
		if pos, err = parsePoint(opts.at); err != nil {
			return err
		}
	}

	rng := wall.NewRand(decorationSeed(opts.seed))

	sp := newSpinnerWithContext(ctx, "Sampling tape color...")
	sp.Start()
	tapeColor := a.resolver.Pick(ctx, art.Image, rng)
	sp.Stop()
	if ctx.Err() != nil {
		return ctx.Err()
	}

	deco := wall.Decorate(rng, tapeColor)
	placement, placed := a.engine.Place(art, pos, deco)
	if !placed {
		printInfo("%q is already hung in the %s", art.Title, a.state.ActiveRoom())
		return nil
	}

	printSuccess("Hung %q in the %s at %s", art.Title, a.state.ActiveRoom(), formatPoint(placement.Position()))
	printDetail("tape %s · wood %d · ornate %d", deco.TapeColor, deco.WoodVariant, deco.OrnateVariant)
	return nil
}

// newMoveCmd creates the move command, a one-shot drag.
func newMoveCmd(configPath *string) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "move <artwork-id>",
		Short: "Move a hung artwork to a new position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMove(cmd.Context(), *configPath, args[0], to)
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "target position as X,Y (required)")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runMove(ctx context.Context, configPath, artworkID, to string) error {
	target, err := parsePoint(to)
	if err != nil {
		return err
	}

	a, err := bootApp(ctx, configPath, true)
	if err != nil {
		return err
	}
	defer a.Close()

	art, err := a.mustArtwork(artworkID)
	if err != nil {
		return err
	}

	current, ok := a.state.Find(a.state.ActiveRoom(), art.ID)
	if !ok {
		return notHungError(a, art.ID)
	}

	// A move is a drag grabbed at the top-left corner.
	if err := a.engine.BeginDrag(art.ID, current.Position()); err != nil {
		return err
	}
	moved, _ := a.engine.UpdateDrag(target)
	a.engine.EndDrag()

	printSuccess("Moved %q to %s", art.Title, formatPoint(moved.Position()))
	return nil
}

// notHungError explains where the artwork actually is, if anywhere.
func notHungError(a *app, artworkID string) error {
	if room, ok := a.state.PlacedRoom(artworkID); ok {
		return errors.New(errors.ErrCodeNotPlaced,
			"artwork %q is hung in the %s; switch rooms first with 'wallery room %s'",
			artworkID, room, room)
	}
	return errors.New(errors.ErrCodeNotPlaced, "artwork %q is not hung anywhere", artworkID)
}

// decorationSeed turns the --seed flag into a random source seed,
// substituting the clock when unset.
func decorationSeed(seed uint64) uint64 {
	if seed != 0 {
		return seed
	}
	return uint64(time.Now().UnixNano())
}

// parsePoint parses an "X,Y" flag value into a wall point.
func parsePoint(s string) (wall.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return wall.Point{}, errors.New(errors.ErrCodeInvalidPosition, "position %q is not of the form X,Y", s)
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errX != nil || errY != nil {
		return wall.Point{}, errors.New(errors.ErrCodeInvalidPosition, "position %q is not of the form X,Y", s)
	}
	return wall.Point{X: x, Y: y}, nil
}

// formatPoint renders a point for human output.
func formatPoint(p wall.Point) string {
	return fmt.Sprintf("(%.0f, %.0f)", p.X, p.Y)
}
