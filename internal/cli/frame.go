package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/wallery/wallery/pkg/wall"
)

// newFrameCmd creates the frame command. With a style argument it sets
// the frame outright; without one it cycles through the active room's
// offered choices.
func newFrameCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "frame <artwork-id> [none|plain|ornate|washi]",
		Short: "Set or cycle the frame on a hung artwork",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			style := ""
			if len(args) == 2 {
				style = args[1]
			}
			return runFrame(cmd.Context(), *configPath, args[0], style)
		},
	}
}

func runFrame(ctx context.Context, configPath, artworkID, style string) error {
	a, err := bootApp(ctx, configPath, true)
	if err != nil {
		return err
	}
	defer a.Close()

	art, err := a.mustArtwork(artworkID)
	if err != nil {
		return err
	}

	if style == "" {
		next, err := a.engine.CycleFrame(art.ID)
		if err != nil {
			return err
		}
		printSuccess("Framed %q with %s", art.Title, next)
		return nil
	}

	frame, err := wall.ParseFrame(style)
	if err != nil {
		return err
	}
	room := a.state.ActiveRoom()
	if !wall.FrameOffered(room, frame) {
		printWarning("%s frames are not among the %s controls, setting it anyway", frame, room)
	}
	if err := a.engine.SetFrame(art.ID, frame); err != nil {
		return err
	}
	printSuccess("Framed %q with %s", art.Title, frame)
	return nil
}

// newRemoveCmd creates the remove command.
func newRemoveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <artwork-id>",
		Aliases: []string{"rm"},
		Short:   "Take a hung artwork off the active room's wall",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd.Context(), *configPath, args[0])
		},
	}
}

func runRemove(ctx context.Context, configPath, artworkID string) error {
	a, err := bootApp(ctx, configPath, true)
	if err != nil {
		return err
	}
	defer a.Close()

	art, err := a.mustArtwork(artworkID)
	if err != nil {
		return err
	}

	if !a.engine.Remove(art.ID) {
		printWarning("%q is not hung in the %s, nothing to do", art.Title, a.state.ActiveRoom())
		return nil
	}
	printSuccess("Removed %q from the %s", art.Title, a.state.ActiveRoom())
	return nil
}
