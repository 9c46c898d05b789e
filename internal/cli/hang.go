package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/wallery/wallery/pkg/wall"
)

// newHangCmd creates the hang command, the interactive wall editor.
func newHangCmd(configPath *string) *cobra.Command {
	var (
		seed    uint64
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "hang",
		Short: "Open the interactive wall editor",
		Long: `Open the interactive wall editor.

The left pane lists the catalog; the right pane shows the active room's
wall. Press enter to hang the selected artwork, drag cards with the
mouse to rearrange them, and cycle frames with f. Every change is
persisted immediately, so quitting never loses work.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHang(cmd.Context(), *configPath, seed, noCache)
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "decoration seed for reproducible tape and frame draws (0 = random)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the tape sample cache")

	return cmd
}

func runHang(ctx context.Context, configPath string, seed uint64, noCache bool) error {
	a, err := bootApp(ctx, configPath, noCache)
	if err != nil {
		return err
	}
	defer a.Close()

	rng := wall.NewRand(decorationSeed(seed))
	m := newHangModel(ctx, a, rng)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return err
	}

	room := a.state.ActiveRoom()
	printDetail("%d hung in the %s, %d in the %s",
		len(a.state.Collection(room)), room,
		len(a.state.Collection(room.Other())), room.Other())
	return nil
}
