package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/wallery/wallery/pkg/wall"
)

// newRoomCmd creates the room command. Without an argument it reports
// the active room; with one it switches to it.
func newRoomCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "room [gallery|bedroom]",
		Short: "Show or switch the active room",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) == 1 {
				target = args[0]
			}
			return runRoom(cmd.Context(), *configPath, target)
		},
	}
}

func runRoom(ctx context.Context, configPath, target string) error {
	a, err := bootApp(ctx, configPath, true)
	if err != nil {
		return err
	}
	defer a.Close()

	if target == "" {
		room := a.state.ActiveRoom()
		printInfo("Active room: %s (%d hung)", room, len(a.state.Collection(room)))
		return nil
	}

	room, err := wall.ParseRoom(target)
	if err != nil {
		return err
	}
	if room == a.state.ActiveRoom() {
		printInfo("Already in the %s", room)
		return nil
	}
	a.engine.SwitchRoom(room)
	printSuccess("Switched to the %s", room)
	return nil
}

// newStatusCmd creates the status command, a table of everything hung
// in both rooms.
func newStatusCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "List the hung artworks in both rooms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd.Context(), *configPath)
		},
	}
}

func runStatus(ctx context.Context, configPath string) error {
	a, err := bootApp(ctx, configPath, true)
	if err != nil {
		return err
	}
	defer a.Close()

	active := a.state.ActiveRoom()
	rows := [][]string{}
	activeRows := map[int]bool{}
	total := 0

	for _, room := range wall.Rooms() {
		marker := "  "
		if room == active {
			marker = "▸ "
		}
		collection := a.state.Collection(room)
		total += len(collection)
		if len(collection) == 0 {
			rows = append(rows, []string{marker + string(room), "—", "—", "—", "—"})
			if room == active {
				activeRows[len(rows)-1] = true
			}
			continue
		}
		for i, p := range collection {
			name := marker + string(room)
			if i > 0 {
				name = ""
			}
			title := p.ArtworkID
			if art, ok := a.catalog.Get(p.ArtworkID); ok {
				title = art.Title
			}
			rows = append(rows, []string{name, title, formatPoint(p.Position()), string(p.Frame), p.Decoration.TapeColor})
			if room == active {
				activeRows[len(rows)-1] = true
			}
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Room", "Artwork", "Position", "Frame", "Tape").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if activeRows[row] {
				return lipgloss.NewStyle().Foreground(colorWhite)
			}
			return lipgloss.NewStyle().Foreground(colorDim)
		})

	fmt.Println(t.Render())
	printDetail("%d hung · active room %s · %s appearance", total, active, a.state.Prefs().Appearance)
	return nil
}
