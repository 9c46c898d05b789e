// Package cli implements the wallery command-line interface.
//
// This package provides the interactive wall editor plus one-shot commands
// for placing, moving, framing and removing artworks, inspecting the rooms,
// rendering the wall to SVG/PNG/PDF, and serving a read-only preview. The
// CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - hang: Open the interactive wall editor (keyboard and mouse)
//   - place, move, frame, remove: One-shot wall mutations
//   - room, status: Inspect or switch the active room
//   - render: Write the wall as SVG, PNG, or PDF
//   - serve: Read-only HTTP preview of both rooms
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/wallery/wallery/pkg/buildinfo"
	"github.com/wallery/wallery/pkg/cache"
)

// appName is the application name used for directories and display.
const appName = "wallery"

// Execute runs the wallery CLI and returns an error if any command fails.
// The context should carry signal cancellation so a Ctrl-C tears down the
// TUI and the preview server cleanly.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "wallery",
		Short:         "Wallery hangs your artworks on a virtual wall",
		Long:          `Wallery is an interactive virtual art wall: pick artworks from a catalog, hang them in the gallery or the bedroom, drag them around, and dress them up with frames and washi tape. Placements persist per room across sessions.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env if present so WALLERY_* overrides reach the config.
			_ = godotenv.Load()

			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/wallery/config.toml)")

	root.AddCommand(newHangCmd(&configPath))
	root.AddCommand(newPlaceCmd(&configPath))
	root.AddCommand(newMoveCmd(&configPath))
	root.AddCommand(newFrameCmd(&configPath))
	root.AddCommand(newRemoveCmd(&configPath))
	root.AddCommand(newRoomCmd(&configPath))
	root.AddCommand(newStatusCmd(&configPath))
	root.AddCommand(newRenderCmd(&configPath))
	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newCacheCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}

// newTapeCache builds the sample cache for tape color resolution. Cache
// trouble never blocks placing, it only costs re-decodes.
func newTapeCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	c, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return c
}

// cacheDir returns the cache directory using XDG standard (~/.cache/wallery/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
