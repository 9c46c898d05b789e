package cli

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/wallery/wallery/pkg/catalog"
	"github.com/wallery/wallery/pkg/config"
	"github.com/wallery/wallery/pkg/errors"
	"github.com/wallery/wallery/pkg/snapshot"
	"github.com/wallery/wallery/pkg/tape"
	"github.com/wallery/wallery/pkg/wall"
)

// app bundles everything a command needs: loaded config, the artwork
// catalog, the hydrated wall state and engine, and the tape resolver.
type app struct {
	cfg      config.Config
	catalog  *catalog.Catalog
	store    wall.Store
	state    *wall.State
	engine   *wall.Engine
	resolver *tape.Resolver
	logger   *log.Logger
}

// bootApp loads configuration, opens the snapshot store and hydrates the
// wall state. Callers must Close the returned app.
func bootApp(ctx context.Context, configPath string, noCache bool) (*app, error) {
	logger := loggerFromContext(ctx)

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("catalog loaded", "artworks", cat.Len())

	store, err := snapshot.Open(ctx, cfg.SnapshotOptions())
	if err != nil {
		return nil, err
	}

	state := wall.NewState(store, logger)
	if err := state.Load(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}

	resolver := tape.NewResolver(newTapeCache(noCache), logger)
	resolver.SetPalette(cfg.Tape.Palette)

	return &app{
		cfg:      cfg,
		catalog:  cat,
		store:    store,
		state:    state,
		engine:   wall.NewEngine(state, cfg.Geometry(), cat, logger),
		resolver: resolver,
		logger:   logger,
	}, nil
}

// Close releases the snapshot backend.
func (a *app) Close() error {
	return a.store.Close()
}

// scene captures a room with the configured wall color applied.
func (a *app) scene(room wall.Room) wall.Scene {
	scene := a.engine.SceneFor(room)
	scene.WallColor = a.cfg.WallColor(room)
	return scene
}

// loadCatalog reads the configured catalog file, or the built-in sample
// catalog when none is configured.
func loadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog != "" {
		return catalog.Load(cfg.Catalog)
	}
	return catalog.Sample()
}

// mustArtwork resolves an artwork id argument against the catalog.
func (a *app) mustArtwork(id string) (catalog.Artwork, error) {
	art, ok := a.catalog.Get(id)
	if !ok {
		return catalog.Artwork{}, errors.New(errors.ErrCodeUnknownArtwork,
			"no artwork with id %q (open 'wallery hang' to browse the catalog)", id)
	}
	return art, nil
}
