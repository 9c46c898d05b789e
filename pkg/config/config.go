// Package config loads and validates wallery configuration.
//
// Configuration comes from a TOML file (--config, else
// ~/.config/wallery/config.toml), with a small set of WALLERY_*
// environment variables layered on top for the storage backend and
// paths. Everything has a default; a missing config file is not an
// error.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/wallery/wallery/pkg/errors"
	"github.com/wallery/wallery/pkg/snapshot"
	"github.com/wallery/wallery/pkg/tape"
	"github.com/wallery/wallery/pkg/wall"
)

// =============================================================================
// Default Values
// =============================================================================

// Default wall colors per room, used by the SVG renderer.
const (
	DefaultGalleryWallColor = "#f4f1ec"
	DefaultBedroomWallColor = "#ece4d8"
)

// Default returns the configuration used when no file and no overrides
// are present.
func Default() Config {
	return Config{
		Canvas: CanvasConfig{
			Width:        wall.DefaultCanvasWidth,
			Height:       wall.DefaultCanvasHeight,
			HeaderHeight: wall.DefaultHeaderHeight,
		},
		Rooms: map[string]RoomConfig{
			string(wall.RoomGallery): {
				FurnitureHeight: wall.DefaultGalleryFurnitureHeight,
				WallColor:       DefaultGalleryWallColor,
			},
			string(wall.RoomBedroom): {
				FurnitureHeight: wall.DefaultBedroomFurnitureHeight,
				WallColor:       DefaultBedroomWallColor,
			},
		},
		Tape: TapeConfig{
			Palette: append([]string(nil), tape.Palette...),
		},
		Storage: StorageConfig{
			Backend:   snapshot.BackendFile,
			RedisAddr: "localhost:6379",
			MongoURI:  "mongodb://localhost:27017",
			MongoDB:   "wallery",
		},
	}
}

// DefaultPath returns the default config file location,
// ~/.config/wallery/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "wallery", "config.toml"), nil
}

// =============================================================================
// Config types
// =============================================================================

// Config is the complete application configuration.
type Config struct {
	// DataDir overrides the snapshot data directory. Empty means the
	// file backend's default.
	DataDir string `toml:"data_dir"`

	// Catalog is the path to a catalog TOML/JSON file. Empty means the
	// built-in sample catalog.
	Catalog string `toml:"catalog"`

	Canvas  CanvasConfig          `toml:"canvas"`
	Rooms   map[string]RoomConfig `toml:"rooms"`
	Tape    TapeConfig            `toml:"tape"`
	Storage StorageConfig         `toml:"storage"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `toml:"-"`
}

// CanvasConfig sets the wall canvas dimensions in CSS pixels.
type CanvasConfig struct {
	Width        float64 `toml:"width"`
	Height       float64 `toml:"height"`
	HeaderHeight float64 `toml:"header_height"`
}

// RoomConfig sets per-room appearance and geometry.
type RoomConfig struct {
	FurnitureHeight float64 `toml:"furniture_height"`
	WallColor       string  `toml:"wall_color"`
}

// TapeConfig sets the tape color palette used for samples with no
// usable hue.
type TapeConfig struct {
	Palette []string `toml:"palette"`
}

// StorageConfig selects and configures the snapshot backend.
type StorageConfig struct {
	Backend       string `toml:"backend"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	MongoURI      string `toml:"mongo_uri"`
	MongoDB       string `toml:"mongo_db"`
}

// =============================================================================
// Loading
// =============================================================================

// Load reads the config file at path, layers environment overrides on
// top, and validates the result. An empty path means the default
// location; a missing file at the default location falls back to
// defaults, while a missing file at an explicit path is an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	cfg := Default()
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			cfg.applyEnv()
			return cfg, cfg.ValidateAndSetDefaults()
		}
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	cfg.applyEnv()
	return cfg, cfg.ValidateAndSetDefaults()
}

// applyEnv layers WALLERY_* environment variables over the file
// values. Load a .env file first (the CLI does) to keep secrets out of
// the config file.
func (c *Config) applyEnv() {
	if v := os.Getenv("WALLERY_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("WALLERY_CATALOG"); v != "" {
		c.Catalog = v
	}
	if v := os.Getenv("WALLERY_STORAGE_BACKEND"); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv("WALLERY_REDIS_ADDR"); v != "" {
		c.Storage.RedisAddr = v
	}
	if v := os.Getenv("WALLERY_REDIS_PASSWORD"); v != "" {
		c.Storage.RedisPassword = v
	}
	if v := os.Getenv("WALLERY_REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			c.Storage.RedisDB = db
		}
	}
	if v := os.Getenv("WALLERY_MONGO_URI"); v != "" {
		c.Storage.MongoURI = v
	}
	if v := os.Getenv("WALLERY_MONGO_DB"); v != "" {
		c.Storage.MongoDB = v
	}
}

// =============================================================================
// Validation
// =============================================================================

// ValidateAndSetDefaults checks the configuration and fills zero values
// with defaults. This method is idempotent.
func (c *Config) ValidateAndSetDefaults() error {
	if c.validated {
		return nil
	}

	def := Default()
	if c.Canvas.Width == 0 {
		c.Canvas.Width = def.Canvas.Width
	}
	if c.Canvas.Height == 0 {
		c.Canvas.Height = def.Canvas.Height
	}
	if c.Canvas.HeaderHeight == 0 {
		c.Canvas.HeaderHeight = def.Canvas.HeaderHeight
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "canvas dimensions must be positive")
	}
	if c.Canvas.HeaderHeight < 0 || c.Canvas.HeaderHeight >= c.Canvas.Height {
		return errors.New(errors.ErrCodeInvalidConfig,
			"header height %.0f must fit inside canvas height %.0f", c.Canvas.HeaderHeight, c.Canvas.Height)
	}

	if c.Rooms == nil {
		c.Rooms = map[string]RoomConfig{}
	}
	// A [rooms.*] section in the file replaces the whole default entry,
	// so zero fields fall back here rather than staying zero.
	for name, room := range def.Rooms {
		got, ok := c.Rooms[name]
		if !ok {
			c.Rooms[name] = room
			continue
		}
		if got.WallColor == "" {
			got.WallColor = room.WallColor
		}
		if got.FurnitureHeight == 0 {
			got.FurnitureHeight = room.FurnitureHeight
		}
		c.Rooms[name] = got
	}
	for name, room := range c.Rooms {
		if _, err := wall.ParseRoom(name); err != nil {
			return err
		}
		if room.FurnitureHeight < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "rooms.%s: furniture height must not be negative", name)
		}
		if room.FurnitureHeight+c.Canvas.HeaderHeight >= c.Canvas.Height {
			return errors.New(errors.ErrCodeInvalidConfig,
				"rooms.%s: furniture height %.0f leaves no hangable wall", name, room.FurnitureHeight)
		}
		if err := errors.ValidateHexColor(room.WallColor); err != nil {
			return err
		}
	}

	if len(c.Tape.Palette) == 0 {
		c.Tape.Palette = def.Tape.Palette
	}
	for _, color := range c.Tape.Palette {
		if err := errors.ValidateHexColor(color); err != nil {
			return err
		}
	}

	if c.Storage.Backend == "" {
		c.Storage.Backend = def.Storage.Backend
	}
	switch c.Storage.Backend {
	case snapshot.BackendFile, snapshot.BackendMemory:
	case snapshot.BackendRedis:
		if c.Storage.RedisAddr == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "storage.redis_addr is required for the redis backend")
		}
	case snapshot.BackendMongo:
		if c.Storage.MongoURI == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "storage.mongo_uri is required for the mongo backend")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"unknown storage backend %q (want file, memory, redis or mongo)", c.Storage.Backend)
	}

	c.validated = true
	return nil
}

// =============================================================================
// Wiring helpers
// =============================================================================

// Geometry builds the wall geometry from the canvas and room sections.
func (c Config) Geometry() wall.Geometry {
	heights := make(map[wall.Room]float64, len(c.Rooms))
	for name, room := range c.Rooms {
		heights[wall.Room(name)] = room.FurnitureHeight
	}
	return wall.Geometry{
		CanvasWidth:      c.Canvas.Width,
		CanvasHeight:     c.Canvas.Height,
		HeaderHeight:     c.Canvas.HeaderHeight,
		FurnitureHeights: heights,
	}
}

// SnapshotOptions builds the snapshot backend options from the storage
// section.
func (c Config) SnapshotOptions() snapshot.Options {
	return snapshot.Options{
		Backend:       c.Storage.Backend,
		Dir:           c.DataDir,
		RedisAddr:     c.Storage.RedisAddr,
		RedisPassword: c.Storage.RedisPassword,
		RedisDB:       c.Storage.RedisDB,
		MongoURI:      c.Storage.MongoURI,
		MongoDatabase: c.Storage.MongoDB,
	}
}

// WallColor returns the configured wall color for a room.
func (c Config) WallColor(room wall.Room) string {
	return c.Rooms[string(room)].WallColor
}
