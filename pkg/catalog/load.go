package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/wallery/wallery/pkg/errors"
)

// Load reads a catalog file, choosing the format by extension.
// Supported extensions are .toml and .json.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "catalog file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "reading catalog %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ParseTOML(data)
	case ".json":
		return ParseJSON(data)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"unsupported catalog format %q (want .toml or .json)", filepath.Ext(path))
	}
}

// tomlCatalog is the on-disk TOML shape: a sequence of [[artwork]] tables.
type tomlCatalog struct {
	Artworks []Artwork `toml:"artwork"`
}

// ParseTOML parses a TOML catalog ([[artwork]] tables).
func ParseTOML(data []byte) (*Catalog, error) {
	var file tomlCatalog
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "parsing TOML catalog")
	}
	return New(file.Artworks)
}

// ParseJSON parses a JSON catalog (a top-level array of artworks).
func ParseJSON(data []byte) (*Catalog, error) {
	var artworks []Artwork
	if err := json.Unmarshal(data, &artworks); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "parsing JSON catalog")
	}
	return New(artworks)
}
