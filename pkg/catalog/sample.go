package catalog

import (
	_ "embed"
	"sync"
)

// The demonstration catalog is embedded directly into the binary using
// go:embed, so a fresh install has something to hang without any
// configuration.

//go:embed sample_catalog.toml
var sampleTOML []byte

// Parsed sample catalog (computed once on first access).
var (
	sample     *Catalog
	sampleErr  error
	sampleOnce sync.Once
)

// Sample returns the built-in demonstration catalog. The embedded file is
// parsed once; subsequent calls return the cached result.
func Sample() (*Catalog, error) {
	sampleOnce.Do(func() {
		sample, sampleErr = ParseTOML(sampleTOML)
	})
	return sample, sampleErr
}
