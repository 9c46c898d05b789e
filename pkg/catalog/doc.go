// Package catalog provides the read-only artwork catalog used to stock
// the wall.
//
// # Overview
//
// A catalog is a list of artworks with identity, attribution and image
// metadata. Catalogs are loaded from TOML or JSON files (see [Load]) or
// built from literals (see [New]); once constructed they are never
// mutated. Placement state lives elsewhere and references artworks by ID
// only, so the catalog can be swapped without touching hung walls.
//
// # Flexible Years
//
// Catalog sources disagree on how to spell a year: curated exports use
// numbers (1889), hand-written files use strings ("c. 1503"). The [Year]
// type accepts both and preserves the original representation through
// serialization round-trips.
package catalog
