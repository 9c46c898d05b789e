package catalog

import (
	"github.com/wallery/wallery/pkg/errors"
)

// Artwork describes a single catalog entry. All placement state (position,
// frame, decoration) lives outside the catalog; an Artwork is immutable
// once loaded.
type Artwork struct {
	ID        string `json:"id" toml:"id"`
	Artist    string `json:"artist" toml:"artist"`
	ArtistURL string `json:"artist_url,omitempty" toml:"artist_url"`
	Title     string `json:"title" toml:"title"`
	TitleURL  string `json:"title_url,omitempty" toml:"title_url"`
	Year      Year   `json:"year,omitzero" toml:"year"`
	Image     string `json:"image" toml:"image"`
	Width     int    `json:"width" toml:"width"`   // Intrinsic width in pixels
	Height    int    `json:"height" toml:"height"` // Intrinsic height in pixels
	Fact      string `json:"fact,omitempty" toml:"fact"`
}

// Catalog is an immutable, ordered collection of artworks with unique IDs.
type Catalog struct {
	artworks []Artwork
	byID     map[string]int
}

// New builds a catalog from a slice of artworks. It validates that every
// artwork has a well-formed, unique ID and a non-empty image reference.
func New(artworks []Artwork) (*Catalog, error) {
	c := &Catalog{
		artworks: make([]Artwork, len(artworks)),
		byID:     make(map[string]int, len(artworks)),
	}
	copy(c.artworks, artworks)

	for i, a := range c.artworks {
		if err := errors.ValidateArtworkID(a.ID); err != nil {
			return nil, err
		}
		if _, exists := c.byID[a.ID]; exists {
			return nil, errors.New(errors.ErrCodeInvalidCatalog, "duplicate artwork id %q", a.ID)
		}
		if err := errors.ValidateImageRef(a.Image); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "artwork %q", a.ID)
		}
		if a.Width <= 0 || a.Height <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidCatalog,
				"artwork %q has invalid dimensions %dx%d", a.ID, a.Width, a.Height)
		}
		c.byID[a.ID] = i
	}

	return c, nil
}

// Artworks returns the catalog entries in their original order.
// The returned slice is a copy; the catalog itself stays immutable.
func (c *Catalog) Artworks() []Artwork {
	out := make([]Artwork, len(c.artworks))
	copy(out, c.artworks)
	return out
}

// Get looks up an artwork by ID.
func (c *Catalog) Get(id string) (Artwork, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Artwork{}, false
	}
	return c.artworks[i], true
}

// Len returns the number of artworks in the catalog.
func (c *Catalog) Len() int { return len(c.artworks) }
