// Package domain defines the core entities of the Wiam's Art gallery.
// It includes the artwork record, the ordered catalog the grid and lightbox
// traverse, the site chrome shown around them, and the repository abstraction
// that serves catalog snapshots.
package domain

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Artwork is one displayable catalog entry.
type Artwork struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageRef    string `json:"image"`
}

// Catalog is the fixed, ordered sequence of artworks. It is never mutated after
// construction; a reload produces a new Catalog.
type Catalog struct {
	artworks []Artwork
	byID     map[int]int
}

// NewCatalog validates artworks and returns an immutable catalog preserving their order.
func NewCatalog(artworks []Artwork) (*Catalog, error) {
	c := &Catalog{
		artworks: make([]Artwork, len(artworks)),
		byID:     make(map[int]int, len(artworks)),
	}
	copy(c.artworks, artworks)

	for i, a := range c.artworks {
		if _, dup := c.byID[a.ID]; dup {
			return nil, errors.Wrapf(ErrInvalidCatalog, "duplicate artwork id %d", a.ID)
		}
		if strings.TrimSpace(a.Title) == "" {
			return nil, errors.Wrapf(ErrInvalidCatalog, "artwork %d has no title", a.ID)
		}
		if strings.TrimSpace(a.ImageRef) == "" {
			return nil, errors.Wrapf(ErrInvalidCatalog, "artwork %d has no image", a.ID)
		}
		c.byID[a.ID] = i
	}
	return c, nil
}

// Len returns the number of artworks.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.artworks)
}

// Empty reports whether the catalog has no artworks.
func (c *Catalog) Empty() bool {
	return c.Len() == 0
}

// At returns the artwork at position i.
func (c *Catalog) At(i int) (Artwork, bool) {
	if i < 0 || i >= c.Len() {
		return Artwork{}, false
	}
	return c.artworks[i], true
}

// All returns a copy of the artworks in catalog order.
func (c *Catalog) All() []Artwork {
	out := make([]Artwork, c.Len())
	if c != nil {
		copy(out, c.artworks)
	}
	return out
}

// IndexOf returns the position of the artwork with the given ID.
func (c *Catalog) IndexOf(id int) (int, bool) {
	if c == nil {
		return 0, false
	}
	i, ok := c.byID[id]
	return i, ok
}
