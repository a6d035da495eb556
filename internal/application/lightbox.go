package application

import (
	"github.com/cockroachdb/errors"
	"github.com/wiamsart/gallery/internal/domain"
)

// Direction is a lightbox navigation step.
type Direction int

const (
	// Previous moves one artwork back, wrapping to the last one.
	Previous Direction = -1
	// Next moves one artwork forward, wrapping to the first one.
	Next Direction = 1
)

// Lightbox is the selection state of one gallery viewer. It is either closed
// or open on exactly one artwork of the catalog it was created with.
// A Lightbox is not safe for concurrent use; each viewer owns its own.
type Lightbox struct {
	catalog  *domain.Catalog
	selected *domain.Artwork
	index    int
}

// NewLightbox returns a closed lightbox over catalog.
func NewLightbox(catalog *domain.Catalog) *Lightbox {
	return &Lightbox{catalog: catalog}
}

// Wrap returns (index + delta) mod n, always in [0, n). It returns 0 when n <= 0.
func Wrap(index, delta, n int) int {
	if n <= 0 {
		return 0
	}
	i := (index + delta) % n
	if i < 0 {
		i += n
	}
	return i
}

// Select opens the lightbox on the artwork at index i.
func (l *Lightbox) Select(i int) error {
	if l.catalog.Empty() {
		return ErrEmptyCatalog
	}
	a, ok := l.catalog.At(i)
	if !ok {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, catalog has %d artworks", i, l.catalog.Len())
	}
	l.selected = &a
	l.index = i
	return nil
}

// Navigate moves the selection by d with wraparound. It does nothing while the
// lightbox is closed or the catalog is empty.
func (l *Lightbox) Navigate(d Direction) {
	if !l.IsOpen() || l.catalog.Empty() {
		return
	}
	i := Wrap(l.index, int(d), l.catalog.Len())
	a, _ := l.catalog.At(i)
	l.selected = &a
	l.index = i
}

// Close clears the selection.
func (l *Lightbox) Close() {
	l.selected = nil
}

// IsOpen reports whether an artwork is selected.
func (l *Lightbox) IsOpen() bool {
	return l.selected != nil
}

// Selected returns the selected artwork.
func (l *Lightbox) Selected() (domain.Artwork, bool) {
	if l.selected == nil {
		return domain.Artwork{}, false
	}
	return *l.selected, true
}

// Index returns the position of the selected artwork. It is only meaningful while open.
func (l *Lightbox) Index() int {
	return l.index
}

// Catalog returns the catalog snapshot the lightbox navigates.
func (l *Lightbox) Catalog() *domain.Catalog {
	return l.catalog
}

// LightboxView is the render model of a lightbox.
type LightboxView struct {
	Open    bool
	Index   int
	Total   int
	Artwork domain.Artwork
	Prev    domain.Artwork
	Next    domain.Artwork
	// Dots has one entry per artwork; only the entry at Index is true.
	Dots []bool
}

// View returns the current render model.
func (l *Lightbox) View() LightboxView {
	a, ok := l.Selected()
	if !ok {
		return LightboxView{Total: l.catalog.Len()}
	}
	n := l.catalog.Len()
	prev, _ := l.catalog.At(Wrap(l.index, int(Previous), n))
	next, _ := l.catalog.At(Wrap(l.index, int(Next), n))
	dots := make([]bool, n)
	dots[l.index] = true
	return LightboxView{
		Open:    true,
		Index:   l.index,
		Total:   n,
		Artwork: a,
		Prev:    prev,
		Next:    next,
		Dots:    dots,
	}
}
