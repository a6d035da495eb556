package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wiamsart/gallery/internal/domain"
)

// FiveArtworks returns the catalog used by the navigation scenarios: A, B, C, D, E.
func FiveArtworks() []domain.Artwork {
	return []domain.Artwork{
		{ID: 10, Title: "A", Description: "first", ImageRef: "/images/a.jpg"},
		{ID: 20, Title: "B", Description: "second", ImageRef: "/images/b.jpg"},
		{ID: 30, Title: "C", Description: "third", ImageRef: "/images/c.jpg"},
		{ID: 40, Title: "D", Description: "fourth", ImageRef: "/images/d.jpg"},
		{ID: 50, Title: "E", Description: "fifth", ImageRef: "/images/e.jpg"},
	}
}

// MustCatalog builds a catalog or fails the test.
func MustCatalog(t testing.TB, artworks []domain.Artwork) *domain.Catalog {
	t.Helper()
	c, err := domain.NewCatalog(artworks)
	require.NoError(t, err)
	return c
}

// FakeCatalogRepository is a simple in-memory repository for tests.
type FakeCatalogRepository struct {
	Gallery  domain.Gallery
	Watched  bool
	Closed   bool
	WatchErr error
}

// NewFakeCatalogRepository serves the given artworks under a fixed site.
func NewFakeCatalogRepository(t testing.TB, artworks []domain.Artwork) *FakeCatalogRepository {
	t.Helper()
	return &FakeCatalogRepository{
		Gallery: domain.Gallery{
			Site: domain.Site{
				Title:     "Test Gallery",
				Tagline:   "Testing Meets Imagination",
				Owner:     "Test Gallery",
				Instagram: "testgallery",
				Year:      2025,
			},
			Catalog: MustCatalog(t, artworks),
		},
	}
}

func (r *FakeCatalogRepository) Current() domain.Gallery { return r.Gallery }
func (r *FakeCatalogRepository) Watch() error {
	r.Watched = true
	return r.WatchErr
}
func (r *FakeCatalogRepository) Close() error {
	r.Closed = true
	return nil
}
