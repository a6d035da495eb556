package domain_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/wiamsart/gallery/internal/domain"
)

func sampleArtworks() []domain.Artwork {
	return []domain.Artwork{
		{ID: 1, Title: "A", Description: "first", ImageRef: "/images/a.jpg"},
		{ID: 2, Title: "B", Description: "second", ImageRef: "/images/b.jpg"},
		{ID: 3, Title: "C", Description: "third", ImageRef: "/images/c.jpg"},
	}
}

func TestNewCatalog_PreservesOrder(t *testing.T) {
	t.Parallel()
	c, err := domain.NewCatalog(sampleArtworks())
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())
	require.False(t, c.Empty())

	for i, want := range sampleArtworks() {
		got, ok := c.At(i)
		require.True(t, ok)
		require.Equal(t, want, got)

		idx, ok := c.IndexOf(want.ID)
		require.True(t, ok)
		require.Equal(t, i, idx)
	}
}

func TestNewCatalog_CopiesInput(t *testing.T) {
	t.Parallel()
	in := sampleArtworks()
	c, err := domain.NewCatalog(in)
	require.NoError(t, err)

	in[0].Title = "changed"
	got, _ := c.At(0)
	require.Equal(t, "A", got.Title)

	all := c.All()
	all[1].Title = "changed"
	got, _ = c.At(1)
	require.Equal(t, "B", got.Title)
}

func TestNewCatalog_Validation(t *testing.T) {
	t.Parallel()
	cases := map[string][]domain.Artwork{
		"duplicate id": {
			{ID: 1, Title: "A", ImageRef: "/a.jpg"},
			{ID: 1, Title: "B", ImageRef: "/b.jpg"},
		},
		"blank title": {{ID: 1, Title: "  ", ImageRef: "/a.jpg"}},
		"blank image": {{ID: 1, Title: "A"}},
	}
	for name, artworks := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := domain.NewCatalog(artworks)
			require.Error(t, err)
			require.True(t, errors.Is(err, domain.ErrInvalidCatalog))
		})
	}
}

func TestCatalog_OutOfRangeAndEmpty(t *testing.T) {
	t.Parallel()
	c, err := domain.NewCatalog(nil)
	require.NoError(t, err)
	require.True(t, c.Empty())
	require.Empty(t, c.All())

	_, ok := c.At(0)
	require.False(t, ok)
	_, ok = c.At(-1)
	require.False(t, ok)
	_, ok = c.IndexOf(1)
	require.False(t, ok)

	var nilCatalog *domain.Catalog
	require.Equal(t, 0, nilCatalog.Len())
	require.True(t, nilCatalog.Empty())
}

func TestSite_Instagram(t *testing.T) {
	t.Parallel()
	s := domain.Site{Instagram: "@wiamsartpage"}
	require.Equal(t, "https://instagram.com/wiamsartpage", s.InstagramURL())
	require.Equal(t, "@wiamsartpage", s.InstagramHandle())

	require.Empty(t, domain.Site{}.InstagramURL())
	require.Empty(t, domain.Site{}.InstagramHandle())
}
