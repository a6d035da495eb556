package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/wiamsart/gallery/internal/domain"
)

func TestReadConfig(t *testing.T) {
	t.Run("valid config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "gallery.yml")

		yamlContent := `site:
  title: Wiam's Art
  tagline: Where Nature Meets Imagination
  instagram: "@wiamsartpage"
  year: 2025
artworks:
  - id: 7
    title: Mountain Trail
    description: Landscape with cherry blossoms
    image: /images/mountain.jpg
  - id: 3
    title: Pink Roses
    image: /images/roses.jpg
`
		if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
			t.Fatal(err)
		}

		cfg, err := ReadConfig(configPath)
		if err != nil {
			t.Fatalf("ReadConfig() error = %v", err)
		}
		if cfg.Site.Title != "Wiam's Art" {
			t.Errorf("expected title 'Wiam's Art', got '%s'", cfg.Site.Title)
		}
		if len(cfg.Artworks) != 2 {
			t.Fatalf("expected 2 artworks, got %d", len(cfg.Artworks))
		}
		if cfg.Artworks[0].ID != 7 || cfg.Artworks[1].ID != 3 {
			t.Errorf("artwork order not preserved: %+v", cfg.Artworks)
		}
		if cfg.Artworks[1].Description != "" {
			t.Errorf("expected empty description, got '%s'", cfg.Artworks[1].Description)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadConfig(filepath.Join(t.TempDir(), "nope.yml"))
		if err == nil {
			t.Fatal("expected error for missing file")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "bad.yml")
		if err := os.WriteFile(configPath, []byte("artworks: [: nope"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := ReadConfig(configPath); err == nil {
			t.Fatal("expected parse error")
		}
	})
}

func TestWriteConfig_RoundTripsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.yml")
	require.NoError(t, WriteConfig(path, DefaultFileConfig()))

	cfg, err := ReadConfig(path)
	require.NoError(t, err)
	require.Equal(t, DefaultFileConfig(), cfg)
}

func TestDefaultFileConfig_MatchesOriginalGallery(t *testing.T) {
	g, err := DefaultFileConfig().ToGallery()
	require.NoError(t, err)
	require.Equal(t, 5, g.Catalog.Len())

	titles := []string{"Mountain Trail", "Pink Roses", "Spring Horses", "Moroccan Dreams", "Nature's Poetry"}
	for i, title := range titles {
		a, ok := g.Catalog.At(i)
		require.True(t, ok)
		require.Equal(t, title, a.Title)
		require.Equal(t, i+1, a.ID)
	}
	require.Equal(t, "https://instagram.com/wiamsartpage", g.Site.InstagramURL())
}

func TestToGallery(t *testing.T) {
	t.Run("empty catalog is rejected", func(t *testing.T) {
		_, err := FileConfig{Site: SiteConfig{Title: "x"}}.ToGallery()
		require.True(t, errors.Is(err, domain.ErrEmptyCatalog))
	})

	t.Run("duplicate ids are rejected", func(t *testing.T) {
		cfg := FileConfig{Artworks: []ArtworkConfig{
			{ID: 1, Title: "a", Image: "/a.jpg"},
			{ID: 1, Title: "b", Image: "/b.jpg"},
		}}
		_, err := cfg.ToGallery()
		require.True(t, errors.Is(err, domain.ErrInvalidCatalog))
	})

	t.Run("owner defaults to title and fields are trimmed", func(t *testing.T) {
		cfg := FileConfig{
			Site:     SiteConfig{Title: "Studio"},
			Artworks: []ArtworkConfig{{ID: 1, Title: " a ", Description: " d ", Image: " /a.jpg "}},
		}
		g, err := cfg.ToGallery()
		require.NoError(t, err)
		require.Equal(t, "Studio", g.Site.Owner)
		a, _ := g.Catalog.At(0)
		require.Equal(t, domain.Artwork{ID: 1, Title: "a", Description: "d", ImageRef: "/a.jpg"}, a)
	})
}

func TestLoadGallery_WrapsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.yml")
	require.NoError(t, os.WriteFile(path, []byte("artworks: []\n"), 0644))

	_, err := LoadGallery(path)
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrEmptyCatalog))
	require.Contains(t, err.Error(), path)
}

func TestFindCatalogPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	require.Equal(t, "", FindCatalogPath())

	appPath := filepath.Join(dir, appDir)
	require.NoError(t, os.MkdirAll(appPath, 0755))
	want := filepath.Join(appPath, "gallery.yaml")
	require.NoError(t, os.WriteFile(want, []byte("artworks: []\n"), 0644))
	require.Equal(t, want, FindCatalogPath())

	require.NoError(t, os.WriteFile("gallery.yml", []byte("artworks: []\n"), 0644))
	require.Equal(t, "./gallery.yml", FindCatalogPath())
}
