// Package config loads the gallery catalog file, resolves where it lives and
// initializes localization.
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/wiamsart/gallery/internal/domain"
	"gopkg.in/yaml.v3"
)

// Environment variables read by the server.
const (
	EnvHTTPPort  = "WIAMS_ART_HTTP_PORT"
	EnvCatalog   = "WIAMS_ART_CATALOG"
	EnvImagesDir = "WIAMS_ART_IMAGES_DIR"
)

const appDir = "wiams-art"

// SiteConfig holds the page chrome.
type SiteConfig struct {
	Title     string `yaml:"title" json:"title"`
	Tagline   string `yaml:"tagline,omitempty" json:"tagline,omitempty"`
	Owner     string `yaml:"owner,omitempty" json:"owner,omitempty"`
	Instagram string `yaml:"instagram,omitempty" json:"instagram,omitempty"` // handle, with or without @
	Year      int    `yaml:"year,omitempty" json:"year,omitempty"`
}

// ArtworkConfig is one catalog entry as written in the file.
type ArtworkConfig struct {
	ID          int    `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Image       string `yaml:"image" json:"image"`
}

type FileConfig struct {
	Site     SiteConfig      `yaml:"site" json:"site"`
	Artworks []ArtworkConfig `yaml:"artworks" json:"artworks"`
}

func ReadConfig(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse %s", path)
	}
	return cfg, nil
}

func WriteConfig(path string, cfg FileConfig) error {
	b, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// DefaultFileConfig returns the built-in gallery.
func DefaultFileConfig() FileConfig {
	return FileConfig{
		Site: SiteConfig{
			Title:     "Wiam's Art",
			Tagline:   "Where Nature Meets Imagination",
			Owner:     "Wiam's Art",
			Instagram: "wiamsartpage",
			Year:      2025,
		},
		Artworks: []ArtworkConfig{
			{ID: 1, Title: "Mountain Trail", Description: "Landscape with cherry blossoms", Image: "/images/2025-02-15 22-43-2.jpg"},
			{ID: 2, Title: "Pink Roses", Description: "Watercolor vase of roses", Image: "/images/2025-02-15 22-43-4.jpg"},
			{ID: 3, Title: "Spring Horses", Description: "Horses under cherry blossoms", Image: "/images/2025-02-15 22-43-3.jpg"},
			{ID: 4, Title: "Moroccan Dreams", Description: "Interior scene with collage", Image: "/images/2025-02-15 22-43-1.jpg"},
			{ID: 5, Title: "Nature's Poetry", Description: "Bird among roses, pencil on paper", Image: "/images/2025-02-15 22-43-5.jpg"},
		},
	}
}

// ToGallery validates the file and converts it into a gallery snapshot.
// A file without artworks is rejected with domain.ErrEmptyCatalog.
func (c FileConfig) ToGallery() (domain.Gallery, error) {
	if len(c.Artworks) == 0 {
		return domain.Gallery{}, domain.ErrEmptyCatalog
	}
	artworks := make([]domain.Artwork, 0, len(c.Artworks))
	for _, a := range c.Artworks {
		artworks = append(artworks, domain.Artwork{
			ID:          a.ID,
			Title:       strings.TrimSpace(a.Title),
			Description: strings.TrimSpace(a.Description),
			ImageRef:    strings.TrimSpace(a.Image),
		})
	}
	catalog, err := domain.NewCatalog(artworks)
	if err != nil {
		return domain.Gallery{}, err
	}

	site := domain.Site{
		Title:     c.Site.Title,
		Tagline:   c.Site.Tagline,
		Owner:     c.Site.Owner,
		Instagram: c.Site.Instagram,
		Year:      c.Site.Year,
	}
	if site.Owner == "" {
		site.Owner = site.Title
	}
	return domain.Gallery{Site: site, Catalog: catalog}, nil
}

// LoadGallery reads and validates the catalog file at path.
func LoadGallery(path string) (domain.Gallery, error) {
	cfg, err := ReadConfig(path)
	if err != nil {
		return domain.Gallery{}, err
	}
	g, err := cfg.ToGallery()
	if err != nil {
		return domain.Gallery{}, errors.Wrapf(err, "catalog %s", path)
	}
	return g, nil
}

// FindCatalogPath returns the first existing catalog file among the usual
// locations, or "" when there is none and the built-in catalog should be used.
func FindCatalogPath() string {
	for _, p := range catalogCandidates() {
		if p == "" {
			continue
		}
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

func catalogCandidates() []string {
	names := []string{"gallery.yml", "gallery.yaml"}
	candidates := []string{}

	for _, n := range names {
		candidates = append(candidates, "./"+n)
	}

	home, _ := os.UserHomeDir()
	if runtime.GOOS == "windows" {
		if appdata := os.Getenv("APPDATA"); appdata != "" {
			for _, n := range names {
				candidates = append(candidates, filepath.Join(appdata, appDir, n))
			}
		}
		if home != "" {
			for _, n := range names {
				candidates = append(candidates, filepath.Join(home, appDir, n))
			}
		}
		return candidates
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		for _, n := range names {
			candidates = append(candidates, filepath.Join(xdg, appDir, n))
		}
	}
	if home != "" {
		for _, n := range names {
			candidates = append(candidates, filepath.Join(home, ".config", appDir, n))
		}
	}
	for _, n := range names {
		candidates = append(candidates, filepath.Join("/etc", appDir, n))
	}
	return candidates
}
