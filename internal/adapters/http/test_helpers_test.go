package httpserver

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/invopop/ctxi18n"
	"github.com/stretchr/testify/require"
	"github.com/wiamsart/gallery/internal/application"
	"github.com/wiamsart/gallery/internal/config"
	"github.com/wiamsart/gallery/internal/domain"
	"github.com/wiamsart/gallery/internal/testutil"
	"github.com/wiamsart/gallery/internal/utils"
)

// buildServer builds a Server over the A..E test catalog with a temporary images dir
func buildServer(t *testing.T) *Server {
	t.Helper()
	return buildServerWithArtworks(t, testutil.FiveArtworks())
}

// buildServerWithArtworks builds a Server over the given artworks
func buildServerWithArtworks(t *testing.T, artworks []domain.Artwork) *Server {
	t.Helper()
	imagesDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(imagesDir, "a.jpg"), []byte("jpeg"), 0644))

	return buildServerWithRepo(t, testutil.NewFakeCatalogRepository(t, artworks), imagesDir)
}

// buildServerWithRepo builds a Server over repo so tests can swap its catalog
func buildServerWithRepo(t *testing.T, repo *testutil.FakeCatalogRepository, imagesDir string) *Server {
	t.Helper()
	utils.InitLogger()
	config.InitI18n()
	return New(application.NewGalleryService(repo), imagesDir)
}

// localized returns a request context carrying the English locale, as the I18n middleware would.
func localized(t *testing.T, req *http.Request) context.Context {
	t.Helper()
	ctx, err := ctxi18n.WithLocale(req.Context(), "en")
	require.NoError(t, err)
	return ctx
}

// chiCtxWithParam adds a single URL param to request context for handler funcs using chi.URLParam
func chiCtxWithParam(ctx context.Context, key, val string) context.Context {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return context.WithValue(ctx, chi.RouteCtxKey, rctx)
}
