package cmd

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/wiamsart/gallery/internal/testutil"
	"github.com/wiamsart/gallery/internal/utils"
)

func TestServeGallery_WatchesAndCloses(t *testing.T) {
	utils.InitLogger()
	repo := testutil.NewFakeCatalogRepository(t, testutil.FiveArtworks())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, serveGallery(ctx, repo, "127.0.0.1:0", t.TempDir()))
	require.True(t, repo.Watched)
	require.True(t, repo.Closed)
}

func TestServeGallery_WatchFailure(t *testing.T) {
	utils.InitLogger()
	repo := testutil.NewFakeCatalogRepository(t, testutil.FiveArtworks())
	repo.WatchErr = errors.New("inotify limit reached")

	err := serveGallery(context.Background(), repo, "127.0.0.1:0", t.TempDir())
	require.ErrorContains(t, err, "watch catalog")
	require.True(t, repo.Closed)
}
