package cmd

import (
	"context"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	httpserver "github.com/wiamsart/gallery/internal/adapters/http"
	"github.com/wiamsart/gallery/internal/application"
	"github.com/wiamsart/gallery/internal/config"
	"github.com/wiamsart/gallery/internal/domain"
	"github.com/wiamsart/gallery/internal/infrastructure/repository"
	"github.com/wiamsart/gallery/internal/utils"
)

type serveOptions struct {
	port      string
	catalog   string
	imagesDir string
}

func newServeCmd() *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the gallery web server",
		Example: `  # Serve the built-in catalog on port 8080
  wiams-art serve

  # Serve a catalog file with images from ./art
  wiams-art serve --catalog gallery.yml --images ./art --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolveServeOptions(&opts)
			return StartWeb(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.port, "port", "p", "", "Port to listen on (env "+config.EnvHTTPPort+", default 8080)")
	cmd.Flags().StringVarP(&opts.catalog, "catalog", "c", "", "Catalog YAML file (env "+config.EnvCatalog+", default: search usual locations)")
	cmd.Flags().StringVar(&opts.imagesDir, "images", "", "Directory served under /images (env "+config.EnvImagesDir+", default ./images)")

	return cmd
}

// resolveServeOptions fills unset flags from the environment and defaults.
func resolveServeOptions(opts *serveOptions) {
	if opts.port == "" {
		opts.port = os.Getenv(config.EnvHTTPPort)
	}
	if opts.port == "" {
		opts.port = "8080"
	}
	if opts.catalog == "" {
		opts.catalog = os.Getenv(config.EnvCatalog)
	}
	if opts.catalog == "" {
		opts.catalog = config.FindCatalogPath()
	}
	if opts.imagesDir == "" {
		opts.imagesDir = os.Getenv(config.EnvImagesDir)
	}
	if opts.imagesDir == "" {
		opts.imagesDir = "./images"
	}
}

// openRepository loads the catalog. An empty or invalid catalog file is a
// startup error.
func openRepository(path string) (*repository.CatalogRepository, error) {
	repo := repository.NewCatalogRepository(path)
	if path == "" {
		utils.Logger.Info("no catalog file found, serving built-in catalog")
		return repo, nil
	}
	if err := repo.LoadFromFile(); err != nil {
		return nil, errors.Wrap(err, "load catalog")
	}
	repo.OnReload(func(g domain.Gallery) {
		utils.Logger.Info("new viewers will see the reloaded catalog", "artworks", g.Catalog.Len())
	})
	utils.Logger.Info("catalog loaded", "path", path, "artworks", repo.Current().Catalog.Len())
	return repo, nil
}

// StartWeb starts the HTTP server and blocks until the command context is canceled.
func StartWeb(cmd *cobra.Command, opts serveOptions) error {
	config.InitI18n()

	repo, err := openRepository(opts.catalog)
	if err != nil {
		return err
	}
	utils.Logger.Info("HTTP UI starting", "port", opts.port, "images", opts.imagesDir)
	return serveGallery(cmd.Context(), repo, ":"+opts.port, opts.imagesDir)
}

// serveGallery watches repo for catalog changes and serves it on addr until
// ctx is canceled. The repository is closed on return.
func serveGallery(ctx context.Context, repo domain.CatalogRepository, addr, imagesDir string) error {
	defer func() {
		if err := repo.Close(); err != nil {
			utils.Logger.Warn("close catalog repository", "err", err)
		}
	}()
	if err := repo.Watch(); err != nil {
		return errors.Wrap(err, "watch catalog")
	}

	server := httpserver.New(application.NewGalleryService(repo), imagesDir)
	if err := server.Run(ctx, addr); err != nil {
		utils.Logger.Error("HTTP UI terminated", "err", err)
		return err
	}
	return nil
}
