// Package cmd provides the command line of the gallery server: serving the
// site and validating or scaffolding catalog files.
package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/wiamsart/gallery/internal/utils"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wiams-art",
		Short: "Wiam's Art gallery web server",
		Long: `Serves the Wiam's Art gallery: a grid of artworks with a lightbox viewer.

The catalog is read from a YAML file and reloaded when it changes.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// .env is optional
			_ = godotenv.Load()
			utils.InitLogger()
		},
		SilenceUsage: true,
	}

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newCatalogCmd())

	return cmd
}
