package cmd

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/wiamsart/gallery/internal/config"
)

const defaultCatalogFile = "gallery.yml"

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and scaffold catalog files",
	}
	cmd.AddCommand(newCatalogValidateCmd())
	cmd.AddCommand(newCatalogInitCmd())
	return cmd
}

func newCatalogValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check that a catalog file loads and has at least one artwork",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultCatalogFile
			if len(args) == 1 {
				path = args[0]
			}
			g, err := config.LoadGallery(path)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d artworks\n", path, g.Catalog.Len())
			return err
		},
	}
}

func newCatalogInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [file]",
		Short: "Write the built-in catalog to a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultCatalogFile
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil {
				return errors.Newf("%s already exists", path)
			}
			if err := config.WriteConfig(path, config.DefaultFileConfig()); err != nil {
				return errors.Wrapf(err, "write %s", path)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return err
		},
	}
}
