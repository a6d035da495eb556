package config_test

import (
	"context"
	"testing"

	"github.com/invopop/ctxi18n"
	"github.com/invopop/ctxi18n/i18n"
	"github.com/stretchr/testify/require"
	"github.com/wiamsart/gallery/internal/config"
)

func TestInitI18n_LoadsLocales(t *testing.T) {
	require.NotPanics(t, config.InitI18n)

	ctx, err := ctxi18n.WithLocale(context.Background(), "fr")
	require.NoError(t, err)
	require.Equal(t, "Fermer", i18n.T(ctx, "lightbox.close"))

	ctx, err = ctxi18n.WithLocale(context.Background(), "en")
	require.NoError(t, err)
	require.Equal(t, "Close", i18n.T(ctx, "lightbox.close"))
}
