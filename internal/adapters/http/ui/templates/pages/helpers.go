// Package pages holds the full-page templ views.
package pages

import (
	"context"

	"github.com/invopop/ctxi18n"
	"github.com/invopop/ctxi18n/i18n"
	"github.com/wiamsart/gallery/internal/application"
	"github.com/wiamsart/gallery/internal/domain"
)

func langCode(ctx context.Context) string {
	if l := ctxi18n.Locale(ctx); l != nil {
		return l.Code().String()
	}
	return "en"
}

func pageTitle(site domain.Site, box application.LightboxView) string {
	if box.Open {
		return box.Artwork.Title + " · " + site.Title
	}
	return site.Title
}

func copyright(ctx context.Context, site domain.Site) string {
	return i18n.T(ctx, "footer.rights", i18n.M{"year": site.Year, "owner": site.Owner})
}
