// Package components holds the templ building blocks of the gallery page:
// artwork cards, the lightbox overlay and its position dots.
package components

import (
	"context"
	"strconv"

	"github.com/invopop/ctxi18n/i18n"
)

// LightboxID is the DOM id of the overlay container the live viewer swaps.
const LightboxID = "lightbox"

// ArtworkPath is the page URL with the lightbox open on artwork id.
func ArtworkPath(id int) string {
	return "/artworks/" + strconv.Itoa(id)
}

func dotClass(active bool) string {
	if active {
		return "dot active"
	}
	return "dot"
}

func ariaCurrent(active bool) string {
	if active {
		return "true"
	}
	return "false"
}

func positionLabel(ctx context.Context, index, total int) string {
	return i18n.T(ctx, "lightbox.position", i18n.M{"current": index + 1, "total": total})
}

func openLabel(ctx context.Context, title string) string {
	return i18n.T(ctx, "grid.open", i18n.M{"title": title})
}
