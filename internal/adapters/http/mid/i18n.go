// Package mid provides HTTP middleware implementations for request processing.
// It includes middleware for internationalization (i18n) that handles locale detection
// from query parameters, cookies, and headers.
package mid

import (
	"net/http"
	"time"

	"github.com/invopop/ctxi18n"
	"github.com/wiamsart/gallery/internal/utils"
)

const langCookie = "lang"

// I18n is middleware that sets the request context with a locale based on the
// lang query parameter, the lang cookie, or the Accept-Language header, in that order.
func I18n(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := r.URL.Query().Get("lang")

		if lang == "" {
			if c, err := r.Cookie(langCookie); err == nil {
				lang = c.Value
			}
		}

		if lang == "" {
			lang = r.Header.Get("Accept-Language")
		}

		ctx, err := ctxi18n.WithLocale(r.Context(), lang)
		if err != nil || ctx == nil {
			utils.Logger.Error("failed to set locale", "lang", lang, "err", err)
			next.ServeHTTP(w, r)
			return
		}

		if r.URL.Query().Has("lang") {
			if l := ctxi18n.Locale(ctx); l != nil {
				http.SetCookie(w, &http.Cookie{
					Name:     langCookie,
					Value:    l.Code().String(),
					Path:     "/",
					HttpOnly: false,
					SameSite: http.SameSiteLaxMode,
					MaxAge:   int((365 * 24 * time.Hour).Seconds()),
				})
			}
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
