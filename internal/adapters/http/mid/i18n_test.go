package mid

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/invopop/ctxi18n"
	"github.com/stretchr/testify/require"
	"github.com/wiamsart/gallery/internal/config"
	"github.com/wiamsart/gallery/internal/utils"
)

func localeOf(t *testing.T, req *http.Request) (string, *httptest.ResponseRecorder) {
	t.Helper()
	var got string
	h := I18n(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		if l := ctxi18n.Locale(r.Context()); l != nil {
			got = l.Code().String()
		}
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return got, rec
}

func TestI18n_Precedence(t *testing.T) {
	utils.InitLogger()
	config.InitI18n()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "fr-FR,fr;q=0.9")
	got, _ := localeOf(t, req)
	require.Equal(t, "fr", got)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "fr")
	req.AddCookie(&http.Cookie{Name: langCookie, Value: "en"})
	got, _ = localeOf(t, req)
	require.Equal(t, "en", got)

	req = httptest.NewRequest(http.MethodGet, "/?lang=fr", nil)
	req.AddCookie(&http.Cookie{Name: langCookie, Value: "en"})
	got, rec := localeOf(t, req)
	require.Equal(t, "fr", got)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "fr", cookies[0].Value)
}

func TestI18n_UnknownFallsBackToDefault(t *testing.T) {
	utils.InitLogger()
	config.InitI18n()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "xx")
	got, _ := localeOf(t, req)
	require.Equal(t, config.DefaultLocale, got)
}
