package httpserver

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"github.com/wiamsart/gallery/internal/utils"
)

func TestRouter_StaticAssets(t *testing.T) {
	s := buildServer(t)
	h := s.Router()

	for _, path := range []string{"/static/gallery.css", "/static/gallery.js"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
		require.Equal(t, "public, max-age=604800", rec.Header().Get("Cache-Control"))
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/missing.css", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_Images(t *testing.T) {
	s := buildServer(t)
	h := s.Router()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/images/a.jpg", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "jpeg", rec.Body.String())
	require.Equal(t, "public, max-age=86400", rec.Header().Get("Cache-Control"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/images/b.jpg", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_HealthAndRoutes(t *testing.T) {
	s := buildServer(t)
	h := s.Router()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/artworks/30", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestMiddleware_LogsRecoveredPanic(t *testing.T) {
	buildServer(t)
	var logs bytes.Buffer
	utils.Logger.SetOutput(&logs)
	t.Cleanup(func() { utils.Logger.SetOutput(os.Stdout) })

	r := chi.NewRouter()
	useMiddleware(r)
	r.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("boom") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, logs.String(), "http request")
	require.Contains(t, logs.String(), "path=/boom")
	require.Contains(t, logs.String(), "status=500")
}

func TestChangeLanguage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/lang?lang=fr", nil)
	req.Header.Set("Referer", "/artworks/10")
	rec := httptest.NewRecorder()
	ChangeLanguage(rec, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/artworks/10", rec.Header().Get("Location"))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "fr", cookies[0].Value)

	rec = httptest.NewRecorder()
	ChangeLanguage(rec, httptest.NewRequest(http.MethodGet, "/lang", nil))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/", rec.Header().Get("Location"))
	require.Empty(t, rec.Result().Cookies())
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	s := buildServer(t)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, addr) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}
}
