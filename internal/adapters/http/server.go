// Package httpserver serves the gallery page, the live lightbox socket and a
// small read-only JSON API over the catalog.
package httpserver

import (
	"context"
	"io/fs"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/wiamsart/gallery/internal/adapters/http/mid"
	"github.com/wiamsart/gallery/internal/adapters/http/ui"
	"github.com/wiamsart/gallery/internal/application"
	"github.com/wiamsart/gallery/internal/utils"
)

const (
	staticCacheDuration = 7 * 24 * time.Hour
	imageCacheDuration  = 24 * time.Hour
	shutdownTimeout     = 5 * time.Second
)

// Server provides the gallery page, live viewer and JSON API endpoints.
type Server struct {
	galleryService *application.GalleryService
	imagesDir      string
}

// New creates a new HTTP server instance. Artwork images are served from imagesDir.
func New(galleryService *application.GalleryService, imagesDir string) *Server {
	return &Server{
		galleryService: galleryService,
		imagesDir:      imagesDir,
	}
}

// Router builds the HTTP handler with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	useMiddleware(r)

	r.Handle("/static/*", http.StripPrefix("/static/", StaticWithCache(ui.Static(), staticCacheDuration)))
	r.Handle("/images/*", http.StripPrefix("/images/", StaticWithCache(os.DirFS(s.imagesDir), imageCacheDuration)))

	r.Get("/lang", ChangeLanguage)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if _, err := w.Write([]byte("ok")); err != nil {
			utils.Logger.Error("write healthz failed", "err", err)
		}
	})

	r.Get("/", s.uiHome)
	r.Get("/artworks/{artworkID}", s.uiArtwork)
	r.Get("/ws/lightbox", s.wsLightbox)

	r.Get("/api/artworks", s.apiListArtworks)
	r.Get("/api/artworks/{artworkID}", s.apiGetArtwork)

	return r
}

// Run serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		utils.Logger.Info("HTTP server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		utils.Logger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "shutdown")
		}
		utils.Logger.Info("HTTP server stopped")
		return nil
	case err := <-serverErr:
		return err
	}
}

// useMiddleware installs the shared middleware stack. requestLogger sits
// outside Recoverer so recovered panics are still logged with their 500.
func useMiddleware(r chi.Router) {
	r.Use(mid.I18n)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		dur := time.Since(start)
		utils.Logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", dur.String(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// StaticWithCache serves files from fsys applying a public max-age cache header.
// Directories and missing files are 404.
func StaticWithCache(fsys fs.FS, maxAge time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/")
		if !fs.ValidPath(name) {
			http.NotFound(w, r)
			return
		}
		info, err := fs.Stat(fsys, name)
		if err != nil || info.IsDir() {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(int(maxAge.Seconds())))

		http.ServeFileFS(w, r, fsys, name)
	}
}

// ChangeLanguage changes the language preference via a query parameter and sets a cookie.
func ChangeLanguage(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "lang",
		Value:    lang,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
		MaxAge:   31536000,
	})

	// back to the page the user came from
	ref := r.Header.Get("Referer")
	if ref == "" {
		ref = "/"
	}

	http.Redirect(w, r, ref, http.StatusSeeOther)
}

// artworkIDParam parses the artworkID route parameter.
func artworkIDParam(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "artworkID")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "artwork id %q", raw)
	}
	return id, nil
}
