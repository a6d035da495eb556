package httpserver

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/invopop/ctxi18n/i18n"
	"github.com/wiamsart/gallery/internal/adapters/http/ui/templates/pages"
	"github.com/wiamsart/gallery/internal/application"
	"github.com/wiamsart/gallery/internal/utils"
)

func (s *Server) uiHome(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Debug("render gallery")
	s.renderGallery(w, r, s.galleryService.NewLightbox())
}

func (s *Server) uiArtwork(w http.ResponseWriter, r *http.Request) {
	id, err := artworkIDParam(r)
	if err != nil {
		utils.Logger.Warn("render artwork bad id", "err", err)
		http.Error(w, i18n.T(r.Context(), "errors.bad_id"), http.StatusBadRequest)
		return
	}
	utils.Logger.Debug("render artwork", "id", id)

	lb, err := s.galleryService.OpenArtwork(id)
	if errors.Is(err, application.ErrArtworkNotFound) {
		http.Error(w, i18n.T(r.Context(), "errors.not_found"), http.StatusNotFound)
		return
	}
	if err != nil {
		utils.Logger.Error("open artwork failed", "id", id, "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.renderGallery(w, r, lb)
}

func (s *Server) renderGallery(w http.ResponseWriter, r *http.Request, lb *application.Lightbox) {
	g := s.galleryService.Gallery()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Gallery(g.Site, lb.Catalog().All(), lb.View()).Render(r.Context(), w); err != nil {
		utils.Logger.Error("render gallery failed", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
