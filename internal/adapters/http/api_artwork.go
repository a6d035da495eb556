package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/wiamsart/gallery/internal/application"
	"github.com/wiamsart/gallery/internal/domain"
	"github.com/wiamsart/gallery/internal/utils"
)

type artworkResponse struct {
	domain.Artwork
	Index int `json:"index"`
}

func (s *Server) apiListArtworks(w http.ResponseWriter, r *http.Request) {
	_ = r
	artworks := s.galleryService.ListArtworks()
	utils.Logger.Debug("api list artworks", "count", len(artworks))
	writeJSON(w, http.StatusOK, artworks)
}

func (s *Server) apiGetArtwork(w http.ResponseWriter, r *http.Request) {
	id, err := artworkIDParam(r)
	if err != nil {
		utils.Logger.Warn("api get artwork bad request", "err", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	a, idx, err := s.galleryService.GetArtwork(id)
	if errors.Is(err, application.ErrArtworkNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		utils.Logger.Error("api get artwork failed", "id", id, "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, artworkResponse{Artwork: a, Index: idx})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		utils.Logger.Error("encode response failed", "err", err)
	}
}
