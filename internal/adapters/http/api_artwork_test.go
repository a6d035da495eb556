package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wiamsart/gallery/internal/domain"
)

func TestAPIListArtworks(t *testing.T) {
	s := buildServer(t)

	rec := httptest.NewRecorder()
	s.apiListArtworks(rec, httptest.NewRequest(http.MethodGet, "/api/artworks", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var list []domain.Artwork
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 5)
	require.Equal(t, 10, list[0].ID)
	require.Equal(t, "/images/a.jpg", list[0].ImageRef)
}

func TestAPIGetArtwork(t *testing.T) {
	s := buildServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/artworks/40", nil)
	rec := httptest.NewRecorder()
	s.apiGetArtwork(rec, req.WithContext(chiCtxWithParam(req.Context(), "artworkID", "40")))
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		ID    int    `json:"id"`
		Title string `json:"title"`
		Index int    `json:"index"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, 40, got.ID)
	require.Equal(t, "D", got.Title)
	require.Equal(t, 3, got.Index)

	req = httptest.NewRequest(http.MethodGet, "/api/artworks/41", nil)
	rec = httptest.NewRecorder()
	s.apiGetArtwork(rec, req.WithContext(chiCtxWithParam(req.Context(), "artworkID", "41")))
	require.Equal(t, http.StatusNotFound, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/artworks/x", nil)
	rec = httptest.NewRecorder()
	s.apiGetArtwork(rec, req.WithContext(chiCtxWithParam(req.Context(), "artworkID", "x")))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
