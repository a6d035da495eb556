package application

import (
	"github.com/cockroachdb/errors"
	"github.com/wiamsart/gallery/internal/domain"
	"github.com/wiamsart/gallery/internal/utils"
)

// GalleryService provides read access to the gallery and builds lightboxes over it.
type GalleryService struct {
	repo domain.CatalogRepository
}

// NewGalleryService creates a new gallery service.
func NewGalleryService(repo domain.CatalogRepository) *GalleryService {
	return &GalleryService{repo: repo}
}

// Gallery returns the current snapshot.
func (s *GalleryService) Gallery() domain.Gallery {
	return s.repo.Current()
}

// ListArtworks lists the artworks in catalog order.
func (s *GalleryService) ListArtworks() []domain.Artwork {
	return s.repo.Current().Catalog.All()
}

// GetArtwork retrieves an artwork and its catalog position by ID.
func (s *GalleryService) GetArtwork(id int) (domain.Artwork, int, error) {
	catalog := s.repo.Current().Catalog
	i, ok := catalog.IndexOf(id)
	if !ok {
		return domain.Artwork{}, 0, errors.Wrapf(ErrArtworkNotFound, "id %d", id)
	}
	a, _ := catalog.At(i)
	return a, i, nil
}

// NewLightbox returns a closed lightbox bound to the current snapshot.
func (s *GalleryService) NewLightbox() *Lightbox {
	return NewLightbox(s.repo.Current().Catalog)
}

// OpenArtwork returns a lightbox opened on the artwork with the given ID.
func (s *GalleryService) OpenArtwork(id int) (*Lightbox, error) {
	catalog := s.repo.Current().Catalog
	i, ok := catalog.IndexOf(id)
	if !ok {
		utils.Logger.Debug("open artwork not found", "id", id)
		return nil, errors.Wrapf(ErrArtworkNotFound, "id %d", id)
	}
	lb := NewLightbox(catalog)
	if err := lb.Select(i); err != nil {
		return nil, err
	}
	return lb, nil
}
