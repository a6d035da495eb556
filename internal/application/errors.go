package application

import (
	"github.com/cockroachdb/errors"
	"github.com/wiamsart/gallery/internal/domain"
)

var (
	// ErrArtworkNotFound is returned when no artwork has the requested ID
	ErrArtworkNotFound = errors.New("artwork not found")

	// ErrIndexOutOfRange is returned when a selection index is outside the catalog
	ErrIndexOutOfRange = errors.New("artwork index out of range")

	// ErrEmptyCatalog is returned when there is nothing to select
	ErrEmptyCatalog = domain.ErrEmptyCatalog
)
