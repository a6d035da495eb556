package domain

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidCatalog is returned when catalog records fail validation
	ErrInvalidCatalog = errors.New("invalid catalog")

	// ErrEmptyCatalog is returned when a catalog has no artworks to show
	ErrEmptyCatalog = errors.New("catalog is empty")
)
