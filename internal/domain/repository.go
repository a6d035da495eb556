package domain

// CatalogRepository serves the current gallery snapshot.
type CatalogRepository interface {
	Current() Gallery
	Watch() error
	Close() error
}
