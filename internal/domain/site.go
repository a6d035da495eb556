package domain

import "strings"

const instagramBaseURL = "https://instagram.com/"

// Site holds the page chrome around the gallery grid.
type Site struct {
	Title     string `json:"title"`
	Tagline   string `json:"tagline"`
	Owner     string `json:"owner"`
	Instagram string `json:"instagram"`
	Year      int    `json:"year"`
}

// InstagramURL returns the profile URL for the configured handle, or "" when none is set.
func (s Site) InstagramURL() string {
	handle := strings.TrimPrefix(strings.TrimSpace(s.Instagram), "@")
	if handle == "" {
		return ""
	}
	return instagramBaseURL + handle
}

// InstagramHandle returns the handle formatted for display.
func (s Site) InstagramHandle() string {
	handle := strings.TrimPrefix(strings.TrimSpace(s.Instagram), "@")
	if handle == "" {
		return ""
	}
	return "@" + handle
}

// Gallery is the snapshot served at one point in time.
type Gallery struct {
	Site    Site
	Catalog *Catalog
}
