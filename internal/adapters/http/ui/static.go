// Package ui provides the embedded stylesheet and script of the gallery page.
// Templ views live under templates/.
package ui

import (
	"embed"
	"io/fs"
)

// StaticFiles is an embedded file system containing the files located under the "static" directory.
//
//go:embed static/*
var StaticFiles embed.FS

// Static returns StaticFiles rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(StaticFiles, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
