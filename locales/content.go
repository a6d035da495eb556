// Package locales provides the embedded translation files for the gallery UI
// (en, fr), loaded at startup through ctxi18n.
package locales

import "embed"

//go:embed en.yaml
//go:embed fr.yaml

// Content is an embedded file system containing the localized resource files.
var Content embed.FS
