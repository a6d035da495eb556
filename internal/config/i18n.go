package config

import (
	"github.com/invopop/ctxi18n"
	"github.com/wiamsart/gallery/locales"
)

// DefaultLocale is used when a request asks for a language we do not ship.
const DefaultLocale = "en"

func InitI18n() {
	err := ctxi18n.LoadWithDefault(locales.Content, DefaultLocale)
	if err != nil {
		panic(err)
	}
}
