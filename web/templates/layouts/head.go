// Package layouts holds the document shell every page renders inside.
package layouts

import "github.com/a-h/templ"

// Head is what the shell writes before the body
type Head struct {
	Lang        string
	Title       string
	Description string
	// Fonts is nil when no web fonts are configured
	Fonts *FontLinks
}

// FontLinks describes the preconnect, preload and stylesheet links for web fonts
type FontLinks struct {
	StylesheetHost string
	FileHost       string
	StylesheetURL  string
	RootStyle      string
}

// rootStyle writes the font custom properties. css is built from the
// configured font list, never from request input.
func rootStyle(css string) templ.Component {
	return templ.Raw("<style>" + css + "</style>")
}
