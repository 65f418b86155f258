package shell

import (
	"strconv"
	"strings"

	"control_tower_echo/web/templates/layouts"
)

const (
	fontStylesheetHost = "https://fonts.googleapis.com"
	fontFileHost       = "https://fonts.gstatic.com"
)

// Font describes one web font family exposed to pages through a CSS variable
type Font struct {
	Family   string
	Variable string
	Weights  []int
	// Fallback is the system stack used when the web font cannot be loaded
	Fallback string
}

// Typography is the set of fonts every page loads
type Typography struct {
	Fonts []Font
}

// DefaultTypography returns Geist for body text and Source Serif 4 for serif accents
func DefaultTypography() Typography {
	return Typography{
		Fonts: []Font{
			{
				Family:   "Geist",
				Variable: "--font-geist",
				Weights:  []int{100, 200, 300, 400, 500, 600, 700, 800, 900},
				Fallback: "ui-sans-serif, system-ui, sans-serif",
			},
			{
				Family:   "Source Serif 4",
				Variable: "--font-source-serif-4",
				Weights:  []int{200, 300, 400, 500, 600, 700, 800, 900},
				Fallback: "ui-serif, Georgia, serif",
			},
		},
	}
}

// StylesheetURL returns the css2 stylesheet URL requesting every font and weight.
// display=block hides text until the font arrives instead of swapping it in.
func (t Typography) StylesheetURL() string {
	if len(t.Fonts) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(fontStylesheetHost)
	b.WriteString("/css2?")
	for i, font := range t.Fonts {
		if i > 0 {
			b.WriteString("&")
		}
		b.WriteString("family=")
		b.WriteString(strings.ReplaceAll(font.Family, " ", "+"))
		if len(font.Weights) > 0 {
			b.WriteString(":wght@")
			for j, weight := range font.Weights {
				if j > 0 {
					b.WriteString(";")
				}
				b.WriteString(strconv.Itoa(weight))
			}
		}
	}
	b.WriteString("&display=block")
	return b.String()
}

// RootStyle returns the :root rule declaring each font variable with its fallback stack.
// The first font is applied to the body.
func (t Typography) RootStyle() string {
	if len(t.Fonts) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(":root{")
	for i, font := range t.Fonts {
		if i > 0 {
			b.WriteString(";")
		}
		b.WriteString(font.Variable)
		b.WriteString(`:"`)
		b.WriteString(font.Family)
		b.WriteString(`"`)
		if font.Fallback != "" {
			b.WriteString(", ")
			b.WriteString(font.Fallback)
		}
	}
	b.WriteString("}body{font-family:var(")
	b.WriteString(t.Fonts[0].Variable)
	b.WriteString(")}")
	return b.String()
}

// Links returns the head links for the configured fonts, or nil when there are none
func (t Typography) Links() *layouts.FontLinks {
	href := t.StylesheetURL()
	if href == "" {
		return nil
	}
	return &layouts.FontLinks{
		StylesheetHost: fontStylesheetHost,
		FileHost:       fontFileHost,
		StylesheetURL:  href,
		RootStyle:      t.RootStyle(),
	}
}
