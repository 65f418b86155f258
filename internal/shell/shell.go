// Package shell renders the document wrapper shared by every route.
//
// Routes never touch the document head. Each returns a Page value carrying
// its metadata and body, and the Shell applies it in one place so the title,
// description and font links are always written before any body content.
package shell

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"control_tower_echo/web/templates/layouts"
)

const defaultLang = "en"

// Page is what a route hands to the shell
type Page struct {
	Meta   Metadata
	Status int
	Lang   string
	Body   templ.Component
}

// Shell composes pages into full HTML documents
type Shell struct {
	site       Metadata
	typography Typography
}

// New creates a Shell with site-wide metadata and typography.
// Empty metadata fields fall back to the package defaults.
func New(site Metadata, typography Typography) *Shell {
	return &Shell{
		site:       site.WithDefaults(DefaultMetadata()),
		typography: typography,
	}
}

// Document renders the html/head/body wrapper around the children in ctx
func (s *Shell) Document(meta Metadata, lang string) templ.Component {
	meta = meta.WithDefaults(s.site)
	if lang == "" {
		lang = defaultLang
	}
	return layouts.Shell(layouts.Head{
		Lang:        lang,
		Title:       meta.Title,
		Description: meta.Description,
		Fonts:       s.typography.Links(),
	})
}

// Compose returns the full document for page
func (s *Shell) Compose(page Page) templ.Component {
	body := page.Body
	if body == nil {
		body = templ.NopComponent
	}
	doc := s.Document(page.Meta, page.Lang)

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return doc.Render(templ.WithChildren(ctx, body), w)
	})
}

// Write renders page into a buffer and then writes it with its status.
// A render failure produces a bare 500 so no partial document is sent.
func (s *Shell) Write(w http.ResponseWriter, r *http.Request, page Page) error {
	status := page.Status
	if status <= 0 {
		status = http.StatusOK
	}

	ctx := context.Background()
	if r != nil {
		ctx = r.Context()
	}

	var buf bytes.Buffer
	if err := s.Compose(page).Render(ctx, &buf); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := w.Write(buf.Bytes())
	return err
}
