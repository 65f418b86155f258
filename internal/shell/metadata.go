package shell

import "strings"

const (
	DefaultTitle       = "Logistics Control Tower v2.5"
	DefaultDescription = "Weather-aware vessel schedule dashboard"
)

// Metadata is the document-level title and description of a page
type Metadata struct {
	Title       string
	Description string
}

// DefaultMetadata returns the site-wide metadata
func DefaultMetadata() Metadata {
	return Metadata{
		Title:       DefaultTitle,
		Description: DefaultDescription,
	}
}

// WithDefaults fills any empty field from site so the head is never missing a value
func (m Metadata) WithDefaults(site Metadata) Metadata {
	if strings.TrimSpace(m.Title) == "" {
		m.Title = site.Title
	}
	if strings.TrimSpace(m.Description) == "" {
		m.Description = site.Description
	}
	return m
}
