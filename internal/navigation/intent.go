package navigation

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultDestination is the static dashboard file the landing page hands off to
const DefaultDestination = "/logistics-app.html"

var (
	ErrEmptyDestination   = errors.New("navigation destination is empty")
	ErrInvalidDestination = errors.New("navigation destination must be an absolute in-site path")
)

// Intent is the destination produced by a page for the browser to navigate to.
// It is not retained after the navigation is issued.
type Intent struct {
	Destination string
}

// NewIntent validates the destination and returns an Intent for it
func NewIntent(destination string) (Intent, error) {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return Intent{}, ErrEmptyDestination
	}

	// Scheme-relative ("//host") and absolute URLs would leave the site
	if !strings.HasPrefix(destination, "/") || strings.HasPrefix(destination, "//") || strings.Contains(destination, "\\") {
		return Intent{}, fmt.Errorf("%w: %q", ErrInvalidDestination, destination)
	}

	return Intent{Destination: destination}, nil
}

// MustIntent is like NewIntent but panics on an invalid destination
func MustIntent(destination string) Intent {
	intent, err := NewIntent(destination)
	if err != nil {
		panic(err)
	}
	return intent
}
