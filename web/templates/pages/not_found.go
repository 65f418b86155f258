package pages

import (
	"net/http"

	"control_tower_echo/internal/shell"
)

// ActionKind says how a recovery action navigates
type ActionKind int

const (
	// ActionLink navigates to Href
	ActionLink ActionKind = iota
	// ActionHistoryBack steps back in browser history
	ActionHistoryBack
)

// Action is a recovery control on the not-found page
type Action struct {
	Label string
	Kind  ActionKind
	Href  string
}

// NotFoundActions returns the two recovery actions: primary first
func NotFoundActions() []Action {
	return []Action{
		{Label: "Return to Control Tower", Kind: ActionLink, Href: "/"},
		{Label: "Go Back", Kind: ActionHistoryBack},
	}
}

func actionClass(primary bool) string {
	if primary {
		return "btn"
	}
	return "btn outline"
}

// NotFoundPage returns the 404 page for the shell.
// Every unmatched path renders the same content.
func NotFoundPage() shell.Page {
	return shell.Page{
		Status: http.StatusNotFound,
		Body:   NotFound(),
	}
}
