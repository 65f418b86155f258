package navigation

// Navigator performs a full-page location change. Implementations write a
// client script or an HTTP redirect; neither waits for the destination.
type Navigator interface {
	Assign(destination string) error
}

// NavigatorFunc adapts a function to the Navigator interface
type NavigatorFunc func(destination string) error

// Assign calls f(destination)
func (f NavigatorFunc) Assign(destination string) error {
	return f(destination)
}

// Handoff is a one-shot command that issues its Intent at most once.
// A page creates a new Handoff on every mount, so a re-mount issues again
// while a re-render of the same mount does not.
type Handoff struct {
	intent Intent
	issued bool
}

// NewHandoff creates a Handoff for the given intent
func NewHandoff(intent Intent) *Handoff {
	return &Handoff{intent: intent}
}

// Issued reports whether the navigation has already been issued
func (h *Handoff) Issued() bool {
	return h.issued
}

// Issue sends the intent to nav unless it was already issued.
// It returns false without calling nav on every call after the first.
// A navigator error still consumes the handoff: nothing is retried.
func (h *Handoff) Issue(nav Navigator) (bool, error) {
	if h.issued {
		return false, nil
	}
	h.issued = true
	return true, nav.Assign(h.intent.Destination)
}
