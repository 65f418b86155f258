package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"control_tower_echo/internal/i18n"
	"control_tower_echo/internal/navigation"
	"control_tower_echo/internal/shell"
)

// LandingProps holds everything the landing page renders
type LandingProps struct {
	Intent    navigation.Intent
	Primary   i18n.LandingCopy
	Secondary i18n.LandingCopy
}

// dashboardHandoff issues the dashboard navigation after the loading UI.
// Every render is a fresh mount with its own Handoff.
func dashboardHandoff(intent navigation.Intent) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		handoff := navigation.NewHandoff(intent)
		if _, err := handoff.Issue(navigation.NewScriptNavigator(w)); err != nil {
			return fmt.Errorf("failed to issue dashboard hand-off: %w", err)
		}
		return nil
	})
}

// LandingPage wraps the landing component for the shell.
// Metadata is left empty so the site defaults apply.
func LandingPage(props LandingProps) shell.Page {
	return shell.Page{
		Lang: props.Primary.Lang.String(),
		Body: Landing(props),
	}
}
