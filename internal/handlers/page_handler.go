package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"control_tower_echo/internal/config"
	"control_tower_echo/internal/i18n"
	"control_tower_echo/internal/navigation"
	"control_tower_echo/web/templates/pages"
	"control_tower_echo/internal/shell"
)

// PageHandler serves the landing route
type PageHandler struct {
	shell  *shell.Shell
	intent navigation.Intent
	mode   config.HandoffMode
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(s *shell.Shell, intent navigation.Intent, mode config.HandoffMode) *PageHandler {
	return &PageHandler{shell: s, intent: intent, mode: mode}
}

// Landing hands the browser off to the dashboard.
// The request query is never forwarded to the destination.
func (h *PageHandler) Landing(c echo.Context) error {
	if h.mode == config.HandoffServer {
		_, err := navigation.NewHandoff(h.intent).Issue(redirectNavigator(c))
		return err
	}

	primary, secondary := i18n.LandingPair(c.Request().Header.Get("Accept-Language"))
	page := pages.LandingPage(pages.LandingProps{
		Intent:    h.intent,
		Primary:   primary,
		Secondary: secondary,
	})
	// Landing content varies by Accept-Language
	c.Response().Header().Add(echo.HeaderVary, "Accept-Language")
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return h.shell.Write(c.Response(), c.Request(), page)
}

func redirectNavigator(c echo.Context) navigation.Navigator {
	return navigation.NavigatorFunc(func(destination string) error {
		return c.Redirect(http.StatusTemporaryRedirect, destination)
	})
}
