package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"control_tower_echo/web/templates/pages"
	"control_tower_echo/internal/shell"
)

// NewErrorHandler creates a custom error handler for Echo that renders pages through s.
// Unmatched routes get the not-found page and are not logged.
func NewErrorHandler(s *shell.Shell) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		errorMessage := ""

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			// echo fills Message with the status text when none is given
			if msg, ok := he.Message.(string); ok && msg != http.StatusText(code) {
				errorMessage = msg
			}
		}

		// HEAD requests get the status only
		if c.Request().Method == http.MethodHead {
			if code == http.StatusMethodNotAllowed {
				code = http.StatusNotFound
			}
			_ = c.NoContent(code)
			return
		}

		var page shell.Page
		switch code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			// No page exists for this method and path
			page = pages.NotFoundPage()
		default:
			c.Logger().Error(err)
			title, message := describeError(code, errorMessage)
			page = pages.ErrorShellPage(pages.ErrorPageProps{
				Status:       code,
				ErrorTitle:   title,
				ErrorMessage: message,
			})
		}

		if renderErr := s.Write(c.Response(), c.Request(), page); renderErr != nil {
			// Write has already sent a bare 500
			c.Logger().Error(fmt.Errorf("failed to render error page: %w", renderErr))
		}
	}
}

// describeError returns the title and message for a status code,
// keeping a custom message when one was provided
func describeError(code int, message string) (string, string) {
	title := "Internal Server Error"
	fallback := "Something went wrong. Please try again later."

	switch code {
	case http.StatusForbidden:
		title = "Access Denied"
		fallback = "You don't have permission to access this resource."
	case http.StatusUnauthorized:
		title = "Unauthorized"
		fallback = "Please log in to continue."
	case http.StatusBadRequest:
		title = "Bad Request"
		fallback = "The request could not be processed."
	default:
		if text := http.StatusText(code); text != "" && code != http.StatusInternalServerError {
			title = text
		}
	}

	// Internal errors never expose their message
	if message == "" || code >= http.StatusInternalServerError {
		message = fallback
	}
	return title, message
}
