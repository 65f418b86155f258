package pages

import (
	"net/http"

	"control_tower_echo/internal/shell"
)

// ErrorPageProps describes a non-404 failure page
type ErrorPageProps struct {
	Status       int
	ErrorTitle   string
	ErrorMessage string
}

// ErrorShellPage wraps ErrorPage for the shell
func ErrorShellPage(props ErrorPageProps) shell.Page {
	if props.Status <= 0 {
		props.Status = http.StatusInternalServerError
	}
	return shell.Page{
		Status: props.Status,
		Body:   ErrorPage(props),
	}
}
