package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"control_tower_echo/internal/shell"
)

func runHandler(t *testing.T, method string, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/anything", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewErrorHandler(shell.New(shell.DefaultMetadata(), shell.DefaultTypography()))(err, c)
	return rec
}

func TestErrorHandlerNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "not found", err: echo.ErrNotFound},
		{name: "method not allowed", err: echo.ErrMethodNotAllowed},
		{name: "custom not found message", err: echo.NewHTTPError(http.StatusNotFound, "file gone")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := runHandler(t, http.MethodGet, tt.err)
			if rec.Code != http.StatusNotFound {
				t.Fatalf("status = %d; want 404", rec.Code)
			}
			body := rec.Body.String()
			if !strings.Contains(body, "<h1>404</h1>") {
				t.Errorf("not-found page missing heading: %s", body)
			}
			if strings.Contains(body, "file gone") {
				t.Errorf("not-found page must render the same content: %s", body)
			}
		})
	}
}

func TestErrorHandlerOtherCodes(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantTitle   string
		wantMessage string
	}{
		{
			name:        "plain error",
			err:         errors.New("db exploded"),
			wantCode:    http.StatusInternalServerError,
			wantTitle:   "Internal Server Error",
			wantMessage: "Something went wrong. Please try again later.",
		},
		{
			name:        "bad request with message",
			err:         echo.NewHTTPError(http.StatusBadRequest, "missing field"),
			wantCode:    http.StatusBadRequest,
			wantTitle:   "Bad Request",
			wantMessage: "missing field",
		},
		{
			name:        "forbidden default message",
			err:         echo.NewHTTPError(http.StatusForbidden),
			wantCode:    http.StatusForbidden,
			wantTitle:   "Access Denied",
			wantMessage: "You don&#39;t have permission to access this resource.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := runHandler(t, http.MethodGet, tt.err)
			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d; want %d", rec.Code, tt.wantCode)
			}
			body := rec.Body.String()
			if !strings.Contains(body, tt.wantTitle) {
				t.Errorf("body missing title %q: %s", tt.wantTitle, body)
			}
			if !strings.Contains(body, tt.wantMessage) {
				t.Errorf("body missing message %q: %s", tt.wantMessage, body)
			}
			if strings.Contains(body, "db exploded") {
				t.Errorf("internal error leaked: %s", body)
			}
		})
	}
}

func TestErrorHandlerHeadRequest(t *testing.T) {
	rec := runHandler(t, http.MethodHead, echo.ErrNotFound)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d; want 404", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("HEAD response has a body: %q", rec.Body.String())
	}
}

func TestDescribeError(t *testing.T) {
	title, message := describeError(http.StatusTeapot, "")
	if title != "I'm a teapot" {
		t.Errorf("title = %q", title)
	}
	if message != "Something went wrong. Please try again later." {
		t.Errorf("message = %q", message)
	}
}
