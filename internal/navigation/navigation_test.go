package navigation

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestNewIntent(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "default destination", input: DefaultDestination, want: "/logistics-app.html"},
		{name: "surrounding whitespace", input: "  /logistics-app.html ", want: "/logistics-app.html"},
		{name: "empty", input: "   ", wantErr: ErrEmptyDestination},
		{name: "relative path", input: "logistics-app.html", wantErr: ErrInvalidDestination},
		{name: "absolute url", input: "https://example.com/app.html", wantErr: ErrInvalidDestination},
		{name: "scheme relative", input: "//example.com/app.html", wantErr: ErrInvalidDestination},
		{name: "backslash", input: "/\\example.com", wantErr: ErrInvalidDestination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewIntent(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewIntent(%q) error = %v; want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewIntent(%q) unexpected error: %v", tt.input, err)
			}
			if got.Destination != tt.want {
				t.Errorf("NewIntent(%q).Destination = %q; want %q", tt.input, got.Destination, tt.want)
			}
		})
	}
}

type recordingNavigator struct {
	calls []string
	err   error
}

func (r *recordingNavigator) Assign(destination string) error {
	r.calls = append(r.calls, destination)
	return r.err
}

func TestHandoffIssuesOnce(t *testing.T) {
	nav := &recordingNavigator{}
	handoff := NewHandoff(MustIntent(DefaultDestination))

	issued, err := handoff.Issue(nav)
	if err != nil || !issued {
		t.Fatalf("first Issue() = %v, %v; want true, nil", issued, err)
	}
	issued, err = handoff.Issue(nav)
	if err != nil || issued {
		t.Fatalf("second Issue() = %v, %v; want false, nil", issued, err)
	}

	if len(nav.calls) != 1 {
		t.Fatalf("navigator called %d times; want 1", len(nav.calls))
	}
	if nav.calls[0] != DefaultDestination {
		t.Errorf("navigated to %q; want %q", nav.calls[0], DefaultDestination)
	}
	if !handoff.Issued() {
		t.Error("Issued() = false after Issue")
	}
}

func TestNewHandoffPerMountIssuesAgain(t *testing.T) {
	nav := &recordingNavigator{}
	intent := MustIntent(DefaultDestination)

	for i := 0; i < 3; i++ {
		if _, err := NewHandoff(intent).Issue(nav); err != nil {
			t.Fatalf("Issue() error: %v", err)
		}
	}

	if len(nav.calls) != 3 {
		t.Fatalf("navigator called %d times; want 3", len(nav.calls))
	}
	for _, call := range nav.calls {
		if call != DefaultDestination {
			t.Errorf("navigated to %q; want %q", call, DefaultDestination)
		}
	}
}

func TestHandoffDoesNotRetryAfterNavigatorError(t *testing.T) {
	nav := &recordingNavigator{err: errors.New("boom")}
	handoff := NewHandoff(MustIntent(DefaultDestination))

	issued, err := handoff.Issue(nav)
	if !issued || err == nil {
		t.Fatalf("Issue() = %v, %v; want true and an error", issued, err)
	}
	if issued, _ := handoff.Issue(nav); issued {
		t.Error("handoff issued again after a navigator error")
	}
	if len(nav.calls) != 1 {
		t.Errorf("navigator called %d times; want 1", len(nav.calls))
	}
}

func TestScriptNavigatorWritesSingleAssignment(t *testing.T) {
	var buf bytes.Buffer
	if err := NewScriptNavigator(&buf).Assign(DefaultDestination); err != nil {
		t.Fatalf("Assign() error: %v", err)
	}
	out := buf.String()

	if got := strings.Count(out, "window.location.href="); got != 1 {
		t.Fatalf("script has %d location assignments; want 1\n%s", got, out)
	}
	if !strings.Contains(out, `window.location.href="/logistics-app.html"`) {
		t.Errorf("script does not navigate to the dashboard: %s", out)
	}
	if !strings.Contains(out, "window."+GuardFlag) {
		t.Errorf("script is missing the guard flag: %s", out)
	}
	if strings.Contains(out, "?") {
		t.Errorf("script appends parameters to the destination: %s", out)
	}
}

func TestScriptNavigatorEscapesScriptTerminator(t *testing.T) {
	var buf bytes.Buffer
	if err := NewScriptNavigator(&buf).Assign("/x</script><b>"); err != nil {
		t.Fatalf("Assign() error: %v", err)
	}
	if strings.Count(buf.String(), "</script>") != 1 {
		t.Errorf("destination closed the script tag early: %s", buf.String())
	}
}
