package navigation

import (
	"encoding/json"
	"fmt"
	"io"
)

// GuardFlag is the window property the client script uses to avoid issuing
// the hand-off twice within one page load.
const GuardFlag = "__controlTowerHandoff"

// ScriptNavigator writes an inline script that assigns window.location.href
// once the page has been parsed.
type ScriptNavigator struct {
	w io.Writer
}

// NewScriptNavigator returns a navigator writing to w
func NewScriptNavigator(w io.Writer) *ScriptNavigator {
	return &ScriptNavigator{w: w}
}

// Assign writes the hand-off script for destination
func (n *ScriptNavigator) Assign(destination string) error {
	// json.Marshal escapes <, > and & so the literal cannot close the script tag
	literal, err := json.Marshal(destination)
	if err != nil {
		return fmt.Errorf("failed to encode destination: %w", err)
	}

	script := fmt.Sprintf(`<script>(function(){`+
		`var go=function(){if(window.%[1]s){return}window.%[1]s=true;window.location.href=%[2]s};`+
		`window.addEventListener("pageshow",function(e){if(e.persisted){window.%[1]s=false;go()}});`+
		`go()})()</script>`, GuardFlag, literal)

	if _, err := io.WriteString(n.w, script); err != nil {
		return fmt.Errorf("failed to write hand-off script: %w", err)
	}
	return nil
}
