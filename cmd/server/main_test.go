package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"control_tower_echo/internal/services"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "STATIC_DIR", "DASHBOARD_PATH", "HANDOFF_MODE", "SHUTDOWN_TIMEOUT",
	} {
		// Setenv restores the original value on cleanup
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	clearEnv(t)
	t.Cleanup(func() {
		portFlag = ""
		staticDirFlag = ""
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCheckAssetFindsDashboard(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "logistics-app.html")
	if err := os.WriteFile(file, []byte("<html>dashboard</html>"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "check-asset", "--static-dir", dir)
	if err != nil {
		t.Fatalf("check-asset error = %v", err)
	}
	if !strings.Contains(out, "dashboard asset OK: "+file) {
		t.Errorf("check-asset output = %q", out)
	}
}

func TestCheckAssetReportsMissingDashboard(t *testing.T) {
	out, err := runCLI(t, "check-asset", "--static-dir", t.TempDir())
	if !errors.Is(err, services.ErrAssetMissing) {
		t.Fatalf("check-asset error = %v; want ErrAssetMissing", err)
	}
	if strings.Contains(out, "OK") {
		t.Errorf("check-asset reported success: %q", out)
	}
}

func TestCheckAssetValidatesPortFlag(t *testing.T) {
	_, err := runCLI(t, "check-asset", "--static-dir", t.TempDir(), "--port", "not-a-port")
	if err == nil || !strings.Contains(err.Error(), "invalid PORT") {
		t.Fatalf("check-asset error = %v; want invalid PORT", err)
	}
}

func TestVersionPrintsBuildInfo(t *testing.T) {
	out, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if want := "control-tower dev (commit none)\n"; out != want {
		t.Errorf("version output = %q; want %q", out, want)
	}
}
