package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"control_tower_echo/internal/navigation"
)

func TestCheckDashboardAsset(t *testing.T) {
	dir := t.TempDir()
	intent := navigation.MustIntent(navigation.DefaultDestination)

	if _, err := CheckDashboardAsset(dir, intent); !errors.Is(err, ErrAssetMissing) {
		t.Fatalf("CheckDashboardAsset() on empty dir error = %v; want ErrAssetMissing", err)
	}

	want := filepath.Join(dir, "logistics-app.html")
	if err := os.WriteFile(want, []byte("<html></html>"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := CheckDashboardAsset(dir, intent)
	if err != nil {
		t.Fatalf("CheckDashboardAsset() error = %v", err)
	}
	if got != want {
		t.Errorf("CheckDashboardAsset() = %q; want %q", got, want)
	}
}

func TestCheckDashboardAssetRejectsDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "logistics-app.html"), 0o755); err != nil {
		t.Fatal(err)
	}
	_, err := CheckDashboardAsset(dir, navigation.MustIntent(navigation.DefaultDestination))
	if !errors.Is(err, ErrAssetMissing) {
		t.Fatalf("error = %v; want ErrAssetMissing", err)
	}
}

func TestInitTracingNoopWhenEndpointEmpty(t *testing.T) {
	shutdown, err := InitTracing(context.Background(), "test-service", "", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestInitTracingNoopWhenDisabled(t *testing.T) {
	shutdown, err := InitTracing(context.Background(), "test-service", "http://localhost:4318", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("noop shutdown should not error: %v", err)
	}
}

func TestInitTracingCreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address so nothing is exported
	shutdown, err := InitTracing(context.Background(), "test-service", "http://192.0.2.1:4318", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}
