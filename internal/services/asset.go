package services

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"control_tower_echo/internal/navigation"
)

// ErrAssetMissing is returned when the dashboard file is not in the static directory
var ErrAssetMissing = errors.New("dashboard asset missing")

// CheckDashboardAsset reports whether the file the intent points at exists
// under staticDir. It is never consulted while serving requests.
func CheckDashboardAsset(staticDir string, intent navigation.Intent) (string, error) {
	rel := path.Clean(intent.Destination)
	file := filepath.Join(staticDir, filepath.FromSlash(rel))

	info, err := os.Stat(file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return file, fmt.Errorf("%w: %s", ErrAssetMissing, file)
		}
		return file, fmt.Errorf("failed to stat dashboard asset: %w", err)
	}
	if info.IsDir() {
		return file, fmt.Errorf("%w: %s is a directory", ErrAssetMissing, file)
	}
	return file, nil
}
