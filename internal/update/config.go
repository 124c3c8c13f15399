package update

import (
	"os"
	"path/filepath"
	"strings"
)

type RuntimeConfig struct {
	// DataDir holds the key-value files, the sqlite database and exports.
	DataDir string
	// StorageBackend selects "file" (default) or "sqlite".
	StorageBackend       string
	DesktopNotifications bool
}

func DefaultRuntimeConfig() RuntimeConfig {
	dir, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(dir) == "" {
		dir = "."
	}
	return RuntimeConfig{
		DataDir:              filepath.Join(dir, ".focusflow"),
		StorageBackend:       "file",
		DesktopNotifications: false,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("FOCUSFLOW_DATA_DIR")); v != "" {
		cfg.DataDir = v
	}
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("FOCUSFLOW_STORAGE"))); v == "file" || v == "sqlite" {
		cfg.StorageBackend = v
	}
	if v, ok := getEnvBool("FOCUSFLOW_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	return cfg
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
