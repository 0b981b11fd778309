//go:build linux

package apollo

import (
	"os"
	"path/filepath"
)

func configDir() string {
	if env := os.Getenv("XDG_CONFIG_HOME"); env != "" {
		if fi, err := os.Stat(env); err == nil && fi.IsDir() {
			if abs, err := filepath.Abs(env); err == nil {
				return abs
			}
		}
	}

	home := os.Getenv("HOME")
	if home == "" {
		return ""
	}

	return filepath.Join(home, ".config")
}

func defaultAppsPath() (string, error) {
	dir := configDir()
	if dir == "" {
		return "", nil
	}

	return filepath.Clean(filepath.Join(dir, "apollo", "apps.json")), nil
}
