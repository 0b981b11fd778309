package utils

import (
	"os"
	"path/filepath"
)

// FindConfigPath returns the settings file inside dir, preferring an
// existing .jsonc variant over the default name.
func FindConfigPath(dir string, name string) string {
	ext := filepath.Ext(name)
	for _, candidate := range []string{name, name[:len(name)-len(ext)] + ".jsonc"} {
		configPath := filepath.Join(dir, candidate)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
	}

	return filepath.Join(dir, name)
}

func FileExists(parts ...string) bool {
	_, err := os.Stat(filepath.Join(parts...))
	return err == nil
}
