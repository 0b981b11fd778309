//go:build windows

package apollo

import (
	"path/filepath"

	"golang.org/x/sys/windows/registry"
)

const registryKey = `Software\ClassicOldSong\Apollo`

// installDir reads the default value of the Apollo key, which the
// installer sets to the installation directory.
func installDir() string {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, registryKey, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer key.Close()

	dir, _, err := key.GetStringValue("")
	if err != nil {
		return ""
	}

	return dir
}

func defaultAppsPath() (string, error) {
	dir := installDir()
	if dir == "" {
		return "", nil
	}

	return filepath.Clean(filepath.Join(dir, "config", "apps.json")), nil
}
