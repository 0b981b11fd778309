//go:build linux

package metadata_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/frogthefrog/moondeck-buddy/internal/metadata"
	"github.com/stretchr/testify/assert"
)

func setXDG(t *testing.T) (configHome, stateHome string) {
	t.Helper()

	// registered first so it runs after the env is restored
	t.Cleanup(xdg.Reload)

	configHome = t.TempDir()
	stateHome = t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_STATE_HOME", stateHome)
	xdg.Reload()

	return configHome, stateHome
}

func TestLinuxPaths(t *testing.T) {
	configHome, stateHome := setXDG(t)
	meta := metadata.New(metadata.Buddy)

	assert.Equal(t, filepath.Join(stateHome, "MoonDeckBuddy"), meta.LogDir())
	assert.Equal(t, filepath.Join(stateHome, "MoonDeckBuddy", "moondeckbuddy.log"), meta.LogPath())
	assert.Equal(t, filepath.Join(configHome, "MoonDeckBuddy", "settings.json"), meta.SettingsPath())
	assert.Equal(t, filepath.Join(configHome, "autostart"), meta.AutoStartDir())
	assert.Equal(t, "moondeckbuddy.desktop", meta.AutoStartName())
	assert.Equal(t, filepath.Join(configHome, "autostart", "moondeckbuddy.desktop"), meta.AutoStartPath())
	assert.Equal(t, "/usr/bin/steam", meta.DefaultSteamExecutable())
}

func TestLinuxStreamPaths(t *testing.T) {
	configHome, _ := setXDG(t)
	meta := metadata.New(metadata.Stream)

	assert.Equal(t, filepath.Join(configHome, "MoonDeckStream", "settings.json"), meta.SettingsPath())
	assert.Equal(t, "moondeckstream.desktop", meta.AutoStartName())
}

func TestAutoStartExecPrefersAppImage(t *testing.T) {
	t.Setenv("APPIMAGE", "/home/deck/Applications/MoonDeckBuddy.AppImage")
	assert.Equal(t, "/home/deck/Applications/MoonDeckBuddy.AppImage", metadata.New(metadata.Buddy).AutoStartExec())
}

func TestAutoStartExecFallsBackToExecutable(t *testing.T) {
	t.Setenv("APPIMAGE", "")

	exe, err := os.Executable()
	if err != nil {
		t.Skip("executable path unavailable")
	}

	assert.Equal(t, exe, metadata.New(metadata.Buddy).AutoStartExec())
}
