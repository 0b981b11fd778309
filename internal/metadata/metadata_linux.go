//go:build linux

package metadata

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const defaultSteamExecutable = "/usr/bin/steam"

func logHome() string {
	return xdg.StateHome
}

func settingsHome() string {
	return xdg.ConfigHome
}

func autoStartDir() string {
	return filepath.Join(xdg.ConfigHome, "autostart")
}

func autoStartName(appName string) string {
	return strings.ToLower(appName) + ".desktop"
}

// autoStartExec prefers the AppImage the buddy was launched from over the
// extracted binary, which lives in a temporary mount.
func autoStartExec() string {
	if appImage := os.Getenv("APPIMAGE"); appImage != "" {
		return appImage
	}

	exe, err := os.Executable()
	if err != nil {
		return ""
	}

	return exe
}
