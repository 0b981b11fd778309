//go:build !linux && !windows

package metadata

import "github.com/adrg/xdg"

// Paths still follow the XDG defaults so callers can print them, but
// there is no autostart location and no known Steam install.
const defaultSteamExecutable = ""

func logHome() string {
	return xdg.StateHome
}

func settingsHome() string {
	return xdg.ConfigHome
}

func autoStartDir() string {
	return ""
}

func autoStartName(appName string) string {
	return ""
}

func autoStartExec() string {
	return ""
}
