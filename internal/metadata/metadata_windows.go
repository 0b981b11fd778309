//go:build windows

package metadata

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"golang.org/x/sys/windows"
)

const defaultSteamExecutable = `C:\Program Files (x86)\Steam\steam.exe`

// xdg maps both StateHome and ConfigHome to %LOCALAPPDATA% on Windows.
func logHome() string {
	return xdg.StateHome
}

func settingsHome() string {
	return xdg.ConfigHome
}

func autoStartDir() string {
	if dir, err := windows.KnownFolderPath(windows.FOLDERID_Startup, 0); err == nil && dir != "" {
		return dir
	}

	// The first application dir is the per-user Start Menu\Programs.
	if len(xdg.ApplicationDirs) > 0 {
		return filepath.Join(xdg.ApplicationDirs[0], "Startup")
	}

	return ""
}

func autoStartName(appName string) string {
	return appName + ".lnk"
}

func autoStartExec() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}

	return exe
}
