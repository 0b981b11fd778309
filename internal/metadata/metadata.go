// Package metadata derives the names and file-system locations used by
// MoonDeckBuddy and MoonDeckStream.
package metadata

import (
	"fmt"
	"path/filepath"
	"strings"
)

type App int

const (
	Buddy App = iota
	Stream
)

func (a App) String() string {
	return NameOf(a)
}

// ParseApp maps a CLI value ("buddy" or "stream") to an App.
func ParseApp(s string) (App, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buddy", strings.ToLower(NameOf(Buddy)):
		return Buddy, nil
	case "stream", strings.ToLower(NameOf(Stream)):
		return Stream, nil
	}

	return 0, fmt.Errorf("unknown app %q", s)
}

// NameOf returns the display name of app.
func NameOf(app App) string {
	switch app {
	case Buddy:
		return "MoonDeckBuddy"
	case Stream:
		return "MoonDeckStream"
	default:
		return fmt.Sprintf("App(%d)", int(app))
	}
}

type AppMetadata struct {
	app App
}

func New(app App) *AppMetadata {
	return &AppMetadata{app: app}
}

func (me *AppMetadata) App() App {
	return me.app
}

func (me *AppMetadata) AppName() string {
	return NameOf(me.app)
}

// NameOf is the method form of the package level NameOf.
func (me *AppMetadata) NameOf(app App) string {
	return NameOf(app)
}

func (me *AppMetadata) LogDir() string {
	return filepath.Join(logHome(), me.AppName())
}

func (me *AppMetadata) LogName() string {
	return strings.ToLower(me.AppName()) + ".log"
}

func (me *AppMetadata) LogPath() string {
	return filepath.Join(me.LogDir(), me.LogName())
}

func (me *AppMetadata) SettingsDir() string {
	return filepath.Join(settingsHome(), me.AppName())
}

func (me *AppMetadata) SettingsName() string {
	return "settings.json"
}

func (me *AppMetadata) SettingsPath() string {
	return filepath.Join(me.SettingsDir(), me.SettingsName())
}

func (me *AppMetadata) AutoStartDir() string {
	return autoStartDir()
}

func (me *AppMetadata) AutoStartName() string {
	return autoStartName(me.AppName())
}

func (me *AppMetadata) AutoStartPath() string {
	dir := me.AutoStartDir()
	if dir == "" {
		return ""
	}

	return filepath.Join(dir, me.AutoStartName())
}

// AutoStartExec is the command line the autostart entry runs.
func (me *AppMetadata) AutoStartExec() string {
	return autoStartExec()
}

// DefaultSteamExecutable is where the Steam client is usually installed.
func (me *AppMetadata) DefaultSteamExecutable() string {
	return defaultSteamExecutable
}
