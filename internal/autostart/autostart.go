// Package autostart manages the login entry that starts an app.
package autostart

import (
	_ "embed"
	"errors"
	"io"
	"strings"
	"text/template"

	"github.com/frogthefrog/moondeck-buddy/internal/metadata"
)

var (
	ErrInstalled    = errors.New("autostart entry already installed")
	ErrNotInstalled = errors.New("autostart entry not installed")
)

//go:embed embed/autostart.desktop
var desktopEntryBytes []byte
var desktopEntry = template.Must(template.New("autostart").Funcs(template.FuncMap{
	"quote": quoteExec,
}).Parse(string(desktopEntryBytes)))

type Entry struct {
	Name    string
	Comment string
	Exec    string
	Icon    string
}

func FromMetadata(meta *metadata.AppMetadata) Entry {
	return Entry{
		Name:    meta.AppName(),
		Comment: "Start " + meta.AppName() + " on login",
		Exec:    meta.AutoStartExec(),
		Icon:    strings.ToLower(meta.AppName()),
	}
}

// Render writes e as an XDG desktop entry.
func Render(w io.Writer, e Entry) error {
	return desktopEntry.Execute(w, e)
}

// quoteExec applies the desktop entry quoting rules to a single argument.
func quoteExec(arg string) string {
	if !strings.ContainsAny(arg, " \t\n\"'\\><~|&;$*?#()`%") {
		return arg
	}

	r := strings.NewReplacer(`%`, `%%`, `\`, `\\\\`, `"`, `\\"`, "`", "\\\\`", `$`, `\\$`)
	return `"` + r.Replace(arg) + `"`
}
