// Package apollo reads the list of apps registered with the Apollo
// streaming host.
package apollo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"unicode/utf8"
)

var (
	ErrEmptyPath = errors.New("apps file path is empty")
	ErrOpen      = errors.New("apps file could not be opened")
	ErrParse     = errors.New("apps file is not valid json")
	ErrSchema    = errors.New("apps file has no \"apps\" array")
)

// AppSet holds unique app names.
type AppSet map[string]struct{}

func (s AppSet) Add(name string) {
	s[name] = struct{}{}
}

func (s AppSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the names in lexical order.
func (s AppSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}

	slices.Sort(names)
	return names
}

type Apps struct {
	filepath string
	logger   *slog.Logger
}

// NewApps returns a loader for the given apps.json. An empty filepath
// selects the default location of the current platform.
func NewApps(filepath string, logger *slog.Logger) *Apps {
	if logger == nil {
		logger = slog.Default()
	}

	return &Apps{
		filepath: filepath,
		logger:   logger,
	}
}

// Path returns the file Load reads. It is empty when no default could be
// resolved.
func (me *Apps) Path() (string, error) {
	if me.filepath != "" {
		return me.filepath, nil
	}

	return defaultAppsPath()
}

// Load parses the apps file. A nil error always comes with a non-nil set,
// which is empty when the file lists no apps.
func (me *Apps) Load() (AppSet, error) {
	fp, err := me.Path()
	if err != nil {
		me.logger.Warn("could not resolve apollo apps file", "error", err)
		return nil, err
	}

	me.logger.Debug("selected filepath for apollo apps", "path", fp)
	if fp == "" {
		me.logger.Warn("filepath for apollo apps is empty")
		return nil, ErrEmptyPath
	}

	data, err := readFile(fp)
	if err != nil {
		me.logger.Warn("apps file could not be opened", "path", fp, "reason", err.Error())
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}

	if !utf8.Valid(data) {
		me.logger.Warn("failed to decode apps file", "path", fp, "reason", "invalid utf-8", "data", string(data))
		return nil, fmt.Errorf("%w: invalid utf-8", ErrParse)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		me.logger.Warn("failed to decode apps file", "path", fp, "reason", err.Error(), "data", string(data))
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	me.logger.Debug("apollo apps file content", "content", string(data))

	apps, ok := appsArray(doc)
	if !ok {
		me.logger.Warn("apps file could not be parsed", "path", fp)
		return nil, fmt.Errorf("%w: %s", ErrSchema, fp)
	}

	parsed := make(AppSet)
	if len(apps) == 0 {
		me.logger.Debug("there are no apollo apps to parse")
		return parsed, nil
	}

	for _, app := range apps {
		obj, ok := app.(map[string]any)
		if !ok {
			me.logger.Debug("skipping entry as it is not an object", "entry", app)
			continue
		}

		value, ok := obj["name"]
		if !ok {
			me.logger.Debug("skipping entry as it does not contain \"name\" field", "entry", obj)
			continue
		}

		name, ok := value.(string)
		if !ok {
			me.logger.Debug("skipping entry as the \"name\" field is not a string", "name", value)
			continue
		}

		parsed.Add(name)
	}

	me.logger.Debug("parsed apollo apps", "apps", parsed.Names())
	return parsed, nil
}

func readFile(fp string) ([]byte, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

func appsArray(doc any) ([]any, bool) {
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, false
	}

	value, ok := obj["apps"]
	if !ok {
		return nil, false
	}

	apps, ok := value.([]any)
	return apps, ok
}
