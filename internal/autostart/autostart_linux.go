//go:build linux

package autostart

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/frogthefrog/moondeck-buddy/internal/metadata"
	"github.com/frogthefrog/moondeck-buddy/internal/utils"
)

func Enable(meta *metadata.AppMetadata) error {
	entryPath := meta.AutoStartPath()
	if utils.FileExists(entryPath) {
		return ErrInstalled
	}

	if meta.AutoStartExec() == "" {
		return fmt.Errorf("failed to resolve executable for %s", meta.AppName())
	}

	var buf bytes.Buffer
	if err := Render(&buf, FromMetadata(meta)); err != nil {
		return fmt.Errorf("failed to render autostart entry: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(entryPath), 0o755); err != nil {
		return fmt.Errorf("failed to create autostart directory: %w", err)
	}

	if err := os.WriteFile(entryPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write autostart entry: %w", err)
	}

	return nil
}

func Disable(meta *metadata.AppMetadata) error {
	entryPath := meta.AutoStartPath()
	if !utils.FileExists(entryPath) {
		return ErrNotInstalled
	}

	if err := os.Remove(entryPath); err != nil {
		return fmt.Errorf("failed to remove autostart entry: %w", err)
	}

	return nil
}

func Enabled(meta *metadata.AppMetadata) bool {
	return utils.FileExists(meta.AutoStartPath())
}
