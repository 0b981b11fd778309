//go:build windows

package autostart

import (
	"fmt"

	"github.com/frogthefrog/moondeck-buddy/internal/metadata"
	"github.com/frogthefrog/moondeck-buddy/internal/utils"
)

// Startup folder shortcuts are created by the installer.

func Enable(_ *metadata.AppMetadata) error {
	return fmt.Errorf("enabling autostart is not supported on Windows")
}

func Disable(_ *metadata.AppMetadata) error {
	return fmt.Errorf("disabling autostart is not supported on Windows")
}

func Enabled(meta *metadata.AppMetadata) bool {
	return utils.FileExists(meta.AutoStartPath())
}
