//go:build !linux && !windows

package autostart

import (
	"github.com/frogthefrog/moondeck-buddy/internal/metadata"
	"github.com/frogthefrog/moondeck-buddy/internal/platform"
)

func Enable(_ *metadata.AppMetadata) error {
	return platform.ErrUnsupported
}

func Disable(_ *metadata.AppMetadata) error {
	return platform.ErrUnsupported
}

func Enabled(_ *metadata.AppMetadata) bool {
	return false
}
