//go:build !linux && !windows

package apollo

import "github.com/frogthefrog/moondeck-buddy/internal/platform"

func defaultAppsPath() (string, error) {
	return "", platform.ErrUnsupported
}
