// Package platform reports whether the running OS is one the buddy
// tooling knows how to resolve paths for.
package platform

import (
	"fmt"
	"runtime"
)

var ErrUnsupported = fmt.Errorf("%s is not supported", runtime.GOOS)

func Supported(goos string) bool {
	switch goos {
	case "linux", "windows":
		return true
	default:
		return false
	}
}

func Check() error {
	if !Supported(runtime.GOOS) {
		return ErrUnsupported
	}

	return nil
}
