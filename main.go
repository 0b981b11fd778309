package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/frogthefrog/moondeck-buddy/internal/cmd"
)

func main() {
	root := cmd.NewCmdRoot()
	if err := root.Execute(); err != nil {
		var exitErr cmd.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}

		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
