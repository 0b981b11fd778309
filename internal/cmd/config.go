package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/frogthefrog/moondeck-buddy/internal/utils"
)

func NewCmdConfig() *cobra.Command {
	var flags struct {
		json bool
	}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Open the settings of the app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath := utils.FindConfigPath(meta.SettingsDir(), meta.SettingsName())
			if flags.json || !isatty.IsTerminal(os.Stdout.Fd()) {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetEscapeHTML(false)

				if isatty.IsTerminal(os.Stdout.Fd()) {
					encoder.SetIndent("", "  ")
				}

				if err := encoder.Encode(k.Raw()); err != nil {
					cmd.PrintErrf("failed to encode config: %v\n", err)
					return ExitError{1}
				}

				return nil
			}

			if err := os.MkdirAll(meta.SettingsDir(), 0o755); err != nil {
				cmd.PrintErrf("failed to create settings directory: %v\n", err)
				return ExitError{1}
			}

			editor := "vi"
			if editorEnv, ok := os.LookupEnv("EDITOR"); ok {
				editor = editorEnv
			}

			editCmd := editorCommand(runtime.GOOS, editor, configPath)

			editCmd.Stdout = os.Stdout
			editCmd.Stderr = os.Stderr
			editCmd.Stdin = os.Stdin

			if err := editCmd.Run(); err != nil {
				var exitErr *exec.ExitError
				if errors.As(err, &exitErr) {
					return ExitError{exitErr.ExitCode()}
				}

				return ExitError{1}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.json, "json", false, "print the merged settings as json")
	cmd.AddCommand(NewCmdConfigSet())
	cmd.AddCommand(NewCmdConfigPath())

	return cmd
}

// editorCommand runs $EDITOR through sh so it may carry arguments. Windows
// has no sh, so the editor is executed directly there.
func editorCommand(goos, editor, configPath string) *exec.Cmd {
	if goos == "windows" {
		return exec.Command(editor, configPath)
	}

	return exec.Command("sh", "-c", fmt.Sprintf("%s %q", editor, configPath))
}

func NewCmdConfigSet() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a value in the settings file",
		Args:  cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}

			var keys []string
			for key := range utils.Defaults {
				if key != "app" {
					keys = append(keys, key)
				}
			}

			return keys, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := utils.Defaults[args[0]]; !ok || args[0] == "app" {
				cmd.PrintErrf("unknown setting %q\n", args[0])
				return ExitError{1}
			}

			configPath := utils.FindConfigPath(meta.SettingsDir(), meta.SettingsName())
			if err := utils.SetKey(configPath, args[0], args[1]); err != nil {
				cmd.PrintErrf("failed to update settings: %v\n", err)
				return ExitError{1}
			}

			logger.Debug("updated settings", "path", configPath, "key", args[0])
			return nil
		},
	}
}

func NewCmdConfigPath() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the settings file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), utils.FindConfigPath(meta.SettingsDir(), meta.SettingsName()))
			return nil
		},
	}
}
