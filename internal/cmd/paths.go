package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

type PathsEntry struct {
	AppName         string `json:"appName"`
	LogDir          string `json:"logDir"`
	LogName         string `json:"logName"`
	LogPath         string `json:"logPath"`
	SettingsDir     string `json:"settingsDir"`
	SettingsName    string `json:"settingsName"`
	SettingsPath    string `json:"settingsPath"`
	AutoStartDir    string `json:"autoStartDir"`
	AutoStartName   string `json:"autoStartName"`
	AutoStartPath   string `json:"autoStartPath"`
	AutoStartExec   string `json:"autoStartExec"`
	SteamExecutable string `json:"steamExecutable"`
}

func currentPaths() PathsEntry {
	return PathsEntry{
		AppName:         meta.AppName(),
		LogDir:          meta.LogDir(),
		LogName:         meta.LogName(),
		LogPath:         meta.LogPath(),
		SettingsDir:     meta.SettingsDir(),
		SettingsName:    meta.SettingsName(),
		SettingsPath:    meta.SettingsPath(),
		AutoStartDir:    meta.AutoStartDir(),
		AutoStartName:   meta.AutoStartName(),
		AutoStartPath:   meta.AutoStartPath(),
		AutoStartExec:   meta.AutoStartExec(),
		SteamExecutable: k.SteamExec(meta.DefaultSteamExecutable()),
	}
}

func NewCmdPaths() *cobra.Command {
	var flags struct {
		json bool
	}

	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Print the log, settings and autostart locations of the app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entry := currentPaths()

			if flags.json {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetEscapeHTML(false)
				if isatty.IsTerminal(os.Stdout.Fd()) {
					encoder.SetIndent("", "  ")
				}

				if err := encoder.Encode(entry); err != nil {
					cmd.PrintErrf("failed to encode paths as json: %v\n", err)
					return ExitError{1}
				}

				return nil
			}

			printer, err := newTablePrinter(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			for _, row := range [][2]string{
				{"App", entry.AppName},
				{"Log", entry.LogPath},
				{"Settings", entry.SettingsPath},
				{"Autostart", entry.AutoStartPath},
				{"Autostart exec", entry.AutoStartExec},
				{"Steam", entry.SteamExecutable},
			} {
				printer.AddField(row[0])
				printer.AddField(row[1])
				printer.EndRow()
			}

			if err := printer.Render(); err != nil {
				return fmt.Errorf("failed to render paths: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.json, "json", false, "output as json")

	return cmd
}
