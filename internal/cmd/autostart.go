package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frogthefrog/moondeck-buddy/internal/autostart"
)

func NewCmdAutostart() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autostart",
		Short: "Manage the login autostart entry",
	}

	cmd.AddCommand(NewCmdAutostartEnable())
	cmd.AddCommand(NewCmdAutostartDisable())
	cmd.AddCommand(NewCmdAutostartStatus())
	cmd.AddCommand(NewCmdAutostartShow())

	return cmd
}

func NewCmdAutostartEnable() *cobra.Command {
	return &cobra.Command{
		Use:   "enable",
		Short: "Start the app on login",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := autostart.Enable(meta); err != nil {
				cmd.PrintErrln("failed to enable autostart:", err)
				return ExitError{1}
			}

			logger.Info("autostart enabled", "app", meta.AppName(), "path", meta.AutoStartPath())
			return nil
		},
	}
}

func NewCmdAutostartDisable() *cobra.Command {
	return &cobra.Command{
		Use:   "disable",
		Short: "Stop starting the app on login",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := autostart.Disable(meta); err != nil {
				cmd.PrintErrln("failed to disable autostart:", err)
				return ExitError{1}
			}

			logger.Info("autostart disabled", "app", meta.AppName(), "path", meta.AutoStartPath())
			return nil
		},
	}
}

func NewCmdAutostartStatus() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report whether the autostart entry is installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if autostart.Enabled(meta) {
				fmt.Fprintln(cmd.OutOrStdout(), "enabled:", meta.AutoStartPath())
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), "disabled")
			return nil
		},
	}
}

func NewCmdAutostartShow() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the autostart entry without installing it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entry := autostart.FromMetadata(meta)
			if entry.Exec == "" {
				cmd.PrintErrln("failed to render autostart entry:", errors.New("executable path is unknown"))
				return ExitError{1}
			}

			return autostart.Render(cmd.OutOrStdout(), entry)
		},
	}
}
