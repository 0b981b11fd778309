package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/cli/go-gh/v2/pkg/tableprinter"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/frogthefrog/moondeck-buddy/internal/apollo"
	"github.com/frogthefrog/moondeck-buddy/internal/watcher"
)

func NewCmdApps() *cobra.Command {
	var flags struct {
		json  bool
		watch bool
	}

	cmd := &cobra.Command{
		Use:     "apps",
		Short:   "List the apps registered in Apollo",
		Aliases: []string{"list", "ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			apps := apollo.NewApps(k.AppsFile(), logger)

			printApps := func() error {
				set, err := apps.Load()
				if err != nil {
					cmd.PrintErrln("failed to load apps:", err)
					return ExitError{1}
				}

				if flags.json {
					return printAppsJSON(cmd.OutOrStdout(), set)
				}

				return printAppsTable(cmd.OutOrStdout(), set)
			}

			if !flags.watch {
				return printApps()
			}

			appsPath, err := apps.Path()
			if err != nil {
				cmd.PrintErrln("failed to resolve apps file:", err)
				return ExitError{1}
			}

			if appsPath == "" {
				cmd.PrintErrln("failed to resolve apps file:", apollo.ErrEmptyPath)
				return ExitError{1}
			}

			_ = printApps()

			w := watcher.NewWatcher(appsPath, func() {
				logger.Info("apps file changed", "path", appsPath)
				_ = printApps()
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			go func() {
				<-ctx.Done()
				w.Stop()
			}()

			if err := w.Start(); err != nil {
				return fmt.Errorf("failed to watch %s: %w", appsPath, err)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.json, "json", false, "output as json")
	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "reload when the apps file changes")

	return cmd
}

func printAppsJSON(w io.Writer, set apollo.AppSet) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if isatty.IsTerminal(os.Stdout.Fd()) {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(set.Names()); err != nil {
		return fmt.Errorf("failed to encode apps as json: %w", err)
	}

	return nil
}

func printAppsTable(w io.Writer, set apollo.AppSet) error {
	if len(set) == 0 {
		fmt.Fprintln(w, "No apps found")
		return nil
	}

	printer, err := newTablePrinter(w)
	if err != nil {
		return err
	}

	printer.AddHeader([]string{"Name"})
	for _, name := range set.Names() {
		printer.AddField(name)
		printer.EndRow()
	}

	return printer.Render()
}

func newTablePrinter(w io.Writer) (tableprinter.TablePrinter, error) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return tableprinter.New(w, false, 0), nil
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to get terminal size: %w", err)
	}

	return tableprinter.New(w, true, width), nil
}
