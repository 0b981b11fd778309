package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/frogthefrog/moondeck-buddy/internal/build"
	"github.com/frogthefrog/moondeck-buddy/internal/metadata"
	"github.com/frogthefrog/moondeck-buddy/internal/platform"
	"github.com/frogthefrog/moondeck-buddy/internal/utils"
)

type ExitError struct {
	Code int
}

func (e ExitError) Error() string {
	return fmt.Sprintf("exit with code %d", e.Code)
}

const dotenvName = "buddy.env"

var (
	k      = utils.NewConfig()
	meta   = metadata.New(metadata.Buddy)
	logger = slog.Default()
)

var envProvider = env.ProviderWithValue("BUDDY_", ".", func(s string, v string) (string, interface{}) {
	if v == "" {
		return "", nil
	}

	switch s {
	case "BUDDY_APP":
		return "app", v
	case "BUDDY_APPS_FILE":
		return "apollo.apps", v
	case "BUDDY_STEAM_EXEC":
		return "steam.exec", v
	case "BUDDY_LOG_FORMAT":
		return "log.format", v
	case "BUDDY_LOG_OUTPUT":
		return "log.output", v
	}

	return "", nil
})

var flagKeys = map[string]string{
	"app":        "app",
	"apps-file":  "apollo.apps",
	"steam-exec": "steam.exec",
	"log-format": "log.format",
	"log-output": "log.output",
}

func flagProvider(flags *pflag.FlagSet) *posflag.Posflag {
	return posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return "", nil
		}

		return key, f.Value.String()
	})
}

// loadConfig layers defaults, the settings file of the selected app, the
// dotenv file next to it, env and flags.
func loadConfig(flags *pflag.FlagSet) error {
	k.Reset()
	_ = k.Load(confmap.Provider(utils.Defaults, "."), nil)
	_ = k.Load(envProvider, nil)
	_ = k.Load(flagProvider(flags), nil)

	app, err := metadata.ParseApp(k.String("app"))
	if err != nil {
		return err
	}
	meta = metadata.New(app)

	if dotenvPath := filepath.Join(meta.SettingsDir(), dotenvName); utils.FileExists(dotenvPath) {
		if err := godotenv.Load(dotenvPath); err != nil {
			return fmt.Errorf("could not read %s: %w", dotenvPath, err)
		}
	}

	configPath := utils.FindConfigPath(meta.SettingsDir(), meta.SettingsName())
	if utils.FileExists(configPath) {
		if err := k.Load(file.Provider(configPath), utils.ConfigParser()); err != nil {
			return fmt.Errorf("could not read %s: %w", configPath, err)
		}
	}

	_ = k.Load(envProvider, nil)
	_ = k.Load(flagProvider(flags), nil)

	return nil
}

func NewCmdRoot() *cobra.Command {
	var flags struct {
		verbose bool
	}

	rootCmd := &cobra.Command{
		Use:           "buddy",
		Short:         "Inspect MoonDeck Buddy paths and Apollo apps",
		Version:       build.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := platform.Check(); err != nil {
				return err
			}

			if err := loadConfig(cmd.Root().PersistentFlags()); err != nil {
				return err
			}

			level := slog.LevelInfo
			if flags.verbose {
				level = slog.LevelDebug
			}

			l, err := utils.NewLogger(utils.LogOptions{
				Format:   k.String("log.format"),
				Output:   k.String("log.output"),
				FilePath: meta.LogPath(),
				Level:    level,
			})
			if err != nil {
				return err
			}

			logger = l
			return nil
		},
	}

	rootCmd.PersistentFlags().String("app", "", "The app to resolve metadata for (buddy or stream)")
	rootCmd.PersistentFlags().String("apps-file", "", "Path to the Apollo apps.json")
	rootCmd.PersistentFlags().String("steam-exec", "", "Path to the Steam executable")
	rootCmd.PersistentFlags().String("log-format", "", "Log format (pretty, json or text)")
	rootCmd.PersistentFlags().String("log-output", "", "Log output (stderr, stdout, file or a path)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logs")

	_ = rootCmd.RegisterFlagCompletionFunc("app", completeApp)
	_ = rootCmd.RegisterFlagCompletionFunc("log-format", cobra.FixedCompletions([]string{"pretty", "json", "text"}, cobra.ShellCompDirectiveNoFileComp))

	rootCmd.AddCommand(NewCmdApps())
	rootCmd.AddCommand(NewCmdPaths())
	rootCmd.AddCommand(NewCmdAutostart())
	rootCmd.AddCommand(NewCmdConfig())

	return rootCmd
}

func completeApp(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{
		"buddy\t" + metadata.NameOf(metadata.Buddy),
		"stream\t" + metadata.NameOf(metadata.Stream),
	}, cobra.ShellCompDirectiveNoFileComp
}
