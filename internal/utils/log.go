package utils

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LogOptions struct {
	// Format is one of "pretty", "json", "text" or empty for automatic.
	Format string
	// Output is "stderr", "stdout", "file" or a file path.
	Output string
	// FilePath is used when Output is "file".
	FilePath string
	Level    slog.Leveler
}

func NewLogger(opts LogOptions) (*slog.Logger, error) {
	var output io.Writer
	var tty bool
	switch opts.Output {
	case "stdout":
		output = os.Stdout
		tty = isatty.IsTerminal(os.Stdout.Fd())
	case "stderr", "":
		output = os.Stderr
		tty = isatty.IsTerminal(os.Stderr.Fd())
	default:
		filename := opts.Output
		if filename == "file" {
			filename = opts.FilePath
		}

		if filename == "" {
			return nil, fmt.Errorf("log file path is empty")
		}

		output = &lumberjack.Logger{
			Filename:   filename,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		}
	}

	return newLogger(output, opts.Format, tty, opts.Level)
}

func newLogger(output io.Writer, format string, tty bool, level slog.Leveler) (*slog.Logger, error) {
	switch format {
	case "json":
		return slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: level})), nil
	case "text":
		return slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{Level: level})), nil
	case "pretty":
		return slog.New(tint.NewHandler(output, &tint.Options{Level: level})), nil
	case "":
		if tty {
			return slog.New(tint.NewHandler(output, &tint.Options{Level: level})), nil
		}

		return slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: level})), nil
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
}
