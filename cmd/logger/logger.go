// Package logger owns the process-wide logger of the sendtokens command. It is
// configured by the --log-* flags and attached to the command context in
// PreRunESetup.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"

	"github.com/pokt-network/sendtokens/cmd/flags"
	"github.com/pokt-network/sendtokens/pkg/polylog"
	"github.com/pokt-network/sendtokens/pkg/polylog/polyzap"
	"github.com/pokt-network/sendtokens/pkg/polylog/polyzero"
)

const (
	BackendZerolog = "zerolog"
	BackendZap     = "zap"

	FormatText = "text"
	FormatJSON = "json"
)

var (
	// LogLevel is the level of the logger built by PreRunESetup.
	LogLevel = flags.DefaultLogLevel
	// LogOutput is a file path, or "-" for stderr.
	LogOutput = flags.DefaultLogOutput
	// LogFormat is either FormatText or FormatJSON.
	LogFormat = flags.DefaultLogFormat
	// LogBackend is either BackendZerolog or BackendZap.
	LogBackend = flags.DefaultLogBackend

	// Logger is the process logger. It is usable before PreRunESetup runs.
	Logger = polylog.DefaultContextLogger

	// logFile is the --log-output file opened by PreRunESetup, if any.
	logFile *os.File
)

// AddFlags registers the --log-* flags on flagSet.
func AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&LogLevel, flags.FlagLogLevel, flags.DefaultLogLevel, flags.FlagLogLevelUsage)
	flagSet.StringVar(&LogOutput, flags.FlagLogOutput, flags.DefaultLogOutput, flags.FlagLogOutputUsage)
	flagSet.StringVar(&LogFormat, flags.FlagLogFormat, flags.DefaultLogFormat, flags.FlagLogFormatUsage)
	flagSet.StringVar(&LogBackend, flags.FlagLogBackend, flags.DefaultLogBackend, flags.FlagLogBackendUsage)
}

// PreRunESetup builds Logger from the --log-* flags and attaches it to the
// command context. It is intended to be used as a cobra PersistentPreRunE.
func PreRunESetup(cmd *cobra.Command, _ []string) error {
	output, err := openOutput(LogOutput, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	Logger, err = NewLogger(LogBackend, LogLevel, LogFormat, output)
	if err != nil {
		return err
	}

	cmd.SetContext(Logger.WithContext(cmd.Context()))
	return nil
}

// PostRunTeardown flushes and closes the --log-output file, if one was
// opened. It is intended to be used as a cobra PersistentPostRun.
func PostRunTeardown(cmd *cobra.Command, _ []string) {
	if err := CloseOutput(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "closing log output: %s\n", err)
	}
}

// CloseOutput flushes and closes the --log-output file. Logger falls back to
// stderr. It is safe to call more than once.
func CloseOutput() error {
	if logFile == nil {
		return nil
	}

	f := logFile
	logFile = nil
	if stderrLogger, err := NewLogger(LogBackend, LogLevel, LogFormat, os.Stderr); err == nil {
		Logger = stderrLogger
	}

	return multierr.Append(f.Sync(), f.Close())
}

// NewLogger builds a logger with the given backend, level and format which
// writes to output.
func NewLogger(backend, level, format string, output io.Writer) (polylog.Logger, error) {
	var textFormat bool
	switch format {
	case FormatText:
		textFormat = true
	case FormatJSON:
	default:
		return nil, flags.ErrFlagInvalidValue.Wrapf("--%s: expected %q or %q, got %q", flags.FlagLogFormat, FormatText, FormatJSON, format)
	}

	switch backend {
	case BackendZerolog:
		lvl, err := polyzero.ParseLevel(level)
		if err != nil {
			return nil, flags.ErrFlagInvalidValue.Wrapf("--%s: %s", flags.FlagLogLevel, err)
		}
		opts := []polylog.LoggerOption{polyzero.WithOutput(output), polyzero.WithLevel(lvl)}
		if textFormat {
			opts = append(opts, polyzero.WithTextFormat())
		}
		return polyzero.NewLogger(opts...), nil

	case BackendZap:
		lvl, err := polyzap.ParseLevel(level)
		if err != nil {
			return nil, flags.ErrFlagInvalidValue.Wrapf("--%s: %s", flags.FlagLogLevel, err)
		}
		opts := []polylog.LoggerOption{polyzap.WithOutput(output), polyzap.WithLevel(lvl)}
		if textFormat {
			opts = append(opts, polyzap.WithTextFormat())
		}
		return polyzap.NewLogger(opts...), nil

	default:
		return nil, flags.ErrFlagInvalidValue.Wrapf("--%s: expected %q or %q, got %q", flags.FlagLogBackend, BackendZerolog, BackendZap, backend)
	}
}

func openOutput(logOutput string, stderr io.Writer) (io.Writer, error) {
	if logOutput == flags.DefaultLogOutput {
		return stderr, nil
	}

	f, err := os.OpenFile(logOutput, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log output %q: %w", logOutput, err)
	}

	// A previous run in the same process may have left its file open.
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = f
	return f, nil
}
