package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/shlex"
	"github.com/specialistvlad/argbox"
	"github.com/specialistvlad/argbox/internal/app"
)

// Exit codes of the argbox command.
const (
	ExitSuccess           = 0
	ExitResolutionFailure = 1
	ExitInvalidInvocation = 2
)

// TokenSeparator separates the command's own options from the command line
// to resolve.
const TokenSeparator = "--"

// Names of the command's own arguments.
const (
	argManifest       = "Manifest"
	argLogFormat      = "Log Format"
	argLogLevel       = "Log Level"
	argAllowLeftovers = "Allow Leftovers"
	argCommandLine    = "Command Line"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if _, ok := argbox.AsError(err); ok {
		return ExitResolutionFailure
	}
	return ExitInvalidInvocation
}

const usageHeader = `
argbox - resolve a command line against HCL argument manifests.

Usage:
  argbox -m <manifest> [options] -- [tokens...]
  argbox -m <manifest> -cl "<command line>"

Options:
`

// newOptionBox declares the command's own options.
func newOptionBox() *argbox.ArgBox {
	box := argbox.New()
	box.MustRegister(
		argbox.Definition{
			Name:      argManifest,
			ShortCall: "-m",
			LongCall:  "--manifest",
			HelpText:  "Path to a .hcl manifest file or a directory of manifests.",
			Mandatory: true,
			Validator: func(v string) bool { return strings.TrimSpace(v) != "" },
		},
		argbox.Definition{
			Name:      argLogFormat,
			ShortCall: "-lf",
			LongCall:  "--log-format",
			HelpText:  "Log output format. Options: 'text' or 'json'.",
			Validator: func(v string) bool { return slices.Contains(app.LogFormats, strings.ToLower(v)) },
		},
		argbox.Definition{
			Name:      argLogLevel,
			ShortCall: "-ll",
			LongCall:  "--log-level",
			HelpText:  "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.",
			Validator: func(v string) bool { return slices.Contains(app.LogLevels, strings.ToLower(v)) },
		},
		argbox.Definition{
			Name:             argAllowLeftovers,
			ShortCall:        "-al",
			LongCall:         "--allow-leftovers",
			HelpText:         "Accept tokens that match no declared argument.",
			ValueNotRequired: true,
		},
		argbox.Definition{
			Name:      argCommandLine,
			ShortCall: "-cl",
			LongCall:  "--command-line",
			HelpText:  "A quoted command line to resolve, split like a POSIX shell would.",
		},
	)
	return box
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	own, tokens := splitTokens(args)
	box := newOptionBox()

	usage := func() {
		fmt.Fprint(output, usageHeader)
		fmt.Fprint(output, box.Help())
	}

	if len(args) == 0 || box.IsHelpRequested(own) {
		slog.Debug("Help requested or no arguments, printing usage and exiting.")
		usage()
		return nil, true, nil
	}

	res, err := box.Resolve(own)
	if err != nil {
		return nil, false, &ExitError{Code: ExitInvalidInvocation, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	manifest, _ := res.Value(argManifest)
	logFormat, _ := res.Value(argLogFormat)
	logLevel, _ := res.Value(argLogLevel)

	if line, ok := res.Value(argCommandLine); ok {
		split, err := shlex.Split(line)
		if err != nil {
			return nil, false, &ExitError{Code: ExitInvalidInvocation, Message: fmt.Sprintf("cannot split command line: %v", err)}
		}
		tokens = append(split, tokens...)
	}

	config, err := app.NewConfig(app.Config{
		ManifestPath:    manifest,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
		ForbidLeftovers: !res.Has(argAllowLeftovers),
		Tokens:          tokens,
	})
	if err != nil {
		return nil, false, &ExitError{Code: ExitInvalidInvocation, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// splitTokens splits args at the first TokenSeparator.
func splitTokens(args []string) (own, tokens []string) {
	i := slices.Index(args, TokenSeparator)
	if i < 0 {
		return args, nil
	}
	return args[:i], args[i+1:]
}
