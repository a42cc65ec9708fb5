package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/argbox"
	"github.com/specialistvlad/argbox/internal/app"
	"github.com/specialistvlad/argbox/internal/cli"
)

// main is the entrypoint for the argbox command.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		reportError(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	application, err := app.NewApp(outW, errW, appConfig)
	if err != nil {
		return err
	}
	return application.Run(context.Background())
}

// reportError prints err for the user, one problem per line for resolution
// failures.
func reportError(w io.Writer, err error) {
	if argErr, ok := argbox.AsError(err); ok {
		fmt.Fprintln(w, argErr.Message)
		for _, msg := range argErr.Errors {
			fmt.Fprintf(w, "  - %s\n", msg)
		}
		return
	}
	fmt.Fprintln(w, err)
}
