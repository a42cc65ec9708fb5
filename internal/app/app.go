package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/argbox"
	"github.com/specialistvlad/argbox/internal/ctxlog"
)

// App encapsulates the host program's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	box    *argbox.ArgBox
	config *Config
}

// NewApp is the constructor for the host program. Results go to outW and
// logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config) (*App, error) {
	logger, err := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	if err != nil {
		return nil, fmt.Errorf("failed to configure logger: %w", err)
	}
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		box:    argbox.New(argbox.WithLogger(logger)),
		config: cfg,
	}, nil
}

// Box returns the application's ArgBox. This is primarily for testing.
func (a *App) Box() *argbox.ArgBox {
	return a.box
}

// Run loads the manifests and resolves the configured tokens. A help request
// prints the manual and succeeds. A resolution failure is returned as an
// *argbox.Error after nothing has been printed.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	if err := a.box.LoadManifests(ctx, a.config.ManifestPath); err != nil {
		return fmt.Errorf("failed to load manifests: %w", err)
	}
	a.logger.Debug("Manifests loaded.", "arguments", a.box.Registry().Len())

	if a.box.IsHelpRequested(a.config.Tokens) {
		a.logger.Debug("Help requested, printing manual.")
		_, err := fmt.Fprint(a.outW, a.box.Help())
		return err
	}

	res, err := a.box.ResolveForbidding(a.config.Tokens, a.config.ForbidLeftovers)
	if err != nil {
		return err
	}

	return a.print(res)
}

func (a *App) print(res *argbox.Result) error {
	for _, p := range res.Parsed() {
		var err error
		if p.HasValue && !p.Definition.ValueNotRequired {
			_, err = fmt.Fprintf(a.outW, "%s = %s\n", p.Name(), p.Value)
		} else {
			_, err = fmt.Fprintf(a.outW, "%s\n", p.Name())
		}
		if err != nil {
			return err
		}
	}
	for _, token := range res.Leftovers() {
		if _, err := fmt.Fprintf(a.outW, "leftover: %s\n", token); err != nil {
			return err
		}
	}
	return nil
}
