// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package argbox

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/shlex"
	"github.com/specialistvlad/argbox/internal/argerr"
	"github.com/specialistvlad/argbox/internal/ctxlog"
	"github.com/specialistvlad/argbox/internal/model"
	"github.com/specialistvlad/argbox/internal/registry"
	"github.com/specialistvlad/argbox/internal/resolver"
	"github.com/specialistvlad/argbox/internal/validate"
)

type (
	// Definition declares one argument.
	Definition = model.Definition
	// Validator is a predicate over an argument value.
	Validator = model.Validator
	// ParsedArgument is one matched argument in a Result.
	ParsedArgument = model.ParsedArgument
	// Result is a validated resolution.
	Result = resolver.Result
	// Error is the aggregated resolution error.
	Error = argerr.Error
	// RegistrationError explains a rejected Register call.
	RegistrationError = registry.RegistrationError
)

// Registration failure reasons, for use with errors.Is.
var (
	ErrBlankField         = registry.ErrBlankField
	ErrShortCallPrefix    = registry.ErrShortCallPrefix
	ErrLongCallPrefix     = registry.ErrLongCallPrefix
	ErrDuplicateName      = registry.ErrDuplicateName
	ErrDuplicateShortCall = registry.ErrDuplicateShortCall
	ErrDuplicateLongCall  = registry.ErrDuplicateLongCall
)

// Built-in help tokens.
const (
	HelpShortCall = registry.HelpShortCall
	HelpLongCall  = registry.HelpLongCall
)

// ArgBox is the entry point: a registry plus the resolution policy.
type ArgBox struct {
	logger          *slog.Logger
	registry        *registry.Registry
	forbidLeftovers bool
}

// New returns an ArgBox whose registry holds only the built-in help
// argument.
func New(opts ...Option) *ArgBox {
	b := &ArgBox{
		logger:          ctxlog.Discard(),
		forbidLeftovers: true,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.registry = registry.NewWithLogger(b.logger)
	return b
}

// Register adds a definition. See registry.Registry.Register.
func (b *ArgBox) Register(def Definition) error {
	return b.registry.Register(def)
}

// MustRegister is Register that panics on error, for declarations fixed at
// compile time.
func (b *ArgBox) MustRegister(defs ...Definition) {
	for _, def := range defs {
		if err := b.Register(def); err != nil {
			panic(err)
		}
	}
}

// LoadManifests registers the arguments declared in HCL manifests under
// path. The logger is taken from ctx, falling back to the ArgBox logger.
func (b *ArgBox) LoadManifests(ctx context.Context, path string) error {
	if _, ok := ctxlog.Lookup(ctx); !ok {
		ctx = ctxlog.WithLogger(ctx, b.logger)
	}
	return b.registry.LoadManifests(ctx, path)
}

// Registry exposes the underlying registry.
func (b *ArgBox) Registry() *registry.Registry {
	return b.registry
}

// Help renders the help manual.
func (b *ArgBox) Help() string {
	return b.registry.Help()
}

// IsHelpRequested reports whether -hlp or --help appears in tokens. Check it
// before Resolve so an incomplete command line can still ask for help.
func (b *ArgBox) IsHelpRequested(tokens []string) bool {
	return b.registry.IsHelpRequested(tokens)
}

// Resolve matches and validates tokens using the ArgBox leftover policy.
func (b *ArgBox) Resolve(tokens []string) (*Result, error) {
	return b.ResolveForbidding(tokens, b.forbidLeftovers)
}

// ResolveForbidding matches and validates tokens. When forbidLeftovers is
// true, unmatched tokens are errors. On failure the returned error is an
// *Error carrying every problem found; the partial result is returned too.
func (b *ArgBox) ResolveForbidding(tokens []string, forbidLeftovers bool) (*Result, error) {
	res := resolver.Resolve(b.registry, tokens)
	b.logger.Debug("Resolved command line.", "tokens", len(tokens), "matched", res.Len(), "leftovers", len(res.Leftovers()))

	errs := validate.Run(b.registry, res, validate.Options{ForbidLeftovers: forbidLeftovers})
	if len(errs) > 0 {
		b.logger.Debug("Command line validation failed.", "errors", errs)
		return res, argerr.NewMultiple(summary(len(errs)), errs)
	}
	return res, nil
}

// ResolveString splits line the way a POSIX shell would and resolves the
// resulting tokens.
func (b *ArgBox) ResolveString(line string) (*Result, error) {
	tokens, err := shlex.Split(line)
	if err != nil {
		return nil, argerr.Newf("cannot split command line: %v", err)
	}
	return b.Resolve(tokens)
}

func summary(n int) string {
	if n == 1 {
		return "argument resolution failed with 1 error"
	}
	return fmt.Sprintf("argument resolution failed with %d errors", n)
}

// AsError extracts the aggregated *Error from err's chain.
func AsError(err error) (*Error, bool) {
	return argerr.As(err)
}
