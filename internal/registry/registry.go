package registry

import (
	"log/slog"
	"slices"

	"github.com/specialistvlad/argbox/internal/ctxlog"
	"github.com/specialistvlad/argbox/internal/model"
)

// Built-in help argument.
const (
	HelpName      = "HELP"
	HelpShortCall = "-hlp"
	HelpLongCall  = "--help"
	HelpText      = "If present on the command line, the program will print out the help manual and exit. #helpception"
)

// HelpDefinition returns the definition installed by New.
func HelpDefinition() model.Definition {
	return model.Definition{
		Name:             HelpName,
		ShortCall:        HelpShortCall,
		LongCall:         HelpLongCall,
		HelpText:         HelpText,
		ValueNotRequired: true,
	}
}

// Registry holds the registered definitions for a single program.
type Registry struct {
	logger *slog.Logger

	// byName holds every definition, keyed by its identity.
	byName map[string]model.Definition

	// byCall indexes short and long calls to the owning definition's name.
	byCall map[string]string
}

// New creates a registry containing only the built-in help definition.
func New() *Registry {
	return NewWithLogger(nil)
}

// NewWithLogger is New with a logger for registration events. A nil logger
// discards.
func NewWithLogger(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = ctxlog.Discard()
	}
	r := &Registry{
		logger: logger,
		byName: make(map[string]model.Definition),
		byCall: make(map[string]string),
	}
	if err := r.Register(HelpDefinition()); err != nil {
		// The registry is empty, so this can only be a broken HelpDefinition.
		panic(err)
	}
	return r
}

// Register adds def to the registry. It returns a *RegistrationError if def
// is malformed or collides with an existing definition; in that case the
// registry is unchanged.
func (r *Registry) Register(def model.Definition) error {
	if err := r.check(def); err != nil {
		r.logger.Debug("Rejected argument registration.", "name", def.Name, "reason", err)
		return err
	}
	if def.Validator == nil {
		def.Validator = model.AcceptAll
	}
	r.byName[def.Name] = def
	r.byCall[def.ShortCall] = def.Name
	r.byCall[def.LongCall] = def.Name
	r.logger.Debug("Registered argument.", "name", def.Name, "short", def.ShortCall, "long", def.LongCall, "source", def.Source.String())
	return nil
}

// Lookup returns the definition invoked by token.
func (r *Registry) Lookup(token string) (model.Definition, bool) {
	name, ok := r.byCall[token]
	if !ok {
		return model.Definition{}, false
	}
	return r.byName[name], true
}

// Get returns the definition with the given name.
func (r *Registry) Get(name string) (model.Definition, bool) {
	def, ok := r.byName[name]
	return def, ok
}

// Definitions returns a copy of every definition, ordered by name.
func (r *Registry) Definitions() []model.Definition {
	defs := make([]model.Definition, 0, len(r.byName))
	for _, def := range r.byName {
		defs = append(defs, def)
	}
	model.SortByName(defs)
	return defs
}

// Mandatory returns the mandatory definitions, ordered by name.
func (r *Registry) Mandatory() []model.Definition {
	return slices.DeleteFunc(r.Definitions(), func(d model.Definition) bool { return !d.Mandatory })
}

// Len returns the number of registered definitions, help included.
func (r *Registry) Len() int {
	return len(r.byName)
}

// IsHelpRequested reports whether the built-in help token appears anywhere
// in tokens. It does not resolve or consume anything.
func (r *Registry) IsHelpRequested(tokens []string) bool {
	return slices.ContainsFunc(tokens, func(t string) bool {
		return t == HelpShortCall || t == HelpLongCall
	})
}
