package validate

import (
	"fmt"

	"github.com/specialistvlad/argbox/internal/model"
	"github.com/specialistvlad/argbox/internal/resolver"
)

// DefinitionSource lists the registered mandatory definitions.
// *registry.Registry satisfies it.
type DefinitionSource interface {
	Mandatory() []model.Definition
}

// Options control the optional checks.
type Options struct {
	// ForbidLeftovers reports every unmatched token as an error.
	ForbidLeftovers bool
}

// Check is one validation stage. It appends its findings to errs.
type Check func(errs []string, defs DefinitionSource, res *resolver.Result) []string

// Run executes the mandatory, value and (optionally) leftover checks in that
// order and returns every message produced.
func Run(defs DefinitionSource, res *resolver.Result, opts Options) []string {
	checks := []Check{CheckMandatory, CheckValues}
	if opts.ForbidLeftovers {
		checks = append(checks, CheckLeftovers)
	}

	var errs []string
	for _, check := range checks {
		errs = check(errs, defs, res)
	}
	return errs
}

// CheckMandatory reports each mandatory definition missing from res, in name
// order.
func CheckMandatory(errs []string, defs DefinitionSource, res *resolver.Result) []string {
	for _, def := range defs.Mandatory() {
		if !res.Has(def.Name) {
			errs = append(errs, fmt.Sprintf("argument %s is required", def.Name))
		}
	}
	return errs
}

// CheckValues validates the value of every matched value-requiring argument,
// in result order. Flags are skipped and any value they carry is ignored.
func CheckValues(errs []string, _ DefinitionSource, res *resolver.Result) []string {
	for _, p := range res.Parsed() {
		def := p.Definition
		if def.ValueNotRequired {
			continue
		}
		if !p.HasValue {
			errs = append(errs, fmt.Sprintf("argument %s has no value", def.Name))
			continue
		}
		if !def.Accepts(p.Value) {
			errs = append(errs, fmt.Sprintf("value %s for argument %s is not valid", p.Value, def.Name))
		}
	}
	return errs
}

// CheckLeftovers reports each unmatched token.
func CheckLeftovers(errs []string, _ DefinitionSource, res *resolver.Result) []string {
	for _, token := range res.Leftovers() {
		errs = append(errs, fmt.Sprintf("token %s was not used", token))
	}
	return errs
}
