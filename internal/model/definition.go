// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Definition, the declaration of a single command-line
// argument.
//
// Why is identity the name alone?
//
// A registry must reject a second declaration that reuses a name even when
// every other field differs. Comparing whole structs would let two
// declarations named "output" coexist as long as their help text differed,
// and the help manual would then list the same argument twice. SameIdentity
// is the comparison the registry uses; struct equality is never consulted.
package model

import (
	"sort"
	"strings"
)

// Validator is a predicate over an argument value. It is only consulted when
// a value is present on the command line.
type Validator func(value string) bool

// AcceptAll is the validator used when a definition does not provide one.
func AcceptAll(string) bool { return true }

// Definition declares one command-line argument.
type Definition struct {
	// Name is the display identifier, unique within a registry.
	Name string

	// ShortCall is the short invocation token, e.g. "-nm".
	ShortCall string

	// LongCall is the long invocation token, e.g. "--name".
	LongCall string

	// HelpText is the line shown in the help manual.
	HelpText string

	// Mandatory arguments must appear in every resolved command line.
	Mandatory bool

	// ValueNotRequired marks a flag: it never consumes the following token.
	ValueNotRequired bool

	// Validator checks the value. A nil Validator accepts every value.
	Validator Validator

	// Source is the manifest file the definition was loaded from, if any.
	Source *FSInfo
}

// Accepts reports whether value passes the definition's validator.
func (d Definition) Accepts(value string) bool {
	if d.Validator == nil {
		return AcceptAll(value)
	}
	return d.Validator(value)
}

// Matches reports whether token invokes this definition.
func (d Definition) Matches(token string) bool {
	return token == d.ShortCall || token == d.LongCall
}

// RequiresValue is the inverse of ValueNotRequired.
func (d Definition) RequiresValue() bool {
	return !d.ValueNotRequired
}

// SameIdentity reports whether two definitions share a name.
func (d Definition) SameIdentity(other Definition) bool {
	return d.Name == other.Name
}

// Calls returns the invocation tokens as "<short> | <long>".
func (d Definition) Calls() string {
	return d.ShortCall + " | " + d.LongCall
}

// BlankFields returns the names of required text fields that are empty or
// whitespace only, in declaration order.
func (d Definition) BlankFields() []string {
	var blank []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", d.Name},
		{"shortCall", d.ShortCall},
		{"longCall", d.LongCall},
		{"helpText", d.HelpText},
	} {
		if strings.TrimSpace(f.value) == "" {
			blank = append(blank, f.name)
		}
	}
	return blank
}

// SortByName orders definitions lexicographically by name, in place.
func SortByName(defs []Definition) {
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
}
