// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

// ParsedArgument associates a definition with the token that matched it and
// the value that followed, if any.
type ParsedArgument struct {
	Definition Definition

	// CommandArg is the literal token found on the command line.
	CommandArg string

	// Value is meaningful only when HasValue is true.
	Value    string
	HasValue bool
}

// NewParsedArgument records a match. A nil value means none was consumed.
func NewParsedArgument(def Definition, commandArg string, value *string) ParsedArgument {
	p := ParsedArgument{Definition: def, CommandArg: commandArg}
	if value != nil {
		p.Value = *value
		p.HasValue = true
	}
	return p
}

// Name is shorthand for p.Definition.Name.
func (p ParsedArgument) Name() string {
	return p.Definition.Name
}
