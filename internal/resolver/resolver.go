// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package resolver

import (
	"github.com/specialistvlad/argbox/internal/model"
)

// Lookup finds the definition invoked by a token. *registry.Registry
// satisfies it.
type Lookup interface {
	Lookup(token string) (model.Definition, bool)
}

// Resolve matches tokens against lookup and returns a fresh Result.
//
// A token that invokes a value-requiring definition consumes the next token
// as its value when one exists. A flag, or a value-requiring argument at the
// end of the sequence, is recorded without a value; the missing value is
// reported later by validation. A definition matched twice keeps its last
// occurrence.
func Resolve(lookup Lookup, tokens []string) *Result {
	res := newResult()
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		def, ok := lookup.Lookup(token)
		if !ok {
			res.addLeftover(token)
			continue
		}

		if def.RequiresValue() && i+1 < len(tokens) {
			i++
			value := tokens[i]
			res.record(model.NewParsedArgument(def, token, &value))
			continue
		}
		res.record(model.NewParsedArgument(def, token, nil))
	}
	return res
}
