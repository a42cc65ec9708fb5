// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package resolver

import (
	"github.com/specialistvlad/argbox/internal/model"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Result is the outcome of one Resolve call. Parsed arguments keep the order
// in which their definitions were first met; leftovers keep encounter order.
type Result struct {
	parsed    *orderedmap.OrderedMap[string, model.ParsedArgument]
	leftovers []string
}

func newResult() *Result {
	return &Result{
		parsed: orderedmap.New[string, model.ParsedArgument](),
	}
}

func (r *Result) record(p model.ParsedArgument) {
	r.parsed.Set(p.Definition.Name, p)
}

func (r *Result) addLeftover(token string) {
	r.leftovers = append(r.leftovers, token)
}

// Get returns the parsed argument for the definition named name.
func (r *Result) Get(name string) (model.ParsedArgument, bool) {
	return r.parsed.Get(name)
}

// Lookup returns the parsed argument for def.
func (r *Result) Lookup(def model.Definition) (model.ParsedArgument, bool) {
	return r.Get(def.Name)
}

// Has reports whether the named definition was matched.
func (r *Result) Has(name string) bool {
	_, ok := r.parsed.Get(name)
	return ok
}

// Value returns the value of the named argument. ok is false when the
// argument was not matched or carried no value.
func (r *Result) Value(name string) (value string, ok bool) {
	p, found := r.parsed.Get(name)
	if !found || !p.HasValue {
		return "", false
	}
	return p.Value, true
}

// Parsed returns the parsed arguments in order.
func (r *Result) Parsed() []model.ParsedArgument {
	out := make([]model.ParsedArgument, 0, r.parsed.Len())
	for pair := r.parsed.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// Leftovers returns a copy of the unmatched tokens.
func (r *Result) Leftovers() []string {
	return append([]string(nil), r.leftovers...)
}

// Len returns the number of matched definitions.
func (r *Result) Len() int {
	return r.parsed.Len()
}
