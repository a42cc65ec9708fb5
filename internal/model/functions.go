// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// ValueVariable is the only variable a validator expression may reference.
const ValueVariable = "value"

// StartsWithFunc reports whether a string begins with a prefix.
var StartsWithFunc = stringPredicate("prefix", strings.HasPrefix)

// EndsWithFunc reports whether a string ends with a suffix.
var EndsWithFunc = stringPredicate("suffix", strings.HasSuffix)

// StrContainsFunc reports whether a string contains a substring.
var StrContainsFunc = stringPredicate("substr", strings.Contains)

// MatchesFunc reports whether a string matches a regular expression. Unlike
// regex it returns a bool instead of failing when nothing matches.
var MatchesFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "pattern", Type: cty.String},
		{Name: "str", Type: cty.String},
	},
	Type: function.StaticReturnType(cty.Bool),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		re, err := regexp.Compile(args[0].AsString())
		if err != nil {
			return cty.UnknownVal(cty.Bool), function.NewArgErrorf(0, "invalid regular expression: %s", err)
		}
		return cty.BoolVal(re.MatchString(args[1].AsString())), nil
	},
})

// OneOfFunc reports whether its first argument equals any of the others.
var OneOfFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "str", Type: cty.String},
	},
	VarParam: &function.Parameter{Name: "options", Type: cty.String},
	Type:     function.StaticReturnType(cty.Bool),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		s := args[0].AsString()
		for _, opt := range args[1:] {
			if opt.AsString() == s {
				return cty.True, nil
			}
		}
		return cty.False, nil
	},
})

// IsIntFunc reports whether a string is a base-10 integer.
var IsIntFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "str", Type: cty.String},
	},
	Type: function.StaticReturnType(cty.Bool),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		_, err := strconv.ParseInt(args[0].AsString(), 10, 64)
		return cty.BoolVal(err == nil), nil
	},
})

func stringPredicate(second string, fn func(s, arg string) bool) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "str", Type: cty.String},
			{Name: second, Type: cty.String},
		},
		Type: function.StaticReturnType(cty.Bool),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			return cty.BoolVal(fn(args[0].AsString(), args[1].AsString())), nil
		},
	})
}

// ValidatorFunctions is the function table available to validator
// expressions in manifests.
func ValidatorFunctions() map[string]function.Function {
	return map[string]function.Function{
		"upper":       stdlib.UpperFunc,
		"lower":       stdlib.LowerFunc,
		"strlen":      stdlib.StrlenFunc,
		"substr":      stdlib.SubstrFunc,
		"trimspace":   stdlib.TrimSpaceFunc,
		"trimprefix":  stdlib.TrimPrefixFunc,
		"trimsuffix":  stdlib.TrimSuffixFunc,
		"replace":     stdlib.ReplaceFunc,
		"regex":       stdlib.RegexFunc,
		"parseint":    stdlib.ParseIntFunc,
		"startswith":  StartsWithFunc,
		"endswith":    EndsWithFunc,
		"strcontains": StrContainsFunc,
		"matches":     MatchesFunc,
		"oneof":       OneOfFunc,
		"isint":       IsIntFunc,
	}
}

// validatorEvalContext binds value for one evaluation of a validator.
func validatorEvalContext(value cty.Value) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{ValueVariable: value},
		Functions: ValidatorFunctions(),
	}
}

// evalValidator evaluates expr against value. A non-bool or null result is an
// error.
func evalValidator(expr hcl.Expression, value string) (bool, error) {
	v, diags := expr.Value(validatorEvalContext(cty.StringVal(value)))
	if diags.HasErrors() {
		return false, diags
	}
	if v.IsNull() || !v.IsKnown() || !v.Type().Equals(cty.Bool) {
		return false, fmt.Errorf("validator produced %s, want bool", v.Type().FriendlyName())
	}
	return v.True(), nil
}
