// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file decodes argument declarations from HCL manifest files.
//
// Why declare arguments in HCL at all?
//
// Registering arguments in Go keeps the declarations next to the code that
// reads them, which suits small programs. Wrappers and launchers, however,
// often need to accept a command line on behalf of another program whose
// arguments change more often than the wrapper is rebuilt. A manifest lets
// those declarations live in a file, with validators written as expressions:
//
//	argument "Name" {
//	  short     = "-nm"
//	  long      = "--name"
//	  help      = "The user name."
//	  mandatory = true
//	  validate  = startswith(value, "B")
//	}
//
// Validator expressions are checked statically when the file is parsed, so a
// typo in a function name is reported at load time rather than as a confusing
// "value is not valid" message during resolution.
package model

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/argbox/internal/bggoexpr"
	"github.com/specialistvlad/argbox/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// manifestRootSchema defines the top-level structure of the file, expecting one or more 'argument' blocks.
type manifestRootSchema struct {
	Arguments []*hclArgument `hcl:"argument,block"`
}

// hclArgument represents a single 'argument' block in the HCL file for decoding purposes.
type hclArgument struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// argumentBodySchema is the HCL schema for the body of an `argument` block.
var argumentBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "short", Required: true},
		{Name: "long", Required: true},
		{Name: "help", Required: true},
		{Name: "mandatory"},
		{Name: "flag"},
		{Name: "validate"},
	},
}

// ParseManifestFile decodes an HCL file that contains one or more 'argument'
// blocks. Definitions are returned in file order.
func ParseManifestFile(ctx context.Context, hclFile *hcl.File, filePath string) ([]Definition, hcl.Diagnostics) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing argument definitions from file", "file_path", filePath)

	var allDiags hcl.Diagnostics
	if hclFile == nil {
		allDiags = append(allDiags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "HCL file is nil",
		})
		return nil, allDiags
	}

	schema := &manifestRootSchema{}
	diags := gohcl.DecodeBody(hclFile.Body, nil, schema)
	allDiags = append(allDiags, diags...)
	if diags.HasErrors() {
		return nil, allDiags
	}

	defs := make([]Definition, 0, len(schema.Arguments))
	seen := make(map[string]*hclArgument)

	for _, block := range schema.Arguments {
		if _, exists := seen[block.Name]; exists {
			missing := block.Body.MissingItemRange()
			allDiags = append(allDiags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate argument definition",
				Detail:   fmt.Sprintf("An argument named '%s' has already been defined in this file.", block.Name),
				Subject:  &missing,
			})
			continue
		}
		seen[block.Name] = block

		def, defDiags := decodeArgument(logger, block, filePath)
		allDiags = append(allDiags, defDiags...)
		if defDiags.HasErrors() {
			continue // Skip this argument but keep reporting problems in the others
		}
		defs = append(defs, def)
	}

	if allDiags.HasErrors() {
		return nil, allDiags
	}

	logger.Debug("Successfully parsed argument definitions", "count", len(defs))
	return defs, nil
}

func decodeArgument(logger *slog.Logger, block *hclArgument, filePath string) (Definition, hcl.Diagnostics) {
	var diags hcl.Diagnostics

	content, contentDiags := block.Body.Content(argumentBodySchema)
	diags = append(diags, contentDiags...)
	if contentDiags.HasErrors() {
		return Definition{}, diags
	}

	def := Definition{
		Name:   block.Name,
		Source: NewFSInfo(filePath),
	}

	for name, target := range map[string]any{
		"short":     &def.ShortCall,
		"long":      &def.LongCall,
		"help":      &def.HelpText,
		"mandatory": &def.Mandatory,
		"flag":      &def.ValueNotRequired,
	} {
		if attr, exists := content.Attributes[name]; exists {
			diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, target)...)
		}
	}

	if attr, exists := content.Attributes["validate"]; exists {
		checkDiags := CheckValidatorExpression(attr.Expr)
		diags = append(diags, checkDiags...)
		if !checkDiags.HasErrors() {
			def.Validator = ExpressionValidator(logger, def.Name, attr.Expr)
		}
	}

	return def, diags
}

// CheckValidatorExpression statically checks a validator expression: it may
// only reference the value variable, may only call known functions, and must
// produce a bool.
func CheckValidatorExpression(expr hcl.Expression) hcl.Diagnostics {
	var diags hcl.Diagnostics
	analysis := bggoexpr.Analyze(expr)

	for _, ref := range analysis.References {
		if ref.RootName() != ValueVariable {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid reference in validator",
				Detail:   fmt.Sprintf("Validators may only reference '%s', found '%s'.", ValueVariable, bggoexpr.TraversalKey(ref)),
				Subject:  ref.SourceRange().Ptr(),
			})
		}
	}

	funcs := ValidatorFunctions()
	for _, name := range analysis.Functions {
		if _, ok := funcs[name]; !ok {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unknown function in validator",
				Detail:   fmt.Sprintf("The function '%s' is not available to validators.", name),
				Subject:  expr.Range().Ptr(),
			})
		}
	}
	if diags.HasErrors() {
		return diags
	}

	// An unknown string stands in for every possible value.
	probe, probeDiags := expr.Value(validatorEvalContext(cty.UnknownVal(cty.String)))
	diags = append(diags, probeDiags...)
	if probeDiags.HasErrors() {
		return diags
	}
	if !probe.Type().Equals(cty.Bool) && !probe.Type().Equals(cty.DynamicPseudoType) {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid validator type",
			Detail:   fmt.Sprintf("A validator must be a bool expression, this one produces %s.", probe.Type().FriendlyName()),
			Subject:  expr.Range().Ptr(),
		})
	}
	return diags
}

// ExpressionValidator wraps a checked expression as a Validator. Evaluation
// errors are logged and reject the value.
func ExpressionValidator(logger *slog.Logger, argName string, expr hcl.Expression) Validator {
	if logger == nil {
		logger = ctxlog.Discard()
	}
	return func(value string) bool {
		ok, err := evalValidator(expr, value)
		if err != nil {
			logger.Warn("Validator evaluation failed, rejecting value.", "argument", argName, "value", value, "error", err)
			return false
		}
		return ok
	}
}
