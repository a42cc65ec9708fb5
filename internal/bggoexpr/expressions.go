// Package bggoexpr inspects HCL expressions without evaluating them. The
// manifest loader uses it to reject validator expressions that reference
// unknown variables or call functions that are not available.
package bggoexpr

import (
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
)

// TraversalKey generates a stable, canonical string representation for an hcl.Traversal,
// suitable for use as a map key.
func TraversalKey(t hcl.Traversal) string {
	// e.g., value, var.foo[0].bar
	return string(hclwrite.TokensForTraversal(t).Bytes())
}

// Analysis lists what a set of expressions depends on.
type Analysis struct {
	// References are unique variable traversals, sorted by TraversalKey.
	References []hcl.Traversal

	// Functions are unique called function names, sorted.
	Functions []string
}

// RootNames returns the unique root variable names, sorted.
func (a Analysis) RootNames() []string {
	seen := make(map[string]struct{})
	for _, t := range a.References {
		seen[t.RootName()] = struct{}{}
	}
	return sortedKeys(seen)
}

// Analyze walks the expressions and collects their variable references and
// function calls. Nil expressions are ignored.
func Analyze(exprs ...hcl.Expression) Analysis {
	traversals := make(map[string]hcl.Traversal)
	functions := make(map[string]struct{})

	for _, expr := range exprs {
		if expr == nil {
			continue
		}

		for _, traversal := range expr.Variables() {
			traversals[TraversalKey(traversal)] = traversal
		}

		// Variables() does not report function calls, so walk the syntax tree.
		if syntaxExpr, ok := expr.(hclsyntax.Expression); ok {
			hclsyntax.VisitAll(syntaxExpr, func(node hclsyntax.Node) hcl.Diagnostics {
				if call, ok := node.(*hclsyntax.FunctionCallExpr); ok {
					functions[call.Name] = struct{}{}
				}
				return nil
			})
		}
	}

	keys := make([]string, 0, len(traversals))
	for k := range traversals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	refs := make([]hcl.Traversal, 0, len(keys))
	for _, k := range keys {
		refs = append(refs, traversals[k])
	}

	return Analysis{References: refs, Functions: sortedKeys(functions)}
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
