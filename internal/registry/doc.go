// Package registry owns the set of argument definitions a program accepts.
//
// The Registry enforces uniqueness when definitions are registered: no two
// definitions may share a name, a short call or a long call. A rejected
// registration leaves the registry untouched. The registry also renders the
// help manual and answers token lookups for the resolver.
//
// Definitions can be registered from Go code or loaded from HCL manifests.
// Both paths go through Register, so the same invariants apply.
package registry
