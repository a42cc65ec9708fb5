// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the Go representation of argument declarations and
// of the arguments matched on a command line.
//
// # Core Concepts
//
//   - Definition: one declared argument. It carries the name, the short and
//     long invocation tokens, the help line, the mandatory and value-free
//     markers and an optional Validator. Identity is the name alone.
//
//   - ParsedArgument: a Definition matched while scanning a command line,
//     with the token that matched it and the value that followed, if any.
//
//   - FSInfo: links a Definition loaded from a manifest back to its source
//     file so registration errors can point at it.
//
// # Manifests
//
// Definitions may be declared in HCL instead of Go:
//
//	argument "Name" {
//	  short     = "-nm"
//	  long      = "--name"
//	  help      = "The user name."
//	  mandatory = true
//	  validate  = startswith(value, "B")
//	}
//
// ParseManifestFile decodes these blocks. The validate expression is checked
// when the file is parsed: it may reference only the value variable and call
// only the functions returned by ValidatorFunctions, and it must produce a
// bool. At resolve time it is evaluated with value bound to the candidate.
package model
