// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package resolver matches a raw token sequence against registered argument
// definitions. It walks the tokens left to right with one token of
// lookahead, records a ParsedArgument per matched definition and collects
// the tokens nothing claimed. It performs no validation; see package
// validate.
package resolver
