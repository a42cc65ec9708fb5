// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package argerr defines the aggregated error returned when a command line
// fails to resolve. A single value carries every problem found so the user
// can fix them all in one pass.
package argerr
