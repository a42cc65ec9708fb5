// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package argbox

import "log/slog"

// Option configures an ArgBox.
type Option func(*ArgBox)

// WithLogger sets the logger used for debug events. The default discards.
func WithLogger(logger *slog.Logger) Option {
	return func(b *ArgBox) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// AllowLeftovers makes Resolve accept tokens that match no definition. By
// default they are reported as errors.
func AllowLeftovers() Option {
	return func(b *ArgBox) {
		b.forbidLeftovers = false
	}
}
