// Package validate checks a resolution result against the registry. Every
// check runs to completion and contributes its messages to one list; nothing
// short-circuits, so the caller can report all problems at once.
package validate
