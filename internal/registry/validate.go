package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/argbox/internal/model"
)

// Reasons a registration is rejected. Use errors.Is against a
// *RegistrationError to test for one.
var (
	ErrBlankField         = errors.New("blank field")
	ErrShortCallPrefix    = errors.New("short call must start with a single '-'")
	ErrLongCallPrefix     = errors.New("long call must start with '--'")
	ErrDuplicateName      = errors.New("duplicate name")
	ErrDuplicateShortCall = errors.New("duplicate short call")
	ErrDuplicateLongCall  = errors.New("duplicate long call")
)

// RegistrationError explains why a definition was rejected.
type RegistrationError struct {
	Argument model.Definition
	Reason   error
	Message  string
}

// Error implements the error interface for RegistrationError.
func (e *RegistrationError) Error() string {
	return e.Message
}

// Unwrap exposes Reason to errors.Is.
func (e *RegistrationError) Unwrap() error {
	return e.Reason
}

func reject(def model.Definition, reason error, format string, args ...any) error {
	return &RegistrationError{Argument: def, Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// check runs the registration preconditions in order and returns the first
// failure.
func (r *Registry) check(def model.Definition) error {
	if blank := def.BlankFields(); len(blank) > 0 {
		return reject(def, ErrBlankField, "[%s] these fields must not be blank: %s", def.Name, strings.Join(blank, ", "))
	}
	if !strings.HasPrefix(def.ShortCall, "-") || strings.HasPrefix(def.ShortCall, "--") {
		return reject(def, ErrShortCallPrefix, "[%s] shortCall %s must start with a single '-'", def.Name, def.ShortCall)
	}
	if !strings.HasPrefix(def.LongCall, "--") {
		return reject(def, ErrLongCallPrefix, "[%s] longCall %s must start with '--'", def.Name, def.LongCall)
	}
	if r.hasIdentity(def) {
		return reject(def, ErrDuplicateName, "an argument named %s has already been registered", def.Name)
	}
	if owner, ok := r.byCall[def.ShortCall]; ok {
		return reject(def, ErrDuplicateShortCall, "an argument using the shortCall %s has already been registered (%s)", def.ShortCall, owner)
	}
	if owner, ok := r.byCall[def.LongCall]; ok {
		return reject(def, ErrDuplicateLongCall, "an argument using the longCall %s has already been registered (%s)", def.LongCall, owner)
	}
	return nil
}

// hasIdentity reports whether a registered definition shares def's identity.
func (r *Registry) hasIdentity(def model.Definition) bool {
	for _, existing := range r.byName {
		if existing.SameIdentity(def) {
			return true
		}
	}
	return false
}
