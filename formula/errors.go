package formula

import "errors"

// ErrDuplicateName indicates NamedVar was called twice with the same name.
// This is a programmer error (an encoder bug), not a runtime condition, so
// Builder.NamedVar panics with this error rather than returning it.
var ErrDuplicateName = errors.New("formula: duplicate named variable")

// ErrUnknownName indicates Builder.Lookup was asked for a name that was
// never registered via NamedVar. Also a programmer error; panics.
var ErrUnknownName = errors.New("formula: unknown named variable")
