// File: normalize.go
// Title: Propagation and Normalization Rule
// Description: Implements the single propagation rule applied at every owning
//              boundary: failures of a known kind pass through unchanged,
//              while unrecognized errors are wrapped exactly once into the
//              Application kind with the original description embedded and the
//              cause preserved for errors.Is / errors.As. A known kind is
//              never downgraded to Application.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-08
// Modified: 2025-03-08
//
// Change History:
// - 2025-03-08 v0.1.0: Initial implementation of the normalization rule

package failure

import (
	"errors"
	"fmt"
)

// Ensure converts any error to a *Failure.
//
// Behavior:
//   - nil input => nil output
//   - err already carries a *Failure => returned as-is (same pointer, no
//     re-wrap, code and trace intact)
//   - otherwise => wrapped into an Application failure whose message embeds
//     the original error's textual form and whose cause is err
func Ensure(err error) *Failure {
	if err == nil {
		return nil
	}

	if f, ok := As(err); ok {
		return f
	}

	return NewApplication(
		fmt.Sprintf("unhandled error: %v", err),
		WithCause(err),
	)
}

// KindOf returns the kind of the failure carried by err, if any
func KindOf(err error) (Kind, bool) {
	f, ok := As(err)
	if !ok {
		return KindApplication, false
	}
	return f.kind, true
}

// IsKind reports whether err carries a failure of the given kind. Matching is
// family-aware: a Server, Connection or Timeout failure matches KindNetwork.
func IsKind(err error, kind Kind) bool {
	f, ok := As(err)
	if !ok {
		return false
	}
	return f.kind == kind || f.kind.Family() == kind
}

// As extracts the *Failure carried by err, if any. A typed-nil *Failure
// stored in an error value satisfies errors.As but carries no kind, code or
// message; it is treated as outside the taxonomy so callers never receive a
// nil pointer alongside ok == true.
func As(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) && f != nil {
		return f, true
	}
	return nil, false
}
