// SPDX-License-Identifier: MIT
// Package errs defines the error taxonomy shared by every homcount package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Call sites attach context with github.com/pkg/errors (Wrap/Wrapf), which
//     keeps the sentinel reachable through Unwrap.
//   - Nothing is retried automatically. InvalidArgument and InvalidState point
//     at malformed input or a malformed decomposition, Overflow at a numeric
//     limit, Cancelled at an expired context.
package errs

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument reports malformed sizes, zero-vertex graphs, a base or
	// digit count of zero, or an out-of-range position.
	ErrInvalidArgument = errors.New("homcount: invalid argument")

	// ErrInvalidState reports a broken structural invariant: re-introducing a
	// bag vertex, joining non-identical bags, evaluating a node whose children
	// are not done.
	ErrInvalidState = errors.New("homcount: invalid state")

	// ErrOverflow reports a count that does not fit in uint64.
	ErrOverflow = errors.New("homcount: count overflows uint64")

	// ErrCancelled reports that the context expired at a node boundary.
	ErrCancelled = errors.New("homcount: cancelled")
)

// Invalid wraps ErrInvalidArgument with a formatted call-site message.
func Invalid(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

// State wraps ErrInvalidState with a formatted call-site message.
func State(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidState, format, args...)
}

// Overflow wraps ErrOverflow with a formatted call-site message.
func Overflow(format string, args ...interface{}) error {
	return errors.Wrapf(ErrOverflow, format, args...)
}
