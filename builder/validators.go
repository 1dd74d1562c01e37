// SPDX-License-Identifier: MIT
// Package: homcount/builder
//
// validators.go — parameter checks shared by the constructors.

package builder

import "github.com/pkg/errors"

// validateMin returns ErrTooFewVertices when got < min.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return errors.Wrapf(ErrTooFewVertices, "%s: %s=%d < min=%d", method, name, got, min)
	}

	return nil
}

// validateProbability returns ErrInvalidProbability when p ∉ [0,1].
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return errors.Wrapf(ErrInvalidProbability, "%s: p=%.6f not in [%.1f,%.1f]",
			method, p, MinProbability, MaxProbability)
	}

	return nil
}
