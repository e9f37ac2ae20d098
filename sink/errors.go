// SPDX-License-Identifier: MIT
// Package: shovelcat/sink
//
// errors.go — sentinel errors for the sink package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Every sentinel wraps shovelcat.ErrDomain, so the single
//     errors.Is(err, shovelcat.ErrDomain) check also matches.
//   - Functions MUST NOT panic; all validation is returned as errors.

package sink

import (
	"fmt"

	"github.com/jpelchat/shovelcat"
)

// ErrNegativeInjected indicates an injected error magnitude below zero.
// Usage: if errors.Is(err, sink.ErrNegativeInjected) { /* reject input */ }.
var ErrNegativeInjected = fmt.Errorf("sink: injected magnitude must be non-negative: %w", shovelcat.ErrDomain)

// ErrFractionOutOfRange indicates a drain fraction outside the closed
// interval [0,1].
var ErrFractionOutOfRange = fmt.Errorf("sink: drain fraction out of [0,1]: %w", shovelcat.ErrDomain)

// ErrNonFiniteInput indicates a NaN or infinite argument; the accounting
// identity cannot hold for non-finite magnitudes.
var ErrNonFiniteInput = fmt.Errorf("sink: input must be finite: %w", shovelcat.ErrDomain)

// ErrNegativeCapacity indicates an Accumulator constructed with a
// negative drain capacity.
var ErrNegativeCapacity = fmt.Errorf("sink: capacity must be non-negative: %w", shovelcat.ErrDomain)

// ErrNegativeIntake indicates an Intake with a negative component; waste
// amounts are magnitudes, never signed.
var ErrNegativeIntake = fmt.Errorf("sink: intake components must be non-negative: %w", shovelcat.ErrDomain)
