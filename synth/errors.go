// SPDX-License-Identifier: MIT
// Package: shovelcat/synth
//
// errors.go — sentinel errors for the synth package.
//
// Error policy matches the rest of the module: sentinels only, each one
// wrapping shovelcat.ErrDomain, branch with errors.Is.

package synth

import (
	"fmt"

	"github.com/jpelchat/shovelcat"
)

// ErrNonFiniteFactor indicates a NaN or infinite factor value; a
// synthesized constant must be reproducible arithmetic over real inputs.
var ErrNonFiniteFactor = fmt.Errorf("synth: factor must be finite: %w", shovelcat.ErrDomain)

// ErrDegenerateReference indicates a reference angle whose ratio value is
// zero (for the cosine model: reference ≡ 90° mod 180°), which would
// divide the theta ratio by zero.
var ErrDegenerateReference = fmt.Errorf("synth: degenerate reference angle: %w", shovelcat.ErrDomain)

// ErrUnknownRatioModel indicates an Options.RatioModel name with no
// registered policy.
var ErrUnknownRatioModel = fmt.Errorf("synth: unknown ratio model: %w", shovelcat.ErrDomain)

// ErrNoFactors indicates a Synthesize call with an empty factor list;
// an empty product has no provenance to report.
var ErrNoFactors = fmt.Errorf("synth: at least one factor required: %w", shovelcat.ErrDomain)
