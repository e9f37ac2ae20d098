// SPDX-License-Identifier: MIT
// Package: shovelcat/spoke
//
// errors.go — sentinel errors for the spoke package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Every sentinel wraps shovelcat.ErrDomain.
//   - Functions MUST NOT panic; all validation is returned as errors.

package spoke

import (
	"fmt"

	"github.com/jpelchat/shovelcat"
)

// ErrBendOutOfRange indicates a bend angle outside [0°, 180°] or a
// non-finite angle.
var ErrBendOutOfRange = fmt.Errorf("spoke: bend angle out of [0,180] degrees: %w", shovelcat.ErrDomain)

// ErrUnknownAxis indicates an Axis value outside {AxisX, AxisY, AxisZ}.
var ErrUnknownAxis = fmt.Errorf("spoke: unknown axis: %w", shovelcat.ErrDomain)

// ErrUnknownCostModel indicates an Options.CostModel name with no
// registered policy.
var ErrUnknownCostModel = fmt.Errorf("spoke: unknown cost model: %w", shovelcat.ErrDomain)
