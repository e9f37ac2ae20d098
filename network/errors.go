// SPDX-License-Identifier: MIT
// Package: shovelcat/network
//
// errors.go — sentinel errors for the network package.
//
// Error policy matches the rest of the module: sentinels only, each one
// wrapping shovelcat.ErrDomain, branch with errors.Is.

package network

import (
	"fmt"

	"github.com/jpelchat/shovelcat"
)

// ErrNonPositiveDensity indicates a density ≤ 0 or non-finite; the
// network needs a strictly positive intersections-per-unit-length value.
var ErrNonPositiveDensity = fmt.Errorf("network: density must be positive and finite: %w", shovelcat.ErrDomain)

// ErrTooFewSides indicates a ring with fewer than 3 sides; a polygon
// needs at least a triangle.
var ErrTooFewSides = fmt.Errorf("network: ring needs at least 3 sides: %w", shovelcat.ErrDomain)

// ErrNonPositiveRadius indicates a ring radius ≤ 0 or non-finite.
var ErrNonPositiveRadius = fmt.Errorf("network: ring radius must be positive and finite: %w", shovelcat.ErrDomain)
