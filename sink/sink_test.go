package sink_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpelchat/shovelcat"
	"github.com/jpelchat/shovelcat/sink"
)

// relTol is the documented conservation tolerance (the identity should in
// fact hold exactly; the tolerance guards the test, not the code).
const relTol = 1e-12

// TestDrain_Errors verifies that out-of-domain inputs return the matching
// sentinel and that every sentinel also matches shovelcat.ErrDomain.
func TestDrain_Errors(t *testing.T) {
	cases := []struct {
		name     string
		injected float64
		fraction float64
		err      error
	}{
		{"NegativeInjected", -0.1, 0.5, sink.ErrNegativeInjected},
		{"FractionBelowZero", 1.0, -0.01, sink.ErrFractionOutOfRange},
		{"FractionAboveOne", 1.0, 1.01, sink.ErrFractionOutOfRange},
		{"NaNInjected", math.NaN(), 0.5, sink.ErrNonFiniteInput},
		{"InfInjected", math.Inf(1), 0.5, sink.ErrNonFiniteInput},
		{"NaNFraction", 1.0, math.NaN(), sink.ErrNonFiniteInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sink.Drain(tc.injected, tc.fraction)
			assert.ErrorIs(t, err, tc.err)
			assert.ErrorIs(t, err, shovelcat.ErrDomain, "every sentinel must wrap ErrDomain")
		})
	}
}

// TestDrain_Conservation sweeps injected magnitudes and fractions and
// checks drained + residual == injected within 1e-12 relative tolerance.
func TestDrain_Conservation(t *testing.T) {
	injections := []float64{0, 1e-12, 0.0007, 0.37, 1, 3.14159, 1e6, 2.9979e8}
	fractions := []float64{0, 0.1, 1.0 / 3.0, 0.5, 0.9993081933, 0.999999, 1}

	for _, inj := range injections {
		for _, fr := range fractions {
			b, err := sink.Drain(inj, fr)
			require.NoError(t, err)

			sum := b.Drained + b.Residual
			if inj == 0 {
				assert.Equal(t, 0.0, sum)
				continue
			}
			assert.InEpsilon(t, inj, sum, relTol,
				"conservation failed for injected=%v fraction=%v", inj, fr)
		}
	}
}

// TestDrain_FullDrain checks that fraction 1.0 leaves no residual.
func TestDrain_FullDrain(t *testing.T) {
	for _, inj := range []float64{0, 0.0007, 1, 1e9} {
		b, err := sink.Drain(inj, 1.0)
		require.NoError(t, err)
		assert.Equal(t, 0.0, b.Residual, "injected=%v", inj)
		assert.Equal(t, inj, b.Drained)
	}
}

// TestDrain_NoDrain checks that fraction 0.0 leaves everything as residual.
func TestDrain_NoDrain(t *testing.T) {
	for _, inj := range []float64{0, 0.0007, 1, 1e9} {
		b, err := sink.Drain(inj, 0.0)
		require.NoError(t, err)
		assert.Equal(t, inj, b.Residual, "injected=%v", inj)
		assert.Equal(t, 0.0, b.Drained)
	}
}

// TestDrain_Deterministic verifies two identical calls produce identical
// budgets (statelessness).
func TestDrain_Deterministic(t *testing.T) {
	b1, err := sink.Drain(0.37, 0.75)
	require.NoError(t, err)
	b2, err := sink.Drain(0.37, 0.75)
	require.NoError(t, err)
	assert.Equal(t, b1, b2)
}

// TestNewAccumulator_Errors verifies capacity validation.
func TestNewAccumulator_Errors(t *testing.T) {
	_, err := sink.NewAccumulator(-1)
	assert.ErrorIs(t, err, sink.ErrNegativeCapacity)

	_, err = sink.NewAccumulator(math.NaN())
	assert.ErrorIs(t, err, sink.ErrNonFiniteInput)
}

// TestAccumulator_UnderCapacity verifies a batch under capacity is fully
// absorbed with zero residual.
func TestAccumulator_UnderCapacity(t *testing.T) {
	acc, err := sink.NewAccumulator(shovelcat.ObserverFootprint)
	require.NoError(t, err)

	residual, err := acc.Absorb(sink.Intake{Heat: 1e-4, Mass: 5e-5, Energy: 2e-4})
	require.NoError(t, err)

	assert.Equal(t, 0.0, residual)
	assert.Equal(t, 1e-4, acc.AbsorbedHeat())
	assert.Equal(t, 5e-5, acc.AbsorbedMass())
	assert.Equal(t, 2e-4, acc.AbsorbedEnergy())
	assert.InDelta(t, 3.5e-4, acc.TotalAbsorbed(), 1e-15)
}

// TestAccumulator_OverCapacity verifies the overflow leaks back and the
// absorbed share is pro-rata.
func TestAccumulator_OverCapacity(t *testing.T) {
	acc, err := sink.NewAccumulator(0.001)
	require.NoError(t, err)

	in := sink.Intake{Heat: 0.002, Error: 0.002} // total 0.004, 4× capacity
	residual, err := acc.Absorb(in)
	require.NoError(t, err)

	assert.InEpsilon(t, 0.003, residual, relTol)
	// Pro-rata share: capacity/total = 0.25 of each component.
	assert.InEpsilon(t, 0.0005, acc.AbsorbedHeat(), relTol)
	assert.InEpsilon(t, 0.0005, acc.AbsorbedErrors(), relTol)
	assert.InEpsilon(t, 0.001, acc.TotalAbsorbed(), relTol)
}

// TestAccumulator_PerCallCapacity verifies the capacity applies per batch,
// not as a lifetime quota: repeated under-capacity batches keep absorbing.
func TestAccumulator_PerCallCapacity(t *testing.T) {
	acc, err := sink.NewAccumulator(0.001)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		residual, absorbErr := acc.Absorb(sink.Intake{Energy: 0.0009})
		require.NoError(t, absorbErr)
		assert.Equal(t, 0.0, residual, "batch %d", i)
	}
	assert.InEpsilon(t, 0.009, acc.TotalAbsorbed(), relTol)
}

// TestAccumulator_IntakeValidation verifies negative and non-finite
// components are rejected without mutating the accumulator.
func TestAccumulator_IntakeValidation(t *testing.T) {
	acc, err := sink.NewAccumulator(1)
	require.NoError(t, err)

	_, err = acc.Absorb(sink.Intake{Heat: -0.1})
	assert.ErrorIs(t, err, sink.ErrNegativeIntake)

	_, err = acc.Absorb(sink.Intake{Error: math.Inf(1)})
	assert.ErrorIs(t, err, sink.ErrNonFiniteInput)

	assert.Equal(t, 0.0, acc.TotalAbsorbed(), "failed Absorb must not mutate state")
}
