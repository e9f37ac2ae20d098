package observer_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jpelchat/shovelcat"
	"github.com/jpelchat/shovelcat/observer"
)

// TestNew_Canonical verifies the fixed metadata of all three kinds.
func TestNew_Canonical(t *testing.T) {
	void := observer.New(observer.Void)
	assert.Equal(t, "i", void.Kind.Unit())
	assert.Equal(t, "x-y", void.Kind.Plane())
	assert.Equal(t, observer.SideGreater, void.Side)
	assert.True(t, void.HasShiftedLoop)
	assert.Equal(t, 3.0, void.EstimateThree)

	something := observer.New(observer.Something)
	assert.Equal(t, "j", something.Kind.Unit())
	assert.Equal(t, "y-z", something.Kind.Plane())
	assert.Equal(t, observer.SideGreater, something.Side)
	assert.True(t, something.HasShiftedLoop)

	depth := observer.New(observer.Depth)
	assert.Equal(t, "k", depth.Kind.Unit())
	assert.Equal(t, "z-x", depth.Kind.Plane())
	assert.Equal(t, observer.SideLess, depth.Side)
	assert.False(t, depth.HasShiftedLoop)
	assert.InDelta(t, 1.0/3.0, depth.EstimateThree, 1e-15)
	assert.InDelta(t, 1.0/shovelcat.PointOneFour, depth.EstimatePointOneFour, 1e-12)
}

// TestObserver_QueryDepth checks the depth observer's boundary-only
// resolution.
func TestObserver_QueryDepth(t *testing.T) {
	depth := observer.New(observer.Depth)

	cases := []struct {
		name       string
		z          float64
		confidence float64
		message    string
	}{
		{"AtZero", 0, 1.0, "definitely something (1/z diverges)"},
		{"AtBoundary", 1.0, 0.99, "yes, definitely right here at the boundary"},
		{"FarOut", 1000, 0.1, "probably nothing (1/z vanishes)"},
		{"Middle", 2.0, 0.5, "yeah, probably that one"},
		{"BelowOne", 0.5, 0.5, "yeah, probably that one"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := depth.Query(tc.z)
			assert.Equal(t, tc.confidence, v.Confidence)
			assert.Equal(t, tc.message, v.Message)
		})
	}
}

// TestObserver_QueryLooped checks the linear falloff of looped observers
// and the floor at zero.
func TestObserver_QueryLooped(t *testing.T) {
	void := observer.New(observer.Void)

	assert.Equal(t, 1.0, void.Query(1.0).Confidence)
	assert.InDelta(t, 0.9, void.Query(2.0).Confidence, 1e-12)
	assert.InDelta(t, 0.95, void.Query(0.5).Confidence, 1e-12)
	assert.Equal(t, 0.0, void.Query(100.0).Confidence, "falloff clamps at zero")
}

// TestObserver_Fuzziness verifies the depth observer compares ratios in
// reciprocal space while looped observers see zero deviation from the
// ideal.
func TestObserver_Fuzziness(t *testing.T) {
	void := observer.New(observer.Void)
	assert.Equal(t, 0.0, void.Fuzziness())

	depth := observer.New(observer.Depth)
	ideal := 3.0 / shovelcat.PointOneFour
	want := math.Abs(1/ideal - ideal)
	assert.InDelta(t, want, depth.Fuzziness(), 1e-9)
}

// TestTriad_Verify checks the weighted combination and the 0.7 gate.
func TestTriad_Verify(t *testing.T) {
	triad := observer.NewTriad()

	atBoundary := triad.Verify(1.0)
	// (1.0 + 1.0 + 0.5×0.99) / 2.5 = 0.998
	assert.InDelta(t, 0.998, atBoundary.Confidence, 1e-12)
	assert.True(t, atBoundary.Verified)

	farOut := triad.Verify(100.0)
	// Looped confidence clamps to 0; (0 + 0 + 0.5×0.5)/2.5 = 0.1.
	assert.InDelta(t, 0.1, farOut.Confidence, 1e-12)
	assert.False(t, farOut.Verified)

	mid := triad.Verify(2.0)
	// (0.9 + 0.9 + 0.5×0.5)/2.5 = 0.82
	assert.InDelta(t, 0.82, mid.Confidence, 1e-12)
	assert.True(t, mid.Verified)
}
