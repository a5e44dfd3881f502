package beam

import (
	"testing"

	"github.com/alexiusacademia/gobeam/internal/nbcc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeInternalForces_SimplySupported(t *testing.T) {
	forces, err := ComputeInternalForces(52.5, 6, nbcc.SimplySupported, nil)
	require.NoError(t, err)

	// M = wL²/8, V = wL/2
	assert.InEpsilon(t, 52.5*36/8, forces.Moment, 1e-9)
	assert.InEpsilon(t, 52.5*6/2, forces.Shear, 1e-9)
}

func TestComputeInternalForces_SupportCoefficients(t *testing.T) {
	const w, span = 10.0, 4.0

	cases := []struct {
		condition   nbcc.SupportCondition
		momentCoeff float64
		shearCoeff  float64
	}{
		{nbcc.SimplySupported, 1.0 / 8, 0.5},
		{nbcc.FixedBothEnds, 1.0 / 8, 0.5},
		{nbcc.ContinuousOneEnd, 1.0 / 10, 0.6},
		{nbcc.ContinuousBothEnds, 1.0 / 10, 0.6},
		{nbcc.Cantilever, 0.5, 1.0},
	}

	for _, tc := range cases {
		t.Run(tc.condition.String(), func(t *testing.T) {
			forces, err := ComputeInternalForces(w, span, tc.condition, nil)
			require.NoError(t, err)
			assert.InEpsilon(t, tc.momentCoeff*w*span*span, forces.Moment, 1e-9)
			assert.InEpsilon(t, tc.shearCoeff*w*span, forces.Shear, 1e-9)
		})
	}
}

func TestComputeInternalForces_PointLoads(t *testing.T) {
	points := []PointLoad{
		{Load: 50, Distance: 2}, // M = 50·2·4/6 = 66.67, V = 50·4/6 = 33.33
		{Load: 30, Distance: 4}, // M = 30·4·2/6 = 40.00, V = 30·2/6 = 10.00
	}

	forces, err := ComputeInternalForces(52.5, 6, nbcc.SimplySupported, points)
	require.NoError(t, err)

	// Distributed maximum plus the single largest point contribution.
	assert.InEpsilon(t, 236.25+50*2*4/6.0, forces.Moment, 1e-9)
	assert.InEpsilon(t, 157.5+50*4/6.0, forces.Shear, 1e-9)
}

func TestComputeInternalForces_PointLoadAtSupport(t *testing.T) {
	// A load directly over a support contributes no span moment.
	forces, err := ComputeInternalForces(10, 6, nbcc.SimplySupported, []PointLoad{{Load: 100, Distance: 0}})
	require.NoError(t, err)
	assert.InEpsilon(t, 10*36/8.0, forces.Moment, 1e-9)
	assert.InEpsilon(t, 10*6/2.0+100, forces.Shear, 1e-9)
}

func TestComputeInternalForces_Preconditions(t *testing.T) {
	_, err := ComputeInternalForces(10, 0, nbcc.SimplySupported, nil)
	assert.ErrorIs(t, err, ErrPrecondition)

	_, err = ComputeInternalForces(-10, 6, nbcc.SimplySupported, nil)
	assert.ErrorIs(t, err, ErrPrecondition)

	_, err = ComputeInternalForces(10, 6, nbcc.SimplySupported, []PointLoad{{Load: 50, Distance: 6.5}})
	assert.ErrorIs(t, err, ErrPrecondition)

	_, err = ComputeInternalForces(10, 6, nbcc.SimplySupported, []PointLoad{{Load: -50, Distance: 2}})
	assert.ErrorIs(t, err, ErrPrecondition)
}
