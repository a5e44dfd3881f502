package beam

import (
	"testing"

	"github.com/alexiusacademia/gobeam/internal/nbcc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Full design chain for the 6 m simply supported reference beam:
// combinations → forces → flexure → bars, forces → shear, and the
// independent serviceability check.
func TestPipeline_ReferenceBeam(t *testing.T) {
	rules := []nbcc.CombinationRule{
		{Name: "1.4D + 1.5L + 0.5S", Dead: 1.4, Live: 1.5, Snow: 0.5},
		{Name: "1.25D + 1.5L + 0.5S", Dead: 1.25, Live: 1.5, Snow: 0.5},
		{Name: "1.25D + 0.5L + 1.5S", Dead: 1.25, Live: 0.5, Snow: 1.5},
	}

	loads, err := EvaluateCombinations(10, 25, 2, rules)
	require.NoError(t, err)
	assert.Equal(t, "1.4D + 1.5L + 0.5S", loads.GoverningName)
	assert.InEpsilon(t, 52.5, loads.GoverningValue, 1e-12)

	forces, err := ComputeInternalForces(loads.GoverningValue, 6, nbcc.SimplySupported, nil)
	require.NoError(t, err)
	assert.InEpsilon(t, 236.25, forces.Moment, 1e-9)
	assert.InEpsilon(t, 157.5, forces.Shear, 1e-9)

	section := NewSection(300, 500, 40)
	materials := NewMaterials(30, 400)

	flexure, err := DesignFlexure(forces.Moment, section, materials)
	require.NoError(t, err)
	assert.InEpsilon(t, 440.0, flexure.EffectiveDepth, 1e-12)

	mrMax, err := MaxSinglyMoment(section, materials)
	require.NoError(t, err)
	assert.Equal(t, forces.Moment > mrMax, flexure.IsDoublyReinforced)

	bars, err := SelectBars(flexure.AsRequired, section.Width, nbcc.StandardBars)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, bars.AsProvided, flexure.AsRequired)

	shear, err := DesignShear(forces.Shear, section, materials.FcPrime, materials.FyStirrup)
	require.NoError(t, err)
	assert.LessOrEqual(t, shear.Spacing, shear.SpacingMax)

	service, err := CheckServiceability(6, section.Depth, nbcc.SimplySupported)
	require.NoError(t, err)
	assert.InEpsilon(t, 12.0, service.RatioActual, 1e-12)
	assert.True(t, service.Passes)
}

// Each routine is a pure function, so a second run of the whole chain
// must reproduce the first bit for bit.
func TestPipeline_Deterministic(t *testing.T) {
	run := func() (FlexuralDesign, BarArrangement, ShearDesign) {
		loads, err := EvaluateCombinations(12, 30, 0, nbcc.ULSCombinations)
		require.NoError(t, err)
		forces, err := ComputeInternalForces(loads.GoverningValue, 7, nbcc.ContinuousBothEnds, nil)
		require.NoError(t, err)

		section := NewSection(350, 600, 40)
		materials := NewMaterials(35, 400)
		flexure, err := DesignFlexure(forces.Moment, section, materials)
		require.NoError(t, err)
		bars, err := SelectBars(flexure.AsRequired, section.Width, nbcc.StandardBars)
		require.NoError(t, err)
		shear, err := DesignShear(forces.Shear, section, materials.FcPrime, materials.FyStirrup)
		require.NoError(t, err)
		return flexure, bars, shear
	}

	f1, b1, s1 := run()
	f2, b2, s2 := run()
	assert.Equal(t, f1, f2)
	assert.Equal(t, b1, b2)
	assert.Equal(t, s1, s2)
}
