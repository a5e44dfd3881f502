package beam

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesignShear_ConcreteCapacity(t *testing.T) {
	design, err := DesignShear(50, testSection(), 30, 400)
	require.NoError(t, err)

	// Vc = 0.65 · 0.2 · 1.0 · √30 · 300 · 440 / 1000
	expected := 0.65 * 0.2 * math.Sqrt(30) * 300 * 440 / 1000
	assert.InEpsilon(t, expected, design.ConcreteCapacity, 1e-9)
	assert.InEpsilon(t, 50.0, design.ShearDemand, 1e-12)
}

func TestDesignShear_MinimumReinforcementBranch(t *testing.T) {
	design, err := DesignShear(50, testSection(), 30, 400)
	require.NoError(t, err)

	assert.False(t, design.RequiresReinforcement)
	// Spacing is still populated as a recommendation.
	assert.InEpsilon(t, 300.0, design.Spacing, 1e-12)
	assert.InEpsilon(t, 0.7*440, design.SpacingMax, 1e-12)
	assert.InEpsilon(t, 10.0, design.StirrupDiameter, 1e-12)
	assert.Equal(t, 2, design.Legs)
}

func TestDesignShear_StirrupsRequired(t *testing.T) {
	design, err := DesignShear(157.5, testSection(), 30, 400)
	require.NoError(t, err)

	assert.True(t, design.RequiresReinforcement)
	assert.Greater(t, design.ShearDemand, design.ConcreteCapacity)
	assert.LessOrEqual(t, design.Spacing, design.SpacingMax)
	assert.Zero(t, math.Mod(design.Spacing, 25))
	assert.GreaterOrEqual(t, design.Spacing, 75.0)
}

func TestDesignShear_SpacingFloor(t *testing.T) {
	design, err := DesignShear(1000, testSection(), 30, 400)
	require.NoError(t, err)

	assert.True(t, design.RequiresReinforcement)
	assert.InEpsilon(t, 75.0, design.Spacing, 1e-12)
}

func TestDesignShear_StirrupArea(t *testing.T) {
	design, err := DesignShear(100, testSection(), 30, 400)
	require.NoError(t, err)

	// Two legs of a 10mm stirrup.
	assert.InEpsilon(t, 2*math.Pi*25, design.StirrupArea, 1e-9)
}

func TestDesignShear_Preconditions(t *testing.T) {
	_, err := DesignShear(-1, testSection(), 30, 400)
	assert.ErrorIs(t, err, ErrPrecondition)

	_, err = DesignShear(100, testSection(), 0, 400)
	assert.ErrorIs(t, err, ErrPrecondition)

	_, err = DesignShear(100, testSection(), 30, 0)
	assert.ErrorIs(t, err, ErrPrecondition)

	_, err = DesignShear(100, NewSection(300, 50, 40), 30, 400)
	assert.ErrorIs(t, err, ErrInfeasibleSection)
}
