package beam

import (
	"testing"

	"github.com/alexiusacademia/gobeam/internal/nbcc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectBars_LeastWaste(t *testing.T) {
	arrangement, err := SelectBars(1000, 300, nbcc.StandardBars)
	require.NoError(t, err)

	// 6-15mm (1062 mm²) wastes less than 4-20mm (1256 mm²).
	assert.InEpsilon(t, 15.0, arrangement.Diameter, 1e-12)
	assert.Equal(t, 6, arrangement.Count)
	assert.InEpsilon(t, 6*177.0, arrangement.AsProvided, 1e-12)
	assert.Equal(t, 1, arrangement.Layers)
	assert.GreaterOrEqual(t, arrangement.AsProvided, 1000.0)
}

func TestSelectBars_RoundUpLaw(t *testing.T) {
	for _, as := range []float64{150, 480, 1200, 2400, 3500} {
		arrangement, err := SelectBars(as, 400, nbcc.StandardBars)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, arrangement.AsProvided, as, "As=%.0f", as)
	}
}

func TestSelectBars_ExactAreaNoExcess(t *testing.T) {
	// Demand equal to a whole number of bars selects exactly that.
	arrangement, err := SelectBars(6*177, 300, nbcc.StandardBars)
	require.NoError(t, err)
	assert.Equal(t, 6*177.0, arrangement.AsProvided)
}

func TestSelectBars_TieKeepsSmallerDiameter(t *testing.T) {
	catalog := []nbcc.CatalogBar{
		{Diameter: 10, Area: 100},
		{Diameter: 20, Area: 200},
	}

	// 2-10mm and 1-20mm both provide exactly 200 mm².
	arrangement, err := SelectBars(200, 300, catalog)
	require.NoError(t, err)
	assert.InEpsilon(t, 10.0, arrangement.Diameter, 1e-12)
	assert.Equal(t, 2, arrangement.Count)
}

func TestSelectBars_WidthRejectsArrangement(t *testing.T) {
	// 13-10mm bars need 480 mm of width, so 10mm cannot win at b=300.
	arrangement, err := SelectBars(1000, 300, nbcc.StandardBars)
	require.NoError(t, err)
	assert.NotEqual(t, 10.0, arrangement.Diameter)
}

func TestSelectBars_TwoLayerFallback(t *testing.T) {
	arrangement, err := SelectBars(5000, 250, nbcc.StandardBars)
	require.NoError(t, err)

	assert.Equal(t, 2, arrangement.Layers)
	assert.InEpsilon(t, 35.0, arrangement.Diameter, 1e-12)
	assert.Equal(t, 6, arrangement.Count)
	assert.GreaterOrEqual(t, arrangement.AsProvided, 5000.0)
}

func TestSelectBars_InfeasibleEvenInTwoLayers(t *testing.T) {
	_, err := SelectBars(5000, 150, nbcc.StandardBars)
	assert.ErrorIs(t, err, ErrInfeasibleSection)
}

func TestSelectBars_Preconditions(t *testing.T) {
	_, err := SelectBars(0, 300, nbcc.StandardBars)
	assert.ErrorIs(t, err, ErrPrecondition)

	_, err = SelectBars(1000, 0, nbcc.StandardBars)
	assert.ErrorIs(t, err, ErrPrecondition)

	_, err = SelectBars(1000, 300, nil)
	assert.ErrorIs(t, err, ErrPrecondition)

	_, err = SelectBars(1000, 300, []nbcc.CatalogBar{{Diameter: 10, Area: -1}})
	assert.ErrorIs(t, err, ErrPrecondition)
}
