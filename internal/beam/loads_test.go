package beam

import (
	"testing"

	"github.com/alexiusacademia/gobeam/internal/nbcc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateCombinations_GoverningIsMaximum(t *testing.T) {
	rules := []nbcc.CombinationRule{
		{Name: "1.4D + 1.5L + 0.5S", Dead: 1.4, Live: 1.5, Snow: 0.5},
		{Name: "1.25D + 1.5L + 0.5S", Dead: 1.25, Live: 1.5, Snow: 0.5},
		{Name: "1.25D + 0.5L + 1.5S", Dead: 1.25, Live: 0.5, Snow: 1.5},
	}

	result, err := EvaluateCombinations(10, 25, 2, rules)
	require.NoError(t, err)

	require.Len(t, result.Combinations, 3)
	assert.Equal(t, "1.4D + 1.5L + 0.5S", result.GoverningName)
	assert.InEpsilon(t, 52.5, result.GoverningValue, 1e-12)

	// The governing value must equal the maximum over all combinations.
	max := result.Combinations[0].Value
	for _, c := range result.Combinations[1:] {
		if c.Value > max {
			max = c.Value
		}
	}
	assert.Equal(t, max, result.GoverningValue)
}

func TestEvaluateCombinations_PreservesRuleOrder(t *testing.T) {
	result, err := EvaluateCombinations(10, 25, 2, nbcc.ULSCombinations)
	require.NoError(t, err)

	require.Len(t, result.Combinations, len(nbcc.ULSCombinations))
	for i, rule := range nbcc.ULSCombinations {
		assert.Equal(t, rule.Name, result.Combinations[i].Name)
	}
	assert.Equal(t, "1.25D + 1.5L + 1.0S", result.GoverningName)
	assert.InEpsilon(t, 52.0, result.GoverningValue, 1e-12)
}

func TestEvaluateCombinations_TieKeepsFirstRule(t *testing.T) {
	rules := []nbcc.CombinationRule{
		{Name: "first", Dead: 1.2, Live: 1.6},
		{Name: "second", Dead: 1.2, Live: 1.6},
	}

	result, err := EvaluateCombinations(20, 10, 0, rules)
	require.NoError(t, err)
	assert.Equal(t, "first", result.GoverningName)
}

func TestEvaluateCombinations_EmptyRuleSet(t *testing.T) {
	result, err := EvaluateCombinations(10, 25, 0, nil)
	require.NoError(t, err)
	assert.Zero(t, result.GoverningValue)
	assert.Empty(t, result.GoverningName)
	assert.Empty(t, result.Combinations)
}

func TestEvaluateCombinations_Preconditions(t *testing.T) {
	_, err := EvaluateCombinations(-1, 0, 0, nbcc.ULSCombinations)
	assert.ErrorIs(t, err, ErrPrecondition)

	_, err = EvaluateCombinations(10, 5, 0, []nbcc.CombinationRule{{Dead: 1.4}})
	assert.ErrorIs(t, err, ErrPrecondition)

	_, err = EvaluateCombinations(10, 5, 0, []nbcc.CombinationRule{{Name: "bad", Dead: -1.4}})
	assert.ErrorIs(t, err, ErrPrecondition)
}
