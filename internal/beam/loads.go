package beam

import (
	"fmt"

	"github.com/alexiusacademia/gobeam/internal/nbcc"
)

// FactoredLoad is one evaluated load combination.
type FactoredLoad struct {
	Name  string
	Value float64 // kN/m
}

// FactoredLoadResult holds every evaluated combination in rule order
// plus the governing one. With an empty rule set the governing value is
// zero and the governing name is empty.
type FactoredLoadResult struct {
	Combinations   []FactoredLoad
	GoverningValue float64 // kN/m
	GoverningName  string
}

// EvaluateCombinations applies each factor rule to the unfactored loads
// (kN/m) and tracks the governing factored load. Comparison is strict,
// so a tie keeps the first rule in input order.
func EvaluateCombinations(dead, live, snow float64, rules []nbcc.CombinationRule) (FactoredLoadResult, error) {
	if dead < 0 || live < 0 || snow < 0 {
		return FactoredLoadResult{}, fmt.Errorf("%w: loads must be non-negative (D=%.2f, L=%.2f, S=%.2f)",
			ErrPrecondition, dead, live, snow)
	}
	for _, r := range rules {
		if r.Name == "" {
			return FactoredLoadResult{}, fmt.Errorf("%w: combination rule without a name", ErrPrecondition)
		}
		if r.Dead < 0 || r.Live < 0 || r.Snow < 0 {
			return FactoredLoadResult{}, fmt.Errorf("%w: negative factor in rule %q", ErrPrecondition, r.Name)
		}
	}

	result := FactoredLoadResult{
		Combinations: make([]FactoredLoad, 0, len(rules)),
	}
	for _, r := range rules {
		factored := r.Factored(dead, live, snow)
		result.Combinations = append(result.Combinations, FactoredLoad{Name: r.Name, Value: factored})

		if factored > result.GoverningValue {
			result.GoverningValue = factored
			result.GoverningName = r.Name
		}
	}

	return result, nil
}
