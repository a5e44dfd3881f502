package nbcc

// CombinationRule is a ULS load combination factor set.
// Based on NBCC 2020 Table - Load Combinations for Ultimate Limit States
type CombinationRule struct {
	Name string
	// Load factors for each load type
	Dead float64 // D - dead load
	Live float64 // L - live load
	Snow float64 // S - snow load
}

// Factored applies the rule to unfactored loads (kN/m).
func (r CombinationRule) Factored(dead, live, snow float64) float64 {
	return r.Dead*dead + r.Live*live + r.Snow*snow
}

// ULSCombinations are the gravity-governed strength combinations for
// beam design. Callers with other load cases supply their own rule set;
// rule order is significant (first rule wins a tie).
var ULSCombinations = []CombinationRule{
	{
		Name: "1.4D",
		Dead: 1.4,
	},
	{
		Name: "1.25D + 1.5L + 1.0S",
		Dead: 1.25,
		Live: 1.5,
		Snow: 1.0,
	},
	{
		Name: "1.25D + 1.5S + 1.0L",
		Dead: 1.25,
		Live: 1.0,
		Snow: 1.5,
	},
}
