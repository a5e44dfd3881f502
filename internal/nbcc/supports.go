package nbcc

import "fmt"

// SupportCondition classifies the beam end restraints. Each condition
// maps to exactly one moment coefficient, one shear coefficient and one
// span-to-depth limit; the tables are code constants and are never
// modified within a design run.
type SupportCondition int

const (
	SimplySupported SupportCondition = iota
	FixedBothEnds
	ContinuousOneEnd
	ContinuousBothEnds
	Cantilever
)

var supportNames = map[SupportCondition]string{
	SimplySupported:    "simply-supported",
	FixedBothEnds:      "fixed",
	ContinuousOneEnd:   "continuous-one-end",
	ContinuousBothEnds: "continuous-both-ends",
	Cantilever:         "cantilever",
}

func (c SupportCondition) String() string {
	if name, ok := supportNames[c]; ok {
		return name
	}
	return fmt.Sprintf("SupportCondition(%d)", int(c))
}

// ParseSupportCondition maps a CLI/config token to a condition.
func ParseSupportCondition(s string) (SupportCondition, error) {
	for c, name := range supportNames {
		if name == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown support condition %q", s)
}

// Governing-case coefficients for a uniformly distributed load.
// M = coeff × w × L², V = coeff × w × L. These are the standard design
// approximations and are used as-is, not re-derived per span layout.
var momentCoefficients = map[SupportCondition]float64{
	SimplySupported:    1.0 / 8.0,
	FixedBothEnds:      1.0 / 8.0,
	ContinuousOneEnd:   1.0 / 10.0,
	ContinuousBothEnds: 1.0 / 10.0,
	Cantilever:         1.0 / 2.0,
}

var shearCoefficients = map[SupportCondition]float64{
	SimplySupported:    1.0 / 2.0,
	FixedBothEnds:      1.0 / 2.0,
	ContinuousOneEnd:   0.6,
	ContinuousBothEnds: 0.6,
	Cantilever:         1.0,
}

// Span-to-depth limits for deflection control (simplified table).
var spanDepthLimits = map[SupportCondition]float64{
	SimplySupported:    20,
	ContinuousOneEnd:   24,
	ContinuousBothEnds: 26,
	FixedBothEnds:      28,
	Cantilever:         8,
}

// MomentCoefficient returns the distributed-load moment coefficient.
func (c SupportCondition) MomentCoefficient() float64 {
	if coeff, ok := momentCoefficients[c]; ok {
		return coeff
	}
	return momentCoefficients[SimplySupported]
}

// ShearCoefficient returns the distributed-load shear coefficient.
func (c SupportCondition) ShearCoefficient() float64 {
	if coeff, ok := shearCoefficients[c]; ok {
		return coeff
	}
	return shearCoefficients[SimplySupported]
}

// SpanDepthLimit returns the serviceability span-to-depth limit.
func (c SupportCondition) SpanDepthLimit() float64 {
	if limit, ok := spanDepthLimits[c]; ok {
		return limit
	}
	return spanDepthLimits[SimplySupported]
}
