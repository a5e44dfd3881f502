package beam

import (
	"fmt"

	"github.com/alexiusacademia/gobeam/internal/nbcc"
)

// ServiceabilityResult is the span-to-depth deflection-control check.
type ServiceabilityResult struct {
	RatioActual float64
	RatioLimit  float64
	Passes      bool
}

// CheckServiceability compares the span-to-depth ratio against the
// limit for the support condition.
func CheckServiceability(spanM, depth float64, condition nbcc.SupportCondition) (ServiceabilityResult, error) {
	if spanM <= 0 {
		return ServiceabilityResult{}, fmt.Errorf("%w: span=%.3f m", ErrPrecondition, spanM)
	}
	if depth <= 0 {
		return ServiceabilityResult{}, fmt.Errorf("%w: depth=%.2f mm", ErrPrecondition, depth)
	}

	ratio := spanM * 1000 / depth
	limit := condition.SpanDepthLimit()
	return ServiceabilityResult{
		RatioActual: ratio,
		RatioLimit:  limit,
		Passes:      ratio <= limit,
	}, nil
}
