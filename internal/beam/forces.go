package beam

import (
	"fmt"

	"github.com/alexiusacademia/gobeam/internal/nbcc"
)

// PointLoad is a concentrated factored load on the span.
type PointLoad struct {
	Load     float64 // P (kN)
	Distance float64 // a - from the left support (m)
}

// InternalForces are the governing factored design actions.
type InternalForces struct {
	Moment float64 // Mf (kN·m)
	Shear  float64 // Vf (kN)
}

// ComputeInternalForces converts a factored distributed load (kN/m) and
// optional point loads into the governing moment and shear for the given
// support condition.
//
// Point loads are superposed additively: the distributed-load maximum
// plus the single largest point-load contribution, for moment and shear
// independently. This is the conservative governing-case simplification
// used for preliminary design, not an exact envelope at one location.
func ComputeInternalForces(factoredLoad, spanM float64, condition nbcc.SupportCondition, points []PointLoad) (InternalForces, error) {
	if spanM <= 0 {
		return InternalForces{}, fmt.Errorf("%w: span=%.3f m", ErrPrecondition, spanM)
	}
	if factoredLoad < 0 {
		return InternalForces{}, fmt.Errorf("%w: factored load=%.3f kN/m", ErrPrecondition, factoredLoad)
	}
	for i, p := range points {
		if p.Load < 0 {
			return InternalForces{}, fmt.Errorf("%w: point load %d is negative (%.2f kN)", ErrPrecondition, i+1, p.Load)
		}
		if p.Distance < 0 || p.Distance > spanM {
			return InternalForces{}, fmt.Errorf("%w: point load %d at %.3f m is off the %.3f m span",
				ErrPrecondition, i+1, p.Distance, spanM)
		}
	}

	forces := InternalForces{
		Moment: condition.MomentCoefficient() * factoredLoad * spanM * spanM,
		Shear:  condition.ShearCoefficient() * factoredLoad * spanM,
	}

	var maxPointMoment, maxPointShear float64
	for _, p := range points {
		// Moment at the load point: M = P a (L - a) / L
		m := p.Load * p.Distance * (spanM - p.Distance) / spanM
		if m > maxPointMoment {
			maxPointMoment = m
		}
		// Left reaction share: V = P (L - a) / L
		v := p.Load * (spanM - p.Distance) / spanM
		if v > maxPointShear {
			maxPointShear = v
		}
	}
	forces.Moment += maxPointMoment
	forces.Shear += maxPointShear

	return forces, nil
}
