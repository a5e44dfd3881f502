package beam

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gobeam/internal/nbcc"
)

// ShearDesign holds the transverse reinforcement design.
type ShearDesign struct {
	ConcreteCapacity float64 // Vc (kN)
	ShearDemand      float64 // Vf (kN)

	// RequiresReinforcement is false when the concrete alone carries
	// the demand; the spacing fields then hold the nominal-stirrup
	// recommendation rather than a strength requirement.
	RequiresReinforcement bool

	StirrupDiameter float64 // mm
	Legs            int
	StirrupArea     float64 // Av, all legs (mm²)
	Spacing         float64 // mm
	SpacingMax      float64 // mm
}

// roundSpacing rounds a stirrup spacing down to the practical increment
// and clamps it at the constructibility floor.
func roundSpacing(s float64) float64 {
	rounded := math.Floor(s/nbcc.SpacingIncrement) * nbcc.SpacingIncrement
	return math.Max(rounded, nbcc.SpacingFloor)
}

// DesignShear sizes two-leg stirrups for a factored shear (kN).
// Concrete capacity uses the simplified method,
// Vc = φc 0.2 λ √f'c b d.
func DesignShear(shear float64, s Section, fc, fyStirrup float64) (ShearDesign, error) {
	if err := s.Validate(); err != nil {
		return ShearDesign{}, err
	}
	if fc <= 0 || fyStirrup <= 0 {
		return ShearDesign{}, fmt.Errorf("%w: f'c=%.2f MPa, fyv=%.2f MPa", ErrPrecondition, fc, fyStirrup)
	}
	if shear < 0 {
		return ShearDesign{}, fmt.Errorf("%w: factored shear=%.2f kN", ErrPrecondition, shear)
	}

	d := s.EffectiveDepth()
	vc := nbcc.PhiConcrete * 0.2 * nbcc.Lambda * math.Sqrt(fc) * s.Width * d // N
	vf := shear * 1000                                                       // N

	av := float64(nbcc.StirrupLegs) * math.Pi * math.Pow(nbcc.StirrupDiameter/2, 2)
	sMax := math.Min(0.7*d, nbcc.SpacingCap)

	design := ShearDesign{
		ConcreteCapacity: vc / 1000,
		ShearDemand:      shear,
		StirrupDiameter:  nbcc.StirrupDiameter,
		Legs:             nbcc.StirrupLegs,
		StirrupArea:      av,
		SpacingMax:       sMax,
	}

	if vf <= vc {
		// Nominal stirrups only; still report a usable spacing.
		design.Spacing = roundSpacing(math.Min(sMax, nbcc.SpacingPractical))
		return design, nil
	}

	// Vs = Av fyv d / s
	vs := vf - vc
	sRequired := av * fyStirrup * d / vs

	design.RequiresReinforcement = true
	design.Spacing = roundSpacing(math.Min(sRequired, sMax))
	return design, nil
}
