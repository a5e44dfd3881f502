package beam

import (
	"fmt"

	"github.com/alexiusacademia/gobeam/internal/nbcc"
)

// FlexuralDesign holds the longitudinal reinforcement design.
type FlexuralDesign struct {
	// Section properties
	EffectiveDepth   float64 // d (mm)
	Alpha1           float64
	StressBlockDepth float64 // a (mm)

	// Reinforcement ratio limits
	RhoBalanced float64
	RhoMax      float64

	// Reinforcement (mm²)
	AsRequired    float64 // tension steel, never below AsMin
	AsMin         float64
	AsCompression float64 // 0 when singly reinforced

	IsDoublyReinforced bool
	CompressionDepth   float64 // d' used for the doubly path (mm)

	// Capacity (kN·m), recomputed from the final steel areas
	MomentResistance float64
}

// DesignFlexure computes the required longitudinal reinforcement for a
// factored moment (kN·m).
//
// The singly reinforced path solves the stress-block equation with a
// fixed two-pass refinement starting from a = 0.1 d. The pass count is
// deliberate: it reproduces the same steel area for the same inputs on
// every invocation instead of chasing a convergence tolerance.
func DesignFlexure(moment float64, s Section, m Materials) (FlexuralDesign, error) {
	if err := s.Validate(); err != nil {
		return FlexuralDesign{}, err
	}
	if err := m.Validate(); err != nil {
		return FlexuralDesign{}, err
	}
	if moment <= 0 {
		return FlexuralDesign{}, fmt.Errorf("%w: factored moment=%.2f kN·m", ErrPrecondition, moment)
	}

	d := s.EffectiveDepth()
	alpha1 := nbcc.Alpha1(m.FcPrime)

	epsilonY := m.Fy / nbcc.Es
	rhoBalanced := 0.85 * alpha1 * m.PhiC * m.FcPrime * nbcc.EpsilonCU /
		(m.PhiS * m.Fy * (nbcc.EpsilonCU + epsilonY))
	rhoMax := 0.75 * rhoBalanced

	design := FlexuralDesign{
		EffectiveDepth: d,
		Alpha1:         alpha1,
		RhoBalanced:    rhoBalanced,
		RhoMax:         rhoMax,
		AsMin:          nbcc.AsMin(m.FcPrime, m.Fy, s.Width, d),
	}

	// Capacity of the singly reinforced section at ρmax
	asMax := rhoMax * s.Width * d
	aMax := asMax * m.Fy / (0.85 * alpha1 * m.PhiC * m.FcPrime * s.Width)
	mrMax := m.PhiS * asMax * m.Fy * (d - aMax/2) / 1e6 // kN·m

	muNmm := moment * 1e6

	if moment <= mrMax {
		// Singly reinforced: two refinement passes from a = 0.1 d
		a := 0.1 * d
		var as float64
		for pass := 0; pass < 2; pass++ {
			lever := d - a/2
			if lever <= 0 {
				return FlexuralDesign{}, fmt.Errorf("%w: stress block a=%.2f mm exceeds lever arm at d=%.2f mm",
					ErrNegativeArea, a, d)
			}
			as = muNmm / (m.PhiS * m.Fy * lever)
			a = m.PhiS * as * m.Fy / (alpha1 * m.PhiC * m.FcPrime * s.Width)
		}
		if as <= 0 {
			return FlexuralDesign{}, fmt.Errorf("%w: As=%.2f mm²", ErrNegativeArea, as)
		}

		if as < design.AsMin {
			as = design.AsMin
		}
		design.AsRequired = as
		design.StressBlockDepth = m.PhiS * as * m.Fy / (alpha1 * m.PhiC * m.FcPrime * s.Width)
		design.MomentResistance = m.PhiS * as * m.Fy * (d - design.StressBlockDepth/2) / 1e6
		return design, nil
	}

	// Doubly reinforced: the concrete couple carries MrMax, the steel
	// couple As'·fy·(d - d') carries the remainder.
	dPrime := s.compressionDepth()
	leverArm := d - dPrime
	if leverArm <= 0 {
		return FlexuralDesign{}, fmt.Errorf("%w: compression steel depth d'=%.2f mm >= d=%.2f mm",
			ErrNegativeArea, dPrime, d)
	}

	asComp := (muNmm - mrMax*1e6) / (m.Fy * leverArm)
	if asComp <= 0 {
		return FlexuralDesign{}, fmt.Errorf("%w: As'=%.2f mm²", ErrNegativeArea, asComp)
	}

	design.IsDoublyReinforced = true
	design.CompressionDepth = dPrime
	design.AsCompression = asComp
	// Additional tension steel mirrors the compression steel
	design.AsRequired = asMax + asComp
	if design.AsRequired < design.AsMin {
		design.AsRequired = design.AsMin
	}
	design.StressBlockDepth = aMax
	design.MomentResistance = mrMax + asComp*m.Fy*leverArm/1e6

	return design, nil
}

// MaxSinglyMoment returns the singly reinforced capacity threshold
// (kN·m) above which DesignFlexure switches to the doubly path.
func MaxSinglyMoment(s Section, m Materials) (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if err := m.Validate(); err != nil {
		return 0, err
	}

	d := s.EffectiveDepth()
	alpha1 := nbcc.Alpha1(m.FcPrime)
	epsilonY := m.Fy / nbcc.Es
	rhoMax := 0.75 * 0.85 * alpha1 * m.PhiC * m.FcPrime * nbcc.EpsilonCU /
		(m.PhiS * m.Fy * (nbcc.EpsilonCU + epsilonY))

	asMax := rhoMax * s.Width * d
	aMax := asMax * m.Fy / (0.85 * alpha1 * m.PhiC * m.FcPrime * s.Width)
	return m.PhiS * asMax * m.Fy * (d - aMax/2) / 1e6, nil
}
