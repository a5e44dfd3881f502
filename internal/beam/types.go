package beam

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/gobeam/internal/nbcc"
)

// Error taxonomy. Precondition violations are caller bugs and are never
// recovered; an infeasible section or a negative computed area terminates
// the design for the given geometry.
var (
	ErrPrecondition      = errors.New("precondition violation")
	ErrInfeasibleSection = errors.New("infeasible section")
	ErrNegativeArea      = errors.New("negative steel area")
)

// Section is a rectangular beam cross section. All dimensions in mm.
type Section struct {
	Width        float64 // b - beam width (mm)
	Depth        float64 // h - total depth (mm)
	Cover        float64 // concrete cover to reinforcement (mm)
	BarAllowance float64 // stirrup + half-bar deduction to steel centroid (mm)

	// d' - depth to the compression steel centroid for doubly
	// reinforced design (mm). Zero means cover + bar allowance.
	CompressionDepth float64
}

// NewSection creates a section with the default bar allowance.
func NewSection(width, depth, cover float64) Section {
	return Section{
		Width:        width,
		Depth:        depth,
		Cover:        cover,
		BarAllowance: nbcc.BarAllowance,
	}
}

// EffectiveDepth returns d, the depth to the tension steel centroid (mm).
func (s Section) EffectiveDepth() float64 {
	return s.Depth - s.Cover - s.BarAllowance
}

// compressionDepth returns d' with its default applied.
func (s Section) compressionDepth() float64 {
	if s.CompressionDepth > 0 {
		return s.CompressionDepth
	}
	return s.Cover + s.BarAllowance
}

// Validate checks the section preconditions shared by the designers.
func (s Section) Validate() error {
	if s.Width <= 0 {
		return fmt.Errorf("%w: width=%.2f mm", ErrPrecondition, s.Width)
	}
	if s.Depth <= 0 {
		return fmt.Errorf("%w: depth=%.2f mm", ErrPrecondition, s.Depth)
	}
	if s.Cover < 0 || s.BarAllowance < 0 {
		return fmt.Errorf("%w: cover=%.2f mm, allowance=%.2f mm",
			ErrPrecondition, s.Cover, s.BarAllowance)
	}
	if d := s.EffectiveDepth(); d <= 0 {
		return fmt.Errorf("%w: effective depth d=%.2f mm", ErrInfeasibleSection, d)
	}
	return nil
}

// Materials are the concrete and steel design strengths (MPa) with the
// code material resistance factors.
type Materials struct {
	FcPrime   float64 // f'c - concrete compressive strength (MPa)
	Fy        float64 // fy - longitudinal steel yield strength (MPa)
	FyStirrup float64 // fyv - stirrup yield strength (MPa)

	PhiC float64 // φc
	PhiS float64 // φs
}

// NewMaterials creates materials with the code resistance factors and
// the stirrup yield defaulted to the longitudinal yield.
func NewMaterials(fc, fy float64) Materials {
	return Materials{
		FcPrime:   fc,
		Fy:        fy,
		FyStirrup: fy,
		PhiC:      nbcc.PhiConcrete,
		PhiS:      nbcc.PhiSteel,
	}
}

// Validate checks the material preconditions.
func (m Materials) Validate() error {
	if m.FcPrime <= 0 || m.Fy <= 0 {
		return fmt.Errorf("%w: f'c=%.2f MPa, fy=%.2f MPa",
			ErrPrecondition, m.FcPrime, m.Fy)
	}
	if m.PhiC <= 0 || m.PhiS <= 0 {
		return fmt.Errorf("%w: φc=%.2f, φs=%.2f", ErrPrecondition, m.PhiC, m.PhiS)
	}
	return nil
}
