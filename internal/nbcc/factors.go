package nbcc

import "math"

// NBCC / CSA A23.3 material constants

const (
	// Material resistance factors (CSA A23.3 Clause 8.4)
	PhiConcrete = 0.65 // φc
	PhiSteel    = 0.85 // φs

	// Ultimate concrete compressive strain (Clause 10.1.3)
	EpsilonCU = 0.0035

	// Modulus of elasticity for reinforcing steel (MPa)
	Es = 200000.0

	// Concrete density factor, normal-density concrete (Clause 8.6.5)
	Lambda = 1.0

	// Floor for the stress block factors (Clause 10.1.7)
	StressBlockFloor = 0.67
)

// Alpha1 calculates the rectangular stress block intensity factor
// CSA A23.3 Clause 10.1.7: α1 = 0.85 - 0.0015 f'c >= 0.67
func Alpha1(fc float64) float64 {
	return math.Max(0.85-0.0015*fc, StressBlockFloor)
}

// Beta1 calculates the rectangular stress block depth factor
// CSA A23.3 Clause 10.1.7: β1 = 0.97 - 0.0025 f'c >= 0.67
func Beta1(fc float64) float64 {
	return math.Max(0.97-0.0025*fc, StressBlockFloor)
}

// AsMin calculates the minimum flexural reinforcement area (mm²)
// CSA A23.3 Clause 10.5.1: max(0.2 √f'c b d / fy, 1.4 b d / fy)
func AsMin(fc, fy, width, d float64) float64 {
	return math.Max(0.2*math.Sqrt(fc)*width*d/fy, 1.4*width*d/fy)
}
