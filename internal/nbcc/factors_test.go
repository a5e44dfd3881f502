package nbcc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlpha1(t *testing.T) {
	assert.InEpsilon(t, 0.805, Alpha1(30), 1e-12)
	assert.InEpsilon(t, 0.79, Alpha1(40), 1e-12)
	// Floors at 0.67 for very high strength concrete.
	assert.InEpsilon(t, 0.67, Alpha1(150), 1e-12)
}

func TestBeta1(t *testing.T) {
	assert.InEpsilon(t, 0.895, Beta1(30), 1e-12)
	assert.InEpsilon(t, 0.87, Beta1(40), 1e-12)
	assert.InEpsilon(t, 0.67, Beta1(150), 1e-12)
}

func TestAsMin(t *testing.T) {
	// For f'c = 30 the 1.4 b d / fy term governs.
	assert.InEpsilon(t, 1.4*300*440/400, AsMin(30, 400, 300, 440), 1e-12)

	// For high strength concrete the 0.2 √f'c term takes over
	// (crossover at √f'c = 7, i.e. f'c = 49 MPa).
	assert.Greater(t, AsMin(64, 400, 300, 440), 1.4*300*440/400)
}

func TestCombinationRule_Factored(t *testing.T) {
	rule := CombinationRule{Name: "1.25D + 1.5L + 1.0S", Dead: 1.25, Live: 1.5, Snow: 1.0}
	assert.InEpsilon(t, 1.25*10+1.5*25+1.0*2, rule.Factored(10, 25, 2), 1e-12)
}
