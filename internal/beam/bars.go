package beam

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gobeam/internal/nbcc"
)

// BarArrangement is a constructible set of equal-diameter bars.
type BarArrangement struct {
	Diameter   float64 // mm
	BarArea    float64 // mm², from the catalog
	Count      int
	AsProvided float64 // Count × BarArea (mm²)

	// Layers is 1 for a normal arrangement. 2 flags the degraded
	// fallback where no single-layer arrangement fits the width;
	// callers should consider a wider section.
	Layers int
}

// requiredWidth is the width a single layer of count bars occupies.
func requiredWidth(count int, diameter float64) float64 {
	n := float64(count)
	return n*diameter + (n-1)*nbcc.MinClearSpacing + 2*nbcc.EdgeAllowance
}

// SelectBars searches the catalog for the least-waste single-layer
// arrangement providing asRequired (mm²) within the section width (mm).
// Ties keep the earlier catalog entry, so the smaller diameter wins in
// an ascending catalog. When no single layer fits, the largest catalog
// bar is placed in two layers and the result is tagged Layers=2.
func SelectBars(asRequired, width float64, catalog []nbcc.CatalogBar) (BarArrangement, error) {
	if asRequired <= 0 {
		return BarArrangement{}, fmt.Errorf("%w: As required=%.2f mm²", ErrPrecondition, asRequired)
	}
	if width <= 0 {
		return BarArrangement{}, fmt.Errorf("%w: width=%.2f mm", ErrPrecondition, width)
	}
	if len(catalog) == 0 {
		return BarArrangement{}, fmt.Errorf("%w: empty bar catalog", ErrPrecondition)
	}
	for _, bar := range catalog {
		if bar.Diameter <= 0 || bar.Area <= 0 {
			return BarArrangement{}, fmt.Errorf("%w: catalog bar %.0f mm / %.1f mm²",
				ErrPrecondition, bar.Diameter, bar.Area)
		}
	}

	var best BarArrangement
	minWaste := math.Inf(1)

	for _, bar := range catalog {
		count := int(math.Ceil(asRequired / bar.Area))
		if requiredWidth(count, bar.Diameter) > width {
			continue
		}

		provided := float64(count) * bar.Area
		if waste := provided - asRequired; waste < minWaste {
			minWaste = waste
			best = BarArrangement{
				Diameter:   bar.Diameter,
				BarArea:    bar.Area,
				Count:      count,
				AsProvided: provided,
				Layers:     1,
			}
		}
	}

	if best.Count > 0 {
		return best, nil
	}

	// No single layer fits: stack the largest bar in two layers.
	largest := catalog[len(catalog)-1]
	count := int(math.Ceil(asRequired / largest.Area))
	perLayer := (count + 1) / 2
	if requiredWidth(perLayer, largest.Diameter) > width {
		return BarArrangement{}, fmt.Errorf("%w: %d-φ%.0f mm bars do not fit %.0f mm width even in two layers",
			ErrInfeasibleSection, count, largest.Diameter, width)
	}

	return BarArrangement{
		Diameter:   largest.Diameter,
		BarArea:    largest.Area,
		Count:      count,
		AsProvided: float64(count) * largest.Area,
		Layers:     2,
	}, nil
}
