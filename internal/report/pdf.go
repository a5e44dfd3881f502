package report

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/nbcc"
)

// Design aggregates one full pipeline run for the calculation sheet.
type Design struct {
	// Inputs
	DeadLoad float64 // kN/m
	LiveLoad float64 // kN/m
	SnowLoad float64 // kN/m
	SpanM    float64
	Support  nbcc.SupportCondition
	Section  beam.Section
	Material beam.Materials

	// Results
	Loads           beam.FactoredLoadResult
	Forces          beam.InternalForces
	Flexure         beam.FlexuralDesign
	TensionBars     beam.BarArrangement
	CompressionBars *beam.BarArrangement // nil when singly reinforced
	Shear           beam.ShearDesign
	Serviceability  beam.ServiceabilityResult
}

// WritePDF renders the design calculation sheet to filename.
func WritePDF(d Design, filename string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "RC Beam Design Calculation Sheet")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 5, fmt.Sprintf("NBCC limit states design - %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	heading := func(title string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
	}
	row := func(label, value string) {
		pdf.Cell(80, 6, label)
		pdf.Cell(0, 6, value)
		pdf.Ln(6)
	}

	heading("1. Design Inputs")
	row("Span", fmt.Sprintf("%.2f m, %s", d.SpanM, d.Support))
	row("Loads (D / L / S)", fmt.Sprintf("%.2f / %.2f / %.2f kN/m", d.DeadLoad, d.LiveLoad, d.SnowLoad))
	row("Section (b x h, cover)", fmt.Sprintf("%.0f x %.0f mm, %.0f mm", d.Section.Width, d.Section.Depth, d.Section.Cover))
	row("Materials (f'c / fy / fyv)", fmt.Sprintf("%.1f / %.1f / %.1f MPa", d.Material.FcPrime, d.Material.Fy, d.Material.FyStirrup))
	pdf.Ln(2)

	heading("2. Factored Loads")
	for _, c := range d.Loads.Combinations {
		mark := ""
		if c.Name == d.Loads.GoverningName {
			mark = "  << governs"
		}
		row(c.Name, fmt.Sprintf("%.2f kN/m%s", c.Value, mark))
	}
	pdf.Ln(2)

	heading("3. Design Actions")
	row("Factored moment Mf", fmt.Sprintf("%.2f kN-m", d.Forces.Moment))
	row("Factored shear Vf", fmt.Sprintf("%.2f kN", d.Forces.Shear))
	pdf.Ln(2)

	heading("4. Flexural Reinforcement")
	row("Effective depth d", fmt.Sprintf("%.1f mm", d.Flexure.EffectiveDepth))
	row("As required / As min", fmt.Sprintf("%.0f / %.0f mm2", d.Flexure.AsRequired, d.Flexure.AsMin))
	layout := fmt.Sprintf("%d - %.0fmm bars (%.0f mm2)", d.TensionBars.Count, d.TensionBars.Diameter, d.TensionBars.AsProvided)
	if d.TensionBars.Layers > 1 {
		layout += fmt.Sprintf(", %d layers", d.TensionBars.Layers)
	}
	row("Tension bars", layout)
	if d.Flexure.IsDoublyReinforced {
		row("Compression steel As'", fmt.Sprintf("%.0f mm2 at d' = %.0f mm", d.Flexure.AsCompression, d.Flexure.CompressionDepth))
		if d.CompressionBars != nil {
			row("Compression bars", fmt.Sprintf("%d - %.0fmm bars (%.0f mm2)",
				d.CompressionBars.Count, d.CompressionBars.Diameter, d.CompressionBars.AsProvided))
		}
	}
	row("Moment resistance Mr", fmt.Sprintf("%.2f kN-m", d.Flexure.MomentResistance))
	pdf.Ln(2)

	heading("5. Shear Reinforcement")
	row("Concrete capacity Vc", fmt.Sprintf("%.2f kN", d.Shear.ConcreteCapacity))
	if d.Shear.RequiresReinforcement {
		row("Stirrups", fmt.Sprintf("%.0fmm %d-leg at %.0f mm", d.Shear.StirrupDiameter, d.Shear.Legs, d.Shear.Spacing))
	} else {
		row("Stirrups", fmt.Sprintf("nominal only, %.0fmm %d-leg at %.0f mm", d.Shear.StirrupDiameter, d.Shear.Legs, d.Shear.Spacing))
	}
	row("Maximum spacing", fmt.Sprintf("%.0f mm", d.Shear.SpacingMax))
	pdf.Ln(2)

	heading("6. Serviceability")
	status := "PASS"
	if !d.Serviceability.Passes {
		status = "FAIL - increase depth or run a detailed deflection check"
	}
	row("Span-to-depth ratio", fmt.Sprintf("%.2f (limit %.0f)", d.Serviceability.RatioActual, d.Serviceability.RatioLimit))
	row("Deflection control", status)

	return pdf.OutputFileAndClose(filename)
}
