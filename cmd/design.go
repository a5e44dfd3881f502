package cmd

import (
	"errors"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/nbcc"
	"github.com/alexiusacademia/gobeam/internal/report"
)

var (
	// Loading
	designDead   float64
	designLive   float64
	designSnow   float64
	designPoints []string

	// Geometry
	designSpan    float64
	designSupport string
	designWidth   float64
	designDepth   float64
	designCover   float64

	// Materials
	designFc  float64
	designFy  float64
	designFyv float64

	// Options
	designIterate     bool
	designShowDiagram bool
	designExportFile  string
	designReportFile  string
)

// Depth increase per serviceability iteration and the bound on it.
const (
	depthStep     = 50.0 // mm
	maxDepthSteps = 10
)

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Design a rectangular beam end to end",
	Long: `Run the full design pipeline for a rectangular reinforced
concrete beam: NBCC load combinations, factored internal forces,
flexural reinforcement with a practical bar arrangement, stirrup
design, and the span-to-depth serviceability check.

With --iterate the total depth is increased in 50 mm steps until the
serviceability check passes before the reinforcement is designed.

Examples:
  # 6 m simply supported beam, 300x500 section
  gobeam design --dead 10 --live 25 --snow 2 --span 6 \
    --width 300 --depth 500 --cover 40 --fc 30 --fy 400

  # With point loads, a section diagram and a PDF calc sheet
  gobeam design --dead 10 --live 25 --span 6 --width 300 --depth 500 \
    --point 70@2.0 --diagram --report beam.pdf`,
	Run: runDesign,
}

func init() {
	rootCmd.AddCommand(designCmd)

	designCmd.Flags().Float64Var(&designDead, "dead", 0, "Unfactored dead load (kN/m)")
	designCmd.Flags().Float64Var(&designLive, "live", 0, "Unfactored live load (kN/m)")
	designCmd.Flags().Float64Var(&designSnow, "snow", 0, "Unfactored snow load (kN/m)")
	designCmd.Flags().StringArrayVarP(&designPoints, "point", "P", nil, "Factored point load as load@distance (kN @ m)")

	designCmd.Flags().Float64VarP(&designSpan, "span", "L", 0, "Beam span (m) [required]")
	designCmd.Flags().StringVar(&designSupport, "support", "simply-supported", "Support condition")
	designCmd.Flags().Float64VarP(&designWidth, "width", "b", 0, "Beam width (mm) [required]")
	designCmd.Flags().Float64Var(&designDepth, "depth", 0, "Beam total depth (mm) [required]")
	designCmd.Flags().Float64VarP(&designCover, "cover", "c", 40, "Concrete cover (mm)")

	designCmd.Flags().Float64Var(&designFc, "fc", 30, "Concrete compressive strength f'c (MPa)")
	designCmd.Flags().Float64Var(&designFy, "fy", 400, "Steel yield strength fy (MPa)")
	designCmd.Flags().Float64Var(&designFyv, "fyv", 0, "Stirrup yield strength (MPa, defaults to fy)")

	designCmd.Flags().BoolVar(&designIterate, "iterate", false, "Increase depth until the serviceability check passes")
	designCmd.Flags().BoolVar(&designShowDiagram, "diagram", false, "Show ASCII section diagram")
	designCmd.Flags().StringVarP(&designExportFile, "output", "o", "", "Export section diagram to file (png, svg, pdf)")
	designCmd.Flags().StringVar(&designReportFile, "report", "", "Write a PDF calculation sheet to file")

	designCmd.MarkFlagRequired("span")
	designCmd.MarkFlagRequired("width")
	designCmd.MarkFlagRequired("depth")
}

func runDesign(cmd *cobra.Command, args []string) {
	condition, err := nbcc.ParseSupportCondition(designSupport)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	points, err := parsePointLoads(designPoints)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if designDead == 0 && designLive == 0 && designSnow == 0 && len(points) == 0 {
		fmt.Println("Error: Please provide at least one load.")
		return
	}

	fyv := designFyv
	if fyv == 0 {
		fyv = designFy
	}

	// Stage 1: governing factored load
	loads, err := beam.EvaluateCombinations(designDead, designLive, designSnow, nbcc.ULSCombinations)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	// Stage 2: design actions
	forces, err := beam.ComputeInternalForces(loads.GoverningValue, designSpan, condition, points)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	// Serviceability drives the depth; the force coefficients do not
	// depend on it, so the depth can be settled before the
	// reinforcement is designed.
	depth := designDepth
	service, err := beam.CheckServiceability(designSpan, depth, condition)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	for steps := 0; designIterate && !service.Passes && steps < maxDepthSteps; steps++ {
		depth += depthStep
		service, err = beam.CheckServiceability(designSpan, depth, condition)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}

	section := beam.NewSection(designWidth, depth, designCover)
	materials := beam.NewMaterials(designFc, designFy)
	materials.FyStirrup = fyv

	// Stage 3: flexural reinforcement
	flexure, err := beam.DesignFlexure(forces.Moment, section, materials)
	if err != nil {
		printDesignError(err)
		return
	}

	// Stage 4: bar arrangement
	bars, err := beam.SelectBars(flexure.AsRequired, section.Width, nbcc.StandardBars)
	if err != nil {
		printDesignError(err)
		return
	}
	var compBars *beam.BarArrangement
	if flexure.IsDoublyReinforced {
		cb, err := beam.SelectBars(flexure.AsCompression, section.Width, nbcc.StandardBars)
		if err != nil {
			printDesignError(err)
			return
		}
		compBars = &cb
	}

	// Stage 5: shear reinforcement
	shear, err := beam.DesignShear(forces.Shear, section, materials.FcPrime, materials.FyStirrup)
	if err != nil {
		printDesignError(err)
		return
	}

	printDesignReport(condition, depth, loads, forces, section, materials, flexure, bars, compBars, shear, service)

	if designShowDiagram {
		fmt.Println(diagram.DrawSection(sectionData(section, flexure, bars, compBars)))
	}
	if designExportFile != "" {
		if err := diagram.ExportSection(sectionData(section, flexure, bars, compBars), designExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", designExportFile)
		}
	}
	if designReportFile != "" {
		summary := report.Design{
			DeadLoad:        designDead,
			LiveLoad:        designLive,
			SnowLoad:        designSnow,
			SpanM:           designSpan,
			Support:         condition,
			Section:         section,
			Material:        materials,
			Loads:           loads,
			Forces:          forces,
			Flexure:         flexure,
			TensionBars:     bars,
			CompressionBars: compBars,
			Shear:           shear,
			Serviceability:  service,
		}
		if err := report.WritePDF(summary, designReportFile); err != nil {
			fmt.Printf("Error writing report: %v\n", err)
		} else {
			fmt.Printf("Calculation sheet written to: %s\n", designReportFile)
		}
	}
}

func sectionData(s beam.Section, f beam.FlexuralDesign, bars beam.BarArrangement, comp *beam.BarArrangement) diagram.SectionData {
	data := diagram.SectionData{
		Width:            s.Width,
		Height:           s.Depth,
		StressBlockDepth: f.StressBlockDepth,
		BarDiameter:      bars.Diameter,
		BarCount:         bars.Count,
		BarLayers:        bars.Layers,
		BarY:             s.Depth - f.EffectiveDepth,
	}
	if comp != nil {
		data.CompBarCount = comp.Count
		data.CompBarY = f.CompressionDepth
	}
	return data
}

func printDesignError(err error) {
	switch {
	case errors.Is(err, beam.ErrInfeasibleSection):
		fmt.Println()
		fmt.Println("  ╔═════════════════════════════════════════╗")
		fmt.Println("  ║  SECTION INFEASIBLE                     ║")
		fmt.Println("  ╚═════════════════════════════════════════╝")
		fmt.Printf("  %v\n", err)
		fmt.Println("  Increase the section size and run the design again.")
	default:
		fmt.Printf("Error: %v\n", err)
	}
}

func printDesignReport(condition nbcc.SupportCondition, depth float64,
	loads beam.FactoredLoadResult, forces beam.InternalForces,
	section beam.Section, materials beam.Materials,
	flexure beam.FlexuralDesign, bars beam.BarArrangement, compBars *beam.BarArrangement,
	shear beam.ShearDesign, service beam.ServiceabilityResult) {

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("            RC BEAM DESIGN - NBCC LIMIT STATES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span (L):\t%.2f m (%s)\n", designSpan, condition)
	fmt.Fprintf(w, "  Beam Width (b):\t%.0f mm\n", section.Width)
	if depth != designDepth {
		fmt.Fprintf(w, "  Beam Depth (h):\t%.0f mm (increased from %.0f for deflection control)\n", depth, designDepth)
	} else {
		fmt.Fprintf(w, "  Beam Depth (h):\t%.0f mm\n", depth)
	}
	fmt.Fprintf(w, "  Effective Depth (d):\t%.0f mm\n", flexure.EffectiveDepth)
	fmt.Fprintf(w, "  Concrete Cover:\t%.0f mm\n", section.Cover)
	fmt.Fprintf(w, "  f'c:\t%.1f MPa\n", materials.FcPrime)
	fmt.Fprintf(w, "  fy:\t%.1f MPa\n", materials.Fy)
	w.Flush()
	fmt.Println()

	fmt.Println("FACTORED LOADS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, c := range loads.Combinations {
		marker := ""
		if c.Name == loads.GoverningName {
			marker = " ← GOVERNS"
		}
		fmt.Fprintf(w, "  %s\t%.2f kN/m%s\n", c.Name, c.Value, marker)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("DESIGN ACTIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Factored Moment (Mf):\t%.2f kN·m\n", forces.Moment)
	fmt.Fprintf(w, "  Factored Shear (Vf):\t%.2f kN\n", forces.Shear)
	w.Flush()
	fmt.Println()

	fmt.Println("FLEXURAL DESIGN:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  ρ_bal:\t%.6f\n", flexure.RhoBalanced)
	fmt.Fprintf(w, "  ρ_max:\t%.6f\n", flexure.RhoMax)
	fmt.Fprintf(w, "  As,min:\t%.2f mm²\n", flexure.AsMin)
	fmt.Fprintf(w, "  As required:\t%.2f mm²\n", flexure.AsRequired)
	if flexure.IsDoublyReinforced {
		fmt.Fprintf(w, "  As' (compression):\t%.2f mm² at d' = %.0f mm\n", flexure.AsCompression, flexure.CompressionDepth)
	}
	fmt.Fprintf(w, "  Stress block depth (a):\t%.2f mm\n", flexure.StressBlockDepth)
	fmt.Fprintf(w, "  Moment resistance (Mr):\t%.2f kN·m\n", flexure.MomentResistance)
	sectionType := "Singly reinforced"
	if flexure.IsDoublyReinforced {
		sectionType = "Doubly reinforced"
	}
	fmt.Fprintf(w, "  Section type:\t%s\n", sectionType)
	w.Flush()
	fmt.Println()

	fmt.Println("BAR ARRANGEMENT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  TENSION: %d - φ%.0fmm (%.0f mm²)        \n", bars.Count, bars.Diameter, bars.AsProvided)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	if bars.Layers > 1 {
		fmt.Printf("  ⚠ Bars require %d layers - consider a wider section\n", bars.Layers)
	}
	if compBars != nil {
		fmt.Printf("  Compression: %d - φ%.0fmm (%.0f mm²)\n", compBars.Count, compBars.Diameter, compBars.AsProvided)
	}
	printBarAlternatives(flexure.AsRequired, section.Width)
	fmt.Println()

	fmt.Println("SHEAR DESIGN:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Concrete capacity (Vc):\t%.2f kN\n", shear.ConcreteCapacity)
	if shear.RequiresReinforcement {
		fmt.Fprintf(w, "  Stirrups:\tφ%.0fmm %d-leg @ %.0f mm\n", shear.StirrupDiameter, shear.Legs, shear.Spacing)
	} else {
		fmt.Fprintf(w, "  Stirrups:\tnominal only, φ%.0fmm %d-leg @ %.0f mm\n", shear.StirrupDiameter, shear.Legs, shear.Spacing)
	}
	fmt.Fprintf(w, "  Maximum spacing:\t%.0f mm\n", shear.SpacingMax)
	w.Flush()
	fmt.Println()

	fmt.Println("SERVICEABILITY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  L/h actual:\t%.2f\n", service.RatioActual)
	fmt.Fprintf(w, "  L/h limit:\t%.0f\n", service.RatioLimit)
	status := "✓ OK"
	if !service.Passes {
		status = "✗ FAIL - increase depth or run a detailed deflection check"
	}
	fmt.Fprintf(w, "  Deflection control:\t%s\n", status)
	w.Flush()
	fmt.Println()
}

// printBarAlternatives lists the other single-layer arrangements that
// would satisfy the required area within the width.
func printBarAlternatives(asRequired, width float64) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "\n  Alternatives\tAs Provided\tRatio\n")
	fmt.Fprintf(w, "  ────────────\t───────────\t─────\n")
	for _, bar := range nbcc.StandardBars {
		count := int(math.Ceil(asRequired / bar.Area))
		required := float64(count)*bar.Diameter + float64(count-1)*nbcc.MinClearSpacing + 2*nbcc.EdgeAllowance
		if required > width {
			continue
		}
		provided := float64(count) * bar.Area
		fmt.Fprintf(w, "  %d - φ%.0fmm\t%.2f mm²\t%.2f\n", count, bar.Diameter, provided, provided/asRequired)
	}
	w.Flush()
}
