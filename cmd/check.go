package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/nbcc"
)

var (
	checkSpan    float64
	checkDepth   float64
	checkSupport string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the span-to-depth serviceability limit",
	Long: `Check the span-to-depth ratio of a beam against the deflection
control limit for its support condition.

Examples:
  gobeam check --span 6 --depth 500

  gobeam check --span 3 --depth 300 --support cantilever`,
	Run: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().Float64VarP(&checkSpan, "span", "L", 0, "Beam span (m) [required]")
	checkCmd.Flags().Float64Var(&checkDepth, "depth", 0, "Beam total depth (mm) [required]")
	checkCmd.Flags().StringVar(&checkSupport, "support", "simply-supported", "Support condition")

	checkCmd.MarkFlagRequired("span")
	checkCmd.MarkFlagRequired("depth")
}

func runCheck(cmd *cobra.Command, args []string) {
	condition, err := nbcc.ParseSupportCondition(checkSupport)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	result, err := beam.CheckServiceability(checkSpan, checkDepth, condition)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("            SPAN-TO-DEPTH SERVICEABILITY CHECK")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span (L):\t%.2f m\n", checkSpan)
	fmt.Fprintf(w, "  Total Depth (h):\t%.0f mm\n", checkDepth)
	fmt.Fprintf(w, "  Support Condition:\t%s\n", condition)
	fmt.Fprintf(w, "  L/h actual:\t%.2f\n", result.RatioActual)
	fmt.Fprintf(w, "  L/h limit:\t%.0f\n", result.RatioLimit)
	w.Flush()
	fmt.Println()

	if result.Passes {
		fmt.Println("  ✓ Deflection control OK")
	} else {
		fmt.Println("  ✗ Exceeds span-to-depth limit - increase depth or run a")
		fmt.Println("    detailed deflection calculation")
	}
	fmt.Println()
}
