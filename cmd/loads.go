package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/nbcc"
	"github.com/spf13/cobra"
)

var (
	// Unfactored line loads (kN/m)
	loadsDead float64
	loadsLive float64
	loadsSnow float64

	loadsShowAll bool
)

var loadsCmd = &cobra.Command{
	Use:   "loads",
	Short: "Evaluate NBCC load combinations for a distributed load",
	Long: `Evaluate the NBCC ultimate limit states load combinations for
unfactored dead, live and snow line loads and report the governing
factored load.

Load Types:
  D - Dead load
  L - Live load
  S - Snow load

Examples:
  # Gravity loads only
  gobeam loads --dead 10 --live 25

  # With snow, showing every combination
  gobeam loads --dead 10 --live 25 --snow 2 --all`,
	Run: runLoads,
}

func init() {
	rootCmd.AddCommand(loadsCmd)

	loadsCmd.Flags().Float64VarP(&loadsDead, "dead", "d", 0, "Unfactored dead load (kN/m)")
	loadsCmd.Flags().Float64VarP(&loadsLive, "live", "l", 0, "Unfactored live load (kN/m)")
	loadsCmd.Flags().Float64VarP(&loadsSnow, "snow", "s", 0, "Unfactored snow load (kN/m)")
	loadsCmd.Flags().BoolVarP(&loadsShowAll, "all", "a", false, "Show all load combination results")
}

func runLoads(cmd *cobra.Command, args []string) {
	if loadsDead == 0 && loadsLive == 0 && loadsSnow == 0 {
		fmt.Println("Error: Please provide at least one unfactored load.")
		fmt.Println("Use 'gobeam loads --help' for usage information.")
		return
	}

	result, err := beam.EvaluateCombinations(loadsDead, loadsLive, loadsSnow, nbcc.ULSCombinations)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("            NBCC FACTORED LOAD EVALUATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("UNFACTORED LOADS (kN/m):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if loadsDead != 0 {
		fmt.Fprintf(w, "  Dead Load (D):\t%.2f\n", loadsDead)
	}
	if loadsLive != 0 {
		fmt.Fprintf(w, "  Live Load (L):\t%.2f\n", loadsLive)
	}
	if loadsSnow != 0 {
		fmt.Fprintf(w, "  Snow Load (S):\t%.2f\n", loadsSnow)
	}
	w.Flush()
	fmt.Println()

	if loadsShowAll {
		fmt.Println("LOAD COMBINATIONS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Combination\twf (kN/m)\n")
		fmt.Fprintf(w, "  ───────────\t─────────\n")
		for _, c := range result.Combinations {
			marker := ""
			if c.Name == result.GoverningName {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%.2f%s\n", c.Name, c.Value, marker)
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Governing Combination: %s\n", result.GoverningName)
	fmt.Println()
	fmt.Printf("  ╔═══════════════════════════════════╗\n")
	fmt.Printf("  ║  FACTORED LOAD (wf) = %.2f kN/m  \n", result.GoverningValue)
	fmt.Printf("  ╚═══════════════════════════════════╝\n")
	fmt.Println()
}
