package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gobeam/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gobeam",
	Short: "Reinforced Concrete Beam Design Tool",
	Long: `gobeam - Go Reinforced Concrete Beam Designer

A CLI tool for the design of reinforced concrete beams
based on the National Building Code of Canada (NBCC) and CSA A23.3.

This tool helps structural engineers perform:
  - Factored load evaluation using NBCC load combinations
  - Internal force calculation for common support conditions
  - Flexural design (singly and doubly reinforced beams)
  - Practical bar arrangement selection
  - Shear design and stirrup spacing
  - Span-to-depth serviceability checks

All calculations follow the limit states design method.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gobeam v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Reinforced Concrete Beam Designer                    ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the design of reinforced concrete beams")
		fmt.Println("  based on the National Building Code of Canada (NBCC).")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Factored load evaluation using NBCC load combinations")
		fmt.Println("    • Internal forces for common support conditions")
		fmt.Println("    • Flexural and shear reinforcement design")
		fmt.Println("    • Practical bar arrangement selection")
		fmt.Println("    • Span-to-depth serviceability checks")
		fmt.Println()
		fmt.Println("  Use 'gobeam --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
