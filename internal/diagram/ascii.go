package diagram

import (
	"fmt"
	"strings"
)

// SectionData holds a designed rectangular section for rendering
type SectionData struct {
	// Beam dimensions
	Width  float64 // mm
	Height float64 // mm

	// Depth of the rectangular stress block from the compression face
	StressBlockDepth float64 // mm

	// Tension reinforcement
	BarDiameter float64 // mm
	BarCount    int
	BarLayers   int
	BarY        float64 // steel centroid from the bottom face (mm)

	// Compression reinforcement (doubly reinforced sections)
	CompBarCount int
	CompBarY     float64 // from the top face (mm)
}

// barLabel formats a bar group as e.g. "4-φ25mm"
func barLabel(count int, diameter float64) string {
	return fmt.Sprintf("%d-φ%.0fmm", count, diameter)
}

// overlay splices a marker into the fill centered on mid, rune-safe
// because the stress block shading is multibyte
func overlay(fill string, mid int, marker string) string {
	runes := []rune(fill)
	glyphs := []rune(marker)
	start := mid - len(glyphs)/2
	for i, g := range glyphs {
		if start+i >= 0 && start+i < len(runes) {
			runes[start+i] = g
		}
	}
	return string(runes)
}

// DrawSection creates an ASCII sketch of the designed section with the
// stress block shaded and the reinforcement marked
func DrawSection(data SectionData) string {
	var sb strings.Builder

	widthChars := 30
	heightChars := 18

	aLine := 0
	if data.Height > 0 {
		aLine = int(data.StressBlockDepth / data.Height * float64(heightChars))
	}
	tensionLine := heightChars
	if data.Height > 0 {
		tensionLine = heightChars - int(data.BarY/data.Height*float64(heightChars))
	}
	compLine := 0
	if data.CompBarCount > 0 && data.Height > 0 {
		compLine = int(data.CompBarY / data.Height * float64(heightChars))
	}

	sb.WriteString("\n")
	sb.WriteString("  DESIGNED SECTION\n")
	sb.WriteString("  ────────────────\n")

	for i := 0; i <= heightChars; i++ {
		switch {
		case i == 0:
			sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", widthChars)))
		case i == heightChars:
			sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", widthChars)))
		default:
			fill := strings.Repeat(" ", widthChars)
			if i <= aLine {
				// Compression stress block
				fill = strings.Repeat("░", widthChars)
			}

			mid := widthChars / 2
			if data.CompBarCount > 0 && i == compLine {
				fill = overlay(fill, mid, "●──●")
			}
			if i == tensionLine {
				fill = overlay(fill, mid, "●────●")
			}

			label := ""
			if i == aLine && aLine > 0 {
				label = fmt.Sprintf(" ◄─ a = %.1f mm", data.StressBlockDepth)
			}
			if i == tensionLine {
				label = " ◄─ " + barLabel(data.BarCount, data.BarDiameter)
				if data.BarLayers > 1 {
					label += fmt.Sprintf(" in %d layers", data.BarLayers)
				}
			}
			if data.CompBarCount > 0 && i == compLine {
				label = " ◄─ " + barLabel(data.CompBarCount, data.BarDiameter)
			}
			sb.WriteString(fmt.Sprintf("  │%s│%s\n", fill, label))
		}
	}

	sb.WriteString(fmt.Sprintf("\n  b × h = %.0f × %.0f mm\n", data.Width, data.Height))
	return sb.String()
}
