package diagram

import (
	"fmt"
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// barPositions spreads count bar centers evenly between the side covers
func barPositions(width float64, count int, diameter float64) []float64 {
	positions := make([]float64, count)
	if count == 1 {
		positions[0] = width / 2
		return positions
	}
	edge := 25.0 + diameter/2
	step := (width - 2*edge) / float64(count-1)
	for i := range positions {
		positions[i] = edge + float64(i)*step
	}
	return positions
}

// ExportSection exports the designed section to an image file.
// Supported formats by extension: png, svg, pdf, jpg
func ExportSection(data SectionData, filename string) error {
	ext := filepath.Ext(filename)
	switch ext {
	case ".png", ".svg", ".pdf", ".jpg":
	default:
		return fmt.Errorf("unsupported image format: %s (use png, svg, pdf, or jpg)", ext)
	}

	p := plot.New()
	p.Title.Text = "Designed Beam Section"
	p.X.Label.Text = "Width (mm)"
	p.Y.Label.Text = "Height (mm)"

	// Section outline
	outline, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: 0},
		{X: data.Width, Y: 0},
		{X: data.Width, Y: data.Height},
		{X: 0, Y: data.Height},
		{X: 0, Y: 0},
	})
	if err != nil {
		return err
	}
	outline.LineStyle.Width = vg.Points(2)
	outline.LineStyle.Color = color.Black
	p.Add(outline)

	// Stress block
	if data.StressBlockDepth > 0 {
		block, err := plotter.NewPolygon(plotter.XYs{
			{X: 0, Y: data.Height},
			{X: data.Width, Y: data.Height},
			{X: data.Width, Y: data.Height - data.StressBlockDepth},
			{X: 0, Y: data.Height - data.StressBlockDepth},
		})
		if err != nil {
			return err
		}
		block.Color = color.RGBA{R: 100, G: 149, B: 237, A: 150}
		block.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
		p.Add(block)
	}

	// Tension bars; a two-layer arrangement splits across two rows
	perLayer := data.BarCount
	if data.BarLayers > 1 {
		perLayer = (data.BarCount + 1) / 2
	}
	var barPts plotter.XYs
	remaining := data.BarCount
	for layer := 0; layer < data.BarLayers && remaining > 0; layer++ {
		rowCount := perLayer
		if rowCount > remaining {
			rowCount = remaining
		}
		y := data.BarY + float64(layer)*(data.BarDiameter+25)
		for _, x := range barPositions(data.Width, rowCount, data.BarDiameter) {
			barPts = append(barPts, plotter.XY{X: x, Y: y})
		}
		remaining -= rowCount
	}
	bars, err := plotter.NewScatter(barPts)
	if err != nil {
		return err
	}
	bars.GlyphStyle.Shape = draw.CircleGlyph{}
	bars.GlyphStyle.Radius = vg.Points(4)
	bars.GlyphStyle.Color = color.RGBA{R: 178, G: 34, B: 34, A: 255}
	p.Add(bars)

	// Compression bars
	if data.CompBarCount > 0 {
		var compPts plotter.XYs
		for _, x := range barPositions(data.Width, data.CompBarCount, data.BarDiameter) {
			compPts = append(compPts, plotter.XY{X: x, Y: data.Height - data.CompBarY})
		}
		comp, err := plotter.NewScatter(compPts)
		if err != nil {
			return err
		}
		comp.GlyphStyle.Shape = draw.CircleGlyph{}
		comp.GlyphStyle.Radius = vg.Points(3)
		comp.GlyphStyle.Color = color.RGBA{R: 178, G: 34, B: 34, A: 255}
		p.Add(comp)
	}

	// Keep millimetres square on the page
	widthIn := 4 * vg.Inch
	heightIn := widthIn * vg.Length(data.Height/data.Width)
	if heightIn > 8*vg.Inch {
		heightIn = 8 * vg.Inch
	}

	return p.Save(widthIn, heightIn, filename)
}
