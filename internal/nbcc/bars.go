package nbcc

// CatalogBar is one standard reinforcing bar size.
type CatalogBar struct {
	Diameter float64 // mm
	Area     float64 // mm², catalog value, never recomputed
}

// StandardBars is the default bar catalog in ascending diameter.
// Catalog order is the tie-break order for bar selection.
var StandardBars = []CatalogBar{
	{Diameter: 10, Area: 78.5},
	{Diameter: 15, Area: 177},
	{Diameter: 20, Area: 314},
	{Diameter: 25, Area: 491},
	{Diameter: 30, Area: 707},
	{Diameter: 35, Area: 962},
}

// Practical detailing constants (mm)
const (
	// Minimum clear spacing between parallel bars
	MinClearSpacing = 25.0

	// Side allowance from bar face to section face
	EdgeAllowance = 25.0

	// Deduction from cover to the tension steel centroid,
	// covering the stirrup plus half a typical bar
	BarAllowance = 20.0

	// Stirrup detailing
	StirrupDiameter = 10.0 // mm
	StirrupLegs     = 2

	// Stirrup spacing practice
	SpacingIncrement = 25.0  // round spacing down to this multiple
	SpacingFloor     = 75.0  // hard constructibility minimum
	SpacingCap       = 600.0 // absolute maximum per code
	SpacingPractical = 300.0 // practical maximum when only nominal stirrups govern
)
