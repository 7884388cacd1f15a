package keyboard

// Grid layout geometry. The grid-based layout is a fixed 5x4 key grid whose
// height is derived entirely from its width.
const (
	// GridColumns is the number of key columns in the grid layout.
	GridColumns = 5

	// GridRows is the number of key rows in the grid layout.
	GridRows = 4

	// GridGapFraction is the gap between keys as a fraction of the total width.
	GridGapFraction = 0.01

	// GridMinGapPx is the smallest gap the grid layout will use.
	GridMinGapPx = 4

	// GridKeyHeightFraction is a key's height as a fraction of its width.
	GridKeyHeightFraction = 0.80
)

// Height constraints
const (
	// MaxHeightMillimeters is the tallest a keyboard may be, physically.
	MaxHeightMillimeters = 50.0

	// LandscapeMaxScreenFraction caps the keyboard in landscape to this share
	// of the screen height.
	LandscapeMaxScreenFraction = 0.55

	// MillimetersPerInch converts density (px/inch) to px/mm.
	MillimetersPerInch = 25.4
)
