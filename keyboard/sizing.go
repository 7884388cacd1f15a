package keyboard

// Sizing holds every value computed by one pass of the height pipeline.
type Sizing struct {
	// Inputs
	Metrics DisplayMetrics  `json:"metrics"`
	Row     RowLayoutParams `json:"row"`

	Orientation Orientation `json:"orientation"`

	// Grid layout geometry from the width-based estimate
	Grid GridSize `json:"grid"`

	// Caps (zero when not applicable)
	MaxHeightPx     int  `json:"max_height_px"`
	DensityCapped   bool `json:"density_capped"` // the millimeter cap lowered the height
	LandscapeCapPx  int  `json:"landscape_cap_px"`
	LandscapeCapped bool `json:"landscape_capped"` // the landscape cap lowered the height

	// StandardHeight is the height every layout converges to.
	StandardHeight int `json:"standard_height"`

	// Row layout adjustment
	AdjustedGap int  `json:"adjusted_gap"`
	RowHeight   int  `json:"row_height"` // row layout height with AdjustedGap
	GapGrown    bool `json:"gap_grown"`  // AdjustedGap is larger than the existing gap
}

// DensityKnown reports whether the millimeter cap could be evaluated.
func (s Sizing) DensityKnown() bool {
	return s.Metrics.DensityKnown()
}

// Converged reports whether the row layout reaches the standard height exactly.
// Truncation in the gap division or a gap that could not shrink both leave
// the row layout off by some pixels.
func (s Sizing) Converged() bool {
	return s.RowHeight == s.StandardHeight
}

// ComputeSizing runs the full pipeline: estimate the grid height from
// gridWidthPx, cap it for the display, then adjust the row layout's gap to
// match. A gridWidthPx <= 0 uses the screen width.
func ComputeSizing(m DisplayMetrics, gridWidthPx int, row RowLayoutParams) Sizing {
	if gridWidthPx <= 0 {
		gridWidthPx = m.ScreenWidthPx
	}

	s := Sizing{
		Metrics:     m,
		Row:         row,
		Orientation: m.Orientation(),
		Grid:        EstimateGrid(gridWidthPx),
	}

	// 1. Physical caps
	s.StandardHeight = CapHeight(s.Grid.Height, m)
	if maxHeight, ok := MaxHeightPx(m.VerticalDensity); ok {
		s.MaxHeightPx = maxHeight
		s.DensityCapped = maxHeight < s.Grid.Height

		if landscapeCap, ok := LandscapeCapPx(m); ok {
			s.LandscapeCapPx = landscapeCap
			s.LandscapeCapped = landscapeCap < min(s.Grid.Height, maxHeight)
		}
	}

	// 2. Row layout gap
	s.AdjustedGap = AdjustGap(s.StandardHeight, row)
	s.RowHeight = row.Height(s.AdjustedGap)
	s.GapGrown = s.AdjustedGap > row.ExistingVerticalGapPx

	return s
}
