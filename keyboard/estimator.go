package keyboard

import "math"

// GridSize holds the key geometry of the grid layout for a given width.
type GridSize struct {
	// Width is the total layout width the geometry was derived from.
	Width int `json:"width"`
	// Gap is the spacing between adjacent keys, both horizontally and vertically.
	Gap       int `json:"gap"`
	KeyWidth  int `json:"key_width"`
	KeyHeight int `json:"key_height"`
	// Height is the total grid height: GridRows keys plus the gaps between them.
	Height int `json:"height"`
}

// EstimateGrid derives the grid layout's key geometry from its total width.
//
// Widths small enough to make the key width negative are not rejected; the
// GridMinGapPx floor is the only clamp applied.
func EstimateGrid(totalWidthPx int) GridSize {
	gap := max(int(math.Floor(float64(totalWidthPx)*GridGapFraction)), GridMinGapPx)
	keyWidth := (totalWidthPx - (GridColumns-1)*gap) / GridColumns
	keyHeight := int(math.Floor(float64(keyWidth) * GridKeyHeightFraction))

	return GridSize{
		Width:     totalWidthPx,
		Gap:       gap,
		KeyWidth:  keyWidth,
		KeyHeight: keyHeight,
		Height:    keyHeight*GridRows + gap*(GridRows-1),
	}
}

// EstimateHeight returns the height of the grid layout at the given width.
func EstimateHeight(totalWidthPx int) int {
	return EstimateGrid(totalWidthPx).Height
}
