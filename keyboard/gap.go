package keyboard

// RowLayoutParams describes a row-based layout whose gap is to be adjusted.
type RowLayoutParams struct {
	RowCount              int `json:"row_count"`
	KeyHeightPx           int `json:"key_height_px"`
	ExistingVerticalGapPx int `json:"existing_vertical_gap_px"`
}

// Height returns the total height of the row layout when rows are separated by gap.
func (p RowLayoutParams) Height(gap int) int {
	if p.RowCount <= 0 {
		return 0
	}
	return p.RowCount*p.KeyHeightPx + (p.RowCount-1)*gap
}

// AdjustGap returns the per-row gap that stretches the row layout to
// standardHeightPx. The gap only ever grows: when the rows already fill the
// standard height, the existing gap is returned.
//
// A single-row layout has no gaps to adjust and keeps its existing gap.
func AdjustGap(standardHeightPx int, p RowLayoutParams) int {
	gapCount := p.RowCount - 1
	if gapCount <= 0 {
		return p.ExistingVerticalGapPx
	}

	totalKeyHeight := p.RowCount * p.KeyHeightPx
	requiredGapSpace := standardHeightPx - totalKeyHeight
	// Go integer division truncates toward zero, negative space included.
	candidate := requiredGapSpace / gapCount

	return max(candidate, p.ExistingVerticalGapPx)
}
