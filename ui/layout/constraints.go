package layout

// Constraints holds the computed layout constraints for all components.
type Constraints struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Computed mode
	Mode LayoutMode

	// Panel dimensions (computed)
	FormWidth    int
	FormHeight   int
	ResultWidth  int
	ResultHeight int
	HelpWidth    int
	HelpHeight   int
	StatusHeight int

	ShowMinWarning bool // Terminal is below minimum size
}

// ComputeConstraints calculates layout constraints for the given terminal dimensions.
func ComputeConstraints(width, height int) Constraints {
	c := Constraints{
		TerminalWidth:  width,
		TerminalHeight: height,
		Mode:           DetermineMode(width, height),
		HelpWidth:      width,
		HelpHeight:     HelpHeight,
		StatusHeight:   StatusHeight,
	}

	contentHeight := max(height-c.HelpHeight-c.StatusHeight, 0)

	switch c.Mode {
	case LayoutSplit:
		c.FormWidth = FormPanelWidth
		c.ResultWidth = clamp(width-FormPanelWidth, ResultMinWidth, ResultMaxWidth)
		c.FormHeight = contentHeight
		c.ResultHeight = contentHeight
	case LayoutStacked:
		panelWidth := min(width, ResultMaxWidth)
		c.FormWidth = panelWidth
		c.ResultWidth = panelWidth
		c.FormHeight = min(FormPanelHeight, contentHeight)
		c.ResultHeight = contentHeight - c.FormHeight
	default:
		c.ShowMinWarning = true
		c.ResultWidth = width
		c.ResultHeight = contentHeight
	}

	return c
}

// Helper functions

func clamp(value, minVal, maxVal int) int {
	if value < minVal {
		return minVal
	}
	if value > maxVal {
		return maxVal
	}
	return value
}
