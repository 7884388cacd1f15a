// Package layout provides responsive layout calculations for the calculator.
package layout

// LayoutMode represents the current layout mode based on terminal dimensions.
type LayoutMode int

const (
	// LayoutSplit puts the form and the results side by side.
	LayoutSplit LayoutMode = iota

	// LayoutStacked puts the form above the results.
	LayoutStacked

	// LayoutMinimal is for terminals below minimum size.
	// Shows a warning instead of the panels.
	LayoutMinimal
)

// String returns the string representation of the layout mode.
func (m LayoutMode) String() string {
	switch m {
	case LayoutSplit:
		return "split"
	case LayoutStacked:
		return "stacked"
	case LayoutMinimal:
		return "minimal"
	default:
		return "unknown"
	}
}

// DetermineMode calculates the appropriate layout mode for the given dimensions.
func DetermineMode(width, height int) LayoutMode {
	switch {
	case width < MinWidth || height < MinHeight:
		return LayoutMinimal
	case width >= SplitWidth:
		return LayoutSplit
	default:
		return LayoutStacked
	}
}
