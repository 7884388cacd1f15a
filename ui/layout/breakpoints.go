package layout

// Size breakpoints
const (
	// MinWidth is the narrowest terminal the calculator draws in.
	MinWidth = 60

	// MinHeight is the shortest terminal the calculator draws in.
	MinHeight = 16

	// SplitWidth is the threshold for placing the form and results side by side.
	SplitWidth = 100
)

// Form panel constraints
const (
	// FormPanelWidth is the fixed form width in split mode (fields + border).
	FormPanelWidth = 36

	// FormPanelHeight is the form height: title, blank line, six fields, border.
	FormPanelHeight = 10
)

// Result panel constraints
const (
	// ResultMinWidth keeps the report's label and value columns on one line.
	ResultMinWidth = 44

	// ResultMaxWidth prevents over-stretching the report.
	ResultMaxWidth = 72
)

// Component constraints
const (
	// HelpHeight is the fixed key help line height.
	HelpHeight = 1

	// StatusHeight is the fixed status line height.
	StatusHeight = 1
)
