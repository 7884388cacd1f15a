package inspect

import (
	"fmt"
	"strings"
	"time"

	"kbheight/keyboard"
	"kbheight/ui/layout"
)

// SnapshotVersion is the version of the snapshot format.
const SnapshotVersion = "1"

// Snapshot represents the calculator's state at a point in time.
type Snapshot struct {
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`

	Terminal   TerminalInfo   `json:"terminal"`
	Calculator CalculatorInfo `json:"calculator"`
	Layout     LayoutInfo     `json:"layout"`

	// Sizing is nil while the inputs are invalid.
	Sizing *keyboard.Sizing `json:"sizing,omitempty"`

	// Components is the root of the component tree.
	Components *Node `json:"components,omitempty"`

	Breakpoints []BreakpointInfo `json:"breakpoints"`
}

// TerminalInfo contains terminal dimensions.
type TerminalInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// CalculatorInfo is the calculator's editing state.
type CalculatorInfo struct {
	Profile string `json:"profile,omitempty"`
	Focus   string `json:"focus"`
	Status  string `json:"status,omitempty"`
	Error   string `json:"error,omitempty"`
}

// LayoutInfo contains layout configuration.
type LayoutInfo struct {
	Mode         string          `json:"mode"`
	FormWidth    int             `json:"form_width"`
	FormHeight   int             `json:"form_height"`
	ResultWidth  int             `json:"result_width"`
	ResultHeight int             `json:"result_height"`
	Degradation  DegradationInfo `json:"degradation"`
}

// DegradationInfo contains active UI degradation flags.
type DegradationInfo struct {
	HideTitle      bool `json:"hide_title"`
	HideNotes      bool `json:"hide_notes"`
	ShortHelp      bool `json:"short_help"`
	ShowMinWarning bool `json:"show_min_warning"`
}

// BreakpointInfo contains information about a responsive breakpoint.
type BreakpointInfo struct {
	Name      string `json:"name"`
	Threshold int    `json:"threshold"`
	Active    bool   `json:"active"`
	// Dimension is "width" or "height".
	Dimension string `json:"dimension"`
}

// NewSnapshot creates a new snapshot with current timestamp.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Timestamp: time.Now(),
		Version:   SnapshotVersion,
	}
}

// WithTerminal sets terminal info and returns the snapshot for chaining.
func (s *Snapshot) WithTerminal(width, height int) *Snapshot {
	s.Terminal = TerminalInfo{Width: width, Height: height}
	return s
}

// WithLayout sets layout info from constraints and degradation.
func (s *Snapshot) WithLayout(c layout.Constraints, d layout.Degradation) *Snapshot {
	s.Layout = LayoutInfo{
		Mode:         c.Mode.String(),
		FormWidth:    c.FormWidth,
		FormHeight:   c.FormHeight,
		ResultWidth:  c.ResultWidth,
		ResultHeight: c.ResultHeight,
		Degradation: DegradationInfo{
			HideTitle:      d.HideTitle,
			HideNotes:      d.HideNotes,
			ShortHelp:      d.ShortHelp,
			ShowMinWarning: c.ShowMinWarning,
		},
	}

	s.Breakpoints = []BreakpointInfo{
		{Name: "split", Threshold: layout.SplitWidth, Active: c.Mode == layout.LayoutSplit, Dimension: "width"},
		{Name: "hide_title", Threshold: layout.TitleHideHeight, Active: d.HideTitle, Dimension: "height"},
		{Name: "hide_notes", Threshold: layout.NotesHideHeight, Active: d.HideNotes, Dimension: "height"},
		{Name: "short_help", Threshold: layout.ShortHelpWidth, Active: d.ShortHelp, Dimension: "width"},
	}
	return s
}

// WithCalculator sets the editing state and returns the snapshot for chaining.
func (s *Snapshot) WithCalculator(info CalculatorInfo) *Snapshot {
	s.Calculator = info
	return s
}

// WithSizing records the current result and returns the snapshot for chaining.
func (s *Snapshot) WithSizing(sizing keyboard.Sizing) *Snapshot {
	s.Sizing = &sizing
	return s
}

// WithComponents sets the component tree root.
func (s *Snapshot) WithComponents(root *Node) *Snapshot {
	s.Components = root
	return s
}

// ToText returns a human-readable text representation.
func (s *Snapshot) ToText() string {
	var b strings.Builder

	b.WriteString("=== UI Snapshot ===\n")
	b.WriteString(fmt.Sprintf("Time: %s\n", s.Timestamp.Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf("Terminal: %dx%d\n", s.Terminal.Width, s.Terminal.Height))
	b.WriteString(fmt.Sprintf("Focus: %s\n", s.Calculator.Focus))
	if s.Calculator.Error != "" {
		b.WriteString(fmt.Sprintf("Error: %s\n", s.Calculator.Error))
	}
	if s.Sizing != nil {
		b.WriteString(fmt.Sprintf("Standard height: %d px, gap %d px\n", s.Sizing.StandardHeight, s.Sizing.AdjustedGap))
	}

	b.WriteString("\n--- Layout ---\n")
	b.WriteString(fmt.Sprintf("Mode: %s\n", s.Layout.Mode))
	b.WriteString(fmt.Sprintf("Form: %dx%d\n", s.Layout.FormWidth, s.Layout.FormHeight))
	b.WriteString(fmt.Sprintf("Result: %dx%d\n", s.Layout.ResultWidth, s.Layout.ResultHeight))

	b.WriteString("\n--- Active Breakpoints ---\n")
	for _, bp := range s.Breakpoints {
		status := "[ ]"
		if bp.Active {
			status = "[X]"
		}
		b.WriteString(fmt.Sprintf("  %s %s (threshold: %d %s)\n", status, bp.Name, bp.Threshold, bp.Dimension))
	}

	if s.Components != nil {
		b.WriteString("\n--- Components ---\n")
		writeNodeText(&b, s.Components, 0)
	}

	return b.String()
}

func writeNodeText(b *strings.Builder, node *Node, indent int) {
	prefix := strings.Repeat("  ", indent)

	b.WriteString(fmt.Sprintf("%s%s", prefix, node.Type))
	if node.ID != "" {
		b.WriteString(fmt.Sprintf(" [%s]", node.ID))
	}
	b.WriteString(fmt.Sprintf(" (%dx%d)", node.Bounds.Width, node.Bounds.Height))
	if node.Content != "" {
		b.WriteString(fmt.Sprintf(" %q", node.Content))
	}
	if !node.Visible {
		b.WriteString(" hidden")
	}
	b.WriteString("\n")

	for _, child := range node.Children {
		writeNodeText(b, child, indent+1)
	}
}
