package layout

// Degradation holds flags indicating which calculator features should be
// hidden or simplified. Features are listed in order of degradation priority.
type Degradation struct {
	HideTitle bool // Drop the report title line (height < 24)
	HideNotes bool // Drop the explanatory notes under the report (height < 28 stacked)
	ShortHelp bool // Show only the essential key bindings (width < 80)
}

// Threshold constants for degradation
const (
	TitleHideHeight = 24
	NotesHideHeight = 28
	ShortHelpWidth  = 80
)

// ComputeDegradation calculates which features should be degraded.
// Stacked layouts share the height between both panels, so they lose the
// notes sooner than split layouts.
func ComputeDegradation(c Constraints) Degradation {
	notesHeight := NotesHideHeight
	if c.Mode == LayoutSplit {
		notesHeight = TitleHideHeight
	}
	return Degradation{
		HideTitle: c.TerminalHeight < TitleHideHeight,
		HideNotes: c.ShowMinWarning || c.TerminalHeight < notesHeight,
		ShortHelp: c.TerminalWidth < ShortHelpWidth,
	}
}
