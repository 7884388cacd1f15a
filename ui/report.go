package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/wordwrap"

	"kbheight/keyboard"
)

// Line is one labeled value of a sizing report.
type Line struct {
	Label string
	Value string
	Style lipgloss.Style
}

// ReportLines describes every stage of a sizing computation.
func ReportLines(s keyboard.Sizing) []Line {
	m := s.Metrics
	plain := TextStyles.Primary
	warn := StatusStyles.Warning

	density := fmt.Sprintf("%g dpi", m.VerticalDensity)
	if !s.DensityKnown() {
		density = "density unknown"
	}

	lines := []Line{
		{"Display", fmt.Sprintf("%d×%d px, %s, %s", m.ScreenWidthPx, m.ScreenHeightPx, density, s.Orientation), plain},
		{"Grid keys", fmt.Sprintf("%d×%d px, gap %d px", s.Grid.KeyWidth, s.Grid.KeyHeight, s.Grid.Gap), plain},
		{"Width estimate", fmt.Sprintf("%d px (width %d)", s.Grid.Height, s.Grid.Width), plain},
	}

	switch {
	case !s.DensityKnown():
		lines = append(lines, Line{"Physical cap", "skipped", warn})
	case s.DensityCapped:
		lines = append(lines, Line{"Physical cap", fmt.Sprintf("%d px (%g mm) applied", s.MaxHeightPx, keyboard.MaxHeightMillimeters), warn})
	default:
		lines = append(lines, Line{"Physical cap", fmt.Sprintf("%d px (%g mm)", s.MaxHeightPx, keyboard.MaxHeightMillimeters), plain})
	}

	switch {
	case s.Orientation != keyboard.Landscape:
		lines = append(lines, Line{"Landscape cap", "n/a", TextStyles.Muted})
	case !s.DensityKnown():
		lines = append(lines, Line{"Landscape cap", "skipped", warn})
	case s.LandscapeCapped:
		lines = append(lines, Line{"Landscape cap", fmt.Sprintf("%d px applied", s.LandscapeCapPx), warn})
	default:
		lines = append(lines, Line{"Landscape cap", fmt.Sprintf("%d px", s.LandscapeCapPx), plain})
	}

	lines = append(lines,
		Line{"Standard height", fmt.Sprintf("%d px", s.StandardHeight), TextStyles.Highlight},
		Line{"Row layout", fmt.Sprintf("%d rows × %d px, gap %d px", s.Row.RowCount, s.Row.KeyHeightPx, s.Row.ExistingVerticalGapPx), plain},
	)

	gap := fmt.Sprintf("%d px (kept)", s.AdjustedGap)
	if s.GapGrown {
		gap = fmt.Sprintf("%d px (grown)", s.AdjustedGap)
	}
	lines = append(lines, Line{"Adjusted gap", gap, TextStyles.Highlight})

	diff := s.RowHeight - s.StandardHeight
	switch {
	case diff == 0:
		lines = append(lines, Line{"Row height", fmt.Sprintf("%d px %s exact", s.RowHeight, IconSuccess), StatusStyles.Success})
	case diff < 0:
		lines = append(lines, Line{"Row height", fmt.Sprintf("%d px (%d px short)", s.RowHeight, -diff), warn})
	default:
		lines = append(lines, Line{"Row height", fmt.Sprintf("%d px (%d px over)", s.RowHeight, diff), warn})
	}
	return lines
}

// ReportNotes explains results a reader might not expect.
func ReportNotes(s keyboard.Sizing) []string {
	var notes []string
	if !s.DensityKnown() {
		notes = append(notes, "Vertical density is unknown, so the physical and landscape caps were skipped and the width estimate is used as-is.")
	}

	diff := s.RowHeight - s.StandardHeight
	switch {
	case s.Row.RowCount <= 1:
		notes = append(notes, "A single-row layout has no gaps to adjust.")
	case diff < 0:
		notes = append(notes, fmt.Sprintf("Integer division of the spare space across %d gaps leaves the row layout %d px short.", s.Row.RowCount-1, -diff))
	case diff > 0:
		notes = append(notes, "The row keys and existing gap already exceed the standard height; gaps are never shrunk.")
	}
	return notes
}

// ReportOptions control how a report is rendered.
type ReportOptions struct {
	// Width is the widest the report may be, border included.
	Width int
	// Plain reports have no border or title, for piping into other tools.
	Plain     bool
	HideTitle bool
	HideNotes bool
}

// RenderReport renders a sizing report.
func RenderReport(s keyboard.Sizing, opts ReportOptions) string {
	lines := ReportLines(s)

	labelWidth := 0
	for _, l := range lines {
		labelWidth = max(labelWidth, runewidth.StringWidth(l.Label))
	}

	var b strings.Builder
	if !opts.Plain && !opts.HideTitle {
		b.WriteString(TextStyles.Title.Render("Keyboard height"))
		b.WriteString("\n\n")
	}
	for _, l := range lines {
		label := padding.String(l.Label, uint(labelWidth))
		b.WriteString(TextStyles.Secondary.Render(label))
		b.WriteString("  ")
		b.WriteString(l.Style.Render(l.Value))
		b.WriteString("\n")
	}

	contentWidth := opts.Width
	if !opts.Plain {
		// border plus horizontal padding
		contentWidth -= 2 + 2*CardPadding
	}
	if notes := ReportNotes(s); len(notes) > 0 && !opts.HideNotes {
		b.WriteString("\n")
		for _, n := range notes {
			wrapped := wordwrap.String(IconWarning+" "+n, max(contentWidth, 20))
			b.WriteString(TextStyles.Muted.Render(wrapped))
			b.WriteString("\n")
		}
	}

	out := strings.TrimSuffix(b.String(), "\n")
	if opts.Plain {
		return out
	}
	return CardStyle().Render(out)
}

// Summary is a one-line description of the result, used for the clipboard.
func Summary(s keyboard.Sizing) string {
	return fmt.Sprintf("%s: standard height %d px, row gap %d px",
		s.Metrics, s.StandardHeight, s.AdjustedGap)
}
