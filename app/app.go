package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"kbheight/config"
	"kbheight/keyboard"
	"kbheight/log"
	"kbheight/ui"
	"kbheight/ui/layout"
)

// Run is the main entrypoint into the interactive calculator. The inputs on
// screen when the user quits are saved to state, unless state is nil.
func Run(ctx context.Context, cfg config.Config, state *config.State) error {
	p := tea.NewProgram(
		newCalculator(cfg, initialInputs(cfg, state)),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	final, err := p.Run()
	log.GetProfiler().LogStats()
	if err != nil {
		return err
	}

	calc, ok := final.(*calculator)
	if !ok || state == nil || calc.err != nil {
		return nil
	}
	in, _ := calc.parseInputs()
	if err := state.SetLastInputs(in); err != nil {
		log.WarningLog.Printf("failed to save calculator state: %v", err)
	}
	return nil
}

// initialInputs restores the last session's inputs, falling back to the
// default profile.
func initialInputs(cfg config.Config, state *config.State) config.Inputs {
	if state != nil && state.LastInputs != nil {
		return *state.LastInputs
	}
	p, err := cfg.Profile(cfg.DefaultProfile)
	if err != nil {
		log.WarningLog.Printf("falling back to built-in profile: %v", err)
		p = config.DefaultConfig().Profiles[0]
	}
	return config.InputsFor(p, cfg.RowLayout)
}

const (
	fieldWidth = iota
	fieldHeight
	fieldDpi
	fieldRows
	fieldKeyHeight
	fieldGap
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldWidth:     "Screen width (px)",
	fieldHeight:    "Screen height (px)",
	fieldDpi:       "Vertical dpi",
	fieldRows:      "Rows",
	fieldKeyHeight: "Key height (px)",
	fieldGap:       "Row gap (px)",
}

type calculator struct {
	cfg config.Config

	// -- Inputs --

	inputs [fieldCount]textinput.Model
	focus  int
	// profile is the name of the profile matching the current display inputs, if any.
	profile string

	// -- Results --

	sizing keyboard.Sizing
	// err is set instead of sizing when the inputs do not parse or validate.
	err error

	// -- UI --

	width, height int
	keys          keyMap
	help          help.Model
	status        string
	statusIsError bool

	// copy writes text to the system clipboard.
	copy func(string) error
}

func newCalculator(cfg config.Config, in config.Inputs) *calculator {
	m := &calculator{
		cfg:  cfg,
		keys: newKeyMap(),
		help: help.New(),
		copy: clipboard.WriteAll,
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 7
		ti.Width = 8
		m.inputs[i] = ti
	}
	m.inputs[m.focus].Focus()
	m.setInputs(in)
	return m
}

func (m *calculator) Init() tea.Cmd {
	return textinput.Blink
}

func (m *calculator) setInputs(in config.Inputs) {
	m.inputs[fieldWidth].SetValue(strconv.Itoa(in.WidthPx))
	m.inputs[fieldHeight].SetValue(strconv.Itoa(in.HeightPx))
	m.inputs[fieldDpi].SetValue(strconv.FormatFloat(in.YDpi, 'f', -1, 64))
	m.inputs[fieldRows].SetValue(strconv.Itoa(in.Rows))
	m.inputs[fieldKeyHeight].SetValue(strconv.Itoa(in.KeyHeightPx))
	m.inputs[fieldGap].SetValue(strconv.Itoa(in.GapPx))
	m.recompute()
}

func (m *calculator) parseInputs() (config.Inputs, error) {
	in := config.Inputs{Profile: m.profile}
	ints := [fieldCount]*int{
		fieldWidth:     &in.WidthPx,
		fieldHeight:    &in.HeightPx,
		fieldRows:      &in.Rows,
		fieldKeyHeight: &in.KeyHeightPx,
		fieldGap:       &in.GapPx,
	}

	for i, ti := range m.inputs {
		v := strings.TrimSpace(ti.Value())
		if i == fieldDpi {
			// An empty density is an unknown density.
			if v == "" {
				continue
			}
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return in, fmt.Errorf("%s: %q is not a number", fieldLabels[i], v)
			}
			in.YDpi = f
			continue
		}

		n, err := strconv.Atoi(v)
		if err != nil {
			return in, fmt.Errorf("%s: %q is not a whole number", fieldLabels[i], v)
		}
		*ints[i] = n
	}
	return in, nil
}

// recompute reruns the sizing pipeline from the current inputs.
func (m *calculator) recompute() {
	defer log.GetProfiler().Start("sizing")()

	in, err := m.parseInputs()
	if err == nil {
		err = keyboard.Validate(in.Metrics(), 0, in.Row())
	}
	m.err = err
	m.profile = m.matchProfile(in)
	if err != nil {
		return
	}

	m.sizing = keyboard.ComputeSizing(in.Metrics(), 0, in.Row())
	log.LayoutTrace("%s -> standard height %d, gap %d", in.Metrics(), m.sizing.StandardHeight, m.sizing.AdjustedGap)
}

func (m *calculator) matchProfile(in config.Inputs) string {
	for _, p := range m.cfg.Profiles {
		if p.Metrics() == in.Metrics() {
			return p.Name
		}
	}
	return ""
}

func (m *calculator) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.update(msg)
	m.writeInspection()
	return model, cmd
}

func (m *calculator) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		log.LayoutTrace("window %dx%d: %s", msg.Width, msg.Height, layout.DetermineMode(msg.Width, msg.Height))
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *calculator) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	log.InputTrace("key %q on field %d", msg.String(), m.focus)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		return m, m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m, m.moveFocus(-1)
	case msg.Type == tea.KeyRunes && isNumeric(msg.Runes):
		return m, m.edit(msg)
	case key.Matches(msg, m.keys.Profile):
		m.nextProfile()
	case key.Matches(msg, m.keys.Rotate):
		m.rotate()
	case key.Matches(msg, m.keys.Copy):
		m.copyResult()
	case msg.Type == tea.KeyRunes:
		// Letters that are not bindings never reach the numeric fields.
	default:
		// Backspace, delete and cursor movement.
		return m, m.edit(msg)
	}
	return m, nil
}

func isNumeric(runes []rune) bool {
	for _, r := range runes {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}
	return len(runes) > 0
}

func (m *calculator) edit(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.status = ""
	m.recompute()
	return cmd
}

func (m *calculator) moveFocus(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	return m.inputs[m.focus].Focus()
}

// nextProfile loads the profile after the current one, keeping the row inputs.
func (m *calculator) nextProfile() {
	profiles := m.cfg.Profiles
	if len(profiles) == 0 {
		return
	}

	next := 0
	for i, p := range profiles {
		if p.Name == m.profile {
			next = (i + 1) % len(profiles)
			break
		}
	}

	p := profiles[next]
	m.inputs[fieldWidth].SetValue(strconv.Itoa(p.WidthPx))
	m.inputs[fieldHeight].SetValue(strconv.Itoa(p.HeightPx))
	m.inputs[fieldDpi].SetValue(strconv.FormatFloat(p.YDpi, 'f', -1, 64))
	m.recompute()
	m.setStatus("profile "+p.Name, false)
}

func (m *calculator) rotate() {
	w, h := m.inputs[fieldWidth].Value(), m.inputs[fieldHeight].Value()
	m.inputs[fieldWidth].SetValue(h)
	m.inputs[fieldHeight].SetValue(w)
	m.recompute()
	m.setStatus("rotated", false)
}

func (m *calculator) copyResult() {
	if m.err != nil {
		m.setStatus("nothing to copy", true)
		return
	}
	summary := ui.Summary(m.sizing)
	if err := m.copy(summary); err != nil {
		log.WarningLog.Printf("failed to copy to clipboard: %v", err)
		m.setStatus("clipboard unavailable", true)
		return
	}
	m.setStatus("copied: "+summary, false)
}

func (m *calculator) setStatus(msg string, isError bool) {
	m.status = msg
	m.statusIsError = isError
}

func (m *calculator) View() string {
	defer log.GetProfiler().Start("view")()

	c := layout.ComputeConstraints(m.width, m.height)
	if c.ShowMinWarning {
		return ui.StatusStyles.Warning.Render(fmt.Sprintf("%s Terminal too small (%dx%d), need at least %dx%d",
			ui.IconWarning, m.width, m.height, layout.MinWidth, layout.MinHeight))
	}
	d := layout.ComputeDegradation(c)

	form := m.renderForm(c)
	result := m.renderResult(c, d)

	var body string
	if c.Mode == layout.LayoutSplit {
		body = lipgloss.JoinHorizontal(lipgloss.Top, form, result)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, form, result)
	}

	bindings := m.keys.ShortHelp()
	if d.ShortHelp {
		bindings = m.keys.essential()
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatus(c), m.help.ShortHelpView(bindings))
}

func (m *calculator) renderForm(c layout.Constraints) string {
	var b strings.Builder

	profile := "custom"
	if m.profile != "" {
		profile = m.profile
	}
	b.WriteString(ui.TextStyles.Title.Render("Inputs"))
	b.WriteString(" ")
	b.WriteString(ui.TextStyles.Muted.Render(profile))
	b.WriteString("\n\n")

	labelWidth := 0
	for _, l := range fieldLabels {
		labelWidth = max(labelWidth, len(l))
	}
	for i, ti := range m.inputs {
		label := ui.TextStyles.Secondary
		if i == m.focus {
			label = ui.TextStyles.Highlight
		}
		b.WriteString(label.Render(fmt.Sprintf("%-*s", labelWidth, fieldLabels[i])))
		b.WriteString("  ")
		b.WriteString(ti.View())
		if i < fieldCount-1 {
			b.WriteString("\n")
		}
	}

	// Width and MaxHeight exclude the border.
	return ui.FocusedCardStyle().
		Width(c.FormWidth - 2).
		MaxHeight(c.FormHeight).
		Render(b.String())
}

func (m *calculator) renderResult(c layout.Constraints, d layout.Degradation) string {
	var out string
	if m.err != nil {
		out = ui.ErrorCardStyle().
			Width(c.ResultWidth - 2).
			Render(ui.StatusStyles.Error.Render(ui.IconError + " " + m.err.Error()))
	} else {
		out = ui.RenderReport(m.sizing, ui.ReportOptions{
			Width:     c.ResultWidth,
			HideTitle: d.HideTitle,
			HideNotes: d.HideNotes,
		})
	}
	return lipgloss.NewStyle().MaxHeight(c.ResultHeight).MaxWidth(c.ResultWidth).Render(out)
}

func (m *calculator) renderStatus(c layout.Constraints) string {
	if m.status == "" {
		return ""
	}
	style := ui.TextStyles.Muted
	if m.statusIsError {
		style = ui.StatusStyles.Error
	}
	return style.MaxWidth(c.TerminalWidth).Render(m.status)
}
