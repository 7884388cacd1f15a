// Package harness drives Bubble Tea models in tests by feeding them key and
// window-size messages without starting a program.
package harness

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// Harness wraps a tea.Model for testing
type Harness struct {
	t      *testing.T
	model  tea.Model
	width  int
	height int
}

// New creates a new Harness and sends the model its initial window size.
func New(t *testing.T, model tea.Model, width, height int) *Harness {
	t.Helper()
	h := &Harness{t: t, model: model}
	h.Resize(width, height)
	return h
}

// SendMsg sends a tea.Msg to the model and updates it
func (h *Harness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	return cmd
}

// SendKey sends a single rune key press, like "p" or "7".
func (h *Harness) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey sends a non-rune key (Tab, Backspace, Esc, ...).
func (h *Harness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

// Type sends text one rune at a time, the way a terminal delivers typing.
func (h *Harness) Type(text string) {
	for _, r := range text {
		h.SendKey(string(r))
	}
}

// Clear sends n backspaces.
func (h *Harness) Clear(n int) {
	for range n {
		h.SendSpecialKey(tea.KeyBackspace)
	}
}

// Resize simulates a terminal resize
func (h *Harness) Resize(width, height int) tea.Cmd {
	h.width = width
	h.height = height
	return h.SendMsg(tea.WindowSizeMsg{Width: width, Height: height})
}

// View returns the current rendered view
func (h *Harness) View() string {
	return h.model.View()
}

// ViewContains reports a test error when the view lacks any of the given substrings.
func (h *Harness) ViewContains(subs ...string) bool {
	h.t.Helper()
	view := h.View()
	ok := true
	for _, s := range subs {
		if !strings.Contains(view, s) {
			h.t.Errorf("view does not contain %q:\n%s", s, view)
			ok = false
		}
	}
	return ok
}

// Model returns the underlying model (for type assertions)
func (h *Harness) Model() tea.Model {
	return h.model
}

// Width returns the current width
func (h *Harness) Width() int {
	return h.width
}

// Height returns the current height
func (h *Harness) Height() int {
	return h.height
}

// IsQuit reports whether cmd produces tea.QuitMsg. Only pass commands known
// not to block, since cmd is executed.
func IsQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// CommonSizes covers each layout mode of the calculator.
var CommonSizes = []TerminalSize{
	{Name: "stacked", Width: 80, Height: 24},
	{Name: "stacked-tall", Width: 80, Height: 50},
	{Name: "split", Width: 120, Height: 40},
	{Name: "split-short", Width: 120, Height: 20},
	{Name: "wide", Width: 200, Height: 50},
}

// TerminalSize represents a terminal size for testing
type TerminalSize struct {
	Name   string
	Width  int
	Height int
}

// RunWithSizes runs a test function for each terminal size
func RunWithSizes(t *testing.T, sizes []TerminalSize, fn func(t *testing.T, size TerminalSize)) {
	for _, size := range sizes {
		t.Run(size.Name, func(t *testing.T) {
			fn(t, size)
		})
	}
}

// RunWithCommonSizes runs a test function for all common terminal sizes
func RunWithCommonSizes(t *testing.T, fn func(t *testing.T, size TerminalSize)) {
	RunWithSizes(t, CommonSizes, fn)
}

// KeySequence is a recorded series of messages.
type KeySequence []tea.Msg

// NewKeySequence builds a sequence of rune key presses.
func NewKeySequence(keys ...string) KeySequence {
	var seq KeySequence
	for _, key := range keys {
		seq = append(seq, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	}
	return seq
}

// Then appends a non-rune key press.
func (seq KeySequence) Then(keyType tea.KeyType) KeySequence {
	return append(seq, tea.KeyMsg{Type: keyType})
}

// Play sends all messages in the sequence to the harness
func (seq KeySequence) Play(h *Harness) {
	for _, msg := range seq {
		h.SendMsg(msg)
	}
}
