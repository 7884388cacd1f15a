package app

import (
	"errors"
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kbheight/config"
	"kbheight/keyboard"
	"kbheight/testing/harness"
	"kbheight/testing/snapshot"
	"kbheight/ui"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func newTestCalculator(t *testing.T, width, height int) (*harness.Harness, *calculator) {
	t.Helper()
	cfg := config.DefaultConfig()
	calc := newCalculator(cfg, initialInputs(cfg, nil))
	calc.copy = func(string) error { return nil }
	h := harness.New(t, calc, width, height)
	return h, calc
}

func TestCalculator_InitialSizing(t *testing.T) {
	_, calc := newTestCalculator(t, 120, 40)

	require.NoError(t, calc.err)
	assert.Equal(t, "phone", calc.profile)
	assert.Equal(t, 694, calc.sizing.StandardHeight)
	assert.Equal(t, 31, calc.sizing.AdjustedGap)
	assert.Equal(t, 693, calc.sizing.RowHeight)
}

func TestInitialInputs(t *testing.T) {
	cfg := config.DefaultConfig()

	t.Run("default profile without state", func(t *testing.T) {
		in := initialInputs(cfg, nil)
		assert.Equal(t, "phone", in.Profile)
		assert.Equal(t, 1080, in.WidthPx)
		assert.Equal(t, 4, in.Rows)
	})

	t.Run("empty state", func(t *testing.T) {
		in := initialInputs(cfg, config.DefaultState())
		assert.Equal(t, 1080, in.WidthPx)
	})

	t.Run("last inputs win", func(t *testing.T) {
		last := config.Inputs{WidthPx: 720, HeightPx: 1280, Rows: 5, KeyHeightPx: 100, GapPx: 8}
		in := initialInputs(cfg, &config.State{LastInputs: &last})
		assert.Equal(t, last, in)
	})

	t.Run("unknown default profile", func(t *testing.T) {
		broken := cfg
		broken.DefaultProfile = "watch"
		in := initialInputs(broken, nil)
		assert.Equal(t, "phone", in.Profile)
	})
}

func TestCalculator_Typing(t *testing.T) {
	h, calc := newTestCalculator(t, 120, 40)

	h.Clear(4)
	h.Type("1000")

	assert.Equal(t, "1000", calc.inputs[fieldWidth].Value())
	require.NoError(t, calc.err)
	assert.Empty(t, calc.profile, "edited metrics no longer match a profile")
	assert.Equal(t, 642, calc.sizing.StandardHeight)
	assert.Equal(t, 14, calc.sizing.AdjustedGap)
	h.ViewContains("custom", "642 px")
}

func TestCalculator_IgnoresLetters(t *testing.T) {
	h, calc := newTestCalculator(t, 120, 40)

	h.Type("xyz")

	assert.Equal(t, "1080", calc.inputs[fieldWidth].Value())
	assert.Equal(t, 694, calc.sizing.StandardHeight)
}

func TestCalculator_InvalidInput(t *testing.T) {
	t.Run("empty field", func(t *testing.T) {
		h, calc := newTestCalculator(t, 120, 40)
		h.Clear(4)

		require.Error(t, calc.err)
		assert.Contains(t, calc.err.Error(), "is not a whole number")
		h.ViewContains("is not a whole number")
		assert.NotContains(t, h.View(), "Standard height")
	})

	t.Run("zero width", func(t *testing.T) {
		h, calc := newTestCalculator(t, 120, 40)
		h.Clear(4)
		h.Type("0")

		require.Error(t, calc.err)
		assert.True(t, errors.Is(calc.err, keyboard.ErrInvalidGeometry))
		h.ViewContains("screen width")
	})

	t.Run("zero rows", func(t *testing.T) {
		h, calc := newTestCalculator(t, 120, 40)
		for range fieldRows {
			h.SendSpecialKey(tea.KeyTab)
		}
		h.Clear(1)
		h.Type("0")

		var geomErr *keyboard.InvalidGeometryError
		require.ErrorAs(t, calc.err, &geomErr)
		assert.Equal(t, "row count", geomErr.Field)
	})

	t.Run("recovers", func(t *testing.T) {
		h, calc := newTestCalculator(t, 120, 40)
		h.Clear(4)
		require.Error(t, calc.err)

		h.Type("1080")
		require.NoError(t, calc.err)
		assert.Equal(t, "phone", calc.profile)
	})
}

func TestCalculator_EmptyDensityIsUnknown(t *testing.T) {
	h, calc := newTestCalculator(t, 120, 40)
	h.SendSpecialKey(tea.KeyTab)
	h.SendSpecialKey(tea.KeyTab)
	require.Equal(t, fieldDpi, calc.focus)

	h.Clear(3)

	require.NoError(t, calc.err)
	assert.False(t, calc.sizing.DensityKnown())
	assert.Equal(t, calc.sizing.Grid.Height, calc.sizing.StandardHeight)
}

func TestCalculator_Focus(t *testing.T) {
	h, calc := newTestCalculator(t, 120, 40)
	require.Equal(t, fieldWidth, calc.focus)

	h.SendSpecialKey(tea.KeyTab)
	assert.Equal(t, fieldHeight, calc.focus)
	assert.True(t, calc.inputs[fieldHeight].Focused())
	assert.False(t, calc.inputs[fieldWidth].Focused())

	h.SendSpecialKey(tea.KeyShiftTab)
	h.SendSpecialKey(tea.KeyShiftTab)
	assert.Equal(t, fieldGap, calc.focus, "focus wraps backwards")

	h.SendSpecialKey(tea.KeyEnter)
	assert.Equal(t, fieldWidth, calc.focus, "focus wraps forwards")
}

func TestCalculator_Profiles(t *testing.T) {
	h, calc := newTestCalculator(t, 120, 40)

	h.SendKey("p")
	assert.Equal(t, "phone-landscape", calc.profile)
	assert.Equal(t, "2340", calc.inputs[fieldWidth].Value())
	assert.Equal(t, 594, calc.sizing.StandardHeight)
	assert.Equal(t, 10, calc.sizing.AdjustedGap)
	assert.True(t, calc.sizing.LandscapeCapped)
	assert.Equal(t, "profile phone-landscape", calc.status)

	h.SendKey("p")
	h.SendKey("p")
	h.SendKey("p")
	assert.Equal(t, "no-density", calc.profile)
	assert.Equal(t, "0", calc.inputs[fieldDpi].Value())
	assert.False(t, calc.sizing.DensityKnown())

	h.SendKey("p")
	assert.Equal(t, "phone", calc.profile, "cycle wraps")
	assert.Equal(t, "4", calc.inputs[fieldRows].Value(), "row inputs are kept")
}

func TestCalculator_Rotate(t *testing.T) {
	h, calc := newTestCalculator(t, 120, 40)

	h.SendKey("r")
	assert.Equal(t, "2340", calc.inputs[fieldWidth].Value())
	assert.Equal(t, "1080", calc.inputs[fieldHeight].Value())
	assert.Equal(t, keyboard.Landscape, calc.sizing.Orientation)
	assert.Equal(t, "phone-landscape", calc.profile)

	h.SendKey("r")
	assert.Equal(t, keyboard.Portrait, calc.sizing.Orientation)
	assert.Equal(t, 694, calc.sizing.StandardHeight)
}

func TestCalculator_Copy(t *testing.T) {
	t.Run("copies summary", func(t *testing.T) {
		h, calc := newTestCalculator(t, 120, 40)
		var copied string
		calc.copy = func(s string) error {
			copied = s
			return nil
		}

		h.SendKey("c")
		assert.Equal(t, ui.Summary(calc.sizing), copied)
		assert.Contains(t, copied, "standard height 694 px")
		assert.False(t, calc.statusIsError)
		h.ViewContains("copied:")
	})

	t.Run("clipboard failure", func(t *testing.T) {
		h, calc := newTestCalculator(t, 120, 40)
		calc.copy = func(string) error { return errors.New("no clipboard") }

		h.SendKey("c")
		assert.True(t, calc.statusIsError)
		assert.Equal(t, "clipboard unavailable", calc.status)
	})

	t.Run("nothing to copy", func(t *testing.T) {
		h, calc := newTestCalculator(t, 120, 40)
		called := false
		calc.copy = func(string) error {
			called = true
			return nil
		}
		h.Clear(4)

		h.SendKey("c")
		assert.False(t, called)
		assert.Equal(t, "nothing to copy", calc.status)
	})
}

func TestCalculator_Quit(t *testing.T) {
	for _, send := range []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	} {
		t.Run(send.name, func(t *testing.T) {
			h, _ := newTestCalculator(t, 120, 40)
			assert.True(t, harness.IsQuit(h.SendMsg(send.msg)))
		})
	}
}

func TestCalculator_View(t *testing.T) {
	harness.RunWithCommonSizes(t, func(t *testing.T, size harness.TerminalSize) {
		h, _ := newTestCalculator(t, size.Width, size.Height)

		view := h.View()
		h.ViewContains("Screen width", "Standard height", "694 px", "quit")
		assert.NotContains(t, view, "Terminal too small")
		snapshot.New(t).AssertFits(view, size.Width, size.Height)
	})
}

func TestCalculator_ViewTooSmall(t *testing.T) {
	h, _ := newTestCalculator(t, 50, 12)
	h.ViewContains("Terminal too small (50x12)")

	h.Resize(120, 40)
	assert.NotContains(t, h.View(), "Terminal too small")
}

func TestCalculator_ViewModes(t *testing.T) {
	h, _ := newTestCalculator(t, 120, 40)
	split := h.View()

	h.Resize(80, 40)
	stacked := h.View()

	// Split puts the form and the report on the same rows.
	assert.Less(t, lipgloss.Height(split), lipgloss.Height(stacked))
}

func TestCalculator_NarrowHelp(t *testing.T) {
	h, _ := newTestCalculator(t, 70, 30)

	view := h.View()
	assert.Contains(t, view, "p profile")
	assert.NotContains(t, view, "rotate")
}

func TestKeySequence(t *testing.T) {
	h, calc := newTestCalculator(t, 120, 40)

	harness.NewKeySequence("p", "r").Then(tea.KeyTab).Play(h)

	assert.Equal(t, "1080", calc.inputs[fieldWidth].Value())
	assert.Equal(t, "phone", calc.profile)
	assert.Equal(t, fieldHeight, calc.focus)
}

func TestCalculator_Snapshot(t *testing.T) {
	h, calc := newTestCalculator(t, 120, 40)
	h.SendSpecialKey(tea.KeyTab)

	s := calc.snapshot()
	assert.Equal(t, "height", s.Calculator.Focus)
	assert.Equal(t, "phone", s.Calculator.Profile)
	assert.Equal(t, "split", s.Layout.Mode)
	require.NotNil(t, s.Sizing)
	assert.Equal(t, 694, s.Sizing.StandardHeight)

	field := s.Components.Find("height")
	require.NotNil(t, field)
	assert.Equal(t, "2340", field.Content)
	assert.Equal(t, true, field.State["focused"])

	h.Clear(4)
	s = calc.snapshot()
	assert.Nil(t, s.Sizing)
	assert.Contains(t, s.Calculator.Error, "Screen height (px)")
	assert.Equal(t, "Error", s.Components.Find("result").Type)
}
