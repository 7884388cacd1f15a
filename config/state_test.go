package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kbheight/keyboard"
)

func TestLoadStateMissing(t *testing.T) {
	t.Setenv(HomeEnvVar, t.TempDir())

	state := LoadState()
	assert.Nil(t, state.LastInputs)
}

func TestStateRoundTrip(t *testing.T) {
	t.Setenv(HomeEnvVar, t.TempDir())

	cfg := DefaultConfig()
	p, err := cfg.Profile("tablet")
	require.NoError(t, err)
	in := InputsFor(p, cfg.RowLayout)

	require.NoError(t, LoadState().SetLastInputs(in))

	loaded := LoadState()
	require.NotNil(t, loaded.LastInputs)
	assert.Equal(t, in, *loaded.LastInputs)
	assert.Equal(t, "tablet", loaded.LastInputs.Profile)
}

func TestLoadStateCorrupt(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(HomeEnvVar, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, StateFileName), []byte("]"), 0644))

	assert.Nil(t, LoadState().LastInputs)
}

func TestInputsConversion(t *testing.T) {
	in := Inputs{WidthPx: 2340, HeightPx: 1080, YDpi: 420, Rows: 4, KeyHeightPx: 150, GapPx: 10}

	assert.Equal(t, keyboard.DisplayMetrics{ScreenWidthPx: 2340, ScreenHeightPx: 1080, VerticalDensity: 420}, in.Metrics())
	assert.Equal(t, keyboard.RowLayoutParams{RowCount: 4, KeyHeightPx: 150, ExistingVerticalGapPx: 10}, in.Row())
}
