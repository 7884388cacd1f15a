package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Standard height  694 px", "Standard height  694 px"},
		{"color", "\x1b[38;2;157;133;255m694 px\x1b[0m", "694 px"},
		{"bold and color", "\x1b[1;33m!\x1b[0m capped \x1b[32m+\x1b[0m", "! capped +"},
		{"cursor visibility", "\x1b[?25lform\x1b[?25h", "form"},
		{"osc8 hyperlink", "\x1b]8;;https://example.com\x1b\\docs\x1b]8;;\x1b\\", "docs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripANSI(tt.input))
		})
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize("Display   \r\n\x1b[31mRow height\x1b[0m\t\n\n")
	assert.Equal(t, "Display\nRow height", got)
}

func TestLinesAndWidth(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLines int
		wantWidth int
	}{
		{"single line", "694 px", 1, 6},
		{"ragged", "gap\nstandard height\nrows", 3, 15},
		{"escapes are zero width", "\x1b[1mhello world\x1b[0m\nx", 2, 11},
		{"box drawing is one cell per rune", "╭────╮\n│ 4×3 │", 2, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantLines, Lines(tt.input))
			assert.Equal(t, tt.wantWidth, Width(tt.input))
		})
	}
}

func TestAssertAgainstGolden(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "report.golden"), []byte("Standard height  694 px\n"), 0644))

	snap := New(t).WithDir(dir)
	snap.Assert("report", "\x1b[1mStandard height\x1b[0m  694 px   ")
	snap.AssertContains("\x1b[31mAdjusted gap\x1b[0m  31 px", "Adjusted gap  31 px")
	snap.AssertNotContains("Row height  693 px", "exact")
	snap.AssertFits("╭──╮\n│ok│\n╰──╯", 4, 3)
}

func TestUpdateGolden(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(UpdateEnvVar, "1")

	New(t).WithDir(filepath.Join(dir, "golden")).Assert("new", "\x1b[32mRow height  694 px\x1b[0m  \n")

	data, err := os.ReadFile(filepath.Join(dir, "golden", "new.golden"))
	require.NoError(t, err)
	assert.Equal(t, "Row height  694 px\n", string(data))
}
