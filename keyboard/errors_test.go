package keyboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		metrics   DisplayMetrics
		gridWidth int
		row       RowLayoutParams
		wantField string
	}{
		{name: "valid", metrics: phonePortrait, row: qwerty},
		{name: "valid with unknown density", metrics: unknownDensity, row: qwerty},
		{name: "valid single row", metrics: phonePortrait, row: RowLayoutParams{RowCount: 1}},
		{
			name:      "zero screen width",
			metrics:   DisplayMetrics{ScreenHeightPx: 100, VerticalDensity: 160},
			row:       qwerty,
			wantField: "screen width",
		},
		{
			name:      "negative screen height",
			metrics:   DisplayMetrics{ScreenWidthPx: 100, ScreenHeightPx: -1},
			row:       qwerty,
			wantField: "screen height",
		},
		{
			name:      "negative grid width",
			metrics:   phonePortrait,
			gridWidth: -20,
			row:       qwerty,
			wantField: "grid width",
		},
		{
			name:      "no rows",
			metrics:   phonePortrait,
			row:       RowLayoutParams{RowCount: 0, KeyHeightPx: 100},
			wantField: "row count",
		},
		{
			name:      "negative key height",
			metrics:   phonePortrait,
			row:       RowLayoutParams{RowCount: 4, KeyHeightPx: -1},
			wantField: "key height",
		},
		{
			name:      "negative gap",
			metrics:   phonePortrait,
			row:       RowLayoutParams{RowCount: 4, KeyHeightPx: 100, ExistingVerticalGapPx: -2},
			wantField: "existing gap",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.metrics, tt.gridWidth, tt.row)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidGeometry))

			var geomErr *InvalidGeometryError
			require.True(t, errors.As(err, &geomErr))
			assert.Equal(t, tt.wantField, geomErr.Field)
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestValidateRow(t *testing.T) {
	assert.NoError(t, ValidateRow(qwerty))

	err := ValidateRow(RowLayoutParams{RowCount: 4, KeyHeightPx: 150, ExistingVerticalGapPx: -1})
	var geomErr *InvalidGeometryError
	require.ErrorAs(t, err, &geomErr)
	assert.Equal(t, "existing gap", geomErr.Field)
	assert.Equal(t, -1, geomErr.Value)
	assert.Equal(t, "invalid keyboard geometry: existing gap is -1, want >= 0", err.Error())
}

func TestValidate_DisplayBeforeRow(t *testing.T) {
	err := Validate(DisplayMetrics{}, 0, RowLayoutParams{})
	var geomErr *InvalidGeometryError
	require.ErrorAs(t, err, &geomErr)
	assert.Equal(t, "screen width", geomErr.Field)
}
