package keyboard

import (
	"errors"
	"fmt"
)

// ErrInvalidGeometry is the sentinel wrapped by InvalidGeometryError.
var ErrInvalidGeometry = errors.New("invalid keyboard geometry")

// InvalidGeometryError reports an input that the pipeline would accept but
// whose result is meaningless.
type InvalidGeometryError struct {
	Field string
	Value int
	Want  string
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("%s: %s is %d, want %s", ErrInvalidGeometry, e.Field, e.Value, e.Want)
}

func (e *InvalidGeometryError) Unwrap() error {
	return ErrInvalidGeometry
}

// Validate checks pipeline inputs. The computation functions never call it:
// they clamp instead of failing, and Validate is for callers that prefer to
// reject bad input up front. A gridWidthPx of 0 means "use the screen width"
// and is accepted. Unknown density is not an error.
func Validate(m DisplayMetrics, gridWidthPx int, row RowLayoutParams) error {
	err := firstInvalid([]check{
		{"screen width", m.ScreenWidthPx, m.ScreenWidthPx > 0, "> 0"},
		{"screen height", m.ScreenHeightPx, m.ScreenHeightPx > 0, "> 0"},
		{"grid width", gridWidthPx, gridWidthPx >= 0, "> 0 (or 0 for screen width)"},
	})
	if err != nil {
		return err
	}
	return ValidateRow(row)
}

// ValidateRow checks gap adjustment inputs on their own, for callers that
// already know the standard height.
func ValidateRow(row RowLayoutParams) error {
	return firstInvalid([]check{
		{"row count", row.RowCount, row.RowCount >= 1, ">= 1"},
		{"key height", row.KeyHeightPx, row.KeyHeightPx >= 0, ">= 0"},
		{"existing gap", row.ExistingVerticalGapPx, row.ExistingVerticalGapPx >= 0, ">= 0"},
	})
}

type check struct {
	field string
	value int
	ok    bool
	want  string
}

func firstInvalid(checks []check) error {
	for _, c := range checks {
		if !c.ok {
			return &InvalidGeometryError{Field: c.field, Value: c.value, Want: c.want}
		}
	}
	return nil
}
