// Package keyboard computes on-screen keyboard heights so that a row-based
// layout and a grid-based layout render at the same height on a device.
//
// Every function here is pure: results depend only on the arguments and the
// package constants, so they are safe to call from any goroutine.
package keyboard

import "fmt"

// DisplayMetrics is a read-only snapshot of the current display.
type DisplayMetrics struct {
	ScreenWidthPx  int `json:"screen_width_px"`
	ScreenHeightPx int `json:"screen_height_px"`
	// VerticalDensity is pixels per inch along the vertical axis.
	// Values <= 0 mean the density is unknown.
	VerticalDensity float64 `json:"vertical_density"`
}

// Orientation of a display.
type Orientation int

const (
	// Portrait covers screens at least as tall as they are wide.
	Portrait Orientation = iota
	// Landscape covers screens wider than they are tall.
	Landscape
)

// String returns the string representation of the orientation.
func (o Orientation) String() string {
	switch o {
	case Portrait:
		return "portrait"
	case Landscape:
		return "landscape"
	default:
		return "unknown"
	}
}

// MarshalText encodes the orientation by name.
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Orientation reports whether the display is in landscape or portrait.
func (m DisplayMetrics) Orientation() Orientation {
	if m.ScreenWidthPx > m.ScreenHeightPx {
		return Landscape
	}
	return Portrait
}

// DensityKnown reports whether the display reported a usable vertical density.
func (m DisplayMetrics) DensityKnown() bool {
	return m.VerticalDensity > 0
}

// Rotated returns the metrics with width and height swapped.
func (m DisplayMetrics) Rotated() DisplayMetrics {
	return DisplayMetrics{
		ScreenWidthPx:   m.ScreenHeightPx,
		ScreenHeightPx:  m.ScreenWidthPx,
		VerticalDensity: m.VerticalDensity,
	}
}

func (m DisplayMetrics) String() string {
	return fmt.Sprintf("%dx%d@%gdpi", m.ScreenWidthPx, m.ScreenHeightPx, m.VerticalDensity)
}
