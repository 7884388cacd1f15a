package keyboard

import "math"

// MaxHeightPx converts MaxHeightMillimeters to pixels at the given vertical
// density. The second result is false when the density is unknown, in which
// case no physical cap applies.
func MaxHeightPx(verticalDensity float64) (int, bool) {
	if verticalDensity <= 0 {
		return 0, false
	}
	return int(math.Floor(MaxHeightMillimeters / MillimetersPerInch * verticalDensity)), true
}

// LandscapeCapPx returns the landscape height cap for the display and whether
// it applies. It applies only when the screen is wider than it is tall.
func LandscapeCapPx(m DisplayMetrics) (int, bool) {
	if m.Orientation() != Landscape {
		return 0, false
	}
	return int(math.Floor(float64(m.ScreenHeightPx) * LandscapeMaxScreenFraction)), true
}

// CapHeight limits a width-based height estimate by the device's physical size
// and orientation. The result is the device's standard keyboard height.
//
// With an unknown density the estimate is returned unchanged, landscape
// included: no fallback density is assumed.
func CapHeight(widthEstimate int, m DisplayMetrics) int {
	maxHeight, ok := MaxHeightPx(m.VerticalDensity)
	if !ok {
		return widthEstimate
	}
	height := min(widthEstimate, maxHeight)

	if landscapeCap, ok := LandscapeCapPx(m); ok {
		height = min(height, landscapeCap)
	}
	return height
}

// StandardHeight runs the estimator on the full screen width and caps the
// result for the display.
func StandardHeight(m DisplayMetrics) int {
	return CapHeight(EstimateHeight(m.ScreenWidthPx), m)
}
