// Package window maps a zoom level and a normalized center onto the visible
// contiguous slice of an ordered series, and tracks the wheel and drag gestures
// that move that window.
package window

import (
	"math"
)

// epsilon absorbs floating point noise before index rounding so that a position
// such as 0.3*10 lands on index 3 rather than 2.
const epsilon = 1e-9

// Window returns the normalized [start, end] positions of the visible window.
// The window keeps its width 1/zoomLevel and is shifted, not shrunk, to stay
// inside [0, 1]. A NaN zoom level shows everything and a NaN center is treated
// as DefaultCenter.
func Window(zoomLevel, zoomCenter float64) (float64, float64) {
	if zoomLevel <= MinZoom || math.IsNaN(zoomLevel) {
		return 0, 1
	}
	if math.IsNaN(zoomCenter) {
		zoomCenter = DefaultCenter
	}
	zoomCenter = clamp(zoomCenter, 0, 1)

	size := 1 / zoomLevel
	start := zoomCenter - size/2
	end := zoomCenter + size/2

	if start < 0 {
		end -= start
		start = 0
	}
	if end > 1 {
		start -= end - 1
		end = 1
	}
	return math.Max(start, 0), end
}

// Bounds returns the inclusive index range visible in a series of length n.
// The range spans ceil(windowSize*(n-1)) steps wherever the window sits, so a
// window pushed against either edge shows as many elements as one in the middle.
// For n == 0 it returns (0, -1).
func Bounds(n int, zoomLevel, zoomCenter float64) (int, int) {
	if n <= 0 {
		return 0, -1
	}
	if zoomLevel <= MinZoom || n == 1 || math.IsNaN(zoomLevel) {
		return 0, n - 1
	}

	last := float64(n - 1)
	startPos, _ := Window(zoomLevel, zoomCenter)

	span := int(math.Ceil(last/zoomLevel - epsilon))
	start := int(math.Floor(startPos*last + epsilon))
	end := start + span
	if end > n-1 {
		end = n - 1
		start = max(end-span, 0)
	}
	return start, end
}

// VisibleSlice returns the part of series visible at the given zoom level and
// center. At zoom level 1 or below the series itself is returned. The result
// shares the backing array of series.
func VisibleSlice[T any](series []T, zoomLevel, zoomCenter float64) []T {
	if zoomLevel <= MinZoom || math.IsNaN(zoomLevel) {
		return series
	}
	start, end := Bounds(len(series), zoomLevel, zoomCenter)
	return series[start : end+1]
}
