package window

import "math"

const (
	// MinZoom shows the whole series.
	MinZoom = 1.0
	// MaxZoom shows a fifth of the series.
	MaxZoom = 5.0
	// DefaultCenter is the midpoint of the series.
	DefaultCenter = 0.5
	// WheelSensitivity is the fraction of the current zoom level added or
	// removed per wheel tick.
	WheelSensitivity = 0.1
	// CursorDamping is how far the center moves toward the cursor when zooming in.
	CursorDamping = 0.2
)

// State is the zoom and pan position of one chart. It belongs to a single chart
// instance; gestures are applied in event order by the caller.
type State struct {
	ZoomLevel  float64
	ZoomCenter float64

	dragging bool
	lastX    float64
}

// NewState returns a fully zoomed out state centered on the series.
func NewState() State {
	return State{
		ZoomLevel:  MinZoom,
		ZoomCenter: DefaultCenter,
	}
}

// WindowSize is the visible fraction of the series.
func (s *State) WindowSize() float64 {
	if s.ZoomLevel <= MinZoom {
		return 1
	}
	return 1 / s.ZoomLevel
}

// Wheel applies one wheel tick at relativeX, the cursor position across the
// chart width in [0, 1]. A negative deltaY zooms in, a positive one zooms out.
// Zooming in pulls the center toward the cursor so the point under it stays
// roughly in place. It reports whether the state changed. Non-finite input is
// ignored.
func (s *State) Wheel(deltaY, relativeX float64) bool {
	if deltaY == 0 || !finite(deltaY) || !finite(relativeX) {
		return false
	}

	direction := 1.0
	if deltaY > 0 {
		direction = -1.0
	}

	prevZoom, prevCenter := s.ZoomLevel, s.ZoomCenter
	next := clamp(s.ZoomLevel+direction*WheelSensitivity*s.ZoomLevel, MinZoom, MaxZoom)
	if next > s.ZoomLevel {
		cursor := clamp(relativeX, 0, 1)
		s.ZoomCenter = clamp(s.ZoomCenter+(cursor-s.ZoomCenter)*CursorDamping, 0, 1)
	}
	s.ZoomLevel = next

	return s.ZoomLevel != prevZoom || s.ZoomCenter != prevCenter
}

// Drag pans by dx, a pointer movement expressed as a fraction of the chart
// width. Moving the pointer right reveals earlier elements. Dragging has no
// effect while fully zoomed out.
func (s *State) Drag(dx float64) bool {
	if s.ZoomLevel <= MinZoom || dx == 0 || !finite(dx) {
		return false
	}
	prev := s.ZoomCenter
	s.ZoomCenter = clamp(s.ZoomCenter-dx*s.WindowSize(), 0, 1)
	return s.ZoomCenter != prev
}

// BeginDrag starts pointer tracking at x. It is ignored while fully zoomed out.
func (s *State) BeginDrag(x float64) {
	if s.ZoomLevel <= MinZoom || !finite(x) {
		return
	}
	s.dragging = true
	s.lastX = x
}

// DragTo pans by the pointer movement since the previous BeginDrag or DragTo.
func (s *State) DragTo(x float64) bool {
	if !s.dragging || !finite(x) {
		return false
	}
	dx := x - s.lastX
	s.lastX = x
	return s.Drag(dx)
}

// EndDrag stops pointer tracking.
func (s *State) EndDrag() {
	s.dragging = false
}

// Dragging reports whether a drag is in progress.
func (s *State) Dragging() bool {
	return s.dragging
}

// Reset zooms fully out and recenters, abandoning any drag.
func (s *State) Reset() {
	*s = NewState()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// clamp maps NaN to lo.
func clamp(v, lo, hi float64) float64 {
	if v < lo || math.IsNaN(v) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
