package window

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// -- Wheel tests --

func TestNewState_Defaults(t *testing.T) {
	s := NewState()
	assert.Equal(t, 1.0, s.ZoomLevel)
	assert.Equal(t, 0.5, s.ZoomCenter)
	assert.Equal(t, 1.0, s.WindowSize())
	assert.False(t, s.Dragging())
}

func TestWheel_ZoomInTowardCursor(t *testing.T) {
	s := NewState()

	changed := s.Wheel(-100, 1)

	assert.True(t, changed)
	assert.InDelta(t, 1.1, s.ZoomLevel, 1e-12)
	assert.InDelta(t, 0.6, s.ZoomCenter, 1e-12)
}

func TestWheel_ZoomOutKeepsCenter(t *testing.T) {
	s := State{ZoomLevel: 2, ZoomCenter: 0.3}

	changed := s.Wheel(100, 0.9)

	assert.True(t, changed)
	assert.InDelta(t, 1.8, s.ZoomLevel, 1e-12)
	assert.Equal(t, 0.3, s.ZoomCenter)
}

func TestWheel_ClampsZoom(t *testing.T) {
	s := NewState()
	assert.False(t, s.Wheel(100, 0.5), "already fully zoomed out")
	assert.Equal(t, MinZoom, s.ZoomLevel)

	for range 50 {
		s.Wheel(-1, 0.5)
	}
	assert.Equal(t, MaxZoom, s.ZoomLevel)
	assert.False(t, s.Wheel(-1, 0.5), "already at max zoom")
}

func TestWheel_ZeroDeltaIgnored(t *testing.T) {
	s := NewState()
	assert.False(t, s.Wheel(0, 0.1))
	assert.Equal(t, NewState(), s)
}

// -- Drag tests --

func TestDrag_Monotonic(t *testing.T) {
	s := State{ZoomLevel: 2, ZoomCenter: 0.5}

	prev := s.ZoomCenter
	for range 30 {
		s.Drag(0.1)
		assert.LessOrEqual(t, s.ZoomCenter, prev)
		assert.GreaterOrEqual(t, s.ZoomCenter, 0.0)
		prev = s.ZoomCenter
	}
	assert.Equal(t, 0.0, s.ZoomCenter)

	for range 30 {
		s.Drag(-0.1)
		assert.GreaterOrEqual(t, s.ZoomCenter, prev)
		assert.LessOrEqual(t, s.ZoomCenter, 1.0)
		prev = s.ZoomCenter
	}
	assert.Equal(t, 1.0, s.ZoomCenter)
}

func TestDrag_ScaledByWindowSize(t *testing.T) {
	s := State{ZoomLevel: 4, ZoomCenter: 0.5}
	assert.True(t, s.Drag(0.2))
	assert.InDelta(t, 0.45, s.ZoomCenter, 1e-12)
}

func TestDrag_IgnoredWhenZoomedOut(t *testing.T) {
	s := NewState()
	assert.False(t, s.Drag(0.3))
	assert.Equal(t, 0.5, s.ZoomCenter)

	s.BeginDrag(0.1)
	assert.False(t, s.Dragging())
	assert.False(t, s.DragTo(0.6))
}

func TestDragTo_TracksPointer(t *testing.T) {
	s := State{ZoomLevel: 2, ZoomCenter: 0.5}

	s.BeginDrag(0.5)
	assert.True(t, s.Dragging())
	assert.True(t, s.DragTo(0.7))
	assert.InDelta(t, 0.4, s.ZoomCenter, 1e-12)
	assert.True(t, s.DragTo(0.5))
	assert.InDelta(t, 0.5, s.ZoomCenter, 1e-12)

	s.EndDrag()
	assert.False(t, s.DragTo(0.9))
	assert.InDelta(t, 0.5, s.ZoomCenter, 1e-12)
}

// -- Reset tests --

func TestReset(t *testing.T) {
	s := State{ZoomLevel: 3.2, ZoomCenter: 0.1}
	s.BeginDrag(0.4)

	s.Reset()

	assert.Equal(t, NewState(), s)
	assert.Equal(t, series(7), VisibleSlice(series(7), s.ZoomLevel, s.ZoomCenter))
}

// -- Non-finite input tests --

func TestGestures_IgnoreNonFiniteInput(t *testing.T) {
	s := NewState()
	assert.False(t, s.Wheel(-1, math.NaN()))
	assert.False(t, s.Wheel(math.Inf(-1), 0.5))
	assert.Equal(t, NewState(), s)

	s.Wheel(-1, 0.5)
	zoomed := s
	assert.False(t, s.Drag(math.NaN()))
	assert.False(t, s.Drag(math.Inf(1)))
	s.BeginDrag(math.NaN())
	assert.False(t, s.Dragging())
	s.BeginDrag(0.5)
	assert.False(t, s.DragTo(math.NaN()))
	s.EndDrag()
	assert.Equal(t, zoomed.ZoomLevel, s.ZoomLevel)
	assert.Equal(t, zoomed.ZoomCenter, s.ZoomCenter)

	assert.NotPanics(t, func() {
		VisibleSlice(series(101), s.ZoomLevel, s.ZoomCenter)
	})
}

func TestClamp_NaN(t *testing.T) {
	assert.Equal(t, 0.0, clamp(math.NaN(), 0, 1))
	assert.Equal(t, 1.0, clamp(math.Inf(1), 0, 1))
}
