package window

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func series(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// -- VisibleSlice tests --

func TestVisibleSlice_FullZoomOut(t *testing.T) {
	for _, n := range []int{0, 1, 2, 9, 101} {
		s := series(n)
		for _, center := range []float64{0, 0.25, 0.5, 1} {
			got := VisibleSlice(s, 1, center)
			assert.Equal(t, s, got, "n=%d center=%v", n, center)
		}
	}

	s := series(5)
	assert.Equal(t, s, VisibleSlice(s, 0.5, 0.5), "zoom below 1 shows everything")
}

func TestVisibleSlice_BoundaryWidthPreserved(t *testing.T) {
	for _, n := range []int{9, 101} {
		s := series(n)
		left := VisibleSlice(s, 4, 0)
		middle := VisibleSlice(s, 4, 0.5)
		right := VisibleSlice(s, 4, 1)

		assert.Len(t, left, len(middle), "n=%d left edge", n)
		assert.Len(t, right, len(middle), "n=%d right edge", n)
		assert.Equal(t, 0, left[0])
		assert.Equal(t, n-1, right[len(right)-1])
	}
}

func TestVisibleSlice_Contiguous(t *testing.T) {
	s := series(50)
	got := VisibleSlice(s, 2.5, 0.3)
	for i := 1; i < len(got); i++ {
		assert.Equal(t, got[i-1]+1, got[i])
	}
}

// -- Bounds tests --

func TestBounds(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		zoom      float64
		center    float64
		wantStart int
		wantEnd   int
	}{
		{name: "empty", n: 0, zoom: 3, center: 0.5, wantStart: 0, wantEnd: -1},
		{name: "single", n: 1, zoom: 3, center: 0.5, wantStart: 0, wantEnd: 0},
		{name: "zoomed out", n: 101, zoom: 1, center: 0.9, wantStart: 0, wantEnd: 100},
		{name: "interior", n: 101, zoom: 4, center: 0.5, wantStart: 37, wantEnd: 62},
		{name: "left edge", n: 101, zoom: 4, center: 0, wantStart: 0, wantEnd: 25},
		{name: "right edge", n: 101, zoom: 4, center: 1, wantStart: 75, wantEnd: 100},
		{name: "small interior", n: 9, zoom: 4, center: 0.5, wantStart: 3, wantEnd: 5},
		{name: "small right edge", n: 9, zoom: 4, center: 1, wantStart: 6, wantEnd: 8},
		{name: "max zoom right", n: 10, zoom: 5, center: 1, wantStart: 7, wantEnd: 9},
		{name: "fractional width right", n: 101, zoom: 3, center: 1, wantStart: 66, wantEnd: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := Bounds(tt.n, tt.zoom, tt.center)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestWindow_ShiftsInsteadOfShrinking(t *testing.T) {
	start, end := Window(4, 0.05)
	assert.InDelta(t, 0, start, 1e-12)
	assert.InDelta(t, 0.25, end, 1e-12)

	start, end = Window(4, 0.95)
	assert.InDelta(t, 0.75, start, 1e-12)
	assert.InDelta(t, 1, end, 1e-12)

	start, end = Window(1, 0.2)
	assert.Equal(t, 0.0, start)
	assert.Equal(t, 1.0, end)
}

func TestVisibleSlice_NonFiniteState(t *testing.T) {
	s := series(101)

	assert.Equal(t, s, VisibleSlice(s, math.NaN(), 0.3))

	centered := VisibleSlice(s, 4, math.NaN())
	assert.Equal(t, VisibleSlice(s, 4, DefaultCenter), centered)

	start, end := Bounds(101, 4, math.Inf(1))
	assert.Equal(t, 75, start)
	assert.Equal(t, 100, end)
}
