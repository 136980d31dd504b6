package window

import (
	"github.com/google/go-cmp/cmp"

	"github.com/carson-networks/budget-projector/internal/changedetect"
)

type viewKey struct {
	length     int
	zoomLevel  float64
	zoomCenter float64
}

// Viewport couples a chart's State with the last computed visible slice. The
// slice is recomputed only when the series length, zoom level or center moved,
// or when the sampled series content changed. The sample is copied, so edits
// made in place to the caller's series are still noticed.
type Viewport[T any] struct {
	State State

	opts       []cmp.Option
	primed     bool
	lastKey    viewKey
	lastSeries changedetect.Sample[T]
	visible    []T
	start      int
	end        int
}

// NewViewport returns a viewport with a default State. opts are handed to the
// change detector when comparing series elements.
func NewViewport[T any](opts ...cmp.Option) *Viewport[T] {
	return &Viewport[T]{
		State: NewState(),
		opts:  opts,
	}
}

// Visible returns the visible slice of series and whether it was recomputed.
func (v *Viewport[T]) Visible(series []T) ([]T, bool) {
	key := viewKey{
		length:     len(series),
		zoomLevel:  v.State.ZoomLevel,
		zoomCenter: v.State.ZoomCenter,
	}
	if v.primed && key == v.lastKey && !v.lastSeries.Changed(series, v.opts...) {
		return v.visible, false
	}

	v.start, v.end = Bounds(len(series), key.zoomLevel, key.zoomCenter)
	v.visible = VisibleSlice(series, key.zoomLevel, key.zoomCenter)
	v.lastSeries = changedetect.Take(series)
	v.lastKey = key
	v.primed = true
	return v.visible, true
}

// Range returns the inclusive index range of the last computed slice.
func (v *Viewport[T]) Range() (int, int) {
	return v.start, v.end
}
