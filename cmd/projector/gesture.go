package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/carson-networks/budget-projector/internal/window"
)

// gesture is one recorded chart input event.
type gesture struct {
	raw  string
	kind string
	x    float64
	y    float64
}

var gestureArgs = map[string]int{
	"wheel":   2,
	"drag":    1,
	"press":   1,
	"move":    1,
	"release": 0,
	"reset":   0,
}

// parseGesture reads wheel:<deltaY>:<relativeX>, drag:<dx>, press:<x>,
// move:<x>, release or reset.
func parseGesture(s string) (gesture, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	kind := strings.ToLower(parts[0])

	want, ok := gestureArgs[kind]
	if !ok {
		return gesture{}, fmt.Errorf("unknown gesture %q", s)
	}
	if len(parts)-1 != want {
		return gesture{}, fmt.Errorf("gesture %q takes %d argument(s)", kind, want)
	}

	values := make([]float64, want)
	for i, part := range parts[1:] {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return gesture{}, fmt.Errorf("gesture %q: %w", s, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return gesture{}, fmt.Errorf("gesture %q: %q is not a finite number", s, part)
		}
		values[i] = v
	}

	g := gesture{raw: s, kind: kind}
	switch want {
	case 2:
		g.y, g.x = values[0], values[1]
	case 1:
		g.x = values[0]
	}
	return g, nil
}

// apply feeds the gesture to state and reports whether it moved the window.
func (g gesture) apply(state *window.State) bool {
	switch g.kind {
	case "wheel":
		return state.Wheel(g.y, g.x)
	case "drag":
		return state.Drag(g.x)
	case "press":
		state.BeginDrag(g.x)
		return false
	case "move":
		return state.DragTo(g.x)
	case "release":
		state.EndDrag()
		return false
	case "reset":
		before := *state
		state.Reset()
		return before.ZoomLevel != state.ZoomLevel || before.ZoomCenter != state.ZoomCenter
	}
	return false
}
