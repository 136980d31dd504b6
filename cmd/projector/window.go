package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"

	"github.com/carson-networks/budget-projector/internal/window"
)

type windowCmd struct {
	Length   int      `default:"101" help:"Number of points in the series."`
	Gestures []string `arg:"" optional:"" help:"Gestures applied in order: wheel:<deltaY>:<relativeX>, drag:<dx>, press:<x>, move:<x>, release, reset."`
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

func (w *windowCmd) Run(g *globals) error {
	if w.Length < 0 {
		return fmt.Errorf("length must not be negative, got %d", w.Length)
	}

	gestures := make([]gesture, len(w.Gestures))
	for i, raw := range w.Gestures {
		parsed, err := parseGesture(raw)
		if err != nil {
			return err
		}
		gestures[i] = parsed
	}

	series := make([]int, w.Length)
	for i := range series {
		series[i] = i
	}

	viewport := window.NewViewport[int]()
	w.print(g, "initial", viewport, series)
	for _, gst := range gestures {
		moved := gst.apply(&viewport.State)
		g.logger.WithField("gesture", gst.raw).WithField("moved", moved).Debug("Projector.Window.Gesture")
		w.print(g, gst.raw, viewport, series)
	}
	return nil
}

func (w *windowCmd) print(g *globals, label string, viewport *window.Viewport[int], series []int) {
	visible, recomputed := viewport.Visible(series)
	start, end := viewport.Range()
	fmt.Fprintf(g.out, "%-16s zoom=%.3f center=%.3f range=[%d,%d] count=%d recomputed=%t\n",
		label, viewport.State.ZoomLevel, viewport.State.ZoomCenter, start, end, len(visible), recomputed)

	if g.Dump {
		dumpConfig.Fdump(g.errOut, viewport.State)
	}
}
