// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartview

import (
	"image"

	"stockchart/gesture"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
)

// Wheel events are forwarded in this range, larger values are clamped by Gio.
var wheelRange = image.Rect(0, -1000, 0, 1000)

const pointerKinds = pointer.Press | pointer.Release | pointer.Move | pointer.Drag |
	pointer.Scroll | pointer.Cancel | pointer.Enter | pointer.Leave

// pointerFilter selects the pointer events of the chart area, including
// vertical wheel scrolling.
func pointerFilter(tag event.Tag) pointer.Filter {
	return pointer.Filter{Target: tag, Kinds: pointerKinds, ScrollBounds: wheelRange}
}

// convertPointerEvent translates a Gio pointer event into chart coordinates in dp.
// Leave events have no gesture counterpart and are reported as not ok.
func convertPointerEvent(e pointer.Event, pxPerDp float32) (gesture.Event, bool) {
	if pxPerDp <= 0 {
		pxPerDp = 1
	}
	g := gesture.Event{
		Source: gesture.Mouse,
		ID:     int64(e.PointerID),
		X:      float64(e.Position.X / pxPerDp),
		Y:      float64(e.Position.Y / pxPerDp),
	}
	if e.Source == pointer.Touch {
		g.Source = gesture.Touch
	}
	switch e.Kind {
	case pointer.Press:
		g.Kind = gesture.Press
	case pointer.Move, pointer.Drag, pointer.Enter:
		g.Kind = gesture.Move
	case pointer.Release:
		g.Kind = gesture.Release
	case pointer.Scroll:
		g.Kind = gesture.Scroll
		g.ScrollY = float64(e.Scroll.Y)
	case pointer.Cancel:
		g.Kind = gesture.Cancel
	default:
		return gesture.Event{}, false
	}
	return g, true
}
