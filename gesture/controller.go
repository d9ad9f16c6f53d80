// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gesture

import (
	"math"

	"stockchart/chartval"
	"stockchart/viewport"

	"github.com/zhangyunhao116/skipmap"
)

const rescaleSensitivity = 0.01

// Scene is the chart state a gesture is applied to.
// Frame needs to be the layout of State.
type Scene struct {
	State viewport.State
	Frame viewport.Frame
	Data  []chartval.Candle
}

type panSession struct {
	source   Source
	id       int64
	startX   float64
	startY   float64
	snapshot viewport.State
}

type rescaleSession struct {
	source Source
	id     int64
	lastY  float64
}

type pinchSession struct {
	initialDistance float64
	initialCount    int
}

// Controller turns pointer events into viewport changes.
// Pan and vertical rescale are single pointer drags, two touches zoom horizontally.
// A pan which is active when a pinch starts is suspended until the pinch ends.
// Call only from the goroutine which handles the window events.
type Controller struct {
	// Active touches ordered by id, so that the pinch pair is stable.
	touches      *skipmap.Int64Map[touchPoint]
	pan          *panSession
	suspendedPan *panSession
	rescale      *rescaleSession
	pinch        *pinchSession
}

func NewController() *Controller {
	return &Controller{
		touches: skipmap.NewInt64[touchPoint](),
	}
}

// Dragging reports whether a gesture session is active.
func (c *Controller) Dragging() bool {
	return c.pan != nil || c.suspendedPan != nil || c.rescale != nil || c.pinch != nil
}

func (c *Controller) Pinching() bool {
	return c.pinch != nil
}

// Reset ends all sessions and forgets all touches.
func (c *Controller) Reset() {
	c.pan = nil
	c.suspendedPan = nil
	c.rescale = nil
	c.pinch = nil
	c.touches = skipmap.NewInt64[touchPoint]()
}

// Handle applies the event and returns the new viewport state.
// The boolean result is true if the chart needs to be repainted.
func (c *Controller) Handle(sc Scene, e Event) (viewport.State, bool) {
	switch e.Kind {
	case Press:
		return c.handlePress(sc, e)
	case Move:
		return c.handleMove(sc, e)
	case Release:
		return c.handleRelease(sc, e)
	case Scroll:
		return c.handleScroll(sc, e)
	default:
		dragging := c.Dragging()
		c.Reset()
		return sc.State, dragging
	}
}

func (c *Controller) handlePress(sc Scene, e Event) (viewport.State, bool) {
	if e.Source == Touch {
		c.touches.Store(e.ID, touchPoint{X: e.X, Y: e.Y})
		if c.touches.Len() >= 2 {
			c.startPinch(sc)
			return sc.State, false
		}
	}
	// A single new pointer does not interrupt a running session.
	if c.Dragging() {
		return sc.State, false
	}
	if sc.Frame.InGutter(e.X) {
		c.rescale = &rescaleSession{source: e.Source, id: e.ID, lastY: e.Y}
	} else {
		c.pan = &panSession{source: e.Source, id: e.ID, startX: e.X, startY: e.Y, snapshot: sc.State}
	}
	return sc.State, false
}

func (c *Controller) startPinch(sc Scene) {
	if c.pan != nil {
		c.suspendedPan = c.pan
		c.pan = nil
	}
	c.rescale = nil
	if c.pinch != nil {
		return
	}
	if d, ok := c.pinchDistance(); ok && d > 0 {
		c.pinch = &pinchSession{initialDistance: d, initialCount: sc.State.VisibleCount}
	}
}

func (c *Controller) handleMove(sc Scene, e Event) (viewport.State, bool) {
	if e.Source == Touch {
		if _, ok := c.touches.Load(e.ID); ok {
			c.touches.Store(e.ID, touchPoint{X: e.X, Y: e.Y})
		}
		if c.touches.Len() >= 2 {
			return c.applyPinch(sc)
		}
	}
	if c.rescale != nil && c.rescale.matches(e) {
		dy := e.Y - c.rescale.lastY
		c.rescale.lastY = e.Y
		s := sc.State
		if dy < 0 {
			s = s.ZoomVertical(1 + math.Abs(dy)*rescaleSensitivity)
		} else if dy > 0 {
			s = s.ZoomVertical(1 / (1 + dy*rescaleSensitivity))
		}
		return s, s != sc.State
	}
	if c.pan != nil && c.pan.matches(e) {
		s := c.pan.apply(sc, e.X, e.Y)
		return s, s != sc.State
	}
	return sc.State, false
}

func (c *Controller) applyPinch(sc Scene) (viewport.State, bool) {
	if c.pinch == nil {
		// Both fingers started at the same position.
		c.startPinch(sc)
		return sc.State, false
	}
	d, ok := c.pinchDistance()
	if !ok || d <= 0 {
		return sc.State, false
	}
	n := int(math.Round(float64(c.pinch.initialCount) * c.pinch.initialDistance / d))
	s := sc.State.WithVisibleCount(n, sc.State.RightEdge())
	return s, s != sc.State
}

func (c *Controller) handleRelease(sc Scene, e Event) (viewport.State, bool) {
	changed := false
	if e.Source == Touch {
		c.touches.Delete(e.ID)
		if c.touches.Len() < 2 {
			if c.pinch != nil {
				c.pinch = nil
				changed = true
			}
			c.resumePan(sc)
		}
	}
	if c.rescale != nil && c.rescale.matches(e) {
		c.rescale = nil
	}
	if c.pan != nil && c.pan.matches(e) {
		c.pan = nil
		changed = true
	}
	return sc.State, changed
}

// resumePan continues a suspended pan if its finger is the only one left.
// The new session starts at the current position, so the chart does not jump.
func (c *Controller) resumePan(sc Scene) {
	p := c.suspendedPan
	c.suspendedPan = nil
	if p == nil || c.touches.Len() != 1 {
		return
	}
	pt, ok := c.touches.Load(p.id)
	if !ok {
		return
	}
	c.pan = &panSession{source: p.source, id: p.id, startX: pt.X, startY: pt.Y, snapshot: sc.State}
}

func (c *Controller) handleScroll(sc Scene, e Event) (viewport.State, bool) {
	if sc.Frame.InGutter(e.X) || e.ScrollY == 0 {
		return sc.State, false
	}
	var s viewport.State
	if e.ScrollY < 0 {
		s = sc.State.ZoomInStep(sc.State.RightEdge())
	} else {
		s = sc.State.ZoomOutStep(sc.State.RightEdge())
	}
	return s, s != sc.State
}

func (c *Controller) pinchDistance() (float64, bool) {
	pts := make([]touchPoint, 0, 2)
	c.touches.Range(func(_ int64, p touchPoint) bool {
		pts = append(pts, p)
		return len(pts) < 2
	})
	if len(pts) < 2 {
		return 0, false
	}
	return math.Hypot(pts[0].X-pts[1].X, pts[0].Y-pts[1].Y), true
}

func (p *panSession) matches(e Event) bool {
	return p.source == e.Source && (e.Source == Mouse || p.id == e.ID)
}

// apply computes the pan against the state at the start of the drag.
func (p *panSession) apply(sc Scene, x, y float64) viewport.State {
	shift := 0
	if step := sc.Frame.Step(); step > 0 {
		shift = int(math.Round((x - p.startX) / step))
	}
	s := sc.State.WithDataOffset(p.snapshot.DataOffset - shift)
	s.PriceOffset = p.snapshot.PriceOffset
	if plotHeight := sc.Frame.PlotHeight(); plotHeight > 0 {
		pricePerPixel := viewport.ScaledRange(sc.Data, s).Span() / plotHeight
		s = s.PanVertical((y - p.startY) * pricePerPixel)
	}
	return s
}

func (r *rescaleSession) matches(e Event) bool {
	return r.source == e.Source && (e.Source == Mouse || r.id == e.ID)
}
