// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartview

import (
	"stockchart/chartplot"
	"stockchart/gesture"
	"stockchart/viewport"
	"stockchart/widgets"

	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

// Layout handles the input of the last frame and paints the chart including
// its overlays. The chart fills the maximum constraints.
func (c *Chart) Layout(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	gtx.Constraints.Min = size
	pxPerDp := gtx.Metric.PxPerDp
	if pxPerDp <= 0 {
		pxPerDp = 1
	}
	c.Resize(unit.Dp(float32(size.X) / pxPerDp))
	c.ApplyPendingResize()

	if c.shaper == nil {
		c.shaper = widgets.NewShaper()
	}
	c.handleToolbar(gtx)
	c.handleKeys(gtx)
	ct := c.Theme()
	th := widgets.NewMaterialTheme(c.shaper, ct)

	surface := chartplot.NewGioSurface(gtx, th)
	w, h := surface.Size()
	c.handlePointer(gtx, surface, c.Frame(w, h))
	if c.toolbar.Hovered() && c.hasCrosshair {
		c.ClearHover()
	}

	area := clip.Rect{Max: size}.Push(gtx.Ops)
	event.Op(gtx.Ops, c)
	f := c.Paint(surface)
	c.branding.SetCursor(gtx.Ops, c.brandingHovered)
	area.Pop()

	c.layoutOverlays(gtx, th, ct, surface, f)
	return layout.Dimensions{Size: size}
}

func (c *Chart) handleToolbar(gtx layout.Context) {
	for _, a := range c.toolbar.Actions(gtx) {
		switch a {
		case widgets.ToggleChartType:
			c.ToggleChartType()
		case widgets.ToggleDarkMode:
			c.ToggleDarkMode()
		case widgets.ToggleFullscreen:
			c.ToggleFullscreen()
		}
	}
}

func (c *Chart) handleKeys(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(key.Filter{Name: key.NameEscape})
		if !ok {
			break
		}
		if e, ok := ev.(key.Event); ok && e.State == key.Press {
			c.ExitFullscreen()
		}
	}
}

func (c *Chart) handlePointer(gtx layout.Context, m chartplot.TextMeasurer, f viewport.Frame) {
	for {
		ev, ok := gtx.Event(pointerFilter(c))
		if !ok {
			break
		}
		pe, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		if pe.Kind == pointer.Leave {
			c.brandingHovered = false
			if !c.gestures.Dragging() {
				c.ClearHover()
			}
			continue
		}
		e, ok := convertPointerEvent(pe, gtx.Metric.PxPerDp)
		if !ok {
			continue
		}
		onBranding := c.BrandingHit(m, f, e.X, e.Y)
		if e.Kind == gesture.Move {
			c.brandingHovered = onBranding && !c.gestures.Dragging()
		}
		if e.Kind == gesture.Press && onBranding {
			// Errors are logged by the link.
			_ = c.ClickBranding()
			continue
		}
		if c.HandleEvent(f, e) {
			f = c.Frame(f.Width, f.Height)
		}
	}
}

func (c *Chart) layoutOverlays(gtx layout.Context, th *material.Theme, ct widgets.ChartTheme, m chartplot.TextMeasurer, f viewport.Frame) {
	if c.labelWidth < 0 {
		c.labelWidth = OverlayLabelWidth(m, c.data)
	}
	c.readoutField.ValueWidth = gtx.Dp(unit.Dp(c.labelWidth))
	layout.NW.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{Left: unit.Dp(f.Padding.Left), Top: unit.Dp(2)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return c.readoutField.Layout(gtx, th, ct, c.readout.Entries(ct))
		})
	})
	layout.NE.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{Top: unit.Dp(2), Right: unit.Dp(2)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return c.toolbar.Layout(gtx, th, c.options.ChartType, c.options.DarkMode, c.fullscreen)
		})
	})
}
