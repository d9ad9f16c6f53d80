// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package widgets

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
)

const DefaultMargin = 5

// Frame draws an optional border and background behind a widget.
type Frame struct {
	OuterMargin     unit.Dp
	InnerMargin     unit.Dp
	BorderWidth     unit.Dp
	BorderColor     color.NRGBA
	BackgroundColor color.NRGBA
}

func (f Frame) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	return layout.UniformInset(f.OuterMargin).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return widget.Border{Color: f.BorderColor, Width: f.BorderWidth, CornerRadius: unit.Dp(4)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			if f.BackgroundColor.A == 0 {
				return layout.UniformInset(f.InnerMargin).Layout(gtx, w)
			}
			macro := op.Record(gtx.Ops)
			dims := layout.UniformInset(f.InnerMargin).Layout(gtx, w)
			call := macro.Stop()
			rr := gtx.Dp(4)
			paint.FillShape(gtx.Ops, f.BackgroundColor, clip.UniformRRect(image.Rectangle{Max: dims.Size}, rr).Op(gtx.Ops))
			call.Add(gtx.Ops)
			return dims
		})
	})
}
