// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package widgets

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

const ReadoutTextSize = 14

type ReadoutEntry struct {
	Label string
	Value string
	Color color.NRGBA
}

// ReadoutField shows the OHLCV values of a candle. All values share the same width,
// so that the labels do not move while hovering.
type ReadoutField struct {
	// Width of a value in px, at ReadoutTextSize.
	ValueWidth int
}

func (f *ReadoutField) Layout(gtx layout.Context, th *material.Theme, ct ChartTheme, entries []ReadoutEntry) layout.Dimensions {
	children := make([]layout.FlexChild, 0, len(entries)*2)
	for _, entry := range entries {
		entry := entry
		children = append(children,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				lbl := material.Label(th, unit.Sp(ReadoutTextSize), entry.Label+" ")
				lbl.Color = ct.TextColor
				return lbl.Layout(gtx)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				lbl := material.Label(th, unit.Sp(ReadoutTextSize), entry.Value)
				lbl.Color = entry.Color
				lbl.MaxLines = 1
				gtx.Constraints.Min.X = min(f.ValueWidth, gtx.Constraints.Max.X)
				return layout.Inset{Right: DefaultMargin}.Layout(gtx, lbl.Layout)
			}),
		)
	}
	return Frame{InnerMargin: DefaultMargin, BackgroundColor: ct.LabelBgColor}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal}.Layout(gtx, children...)
	})
}
