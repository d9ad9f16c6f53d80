// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package widgets

import (
	"stockchart/chartval"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

type ToolbarAction int

const (
	ToggleChartType ToolbarAction = iota
	ToggleDarkMode
	ToggleFullscreen
)

// Toolbar contains the buttons on top of the chart.
type Toolbar struct {
	chartTypeButton  widget.Clickable
	darkModeButton   widget.Clickable
	fullscreenButton widget.Clickable
}

// Actions returns the buttons which were clicked since the last frame.
func (t *Toolbar) Actions(gtx layout.Context) []ToolbarAction {
	var actions []ToolbarAction
	for t.chartTypeButton.Clicked(gtx) {
		actions = append(actions, ToggleChartType)
	}
	for t.darkModeButton.Clicked(gtx) {
		actions = append(actions, ToggleDarkMode)
	}
	for t.fullscreenButton.Clicked(gtx) {
		actions = append(actions, ToggleFullscreen)
	}
	return actions
}

// Hovered is true if the pointer is above a button. The chart hides the crosshair in that case.
func (t *Toolbar) Hovered() bool {
	return t.chartTypeButton.Hovered() || t.darkModeButton.Hovered() || t.fullscreenButton.Hovered()
}

func (t *Toolbar) Layout(gtx layout.Context, th *material.Theme, chartType chartval.ChartType, dark bool, fullscreen bool) layout.Dimensions {
	// Buttons show the state after clicking.
	darkText := "Dark"
	if dark {
		darkText = "Light"
	}
	fullscreenText := "Fullscreen"
	if fullscreen {
		fullscreenText = "Exit fullscreen"
	}
	return layout.Flex{Axis: layout.Horizontal}.Layout(
		gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return toolbarButton(gtx, th, &t.chartTypeButton, chartType.Toggle().UiString())
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return toolbarButton(gtx, th, &t.darkModeButton, darkText)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return toolbarButton(gtx, th, &t.fullscreenButton, fullscreenText)
		}),
	)
}

func toolbarButton(gtx layout.Context, th *material.Theme, c *widget.Clickable, txt string) layout.Dimensions {
	b := material.Button(th, c, txt)
	b.TextSize = unit.Sp(12)
	b.Inset = layout.Inset{Top: 4, Bottom: 4, Left: 8, Right: 8}
	b.Background = th.ContrastBg
	b.Color = th.ContrastFg
	return layout.Inset{Left: DefaultMargin}.Layout(gtx, b.Layout)
}
