// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package widgets

import (
	"gioui.org/font/gofont"
	"gioui.org/text"
	"gioui.org/widget/material"
)

// NewMaterialTheme returns the theme for the controls which are layed out on top of the chart.
func NewMaterialTheme(shaper *text.Shaper, ct ChartTheme) *material.Theme {
	th := material.NewTheme()
	th.Shaper = shaper
	th.Bg = ct.BackgroundColor
	th.Fg = ct.TextColor
	th.ContrastBg = ct.LabelBgColor
	th.ContrastFg = ct.TextColor
	return th
}

func NewShaper() *text.Shaper {
	return text.NewShaper(text.NoSystemFonts(), text.WithCollection(gofont.Collection()))
}
