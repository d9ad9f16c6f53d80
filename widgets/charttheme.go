// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package widgets

import (
	"image/color"
	"math"

	"gioui.org/x/component"
	"golang.org/x/image/colornames"
)

// ChartTheme contains the colors of one of the two chart palettes.
type ChartTheme struct {
	Dark                bool
	BackgroundColor     color.NRGBA
	BullColor           color.NRGBA
	BearColor           color.NRGBA
	GridColor           color.NRGBA
	TextColor           color.NRGBA
	CrosshairColor      color.NRGBA
	CrosshairDashes     []float32
	LabelBgColor        color.NRGBA
	LineColor           color.NRGBA
	GradientTopColor    color.NRGBA
	GradientBottomColor color.NRGBA
	VolumeColor         color.NRGBA
	WatermarkColor      color.NRGBA
	BrandingColor       color.NRGBA
	// The readout colors do not depend on the palette.
	ReadoutUpColor   color.NRGBA
	ReadoutDownColor color.NRGBA
	GridLineWidth    float32
	LineWidth        float32
}

var lineBlue = color.NRGBA{R: 0x34, G: 0x98, B: 0xdb, A: 255}

func opacity(f float64) uint8 {
	return uint8(math.Round(f * 255))
}

func toNRGBA(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// DeriveTheme returns the palette for dark or light mode.
// It has no side effects and is cheap enough to be called for every frame.
func DeriveTheme(dark bool) ChartTheme {
	white := toNRGBA(colornames.White)
	black := toNRGBA(colornames.Black)
	th := ChartTheme{
		Dark:             dark,
		CrosshairDashes:  []float32{5, 3},
		LineColor:        lineBlue,
		ReadoutUpColor:   color.NRGBA{R: 0x26, G: 0xa6, B: 0x9a, A: 255},
		ReadoutDownColor: color.NRGBA{R: 0xef, G: 0x53, B: 0x50, A: 255},
		GridLineWidth:    0.5,
		LineWidth:        2.5,
	}
	if dark {
		th.BackgroundColor = color.NRGBA{R: 0x12, G: 0x12, B: 0x12, A: 255}
		th.BullColor = color.NRGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 255}
		th.BearColor = color.NRGBA{R: 0xf4, G: 0x43, B: 0x36, A: 255}
		th.GridColor = color.NRGBA{R: 0x44, G: 0x44, B: 0x44, A: 255}
		th.TextColor = color.NRGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 255}
		th.CrosshairColor = component.WithAlpha(white, opacity(0.4))
		th.LabelBgColor = color.NRGBA{R: 20, G: 20, B: 20, A: opacity(0.8)}
		th.GradientTopColor = component.WithAlpha(lineBlue, opacity(0.5))
		th.GradientBottomColor = component.WithAlpha(lineBlue, opacity(0.05))
		th.VolumeColor = component.WithAlpha(lineBlue, opacity(0.3))
		th.WatermarkColor = component.WithAlpha(white, opacity(0.1))
		th.BrandingColor = component.WithAlpha(white, opacity(0.3))
	} else {
		th.BackgroundColor = white
		th.BullColor = color.NRGBA{R: 0x26, G: 0xa6, B: 0x9a, A: 255}
		th.BearColor = color.NRGBA{R: 0xef, G: 0x53, B: 0x50, A: 255}
		th.GridColor = color.NRGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 255}
		th.TextColor = color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 255}
		th.CrosshairColor = component.WithAlpha(black, opacity(0.3))
		th.LabelBgColor = component.WithAlpha(white, opacity(0.8))
		th.GradientTopColor = component.WithAlpha(lineBlue, opacity(0.3))
		th.GradientBottomColor = component.WithAlpha(lineBlue, opacity(0.02))
		th.VolumeColor = component.WithAlpha(lineBlue, opacity(0.2))
		th.WatermarkColor = component.WithAlpha(black, opacity(0.1))
		th.BrandingColor = color.NRGBA{R: 100, G: 100, B: 100, A: opacity(0.3)}
	}
	return th
}

// CandleColor returns the body and wick color of a candle.
func (th ChartTheme) CandleColor(isGreen bool) color.NRGBA {
	if isGreen {
		return th.BullColor
	}
	return th.BearColor
}

func (th ChartTheme) ReadoutCloseColor(isGreen bool) color.NRGBA {
	if isGreen {
		return th.ReadoutUpColor
	}
	return th.ReadoutDownColor
}
