// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartplot

import (
	"image/color"

	"stockchart/viewport"
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

type Baseline int

const (
	BaselineTop Baseline = iota
	BaselineMiddle
	BaselineBottom
	BaselineAlphabetic
)

type Font struct {
	Size float64
	Bold bool
}

type Point struct {
	X float64
	Y float64
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// TextMeasurer returns the advance width of a text.
type TextMeasurer interface {
	MeasureText(txt string, font Font) float64
}

// Surface is a 2D drawing target. Coordinates are in surface units with the
// origin in the top left corner.
type Surface interface {
	TextMeasurer
	Size() (width, height float64)
	FillRect(r viewport.Rect, c color.NRGBA)
	StrokeRect(r viewport.Rect, width float64, c color.NRGBA)
	// StrokeLine draws a dashed line if dashes is not empty.
	StrokeLine(from, to Point, width float64, c color.NRGBA, dashes []float32)
	StrokePath(points []Point, width float64, c color.NRGBA)
	// FillGradientPath fills a closed polygon with a vertical gradient from topY to bottomY.
	FillGradientPath(points []Point, topY, bottomY float64, topColor, bottomColor color.NRGBA)
	DrawText(txt string, x, y float64, font Font, c color.NRGBA, align Align, baseline Baseline)
	PushClip(r viewport.Rect)
	PopClip()
}

// alignedX returns the left position of a text of width w.
func alignedX(x, w float64, align Align) float64 {
	switch align {
	case AlignCenter:
		return x - w*0.5
	case AlignRight:
		return x - w
	default:
		return x
	}
}
