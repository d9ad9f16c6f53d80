// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package viewport

import (
	"math"

	"stockchart/chartval"
)

const MinCandleWidth = 2

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// LayoutConfig contains the fixed layout parameters of the price plot.
type LayoutConfig struct {
	Padding Padding
	// The right padding is widened if the visible maximum reaches this price.
	WidePriceThreshold float64
	WideRightPadding   float64
}

func NewLayoutConfig() LayoutConfig {
	return LayoutConfig{
		Padding:            Padding{Top: 30, Right: 60, Bottom: 30, Left: 10},
		WidePriceThreshold: 10000,
		WideRightPadding:   80,
	}
}

// PriceToY maps a price to a y pixel position, higher prices are further up.
func PriceToY(price, rangeMin, rangeMax, plotHeight, surfaceHeight, bottomPadding float64) float64 {
	bottom := surfaceHeight - bottomPadding
	rng := rangeMax - rangeMin
	if rng == 0 {
		return bottom - plotHeight*0.5
	}
	return bottom - ((price-rangeMin)/rng)*plotHeight
}

// YToPrice is the inverse of PriceToY.
func YToPrice(y, rangeMin, rangeMax, plotHeight, surfaceHeight, bottomPadding float64) float64 {
	if plotHeight == 0 {
		return rangeMin
	}
	rel := (surfaceHeight - bottomPadding - y) / plotHeight
	return rangeMin + (rangeMax-rangeMin)*rel
}

func IndexToX(localIndex int, leftPadding, candleWidth, spacing float64) float64 {
	return leftPadding + float64(localIndex)*(candleWidth+spacing)
}

func CandleWidth(plotWidth float64, visibleCount int, spacing float64) float64 {
	if visibleCount <= 0 {
		return MinCandleWidth
	}
	return math.Max(MinCandleWidth, plotWidth/float64(visibleCount)-spacing)
}

// Frame is the result of the layout pass. It is computed before painting and
// maps between data indices, prices and pixel positions for one frame.
type Frame struct {
	Width   float64
	Height  float64
	Padding Padding
	Spacing float64
	State   State
	// Visible price range including vertical zoom and pan.
	Range PriceRange
}

// NewFrame computes the layout for the given surface size. The right padding
// depends on the visible price range and is final before any drawing happens.
func NewFrame(width, height float64, s State, data []chartval.Candle, sizeClass SizeClass, cfg LayoutConfig) Frame {
	f := Frame{
		Width:   width,
		Height:  height,
		Padding: cfg.Padding,
		Spacing: sizeClass.Spacing(),
		State:   s,
		Range:   VisibleRange(data, s),
	}
	if f.Range.Max >= cfg.WidePriceThreshold {
		f.Padding.Right = cfg.WideRightPadding
	}
	return f
}

func (f Frame) PlotWidth() float64 {
	return f.Width - f.Padding.Left - f.Padding.Right
}

func (f Frame) PlotHeight() float64 {
	return f.Height - f.Padding.Top - f.Padding.Bottom
}

func (f Frame) PlotRect() Rect {
	return Rect{X: f.Padding.Left, Y: f.Padding.Top, W: f.PlotWidth(), H: f.PlotHeight()}
}

func (f Frame) PlotBottom() float64 {
	return f.Height - f.Padding.Bottom
}

func (f Frame) CandleWidth() float64 {
	return CandleWidth(f.PlotWidth(), f.State.VisibleCount, f.Spacing)
}

// Step is the horizontal distance between two candles.
func (f Frame) Step() float64 {
	return f.CandleWidth() + f.Spacing
}

func (f Frame) IndexToX(localIndex int) float64 {
	return IndexToX(localIndex, f.Padding.Left, f.CandleWidth(), f.Spacing)
}

func (f Frame) CenterX(localIndex int) float64 {
	return f.IndexToX(localIndex) + f.CandleWidth()*0.5
}

func (f Frame) PriceToY(price float64) float64 {
	return PriceToY(price, f.Range.Min, f.Range.Max, f.PlotHeight(), f.Height, f.Padding.Bottom)
}

func (f Frame) YToPrice(y float64) float64 {
	return YToPrice(y, f.Range.Min, f.Range.Max, f.PlotHeight(), f.Height, f.Padding.Bottom)
}

func (f Frame) XToLocalIndex(x float64) int {
	return int(math.Floor((x - f.Padding.Left) / f.Step()))
}

// InGutter reports whether x is within the price scale area on the right.
func (f Frame) InGutter(x float64) bool {
	return x >= f.Width-f.Padding.Right
}

func (f Frame) InPlot(x, y float64) bool {
	return f.PlotRect().Contains(x, y)
}

func (f Frame) NiceScale() NiceScale {
	return ComputeNiceScale(f.Range.Min, f.Range.Max, TargetTicks(f.PlotHeight()))
}
