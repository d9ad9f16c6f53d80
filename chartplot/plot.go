// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartplot

import (
	"math"

	"stockchart/chartval"
	"stockchart/timeframe"
	"stockchart/viewport"
	"stockchart/widgets"
)

const (
	VolumeHeight      = 40
	SeparatorInterval = 10
	labelMargin       = 5
	labelBoxHeight    = 20
	dateLabelOffsetY  = 15
	crosshairWidth    = 1
	wickWidth         = 1
	minBodyHeight     = 1
	brandingPadX      = 10
	brandingPadY      = 2
)

// Scene contains everything needed to paint one frame.
type Scene struct {
	Frame         viewport.Frame
	Data          []chartval.Candle
	ChartType     chartval.ChartType
	Theme         widgets.ChartTheme
	Timeframe     timeframe.Timeframe
	SizeClass     viewport.SizeClass
	Ticker        string
	ShowWatermark bool
	ShowBranding  bool
	Crosshair     viewport.Crosshair
	HasCrosshair  bool
}

// Renderer paints a chart scene onto a surface. It has no state of its own,
// everything which is painted is derived from the scene.
type Renderer struct {
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Paint(s Surface, sc Scene) {
	f := sc.Frame
	visible := viewport.VisibleCandles(sc.Data, f.State)

	s.FillRect(viewport.Rect{W: f.Width, H: f.Height}, sc.Theme.BackgroundColor)
	if sc.ShowWatermark && sc.Ticker != "" {
		r.paintWatermark(s, sc)
	}

	s.PushClip(f.PlotRect())
	ticks := f.NiceScale().Ticks()
	r.paintGrid(s, sc, ticks)
	r.paintSeparators(s, sc)
	if sc.ChartType == chartval.ChartTypeCandlestick {
		r.paintCandles(s, sc, visible)
	} else {
		r.paintLine(s, sc, visible)
	}
	s.PopClip()

	r.paintVolumeBars(s, sc, visible)
	r.paintPriceLabels(s, sc, ticks)
	r.paintDateLabels(s, sc, visible)
	r.paintLastCloseLabel(s, sc)
	if sc.ShowBranding {
		r.paintBranding(s, sc)
	}
	if sc.HasCrosshair {
		r.paintCrosshair(s, sc)
	}
}

func (r *Renderer) paintWatermark(s Surface, sc Scene) {
	s.DrawText(sc.Ticker, sc.Frame.Width*0.5, sc.Frame.Height*0.5, WatermarkFont(sc.SizeClass),
		sc.Theme.WatermarkColor, AlignCenter, BaselineMiddle)
}

func (r *Renderer) paintGrid(s Surface, sc Scene, ticks []float64) {
	f := sc.Frame
	plot := f.PlotRect()
	for _, tick := range ticks {
		y := f.PriceToY(tick)
		s.StrokeLine(Pt(plot.X, y), Pt(plot.X+plot.W, y), float64(sc.Theme.GridLineWidth), sc.Theme.GridColor, nil)
	}
}

// paintSeparators draws a vertical line at every candle whose data index is a multiple of SeparatorInterval.
func (r *Renderer) paintSeparators(s Surface, sc Scene) {
	f := sc.Frame
	plot := f.PlotRect()
	offset := f.State.DataOffset
	for i := (offset / SeparatorInterval) * SeparatorInterval; i < offset+f.State.VisibleCount; i += SeparatorInterval {
		if i < offset || i >= len(sc.Data) {
			continue
		}
		x := f.CenterX(i - offset)
		s.StrokeLine(Pt(x, plot.Y), Pt(x, plot.Y+plot.H), float64(sc.Theme.GridLineWidth), sc.Theme.GridColor, nil)
	}
}

func (r *Renderer) paintLine(s Surface, sc Scene, visible []chartval.Candle) {
	if len(visible) == 0 {
		return
	}
	f := sc.Frame
	points := make([]Point, 0, len(visible)+2)
	for i, c := range visible {
		points = append(points, Pt(f.CenterX(i), f.PriceToY(c.Close)))
	}
	bottom := f.PlotBottom()
	area := append(points[:len(points):len(points)],
		Pt(points[len(points)-1].X, bottom),
		Pt(points[0].X, bottom),
	)
	s.FillGradientPath(area, f.Padding.Top, bottom, sc.Theme.GradientTopColor, sc.Theme.GradientBottomColor)
	s.StrokePath(points, float64(sc.Theme.LineWidth), sc.Theme.LineColor)
}

func (r *Renderer) paintCandles(s Surface, sc Scene, visible []chartval.Candle) {
	f := sc.Frame
	cw := f.CandleWidth()
	for i, c := range visible {
		col := sc.Theme.CandleColor(c.IsGreen())
		x := f.IndexToX(i)
		center := x + cw*0.5
		s.StrokeLine(Pt(center, f.PriceToY(c.High)), Pt(center, f.PriceToY(c.Low)), wickWidth, col, nil)
		yOpen := f.PriceToY(c.Open)
		yClose := f.PriceToY(c.Close)
		top := math.Min(yOpen, yClose)
		bodyHeight := math.Max(minBodyHeight, math.Max(yOpen, yClose)-top)
		s.FillRect(viewport.Rect{X: x, Y: top, W: cw, H: bodyHeight}, col)
	}
}

// paintVolumeBars draws the volume at the bottom of the plot, scaled to the largest visible volume.
func (r *Renderer) paintVolumeBars(s Surface, sc Scene, visible []chartval.Candle) {
	maxVolume := 0.0
	for _, c := range visible {
		maxVolume = math.Max(maxVolume, c.Volume)
	}
	if maxVolume <= 0 {
		return
	}
	f := sc.Frame
	cw := f.CandleWidth()
	bottom := f.PlotBottom()
	for i, c := range visible {
		h := c.Volume / maxVolume * VolumeHeight
		s.FillRect(viewport.Rect{X: f.IndexToX(i), Y: bottom - h, W: cw, H: h}, sc.Theme.VolumeColor)
	}
}

func (r *Renderer) paintPriceLabels(s Surface, sc Scene, ticks []float64) {
	f := sc.Frame
	x := f.Width - f.Padding.Right + labelMargin
	for _, tick := range ticks {
		y := f.PriceToY(tick)
		if y < f.Padding.Top || y > f.PlotBottom() {
			continue
		}
		s.DrawText(chartval.FormatPrice(tick), x, y, LabelFont, sc.Theme.TextColor, AlignLeft, BaselineMiddle)
	}
}

func (r *Renderer) paintDateLabels(s Surface, sc Scene, visible []chartval.Candle) {
	f := sc.Frame
	y := f.PlotBottom() + labelMargin
	for i, c := range visible {
		if (f.State.DataOffset+i)%SeparatorInterval != 0 {
			continue
		}
		s.DrawText(sc.Timeframe.FormatLabel(c.Time), f.CenterX(i), y, LabelFont, sc.Theme.TextColor, AlignCenter, BaselineTop)
	}
}

func (r *Renderer) paintLastCloseLabel(s Surface, sc Scene) {
	if len(sc.Data) == 0 {
		return
	}
	f := sc.Frame
	last := sc.Data[len(sc.Data)-1]
	y := chartval.Clamp(f.PriceToY(last.Close), f.Padding.Top+10, f.PlotBottom()-10)
	r.paintPriceBox(s, sc, f.Width-f.Padding.Right, y, chartval.FormatPrice(last.Close))
}

// paintPriceBox draws a boxed label which starts at x and is vertically centered at y.
func (r *Renderer) paintPriceBox(s Surface, sc Scene, x, y float64, txt string) {
	w := s.MeasureText(txt, LabelFont)
	box := viewport.Rect{X: x, Y: y - labelBoxHeight*0.5, W: w + 2*labelMargin, H: labelBoxHeight}
	s.FillRect(box, sc.Theme.LabelBgColor)
	s.StrokeRect(box, crosshairWidth, sc.Theme.CrosshairColor)
	s.DrawText(txt, x+labelMargin, y, LabelFont, sc.Theme.TextColor, AlignLeft, BaselineMiddle)
}

func (r *Renderer) paintBranding(s Surface, sc Scene) {
	s.DrawText(chartval.BrandingText, brandingPadX, sc.Frame.Height-brandingPadY, BrandingFont(sc.SizeClass),
		sc.Theme.BrandingColor, AlignLeft, BaselineBottom)
}

func (r *Renderer) paintCrosshair(s Surface, sc Scene) {
	f := sc.Frame
	c := sc.Crosshair
	th := sc.Theme
	s.StrokeLine(Pt(c.X, 0), Pt(c.X, f.Height), crosshairWidth, th.CrosshairColor, th.CrosshairDashes)
	s.StrokeLine(Pt(0, c.Y), Pt(f.Width-f.Padding.Right, c.Y), crosshairWidth, th.CrosshairColor, th.CrosshairDashes)

	r.paintPriceBox(s, sc, f.Width-f.Padding.Right, c.Y, chartval.FormatPrice(c.Price))

	dateText := sc.Timeframe.FormatDetail(c.Candle.Time)
	dateY := f.PlotBottom() + dateLabelOffsetY
	w := s.MeasureText(dateText, LabelFont)
	box := viewport.Rect{X: c.X - w*0.5 - labelMargin, Y: dateY - labelBoxHeight*0.5, W: w + 2*labelMargin, H: labelBoxHeight}
	s.FillRect(box, th.LabelBgColor)
	s.StrokeRect(box, crosshairWidth, th.CrosshairColor)
	s.DrawText(dateText, c.X, dateY, LabelFont, th.TextColor, AlignCenter, BaselineMiddle)
}

// BrandingHit reports whether x, y is on the branding text.
func BrandingHit(m TextMeasurer, f viewport.Frame, c viewport.SizeClass, x, y float64) bool {
	brandY := f.Height - brandingPadY
	w := m.MeasureText(chartval.BrandingText, BrandingFont(c))
	return x >= brandingPadX && x <= brandingPadX+w+labelMargin && y >= brandY-15 && y <= brandY+5
}
