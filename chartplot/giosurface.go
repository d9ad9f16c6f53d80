// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartplot

import (
	"image"
	"image/color"
	"math"

	"stockchart/viewport"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"gioui.org/x/stroke"
)

// GioSurface paints using Gio operations. Surface units are dp, so that the
// layout of the chart does not depend on the screen density.
type GioSurface struct {
	gtx    layout.Context
	th     *material.Theme
	scale  float32
	width  float64
	height float64
	clips  []clip.Stack
}

func NewGioSurface(gtx layout.Context, th *material.Theme) *GioSurface {
	scale := gtx.Metric.PxPerDp
	if scale <= 0 {
		scale = 1
	}
	return &GioSurface{
		gtx:    gtx,
		th:     th,
		scale:  scale,
		width:  float64(float32(gtx.Constraints.Max.X) / scale),
		height: float64(float32(gtx.Constraints.Max.Y) / scale),
	}
}

func (s *GioSurface) Size() (float64, float64) {
	return s.width, s.height
}

func (s *GioSurface) pt(p Point) f32.Point {
	return f32.Pt(float32(p.X)*s.scale, float32(p.Y)*s.scale)
}

func (s *GioSurface) px(v float64) int {
	return int(math.Round(v * float64(s.scale)))
}

func (s *GioSurface) polygon(points []Point) clip.PathSpec {
	var p clip.Path
	p.Begin(s.gtx.Ops)
	p.MoveTo(s.pt(points[0]))
	for _, pt := range points[1:] {
		p.LineTo(s.pt(pt))
	}
	p.Close()
	return p.End()
}

func (s *GioSurface) FillRect(r viewport.Rect, c color.NRGBA) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	// clip.Rect has integer resolution, which is not precise enough for candle bodies.
	paint.FillShape(s.gtx.Ops, c, clip.Outline{Path: s.polygon(rectPolygon(r))}.Op())
}

func (s *GioSurface) StrokeRect(r viewport.Rect, width float64, c color.NRGBA) {
	var path stroke.Path
	path.Segments = []stroke.Segment{
		stroke.MoveTo(s.pt(Pt(r.X, r.Y))),
		stroke.LineTo(s.pt(Pt(r.X+r.W, r.Y))),
		stroke.LineTo(s.pt(Pt(r.X+r.W, r.Y+r.H))),
		stroke.LineTo(s.pt(Pt(r.X, r.Y+r.H))),
		stroke.LineTo(s.pt(Pt(r.X, r.Y))),
	}
	paint.FillShape(
		s.gtx.Ops,
		c,
		stroke.Stroke{Path: path, Width: float32(width) * s.scale}.Op(s.gtx.Ops),
	)
}

func (s *GioSurface) StrokeLine(from, to Point, width float64, c color.NRGBA, dashes []float32) {
	var path stroke.Path
	path.Segments = []stroke.Segment{
		stroke.MoveTo(s.pt(from)),
		stroke.LineTo(s.pt(to)),
	}
	st := stroke.Stroke{Path: path, Width: float32(width) * s.scale, Cap: stroke.FlatCap}
	if len(dashes) > 0 {
		scaled := make([]float32, len(dashes))
		for i, d := range dashes {
			scaled[i] = d * s.scale
		}
		st.Dashes = stroke.Dashes{Dashes: scaled}
	}
	paint.FillShape(s.gtx.Ops, c, st.Op(s.gtx.Ops))
}

func (s *GioSurface) StrokePath(points []Point, width float64, c color.NRGBA) {
	if len(points) < 2 {
		return
	}
	var path stroke.Path
	path.Segments = append(path.Segments, stroke.MoveTo(s.pt(points[0])))
	for _, p := range points[1:] {
		path.Segments = append(path.Segments, stroke.LineTo(s.pt(p)))
	}
	paint.FillShape(
		s.gtx.Ops,
		c,
		stroke.Stroke{Path: path, Width: float32(width) * s.scale, Cap: stroke.RoundCap}.Op(s.gtx.Ops),
	)
}

func (s *GioSurface) FillGradientPath(points []Point, topY, bottomY float64, topColor, bottomColor color.NRGBA) {
	if len(points) < 3 {
		return
	}
	area := clip.Outline{Path: s.polygon(points)}.Op().Push(s.gtx.Ops)
	paint.LinearGradientOp{
		Stop1:  s.pt(Pt(0, topY)),
		Color1: topColor,
		Stop2:  s.pt(Pt(0, bottomY)),
		Color2: bottomColor,
	}.Add(s.gtx.Ops)
	paint.PaintOp{}.Add(s.gtx.Ops)
	area.Pop()
}

func (s *GioSurface) label(txt string, f Font, c color.NRGBA) material.LabelStyle {
	// Font sizes are given in dp, convert them to sp.
	size := f.Size
	if s.gtx.Metric.PxPerSp > 0 {
		size = f.Size * float64(s.scale/s.gtx.Metric.PxPerSp)
	}
	lbl := material.Label(s.th, unit.Sp(size), txt)
	lbl.Color = c
	lbl.Alignment = text.Start
	lbl.MaxLines = 1
	if f.Bold {
		lbl.Font.Weight = font.Bold
	}
	return lbl
}

// recordLabel lays out a label without painting it.
func (s *GioSurface) recordLabel(txt string, f Font, c color.NRGBA) (op.CallOp, layout.Dimensions) {
	gtx := s.gtx
	gtx.Constraints = layout.Constraints{Max: image.Point{X: math.MaxInt32 / 2, Y: math.MaxInt32 / 2}}
	macro := op.Record(gtx.Ops)
	dims := s.label(txt, f, c).Layout(gtx)
	return macro.Stop(), dims
}

func (s *GioSurface) MeasureText(txt string, f Font) float64 {
	_, dims := s.recordLabel(txt, f, color.NRGBA{})
	return float64(float32(dims.Size.X) / s.scale)
}

func (s *GioSurface) DrawText(txt string, x, y float64, f Font, c color.NRGBA, align Align, baseline Baseline) {
	call, dims := s.recordLabel(txt, f, c)
	w := float64(dims.Size.X)
	h := float64(dims.Size.Y)
	posX := alignedX(x*float64(s.scale), w, align)
	posY := y * float64(s.scale)
	switch baseline {
	case BaselineMiddle:
		posY -= h * 0.5
	case BaselineBottom:
		posY -= h
	case BaselineAlphabetic:
		posY -= h - float64(dims.Baseline)
	}
	textArea := op.Offset(image.Point{X: int(math.Round(posX)), Y: int(math.Round(posY))}).Push(s.gtx.Ops)
	// Run recorded drawing.
	call.Add(s.gtx.Ops)
	textArea.Pop()
}

func (s *GioSurface) PushClip(r viewport.Rect) {
	rect := image.Rect(s.px(r.X), s.px(r.Y), s.px(r.X+r.W), s.px(r.Y+r.H))
	s.clips = append(s.clips, clip.Rect(rect).Push(s.gtx.Ops))
}

func (s *GioSurface) PopClip() {
	if len(s.clips) == 0 {
		return
	}
	s.clips[len(s.clips)-1].Pop()
	s.clips = s.clips[:len(s.clips)-1]
}
