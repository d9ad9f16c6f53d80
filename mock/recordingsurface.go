// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package mock

import (
	"image/color"

	"stockchart/chartplot"
	"stockchart/viewport"
)

type DrawOp string

const (
	OpFillRect         DrawOp = "FillRect"
	OpStrokeRect       DrawOp = "StrokeRect"
	OpStrokeLine       DrawOp = "StrokeLine"
	OpStrokePath       DrawOp = "StrokePath"
	OpFillGradientPath DrawOp = "FillGradientPath"
	OpDrawText         DrawOp = "DrawText"
	OpPushClip         DrawOp = "PushClip"
	OpPopClip          DrawOp = "PopClip"
)

type DrawCall struct {
	Op       DrawOp
	Rect     viewport.Rect
	From     chartplot.Point
	To       chartplot.Point
	Points   []chartplot.Point
	Width    float64
	Color    color.NRGBA
	Dashes   []float32
	Text     string
	X        float64
	Y        float64
	Font     chartplot.Font
	Align    chartplot.Align
	Baseline chartplot.Baseline
}

// RecordingSurface records all draw calls. Text is measured with a fixed width per character.
type RecordingSurface struct {
	Width  float64
	Height float64
	Calls  []DrawCall
}

func NewRecordingSurface(width, height float64) *RecordingSurface {
	return &RecordingSurface{Width: width, Height: height}
}

// CharWidth returns the width of one character at the given font size.
func CharWidth(f chartplot.Font) float64 {
	return f.Size * 0.5
}

func (s *RecordingSurface) Size() (float64, float64) {
	return s.Width, s.Height
}

func (s *RecordingSurface) MeasureText(txt string, f chartplot.Font) float64 {
	return float64(len([]rune(txt))) * CharWidth(f)
}

func (s *RecordingSurface) FillRect(r viewport.Rect, c color.NRGBA) {
	s.Calls = append(s.Calls, DrawCall{Op: OpFillRect, Rect: r, Color: c})
}

func (s *RecordingSurface) StrokeRect(r viewport.Rect, width float64, c color.NRGBA) {
	s.Calls = append(s.Calls, DrawCall{Op: OpStrokeRect, Rect: r, Width: width, Color: c})
}

func (s *RecordingSurface) StrokeLine(from, to chartplot.Point, width float64, c color.NRGBA, dashes []float32) {
	s.Calls = append(s.Calls, DrawCall{Op: OpStrokeLine, From: from, To: to, Width: width, Color: c, Dashes: dashes})
}

func (s *RecordingSurface) StrokePath(points []chartplot.Point, width float64, c color.NRGBA) {
	s.Calls = append(s.Calls, DrawCall{Op: OpStrokePath, Points: points, Width: width, Color: c})
}

func (s *RecordingSurface) FillGradientPath(points []chartplot.Point, topY, bottomY float64, topColor, bottomColor color.NRGBA) {
	s.Calls = append(s.Calls, DrawCall{
		Op: OpFillGradientPath, Points: points, From: chartplot.Pt(0, topY), To: chartplot.Pt(0, bottomY), Color: topColor,
	})
}

func (s *RecordingSurface) DrawText(txt string, x, y float64, f chartplot.Font, c color.NRGBA, align chartplot.Align, baseline chartplot.Baseline) {
	s.Calls = append(s.Calls, DrawCall{Op: OpDrawText, Text: txt, X: x, Y: y, Font: f, Color: c, Align: align, Baseline: baseline})
}

func (s *RecordingSurface) PushClip(r viewport.Rect) {
	s.Calls = append(s.Calls, DrawCall{Op: OpPushClip, Rect: r})
}

func (s *RecordingSurface) PopClip() {
	s.Calls = append(s.Calls, DrawCall{Op: OpPopClip})
}

// Filter returns the calls for which keep returns true.
func (s *RecordingSurface) Filter(keep func(c DrawCall) bool) []DrawCall {
	var calls []DrawCall
	for _, c := range s.Calls {
		if keep(c) {
			calls = append(calls, c)
		}
	}
	return calls
}

// Index returns the position of the first call for which match returns true, or -1.
func (s *RecordingSurface) Index(match func(c DrawCall) bool) int {
	for i, c := range s.Calls {
		if match(c) {
			return i
		}
	}
	return -1
}

func (s *RecordingSurface) TextIndex(txt string) int {
	return s.Index(func(c DrawCall) bool { return c.Op == OpDrawText && c.Text == txt })
}

func (s *RecordingSurface) Reset() {
	s.Calls = nil
}
