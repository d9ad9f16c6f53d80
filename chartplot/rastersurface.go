// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartplot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"stockchart/viewport"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// RasterSurface paints into an in-memory image. It is used for headless snapshots.
type RasterSurface struct {
	img     *image.RGBA
	regular *opentype.Font
	bold    *opentype.Font
	faces   map[Font]font.Face
	clips   []image.Rectangle
}

func NewRasterSurface(width, height int) (*RasterSurface, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %v", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %v", err)
	}
	return &RasterSurface{
		img:     image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1))),
		regular: regular,
		bold:    bold,
		faces:   make(map[Font]font.Face),
	}, nil
}

func (s *RasterSurface) Image() *image.RGBA {
	return s.img
}

func (s *RasterSurface) WritePNG(w io.Writer) error {
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("failed to encode png: %v", err)
	}
	return nil
}

// Close releases the font faces.
func (s *RasterSurface) Close() {
	for _, f := range s.faces {
		f.Close()
	}
	s.faces = make(map[Font]font.Face)
}

func (s *RasterSurface) Size() (float64, float64) {
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *RasterSurface) clipRect() image.Rectangle {
	if len(s.clips) == 0 {
		return s.img.Bounds()
	}
	return s.clips[len(s.clips)-1]
}

func (s *RasterSurface) PushClip(r viewport.Rect) {
	rect := image.Rect(int(math.Floor(r.X)), int(math.Floor(r.Y)), int(math.Ceil(r.X+r.W)), int(math.Ceil(r.Y+r.H)))
	s.clips = append(s.clips, rect.Intersect(s.clipRect()))
}

func (s *RasterSurface) PopClip() {
	if len(s.clips) > 0 {
		s.clips = s.clips[:len(s.clips)-1]
	}
}

// fill draws src through the mask of all polygons.
func (s *RasterSurface) fill(polygons [][]Point, src image.Image) {
	b := s.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	for _, poly := range polygons {
		if len(poly) < 3 {
			continue
		}
		z.MoveTo(float32(poly[0].X), float32(poly[0].Y))
		for _, p := range poly[1:] {
			z.LineTo(float32(p.X), float32(p.Y))
		}
		z.ClosePath()
	}
	mask := image.NewAlpha(b)
	z.Draw(mask, b, image.Opaque, image.Point{})
	r := s.clipRect()
	draw.DrawMask(s.img, r, src, r.Min, mask, r.Min, draw.Over)
}

func rectPolygon(r viewport.Rect) []Point {
	return []Point{Pt(r.X, r.Y), Pt(r.X+r.W, r.Y), Pt(r.X+r.W, r.Y+r.H), Pt(r.X, r.Y+r.H)}
}

// segmentPolygon returns the outline of a line segment with the given width and flat caps.
func segmentPolygon(from, to Point, width float64) []Point {
	dx := to.X - from.X
	dy := to.Y - from.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return nil
	}
	nx := -dy / l * width * 0.5
	ny := dx / l * width * 0.5
	return []Point{
		Pt(from.X+nx, from.Y+ny), Pt(to.X+nx, to.Y+ny),
		Pt(to.X-nx, to.Y-ny), Pt(from.X-nx, from.Y-ny),
	}
}

// dashSegments splits a line into the visible parts of a dash pattern.
func dashSegments(from, to Point, dashes []float32) [][2]Point {
	l := math.Hypot(to.X-from.X, to.Y-from.Y)
	if len(dashes) == 0 || l == 0 {
		return [][2]Point{{from, to}}
	}
	var total float64
	for _, d := range dashes {
		total += float64(d)
	}
	if total <= 0 {
		return [][2]Point{{from, to}}
	}
	at := func(pos float64) Point {
		t := pos / l
		return Pt(from.X+(to.X-from.X)*t, from.Y+(to.Y-from.Y)*t)
	}
	var segments [][2]Point
	pos := 0.0
	for i := 0; pos < l; i++ {
		d := float64(dashes[i%len(dashes)])
		if i%2 == 0 && d > 0 {
			segments = append(segments, [2]Point{at(pos), at(math.Min(pos+d, l))})
		}
		pos += d
	}
	return segments
}

func (s *RasterSurface) FillRect(r viewport.Rect, c color.NRGBA) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	s.fill([][]Point{rectPolygon(r)}, image.NewUniform(c))
}

func (s *RasterSurface) StrokeRect(r viewport.Rect, width float64, c color.NRGBA) {
	s.strokeSegments([][2]Point{
		{Pt(r.X-width*0.5, r.Y), Pt(r.X+r.W+width*0.5, r.Y)},
		{Pt(r.X+r.W, r.Y+width*0.5), Pt(r.X+r.W, r.Y+r.H-width*0.5)},
		{Pt(r.X+r.W+width*0.5, r.Y+r.H), Pt(r.X-width*0.5, r.Y+r.H)},
		{Pt(r.X, r.Y+r.H-width*0.5), Pt(r.X, r.Y+width*0.5)},
	}, width, c)
}

func (s *RasterSurface) strokeSegments(segments [][2]Point, width float64, c color.NRGBA) {
	polygons := make([][]Point, 0, len(segments))
	for _, seg := range segments {
		if p := segmentPolygon(seg[0], seg[1], width); p != nil {
			polygons = append(polygons, p)
		}
	}
	if len(polygons) > 0 {
		s.fill(polygons, image.NewUniform(c))
	}
}

func (s *RasterSurface) StrokeLine(from, to Point, width float64, c color.NRGBA, dashes []float32) {
	s.strokeSegments(dashSegments(from, to, dashes), width, c)
}

func (s *RasterSurface) StrokePath(points []Point, width float64, c color.NRGBA) {
	segments := make([][2]Point, 0, len(points))
	for i := 1; i < len(points); i++ {
		segments = append(segments, [2]Point{points[i-1], points[i]})
	}
	s.strokeSegments(segments, width, c)
}

func (s *RasterSurface) FillGradientPath(points []Point, topY, bottomY float64, topColor, bottomColor color.NRGBA) {
	s.fill([][]Point{points}, &verticalGradient{
		bounds: s.img.Bounds(), top: topY, bottom: bottomY, topColor: topColor, bottomColor: bottomColor,
	})
}

func (s *RasterSurface) face(f Font) font.Face {
	if face, ok := s.faces[f]; ok {
		return face
	}
	otf := s.regular
	if f.Bold {
		otf = s.bold
	}
	// At 72 DPI, the size in points equals the size in pixels.
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{Size: f.Size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil
	}
	s.faces[f] = face
	return face
}

func (s *RasterSurface) MeasureText(txt string, f Font) float64 {
	face := s.face(f)
	if face == nil {
		return 0
	}
	return fixedToFloat(font.MeasureString(face, txt))
}

func (s *RasterSurface) DrawText(txt string, x, y float64, f Font, c color.NRGBA, align Align, baseline Baseline) {
	face := s.face(f)
	if face == nil {
		return
	}
	w := fixedToFloat(font.MeasureString(face, txt))
	m := face.Metrics()
	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	switch baseline {
	case BaselineTop:
		y += ascent
	case BaselineMiddle:
		y += (ascent - descent) * 0.5
	case BaselineBottom:
		y -= descent
	}
	d := font.Drawer{
		Dst:  s.img.SubImage(s.clipRect()).(*image.RGBA),
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: floatToFixed(alignedX(x, w, align)), Y: floatToFixed(y)},
	}
	d.DrawString(txt)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

type verticalGradient struct {
	bounds      image.Rectangle
	top         float64
	bottom      float64
	topColor    color.NRGBA
	bottomColor color.NRGBA
}

func (g *verticalGradient) ColorModel() color.Model {
	return color.NRGBAModel
}

func (g *verticalGradient) Bounds() image.Rectangle {
	return g.bounds
}

func (g *verticalGradient) At(_, y int) color.Color {
	t := 0.0
	if g.bottom > g.top {
		t = (float64(y) + 0.5 - g.top) / (g.bottom - g.top)
	}
	t = math.Max(0, math.Min(1, t))
	lerp := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	return color.NRGBA{
		R: lerp(g.topColor.R, g.bottomColor.R),
		G: lerp(g.topColor.G, g.bottomColor.G),
		B: lerp(g.topColor.B, g.bottomColor.B),
		A: lerp(g.topColor.A, g.bottomColor.A),
	}
}
