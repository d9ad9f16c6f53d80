// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartview

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"stockchart/chartval"
	"stockchart/config"
	"stockchart/gesture"
	"stockchart/mock"
	"stockchart/timeframe"
	"stockchart/viewport"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testMount struct {
	width       unit.Dp
	fullscreen  bool
	invalidated atomic.Int32
}

func (m *testMount) Invalidate() {
	m.invalidated.Add(1)
}

func (m *testMount) SetFullscreen(fullscreen bool) {
	m.fullscreen = fullscreen
}

func (m *testMount) Width() unit.Dp {
	return m.width
}

func newTestChart(t *testing.T, width unit.Dp, data []chartval.Candle) (*Chart, *testMount) {
	m := &testMount{width: width}
	logger, _ := mock.NewLogger(t)
	c, err := NewChart(m, data, config.NewChartConfig(), logger)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c, m
}

func TestNewChartWithoutMount(t *testing.T) {
	c, err := NewChart(nil, mock.NewCandles(10), config.NewChartConfig(), nil)
	assert.Nil(t, c)
	assert.True(t, errors.Is(err, ErrNoMount))
}

func TestNewChartShowsRecentCandles(t *testing.T) {
	data := mock.NewCandles(100)
	c, _ := newTestChart(t, 1280, data)
	assert.Equal(t, viewport.SizeXl, c.SizeClass())
	assert.Equal(t, 60, c.State().VisibleCount)
	assert.Equal(t, 100-60, c.State().DataOffset)
	assert.Equal(t, 100, c.State().MaxVisibleCount)

	r := c.Readout()
	assert.Equal(t, NewReadout(data[99]), r)
	assert.Equal(t, "101.00", r.Open)
	assert.Equal(t, "109.00", r.High)
	assert.Equal(t, "99.00", r.Low)
	assert.Equal(t, "107.00", r.Close)
	assert.Equal(t, "100K", r.Volume)
	assert.True(t, r.IsGreen)
	assert.True(t, r.Valid)

	assert.Equal(t, timeframe.Day, c.Timeframe())
	assert.Equal(t, chartval.ChartTypeLine, c.ChartType())
	assert.False(t, c.DarkMode())
}

func TestNewChartSmallScreen(t *testing.T) {
	c, _ := newTestChart(t, 500, mock.NewCandles(100))
	assert.Equal(t, viewport.SizeXs, c.SizeClass())
	assert.Equal(t, 80, c.State().DataOffset)
	assert.Equal(t, 50, c.State().MaxVisibleCount)
}

func TestNewChartWithoutData(t *testing.T) {
	m := &testMount{width: 1280}
	logger, scanner := mock.NewLogger(t)
	c, err := NewChart(m, nil, config.NewChartConfig(), logger)
	require.NoError(t, err)
	defer c.Close()
	require.True(t, scanner.Scan())
	assert.Contains(t, scanner.Text(), "No OHLC data provided.")
	assert.Equal(t, EmptyReadout(), c.Readout())
	assert.Equal(t, 0, c.State().DataOffset)

	s := mock.NewRecordingSurface(800, 600)
	c.Paint(s)
	assert.Equal(t, 1, s.TextIndex(chartval.DefaultTicker))
}

func TestNewChartUsesConfiguredTimeframe(t *testing.T) {
	options := config.NewChartConfig()
	options.Timeframe = timeframe.Hour
	options.ChartType = chartval.ChartTypeCandlestick
	options.DarkMode = true
	c, err := NewChart(&testMount{width: 1280}, mock.NewCandles(10), options, nil)
	require.NoError(t, err)
	defer c.Close()
	assert.Equal(t, timeframe.Hour, c.Timeframe())
	assert.Equal(t, chartval.ChartTypeCandlestick, c.ChartType())
	assert.True(t, c.DarkMode())
	assert.True(t, c.Theme().Dark)
}

func TestToggles(t *testing.T) {
	c, m := newTestChart(t, 1280, mock.NewCandles(300))
	c.ToggleChartType()
	assert.Equal(t, chartval.ChartTypeCandlestick, c.ChartType())
	c.ToggleChartType()
	assert.Equal(t, chartval.ChartTypeLine, c.ChartType())

	c.ToggleDarkMode()
	assert.True(t, c.DarkMode())
	assert.Equal(t, c.Theme().BackgroundColor, c.Scene(c.Frame(800, 600)).Theme.BackgroundColor)

	c.ToggleFullscreen()
	assert.True(t, c.Fullscreen())
	assert.True(t, m.fullscreen)
	assert.Equal(t, viewport.FullscreenMaxVisible, c.State().MaxVisibleCount)
	// Zooming out beyond the window limit is possible in fullscreen mode.
	c.state = c.state.WithVisibleCount(180, c.state.RightEdge())
	assert.Equal(t, 180, c.State().VisibleCount)

	c.ExitFullscreen()
	assert.False(t, c.Fullscreen())
	assert.False(t, m.fullscreen)
	assert.Equal(t, 100, c.State().MaxVisibleCount)
	assert.Equal(t, 100, c.State().VisibleCount)
	assert.Equal(t, 300, c.State().RightEdge())

	c.ExitFullscreen()
	assert.False(t, m.fullscreen)
	assert.Equal(t, int32(5), m.invalidated.Load())
}

func TestResizeChangesSizeClass(t *testing.T) {
	c, m := newTestChart(t, 1280, mock.NewCandles(100))
	c.Resize(1280)
	assert.False(t, c.resize.Pending())

	c.Resize(500)
	// Not applied before the delay.
	assert.False(t, c.ApplyPendingResize())
	assert.Equal(t, viewport.SizeXl, c.SizeClass())
	assert.Eventually(t, func() bool { return m.invalidated.Load() > 0 }, 2*time.Second, 10*time.Millisecond)
	assert.True(t, c.ApplyPendingResize())
	assert.Equal(t, viewport.SizeXs, c.SizeClass())
	assert.Equal(t, 20, c.State().VisibleCount)
	assert.Equal(t, 80, c.State().DataOffset)
	assert.Equal(t, 50, c.State().MaxVisibleCount)
}

func TestResizeWithinSizeClass(t *testing.T) {
	c, m := newTestChart(t, 1280, mock.NewCandles(100))
	c.state = c.state.WithDataOffset(10)
	c.Resize(1300)
	assert.Eventually(t, func() bool { return m.invalidated.Load() > 0 }, 2*time.Second, 10*time.Millisecond)
	assert.False(t, c.ApplyPendingResize())
	assert.Equal(t, 10, c.State().DataOffset)
}

func TestHoverAndDrag(t *testing.T) {
	data := mock.NewCandles(100)
	c, _ := newTestChart(t, 1280, data)
	f := c.Frame(800, 600)
	x := f.CenterX(3)

	c.Hover(f, x, 300)
	ch, ok := c.Crosshair()
	require.True(t, ok)
	assert.Equal(t, 43, ch.DataIndex)
	assert.Equal(t, NewReadout(data[43]), c.Readout())

	// No crosshair while dragging.
	c.HandleEvent(f, gesture.Event{Kind: gesture.Press, Source: gesture.Mouse, X: x, Y: 300})
	_, ok = c.Crosshair()
	assert.False(t, ok)
	assert.Equal(t, NewReadout(data[99]), c.Readout())
	c.HandleEvent(f, gesture.Event{Kind: gesture.Move, Source: gesture.Mouse, X: x, Y: 300})
	_, ok = c.Crosshair()
	assert.False(t, ok)

	c.HandleEvent(f, gesture.Event{Kind: gesture.Release, Source: gesture.Mouse, X: x, Y: 300})
	ch, ok = c.Crosshair()
	require.True(t, ok)
	assert.Equal(t, 43, ch.DataIndex)

	// The price gutter has no crosshair.
	c.Hover(f, 790, 300)
	_, ok = c.Crosshair()
	assert.False(t, ok)
	assert.Equal(t, NewReadout(data[99]), c.Readout())

	c.Hover(f, x, 300)
	c.ClearHover()
	_, ok = c.Crosshair()
	assert.False(t, ok)
	assert.False(t, c.Scene(f).HasCrosshair)
}

func TestHandleEventPans(t *testing.T) {
	c, _ := newTestChart(t, 1280, mock.NewCandles(100))
	f := c.Frame(800, 600)
	c.HandleEvent(f, gesture.Event{Kind: gesture.Press, Source: gesture.Mouse, X: 400, Y: 300})
	assert.True(t, c.HandleEvent(f, gesture.Event{Kind: gesture.Move, Source: gesture.Mouse, X: 400 + 5*f.Step(), Y: 300}))
	assert.Equal(t, 35, c.State().DataOffset)
	c.HandleEvent(f, gesture.Event{Kind: gesture.Cancel})
	_, ok := c.Crosshair()
	assert.False(t, ok)
}

func TestOverlayLabelWidth(t *testing.T) {
	data := mock.NewCandles(100)
	m := mock.NewRecordingSurface(800, 600)
	// "109.00" is the widest value.
	assert.Equal(t, 6*mock.CharWidth(ReadoutFont)+10, OverlayLabelWidth(m, data))
	data[0].Volume = 123456789
	// "123.46M"
	assert.Equal(t, 7*mock.CharWidth(ReadoutFont)+10, OverlayLabelWidth(m, data))
}

func TestReadoutEntries(t *testing.T) {
	c, _ := newTestChart(t, 1280, mock.NewCandles(100))
	th := c.Theme()
	entries := c.Readout().Entries(th)
	require.Len(t, entries, 5)
	assert.Equal(t, "C", entries[3].Label)
	assert.Equal(t, "107.00", entries[3].Value)
	assert.Equal(t, th.ReadoutUpColor, entries[3].Color)

	red := NewReadout(chartval.Candle{Open: 2, High: 3, Low: 1, Close: 1.5})
	assert.Equal(t, th.ReadoutDownColor, red.Entries(th)[3].Color)
	assert.Equal(t, th.TextColor, EmptyReadout().Entries(th)[3].Color)
}

func TestSceneAndBranding(t *testing.T) {
	data := mock.NewCandles(100)
	options := config.NewChartConfig()
	options.Ticker = "AAPL"
	c, err := NewChart(&testMount{width: 1280}, data, options, nil)
	require.NoError(t, err)
	defer c.Close()

	s := mock.NewRecordingSurface(800, 600)
	f := c.Paint(s)
	assert.Equal(t, 1, s.TextIndex("AAPL"))
	assert.NotEqual(t, -1, s.TextIndex(chartval.BrandingText))
	assert.True(t, c.BrandingHit(s, f, 20, 595))
	assert.False(t, c.BrandingHit(s, f, 400, 300))

	c.options.HideBranding = true
	assert.False(t, c.Scene(f).ShowBranding)
	assert.False(t, c.BrandingHit(s, f, 20, 595))
}

func TestClickBranding(t *testing.T) {
	c, _ := newTestChart(t, 1280, mock.NewCandles(10))
	var opened string
	c.branding.Open = func(url string) error {
		opened = url
		return nil
	}
	require.NoError(t, c.ClickBranding())
	assert.Equal(t, chartval.BrandingUrl, opened)
}

func TestSaveOptions(t *testing.T) {
	c, _ := newTestChart(t, 1280, mock.NewCandles(10))
	cfg := mock.NewTestConfig()
	c.ToggleChartType()
	c.ToggleDarkMode()
	require.NoError(t, c.SaveOptions(cfg))
	assert.Equal(t, 1, cfg.Unlocked)
	stored, err := cfg.Copy()
	require.NoError(t, err)
	assert.Equal(t, chartval.ChartTypeCandlestick, stored.ChartType)
	assert.True(t, stored.DarkMode)
	assert.Equal(t, chartval.DefaultTicker, stored.Ticker)
}

func TestSaveOptionsKeepsPassedInOptions(t *testing.T) {
	options := config.NewChartConfig()
	options.DarkMode = true
	options.ChartType = chartval.ChartTypeCandlestick
	logger, _ := mock.NewLogger(t)
	c, err := NewChart(&testMount{width: 1280}, mock.NewCandles(10), options, logger)
	require.NoError(t, err)
	t.Cleanup(c.Close)

	cfg := mock.NewTestConfig()
	require.NoError(t, c.SaveOptions(cfg))
	stored, err := cfg.Copy()
	require.NoError(t, err)
	assert.Equal(t, config.NewChartConfig().ChartType, stored.ChartType)
	assert.False(t, stored.DarkMode)

	// Toggling back to the passed in value is not a change either.
	c.ToggleDarkMode()
	c.ToggleDarkMode()
	c.ToggleChartType()
	stored.ChartType = chartval.ChartTypeCandlestick
	require.NoError(t, cfg.Unlock(&stored))
	require.NoError(t, c.SaveOptions(cfg))
	stored, err = cfg.Copy()
	require.NoError(t, err)
	assert.Equal(t, chartval.ChartTypeLine, stored.ChartType)
	assert.False(t, stored.DarkMode)
}

func TestPointerFilterScrollsVertically(t *testing.T) {
	c, _ := newTestChart(t, 1280, mock.NewCandles(10))
	f := pointerFilter(c)
	assert.Equal(t, event.Tag(c), f.Target)
	assert.NotZero(t, f.Kinds&pointer.Scroll)
	assert.Less(t, f.ScrollBounds.Min.Y, 0)
	assert.Greater(t, f.ScrollBounds.Max.Y, 0)
	assert.Zero(t, f.ScrollBounds.Min.X)
	assert.Zero(t, f.ScrollBounds.Max.X)
}

func TestConvertPointerEvent(t *testing.T) {
	e, ok := convertPointerEvent(pointer.Event{
		Kind: pointer.Drag, Source: pointer.Touch, PointerID: 3, Position: f32.Pt(200, 100),
	}, 2)
	require.True(t, ok)
	assert.Equal(t, gesture.Event{Kind: gesture.Move, Source: gesture.Touch, ID: 3, X: 100, Y: 50}, e)

	e, ok = convertPointerEvent(pointer.Event{
		Kind: pointer.Scroll, Source: pointer.Mouse, Position: f32.Pt(10, 20), Scroll: f32.Pt(0, -3),
	}, 1)
	require.True(t, ok)
	assert.Equal(t, gesture.Scroll, e.Kind)
	assert.Equal(t, gesture.Mouse, e.Source)
	assert.Equal(t, -3.0, e.ScrollY)

	e, ok = convertPointerEvent(pointer.Event{Kind: pointer.Press, Position: f32.Pt(10, 20)}, 0)
	require.True(t, ok)
	assert.Equal(t, gesture.Press, e.Kind)
	assert.Equal(t, 10.0, e.X)

	_, ok = convertPointerEvent(pointer.Event{Kind: pointer.Leave}, 1)
	assert.False(t, ok)
}
