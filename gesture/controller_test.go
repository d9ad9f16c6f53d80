// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gesture

import (
	"testing"
	"time"

	"stockchart/chartval"
	"stockchart/viewport"

	"github.com/stretchr/testify/assert"
)

func newTestCandles(n int) []chartval.Candle {
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	candles := make([]chartval.Candle, n)
	for i := range candles {
		p := float64(i)
		candles[i] = chartval.Candle{Time: start.AddDate(0, 0, i), Open: p + 2, High: p + 10, Low: p, Close: p + 8, Volume: 1000}
	}
	return candles
}

type testChart struct {
	t     *testing.T
	c     *Controller
	data  []chartval.Candle
	state viewport.State
}

func newTestChart(t *testing.T, data []chartval.Candle, s viewport.State) *testChart {
	return &testChart{t: t, c: NewController(), data: data, state: s}
}

func (tc *testChart) scene() Scene {
	f := viewport.NewFrame(800, 600, tc.state, tc.data, viewport.SizeXl, viewport.NewLayoutConfig())
	return Scene{State: tc.state, Frame: f, Data: tc.data}
}

func (tc *testChart) handle(e Event) bool {
	var changed bool
	tc.state, changed = tc.c.Handle(tc.scene(), e)
	return changed
}

func TestPanAgainstSnapshot(t *testing.T) {
	data := newTestCandles(200)
	tc := newTestChart(t, data, viewport.NewState(len(data), 40, 100))
	step := tc.scene().Frame.Step()
	assert.Equal(t, 160, tc.state.DataOffset)

	tc.handle(Event{Kind: Press, Source: Mouse, X: 400, Y: 300})
	assert.True(t, tc.c.Dragging())
	assert.True(t, tc.handle(Event{Kind: Move, Source: Mouse, X: 400 + 3*step, Y: 300}))
	assert.Equal(t, 157, tc.state.DataOffset)
	assert.Equal(t, 0.0, tc.state.PriceOffset)
	// Moving to the same position again does not accumulate.
	assert.False(t, tc.handle(Event{Kind: Move, Source: Mouse, X: 400 + 3*step, Y: 300}))
	assert.Equal(t, 157, tc.state.DataOffset)

	tc.handle(Event{Kind: Move, Source: Mouse, X: 400 + 3*step, Y: 354})
	span := viewport.ScaledRange(data, tc.state).Span()
	assert.InDelta(t, 54*span/540, tc.state.PriceOffset, chartval.NearZero)
	tc.handle(Event{Kind: Move, Source: Mouse, X: 400 + 3*step, Y: 354})
	assert.InDelta(t, 54*span/540, tc.state.PriceOffset, chartval.NearZero)

	assert.True(t, tc.handle(Event{Kind: Release, Source: Mouse, X: 400 + 3*step, Y: 354}))
	assert.False(t, tc.c.Dragging())
	// Moves without a session do not change anything.
	assert.False(t, tc.handle(Event{Kind: Move, Source: Mouse, X: 100, Y: 100}))
	assert.Equal(t, 157, tc.state.DataOffset)
}

func TestPanClampsToData(t *testing.T) {
	data := newTestCandles(200)
	tc := newTestChart(t, data, viewport.NewState(len(data), 40, 100))
	tc.handle(Event{Kind: Press, Source: Mouse, X: 400, Y: 300})
	tc.handle(Event{Kind: Move, Source: Mouse, X: -5000, Y: 300})
	assert.Equal(t, 160, tc.state.DataOffset)
	tc.handle(Event{Kind: Move, Source: Mouse, X: 50000, Y: 300})
	assert.Equal(t, 0, tc.state.DataOffset)
}

func TestVerticalRescaleInGutter(t *testing.T) {
	data := newTestCandles(200)
	tc := newTestChart(t, data, viewport.NewState(len(data), 40, 100))
	tc.handle(Event{Kind: Press, Source: Mouse, X: 790, Y: 300})
	assert.True(t, tc.c.Dragging())
	tc.handle(Event{Kind: Move, Source: Mouse, X: 790, Y: 290})
	assert.InDelta(t, 1.1, tc.state.VerticalScaleFactor, chartval.NearZero)
	tc.handle(Event{Kind: Move, Source: Mouse, X: 790, Y: 300})
	assert.InDelta(t, 1.0, tc.state.VerticalScaleFactor, chartval.NearZero)
	// Rescaling does not pan.
	assert.Equal(t, 160, tc.state.DataOffset)
	for i := 0; i < 100; i++ {
		tc.handle(Event{Kind: Move, Source: Mouse, X: 790, Y: float64(300 + 50*(i+1))})
	}
	assert.InDelta(t, viewport.MinVerticalScaleFactor, tc.state.VerticalScaleFactor, chartval.NearZero)
	tc.handle(Event{Kind: Release, Source: Mouse, X: 790, Y: 300})
	assert.False(t, tc.c.Dragging())
}

func TestWheelZoomKeepsRightEdge(t *testing.T) {
	data := newTestCandles(200)
	s := viewport.NewState(len(data), 40, 100).WithDataOffset(50)
	tc := newTestChart(t, data, s)
	assert.True(t, tc.handle(Event{Kind: Scroll, Source: Mouse, X: 300, Y: 300, ScrollY: 1}))
	assert.Equal(t, 90, tc.state.RightEdge())
	assert.Equal(t, 44, tc.state.VisibleCount)
	assert.True(t, tc.handle(Event{Kind: Scroll, Source: Mouse, X: 300, Y: 300, ScrollY: -1}))
	assert.Equal(t, 90, tc.state.RightEdge())
}

func TestWheelIgnoredInGutter(t *testing.T) {
	data := newTestCandles(200)
	tc := newTestChart(t, data, viewport.NewState(len(data), 40, 100))
	before := tc.state
	assert.False(t, tc.handle(Event{Kind: Scroll, Source: Mouse, X: 790, Y: 300, ScrollY: 1}))
	assert.Equal(t, before, tc.state)
}

func TestPinchZoom(t *testing.T) {
	data := newTestCandles(300)
	s := viewport.NewState(len(data), 60, viewport.FullscreenMaxVisible)
	tc := newTestChart(t, data, s)
	tc.handle(Event{Kind: Press, Source: Touch, ID: 1, X: 100, Y: 300})
	tc.handle(Event{Kind: Press, Source: Touch, ID: 2, X: 300, Y: 300})
	assert.True(t, tc.c.Pinching())
	assert.True(t, tc.handle(Event{Kind: Move, Source: Touch, ID: 2, X: 200, Y: 300}))
	assert.Equal(t, 120, tc.state.VisibleCount)
	assert.Equal(t, 300, tc.state.RightEdge())

	// Spreading the fingers zooms in relative to the initial count.
	tc.handle(Event{Kind: Move, Source: Touch, ID: 2, X: 500, Y: 300})
	assert.Equal(t, 30, tc.state.VisibleCount)
	assert.Equal(t, 300, tc.state.RightEdge())

	tc.handle(Event{Kind: Release, Source: Touch, ID: 2, X: 500, Y: 300})
	assert.False(t, tc.c.Pinching())
}

func TestPinchZoomClampsToMaximum(t *testing.T) {
	data := newTestCandles(300)
	tc := newTestChart(t, data, viewport.NewState(len(data), 60, 100))
	tc.handle(Event{Kind: Press, Source: Touch, ID: 1, X: 100, Y: 300})
	tc.handle(Event{Kind: Press, Source: Touch, ID: 2, X: 300, Y: 300})
	tc.handle(Event{Kind: Move, Source: Touch, ID: 2, X: 200, Y: 300})
	assert.Equal(t, 100, tc.state.VisibleCount)
	tc.handle(Event{Kind: Move, Source: Touch, ID: 2, X: 10000, Y: 300})
	assert.Equal(t, viewport.MinVisibleCount, tc.state.VisibleCount)
}

func TestPinchSuspendsPan(t *testing.T) {
	data := newTestCandles(200)
	tc := newTestChart(t, data, viewport.NewState(len(data), 40, 100))
	tc.handle(Event{Kind: Press, Source: Touch, ID: 1, X: 400, Y: 300})
	tc.handle(Event{Kind: Press, Source: Touch, ID: 2, X: 600, Y: 300})
	assert.True(t, tc.c.Pinching())

	// Moving the panning finger only zooms while pinching.
	tc.handle(Event{Kind: Move, Source: Touch, ID: 1, X: 300, Y: 250})
	assert.Equal(t, 26, tc.state.VisibleCount)
	assert.Equal(t, 200, tc.state.RightEdge())
	assert.Equal(t, 0.0, tc.state.PriceOffset)

	// After the pinch, the pan continues from the current position.
	tc.handle(Event{Kind: Release, Source: Touch, ID: 2, X: 600, Y: 300})
	assert.False(t, tc.c.Pinching())
	assert.True(t, tc.c.Dragging())
	offset := tc.state.DataOffset
	step := tc.scene().Frame.Step()
	tc.handle(Event{Kind: Move, Source: Touch, ID: 1, X: 300 + 2*step, Y: 250})
	assert.Equal(t, offset-2, tc.state.DataOffset)
	assert.Equal(t, 0.0, tc.state.PriceOffset)

	tc.handle(Event{Kind: Release, Source: Touch, ID: 1, X: 300 + 2*step, Y: 250})
	assert.False(t, tc.c.Dragging())
}

func TestPinchDropsPanOfReleasedFinger(t *testing.T) {
	data := newTestCandles(200)
	tc := newTestChart(t, data, viewport.NewState(len(data), 40, 100))
	tc.handle(Event{Kind: Press, Source: Touch, ID: 1, X: 400, Y: 300})
	tc.handle(Event{Kind: Press, Source: Touch, ID: 2, X: 600, Y: 300})
	tc.handle(Event{Kind: Release, Source: Touch, ID: 1, X: 400, Y: 300})
	assert.False(t, tc.c.Dragging())
	before := tc.state
	tc.handle(Event{Kind: Move, Source: Touch, ID: 2, X: 100, Y: 300})
	assert.Equal(t, before, tc.state)
}

func TestCancelEndsSessions(t *testing.T) {
	data := newTestCandles(200)
	tc := newTestChart(t, data, viewport.NewState(len(data), 40, 100))
	tc.handle(Event{Kind: Press, Source: Mouse, X: 400, Y: 300})
	assert.True(t, tc.c.Dragging())
	assert.True(t, tc.handle(Event{Kind: Cancel}))
	assert.False(t, tc.c.Dragging())
	assert.False(t, tc.handle(Event{Kind: Cancel}))
}

func TestTouchTapDuringMousePan(t *testing.T) {
	data := newTestCandles(200)
	tc := newTestChart(t, data, viewport.NewState(len(data), 40, 100))
	step := tc.scene().Frame.Step()

	tc.handle(Event{Kind: Press, Source: Mouse, X: 400, Y: 300})
	tc.handle(Event{Kind: Press, Source: Touch, ID: 7, X: 200, Y: 200})
	tc.handle(Event{Kind: Release, Source: Touch, ID: 7, X: 200, Y: 200})
	assert.True(t, tc.c.Dragging())

	assert.True(t, tc.handle(Event{Kind: Move, Source: Mouse, X: 400 + 3*step, Y: 300}))
	assert.Equal(t, 157, tc.state.DataOffset)
	tc.handle(Event{Kind: Release, Source: Mouse, X: 400 + 3*step, Y: 300})
	assert.False(t, tc.c.Dragging())
}
