// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package viewport

import (
	"math"

	"stockchart/chartval"
)

const MinVisibleCount = 10
const MinVerticalScaleFactor = 0.1
const DefaultVerticalPadding = 0.1

// State is the visible window over the candle data plus the vertical zoom and pan.
// All methods return an updated copy, the receiver is never modified.
// After every method, DataOffset >= 0 and DataOffset+VisibleCount <= DataLength
// unless there are fewer candles than VisibleCount, in which case DataOffset is 0.
type State struct {
	DataOffset              int
	VisibleCount            int
	MaxVisibleCount         int
	VerticalScaleFactor     float64
	PriceOffset             float64
	VerticalPaddingFraction float64
	DataLength              int
}

// NewState returns a state which shows the most recent visibleCount candles.
func NewState(dataLength int, visibleCount int, maxVisibleCount int) State {
	s := State{
		VisibleCount:            visibleCount,
		MaxVisibleCount:         max(maxVisibleCount, MinVisibleCount),
		VerticalScaleFactor:     1,
		VerticalPaddingFraction: DefaultVerticalPadding,
		DataLength:              max(dataLength, 0),
	}
	s.VisibleCount = chartval.Clamp(s.VisibleCount, MinVisibleCount, s.MaxVisibleCount)
	s.DataOffset = max(0, s.DataLength-s.VisibleCount)
	return s
}

func (s State) RightEdge() int {
	return s.DataOffset + s.VisibleCount
}

func (s State) maxDataOffset() int {
	return max(0, s.DataLength-s.VisibleCount)
}

func (s State) normalized() State {
	s.DataOffset = chartval.Clamp(s.DataOffset, 0, s.maxDataOffset())
	return s
}

// Pan moves the window by candleDelta candles, positive values move towards older data.
func (s State) Pan(candleDelta int) State {
	s.DataOffset -= candleDelta
	return s.normalized()
}

// WithDataOffset returns a state with an absolute, clamped data offset.
func (s State) WithDataOffset(offset int) State {
	s.DataOffset = offset
	return s.normalized()
}

// WithVisibleCount sets the number of visible candles within [10, MaxVisibleCount]
// while keeping anchorRightEdge as the right edge where possible.
func (s State) WithVisibleCount(n int, anchorRightEdge int) State {
	s.VisibleCount = chartval.Clamp(n, MinVisibleCount, s.MaxVisibleCount)
	s.DataOffset = max(0, anchorRightEdge-s.VisibleCount)
	return s.normalized()
}

// ZoomHorizontal scales the number of visible candles by factor.
// Zooming out from the lower limit always yields at least 11 candles.
func (s State) ZoomHorizontal(factor float64, anchorRightEdge int) State {
	n := int(math.Round(float64(s.VisibleCount) * factor))
	if s.VisibleCount <= MinVisibleCount && factor > 1 {
		n = max(n, MinVisibleCount+1)
	}
	return s.WithVisibleCount(n, anchorRightEdge)
}

// ZoomInStep is a single wheel step towards fewer candles.
func (s State) ZoomInStep(anchorRightEdge int) State {
	n := s.VisibleCount
	if n > MinVisibleCount {
		n = int(math.Floor(float64(n) * 0.9))
	}
	return s.WithVisibleCount(n, anchorRightEdge)
}

// ZoomOutStep is a single wheel step towards more candles.
func (s State) ZoomOutStep(anchorRightEdge int) State {
	n := min(s.MaxVisibleCount, int(math.Floor(float64(s.VisibleCount)*1.1)))
	if s.VisibleCount <= MinVisibleCount {
		n = MinVisibleCount + 1
	}
	return s.WithVisibleCount(n, anchorRightEdge)
}

func (s State) ZoomVertical(factor float64) State {
	s.VerticalScaleFactor = max(MinVerticalScaleFactor, s.VerticalScaleFactor*factor)
	return s
}

// PanVertical moves the visible price range, there is no limit.
func (s State) PanVertical(priceDelta float64) State {
	s.PriceOffset += priceDelta
	return s
}

// SetMaxVisible changes the upper limit of visible candles, keeping the right edge if the window shrinks.
func (s State) SetMaxVisible(n int) State {
	s.MaxVisibleCount = max(n, MinVisibleCount)
	if s.VisibleCount > s.MaxVisibleCount {
		rightEdge := s.RightEdge()
		s.VisibleCount = s.MaxVisibleCount
		s.DataOffset = max(0, rightEdge-s.VisibleCount)
	}
	return s.normalized()
}

// WithDataLength adapts the state to a new number of candles.
func (s State) WithDataLength(n int) State {
	s.DataLength = max(n, 0)
	return s.normalized()
}

// ResetForSizeClass applies the limits of a size class and shows the most recent candles.
func (s State) ResetForSizeClass(c SizeClass, fullscreen bool) State {
	s.MaxVisibleCount = c.MaxVisibleCountFor(fullscreen)
	s.VisibleCount = chartval.Clamp(c.InitialVisibleCount(), MinVisibleCount, s.MaxVisibleCount)
	s.DataOffset = max(0, s.DataLength-s.VisibleCount)
	return s
}
