// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package viewport

import (
	"math"

	"stockchart/chartval"
)

type PriceRange struct {
	Min float64
	Max float64
}

// Used instead of an empty raw range, so that an empty plot still has a grid.
var fallbackRawRange = PriceRange{Min: 0, Max: 1}

// Valid is false if the range was computed from an empty slice.
func (r PriceRange) Valid() bool {
	return r.Min <= r.Max
}

func (r PriceRange) Span() float64 {
	return r.Max - r.Min
}

func (r PriceRange) Shift(priceOffset float64) PriceRange {
	return PriceRange{Min: r.Min + priceOffset, Max: r.Max + priceOffset}
}

// RawRange returns the lowest low and highest high in data[offset:offset+count].
// If the slice is empty, the sentinels remain and the range is not valid.
func RawRange(data []chartval.Candle, offset int, count int) PriceRange {
	r := PriceRange{Min: math.MaxFloat64, Max: -math.MaxFloat64}
	start, end := visibleSlice(len(data), offset, count)
	for _, c := range data[start:end] {
		r.Min = math.Min(r.Min, c.Low)
		r.Max = math.Max(r.Max, c.High)
	}
	return r
}

// ApplyVerticalScale zooms the range around its center and adds padding above and below.
func ApplyVerticalScale(raw PriceRange, scaleFactor float64, paddingFraction float64) PriceRange {
	mid := (raw.Min + raw.Max) * 0.5
	rng := (raw.Max - raw.Min) / scaleFactor
	rng *= 1 + paddingFraction*2
	return PriceRange{Min: mid - rng*0.5, Max: mid + rng*0.5}
}

// ScaledRange is the visible price range before the vertical pan is applied.
func ScaledRange(data []chartval.Candle, s State) PriceRange {
	raw := RawRange(data, s.DataOffset, s.VisibleCount)
	if !raw.Valid() {
		raw = fallbackRawRange
	}
	return ApplyVerticalScale(raw, s.VerticalScaleFactor, s.VerticalPaddingFraction)
}

// VisibleRange is the price range which maps onto the plot height.
func VisibleRange(data []chartval.Candle, s State) PriceRange {
	return ScaledRange(data, s).Shift(s.PriceOffset)
}

// VisibleCandles returns the candles within the window, which may be fewer than VisibleCount.
func VisibleCandles(data []chartval.Candle, s State) []chartval.Candle {
	start, end := visibleSlice(len(data), s.DataOffset, s.VisibleCount)
	return data[start:end]
}

func visibleSlice(length int, offset int, count int) (int, int) {
	start := chartval.Clamp(offset, 0, length)
	end := chartval.Clamp(offset+max(count, 0), start, length)
	return start, end
}
