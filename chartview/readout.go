// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartview

import (
	"math"

	"stockchart/chartplot"
	"stockchart/chartval"
	"stockchart/widgets"
)

const readoutPlaceholder = "-"

// Additional space of the overlay labels.
const readoutLabelPadding = 10

// Readout contains the formatted values of the OHLCV overlay.
type Readout struct {
	Open    string
	High    string
	Low     string
	Close   string
	Volume  string
	IsGreen bool
	Valid   bool
}

func NewReadout(c chartval.Candle) Readout {
	return Readout{
		Open:    chartval.FormatPrice(c.Open),
		High:    chartval.FormatPrice(c.High),
		Low:     chartval.FormatPrice(c.Low),
		Close:   chartval.FormatPrice(c.Close),
		Volume:  chartval.FormatVolume(c.Volume),
		IsGreen: c.IsGreen(),
		Valid:   true,
	}
}

// EmptyReadout is shown if there is no data.
func EmptyReadout() Readout {
	return Readout{
		Open:    readoutPlaceholder,
		High:    readoutPlaceholder,
		Low:     readoutPlaceholder,
		Close:   readoutPlaceholder,
		Volume:  readoutPlaceholder,
		IsGreen: true,
	}
}

func lastReadout(data []chartval.Candle) Readout {
	if len(data) == 0 {
		return EmptyReadout()
	}
	return NewReadout(data[len(data)-1])
}

func (r Readout) Entries(th widgets.ChartTheme) []widgets.ReadoutEntry {
	closeColor := th.TextColor
	if r.Valid {
		closeColor = th.ReadoutCloseColor(r.IsGreen)
	}
	return []widgets.ReadoutEntry{
		{Label: "O", Value: r.Open, Color: th.TextColor},
		{Label: "H", Value: r.High, Color: th.TextColor},
		{Label: "L", Value: r.Low, Color: th.TextColor},
		{Label: "C", Value: r.Close, Color: closeColor},
		{Label: "V", Value: r.Volume, Color: th.TextColor},
	}
}

// ReadoutFont is the font of the overlay values.
var ReadoutFont = chartplot.Font{Size: widgets.ReadoutTextSize}

// OverlayLabelWidth returns the width of the widest formatted value across
// all candles, so that the overlay does not change its size while hovering.
func OverlayLabelWidth(m chartplot.TextMeasurer, data []chartval.Candle) float64 {
	var maxOpen, maxHigh, maxLow, maxClose, maxVolume float64
	for _, c := range data {
		maxOpen = math.Max(maxOpen, c.Open)
		maxHigh = math.Max(maxHigh, c.High)
		maxLow = math.Max(maxLow, c.Low)
		maxClose = math.Max(maxClose, c.Close)
		maxVolume = math.Max(maxVolume, c.Volume)
	}
	texts := []string{
		chartval.FormatPrice(maxOpen),
		chartval.FormatPrice(maxHigh),
		chartval.FormatPrice(maxLow),
		chartval.FormatPrice(maxClose),
		chartval.FormatVolume(maxVolume),
	}
	width := 0.0
	for _, txt := range texts {
		width = math.Max(width, m.MeasureText(txt, ReadoutFont))
	}
	return width + readoutLabelPadding
}
