// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartval

import (
	"fmt"
	"time"
)

const DefaultTicker = "NVDA"
const BrandingText = "Powered by simul8or"
const BrandingUrl = "https://simul8or.com"

// Candle is one OHLCV data point. Candles are treated as read-only once handed to a chart.
type Candle struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

func (c Candle) IsGreen() bool {
	return IsGreenCandle(c.Open, c.Close)
}

// For sorting
type CandleList []Candle

func (x CandleList) Len() int           { return len(x) }
func (x CandleList) Less(i, j int) bool { return x[i].Time.Before(x[j].Time) }
func (x CandleList) Swap(i, j int)      { x[i], x[j] = x[j], x[i] }

type ChartType string

const (
	ChartTypeLine        ChartType = "line"
	ChartTypeCandlestick ChartType = "candlestick"
)

func ParseChartType(s string) (ChartType, error) {
	switch ChartType(s) {
	case ChartTypeLine, ChartTypeCandlestick:
		return ChartType(s), nil
	case "":
		return ChartTypeLine, nil
	default:
		return "", fmt.Errorf("unsupported chart type %q", s)
	}
}

func (t ChartType) Toggle() ChartType {
	if t == ChartTypeCandlestick {
		return ChartTypeLine
	}
	return ChartTypeCandlestick
}

func (t ChartType) UiString() string {
	if t == ChartTypeCandlestick {
		return "Candles"
	}
	return "Line"
}
