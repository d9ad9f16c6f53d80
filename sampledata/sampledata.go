// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package sampledata

import (
	"errors"
	"math"
	"math/rand"
	"time"

	"stockchart/calendar"
	"stockchart/chartval"
	"stockchart/timeframe"
)

var ErrInvalidOptions = errors.New("invalid sample data options")

// Options configure the generated random walk.
type Options struct {
	Count      int
	Timeframe  timeframe.Timeframe
	Start      time.Time
	StartPrice float64
	// Standard deviation of the relative change per candle.
	Volatility float64
	BaseVolume float64
	Seed       int64
}

func NewOptions() Options {
	return Options{
		Count:      300,
		Timeframe:  timeframe.Day,
		Start:      time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC),
		StartPrice: 100,
		Volatility: 0.02,
		BaseVolume: 1000000,
		Seed:       1,
	}
}

// Generate returns a random walk of candles. Daily candles are placed on
// trading days, intraday candles within the regular trading sessions.
func Generate(c *calendar.TradingCalendar, o Options) ([]chartval.Candle, error) {
	if o.Count < 0 || !(o.StartPrice > 0) || o.Volatility < 0 || o.BaseVolume < 0 {
		return nil, ErrInvalidOptions
	}
	if o.Timeframe == "" {
		o.Timeframe = timeframe.Day
	}
	times := candleTimes(c, o.Timeframe, o.Start, o.Count)
	rnd := rand.New(rand.NewSource(o.Seed))
	candles := make([]chartval.Candle, 0, len(times))
	price := o.StartPrice
	for _, t := range times {
		open := price
		closePrice := math.Max(roundPrice(open*(1+o.Volatility*rnd.NormFloat64())), minPrice)
		wick := func() float64 {
			return math.Abs(rnd.NormFloat64()) * open * o.Volatility * 0.5
		}
		high := roundPrice(math.Max(open, closePrice) + wick())
		low := math.Max(roundPrice(math.Min(open, closePrice)-wick()), minPrice)
		candles = append(candles, chartval.Candle{
			Time:   t,
			Open:   open,
			High:   math.Max(high, math.Max(open, closePrice)),
			Low:    math.Min(low, math.Min(open, closePrice)),
			Close:  closePrice,
			Volume: math.Round(o.BaseVolume * (0.5 + rnd.Float64())),
		})
		price = closePrice
	}
	return candles, nil
}

const minPrice = 0.01

func roundPrice(p float64) float64 {
	return math.Round(p*100) / 100
}

func candleTimes(c *calendar.TradingCalendar, tf timeframe.Timeframe, start time.Time, n int) []time.Time {
	times := make([]time.Time, 0, n)
	switch {
	case tf.IsIntraday():
		d := tf.GetDuration(start)
		t := start.In(c.Location())
		for len(times) < n {
			s, ok := c.SessionHours(t)
			if !ok || !t.Before(s.Close) {
				t = c.NextTradingDay(t)
				if s, ok = c.SessionHours(t); ok {
					t = s.Open
				}
				continue
			}
			if t.Before(s.Open) {
				t = s.Open
			}
			times = append(times, t)
			t = t.Add(d)
		}
	case tf == timeframe.Day:
		y, m, d := start.In(c.Location()).Date()
		t := time.Date(y, m, d, 0, 0, 0, 0, c.Location())
		if trading, _ := c.IsTradingDay(t); !trading {
			t = c.NextTradingDay(t)
		}
		for len(times) < n {
			times = append(times, t)
			t = c.NextTradingDay(t)
		}
	default:
		t := start
		for len(times) < n {
			times = append(times, t)
			t = t.Add(tf.GetDuration(t))
		}
	}
	return times
}
