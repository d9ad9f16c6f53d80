// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package timeframe

import (
	"fmt"
	"time"

	"stockchart/chartval"
)

type Timeframe string

const (
	OneMinute      Timeframe = "1min"
	FiveMinutes    Timeframe = "5min"
	FifteenMinutes Timeframe = "15min"
	Hour           Timeframe = "hour"
	FourHours      Timeframe = "4hour"
	Day            Timeframe = "day"
	Week           Timeframe = "week"
	Month          Timeframe = "month"
)

func List() []Timeframe {
	return []Timeframe{OneMinute, FiveMinutes, FifteenMinutes, Hour, FourHours, Day, Week, Month}
}

// Parse accepts the configuration names of all timeframes, an empty string yields an empty timeframe.
func Parse(s string) (Timeframe, error) {
	if s == "" {
		return "", nil
	}
	for _, tf := range List() {
		if string(tf) == s {
			return tf, nil
		}
	}
	return "", fmt.Errorf("unsupported timeframe %q", s)
}

// Detect guesses the timeframe from the distance of the first two candles.
func Detect(data []chartval.Candle) Timeframe {
	if len(data) < 2 {
		return Day
	}
	diff := data[1].Time.Sub(data[0].Time)
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff < 90*time.Second:
		return OneMinute
	case diff < 5*time.Minute:
		return FiveMinutes
	case diff < 15*time.Minute:
		return FifteenMinutes
	case diff < time.Hour:
		return Hour
	case diff < 24*time.Hour:
		return FourHours
	case diff < 7*24*time.Hour:
		return Day
	default:
		return Week
	}
}

func (tf Timeframe) IsIntraday() bool {
	switch tf {
	case OneMinute, FiveMinutes, FifteenMinutes, Hour, FourHours:
		return true
	default:
		return false
	}
}

// FormatString returns the layout of the date labels below the plot.
func (tf Timeframe) FormatString() string {
	switch tf {
	case OneMinute, FiveMinutes, FifteenMinutes:
		return "15:04"
	case Hour, FourHours:
		return "1/2 15:04"
	case Week, Month:
		return "1/06"
	default:
		return "1/2"
	}
}

// DetailFormatString returns the layout of the crosshair date label.
func (tf Timeframe) DetailFormatString() string {
	if tf.IsIntraday() {
		return "1/2/2006 15:04"
	}
	return "1/2/2006"
}

func (tf Timeframe) FormatLabel(t time.Time) string {
	return t.Local().Format(tf.FormatString())
}

func (tf Timeframe) FormatDetail(t time.Time) string {
	return t.Local().Format(tf.DetailFormatString())
}

// GetDuration returns the length of one candle starting at the given time.
func (tf Timeframe) GetDuration(context time.Time) time.Duration {
	switch tf {
	case OneMinute:
		return time.Minute
	case FiveMinutes:
		return time.Minute * 5
	case FifteenMinutes:
		return time.Minute * 15
	case Hour:
		return time.Hour
	case FourHours:
		return time.Hour * 4
	case Week:
		d, _ := getWeekDuration(context)
		return d
	case Month:
		d, _ := getMonthDuration(context)
		return d
	default:
		return getDayDuration(context)
	}
}

func getDayDuration(t time.Time) time.Duration {
	y := t.Year()
	m := t.Month()
	d := t.Day()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location()).Sub(
		time.Date(y, m, d, 0, 0, 0, 0, t.Location()),
	)
}

func getWeekDuration(t time.Time) (time.Duration, time.Time) {
	// Weeks start on Mondays, Go weeks start on Sundays.
	weekdayDiff := int(t.Weekday()) - int(time.Monday)
	if weekdayDiff < 0 {
		weekdayDiff = 7 + weekdayDiff
	}
	y, m, d := t.Date()
	d -= weekdayDiff
	s := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return time.Date(y, m, d+7, 0, 0, 0, 0, t.Location()).Sub(s), s
}

func getMonthDuration(t time.Time) (time.Duration, time.Time) {
	// Use "Sub" call so that daylight saving time is considered.
	y := t.Year()
	m := t.Month()
	s := time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
	return time.Date(y, m+1, 1, 0, 0, 0, 0, t.Location()).Sub(s), s
}
