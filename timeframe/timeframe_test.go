// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package timeframe

import (
	"testing"
	"time"

	"stockchart/chartval"

	"github.com/stretchr/testify/assert"
)

func candlesWithDelta(d time.Duration) []chartval.Candle {
	s := time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC)
	return []chartval.Candle{{Time: s}, {Time: s.Add(d)}}
}

func TestDetect(t *testing.T) {
	assert.Equal(t, Day, Detect(nil))
	assert.Equal(t, Day, Detect(candlesWithDelta(0)[:1]))
	assert.Equal(t, OneMinute, Detect(candlesWithDelta(time.Minute)))
	assert.Equal(t, FiveMinutes, Detect(candlesWithDelta(90*time.Second)))
	assert.Equal(t, FiveMinutes, Detect(candlesWithDelta(4*time.Minute)))
	assert.Equal(t, FifteenMinutes, Detect(candlesWithDelta(5*time.Minute)))
	assert.Equal(t, Hour, Detect(candlesWithDelta(15*time.Minute)))
	assert.Equal(t, FourHours, Detect(candlesWithDelta(time.Hour)))
	assert.Equal(t, Day, Detect(candlesWithDelta(24*time.Hour)))
	assert.Equal(t, Day, Detect(candlesWithDelta(3*24*time.Hour)))
	assert.Equal(t, Week, Detect(candlesWithDelta(7*24*time.Hour)))
	assert.Equal(t, Week, Detect(candlesWithDelta(31*24*time.Hour)))
	// Order does not matter.
	assert.Equal(t, OneMinute, Detect(candlesWithDelta(-time.Minute)))
}

func TestParse(t *testing.T) {
	tf, err := Parse("4hour")
	assert.NoError(t, err)
	assert.Equal(t, FourHours, tf)
	tf, err = Parse("")
	assert.NoError(t, err)
	assert.Equal(t, Timeframe(""), tf)
	_, err = Parse("2hour")
	assert.Error(t, err)
}

func TestFormatLabel(t *testing.T) {
	d := time.Date(2024, 3, 4, 9, 5, 0, 0, time.Local)
	assert.Equal(t, "09:05", FiveMinutes.FormatLabel(d))
	assert.Equal(t, "3/4 09:05", Hour.FormatLabel(d))
	assert.Equal(t, "3/4", Day.FormatLabel(d))
	assert.Equal(t, "3/24", Week.FormatLabel(d))
	assert.Equal(t, "3/24", Month.FormatLabel(d))
	assert.Equal(t, "3/4", Timeframe("").FormatLabel(d))
}

func TestFormatDetail(t *testing.T) {
	d := time.Date(2024, 3, 4, 9, 5, 0, 0, time.Local)
	assert.Equal(t, "3/4/2024 09:05", FourHours.FormatDetail(d))
	assert.Equal(t, "3/4/2024", Day.FormatDetail(d))
	assert.Equal(t, "3/4/2024", Month.FormatDetail(d))
}

func TestGetMonthDuration(t *testing.T) {
	// December has 31 days
	d, _ := getMonthDuration(time.Date(2022, 12, 24, 10, 10, 10, 0, time.UTC))
	assert.Equal(t, float64(44640), d.Minutes())
	// June has 30 days
	d, _ = getMonthDuration(time.Date(2022, 6, 24, 10, 10, 10, 0, time.UTC))
	assert.Equal(t, float64(43200), d.Minutes())
}

func TestGetWeekDuration(t *testing.T) {
	d, start := getWeekDuration(time.Date(2022, 12, 7, 10, 10, 10, 0, time.UTC))
	assert.Equal(t, float64(10080), d.Minutes())
	assert.Equal(t, time.Monday, start.Weekday())
	loc, err := time.LoadLocation("Europe/Berlin")
	assert.NoError(t, err)
	dst := time.Date(2022, 10, 29, 10, 10, 10, 0, loc)
	assert.True(t, dst.IsDST())
	d, _ = getWeekDuration(dst)
	assert.Equal(t, float64(10140), d.Minutes())
}

func TestGetDuration(t *testing.T) {
	ctx := time.Date(2022, 12, 6, 10, 10, 10, 0, time.UTC)
	assert.Equal(t, 15*time.Minute, FifteenMinutes.GetDuration(ctx))
	assert.Equal(t, 4*time.Hour, FourHours.GetDuration(ctx))
	assert.Equal(t, 24*time.Hour, Day.GetDuration(ctx))
	assert.Equal(t, 7*24*time.Hour, Week.GetDuration(ctx))
	assert.Equal(t, 31*24*time.Hour, Month.GetDuration(ctx))
}
