// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package calendar

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

const observedHolidayPostfix = "(observed)"

// A trading day is searched for at most this many days ahead.
const maxHolidayStreak = 14

// TradingCalendar knows the trading days and regular session hours of US exchanges.
type TradingCalendar struct {
	location         *time.Location
	calendar         *cal.BusinessCalendar
	openTime         clockTime
	closeTime        clockTime
	partialCloseTime clockTime
}

type clockTime struct {
	hours   int
	minutes int
}

func NewUSTradingCalendar() (*TradingCalendar, error) {
	// NYSE uses ET, which can be either EST or EDT.
	// Changing to/from daylight saving time does not occur during market hours.
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return nil, fmt.Errorf("exchange time location not supported: %v", err)
	}
	c := cal.NewBusinessCalendar()
	c.AddHoliday(
		us.NewYear,
		us.MlkDay,
		us.PresidentsDay,
		us.MemorialDay,
		us.Juneteenth,
		us.IndependenceDay,
		us.LaborDay,
		us.ColumbusDay,
		us.VeteransDay,
		us.ThanksgivingDay,
		us.ChristmasDay,
	)
	c.Cacheable = true
	return &TradingCalendar{
		location:         loc,
		calendar:         c,
		openTime:         clockTime{hours: 9, minutes: 30},
		closeTime:        clockTime{hours: 16, minutes: 0},
		partialCloseTime: clockTime{hours: 13, minutes: 0},
	}, nil
}

func (c *TradingCalendar) Location() *time.Location {
	return c.location
}

// IsHoliday returns the name of the holiday at t, observed holidays carry a postfix.
func (c *TradingCalendar) IsHoliday(t time.Time) (bool, string) {
	actual, observed, h := c.calendar.IsHoliday(t.In(c.location))
	if !actual && !observed {
		return false, ""
	} else if !actual {
		return true, h.Name + " " + observedHolidayPostfix
	} else {
		return true, h.Name
	}
}

func (c *TradingCalendar) IsTradingDay(t time.Time) (trading bool, partial bool) {
	day := t.In(c.location)
	trading = c.calendar.IsWorkday(day)

	if trading {
		holiday, name := c.IsHoliday(day.AddDate(0, 0, 1))
		// There are partial trading days before independence day and christmas.
		if holiday && (name == us.IndependenceDay.Name || name == us.ChristmasDay.Name) {
			partial = true
		} else {
			// There is a partial trading day after thanksgiving.
			holiday, name = c.IsHoliday(day.AddDate(0, 0, -1))
			if holiday && name == us.ThanksgivingDay.Name {
				partial = true
			}
		}
	}
	return
}

// SessionHours returns the regular session of the day containing t.
func (c *TradingCalendar) SessionHours(t time.Time) (Session, bool) {
	day := t.In(c.location)
	trading, partial := c.IsTradingDay(day)
	if !trading {
		return Session{}, false
	}
	closeTime := c.closeTime
	if partial {
		closeTime = c.partialCloseTime
	}
	return Session{
		Open:    c.at(day, c.openTime),
		Close:   c.at(day, closeTime),
		Partial: partial,
	}, true
}

// NextTradingDay returns midnight of the first trading day after the day containing t.
func (c *TradingCalendar) NextTradingDay(t time.Time) time.Time {
	day := c.at(t.In(c.location), clockTime{})
	for i := 0; i < maxHolidayStreak; i++ {
		day = day.AddDate(0, 0, 1)
		if trading, _ := c.IsTradingDay(day); trading {
			return day
		}
	}
	return day
}

func (c *TradingCalendar) at(day time.Time, ct clockTime) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, ct.hours, ct.minutes, 0, 0, c.location)
}
