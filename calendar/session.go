// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package calendar

import "time"

// Session is the regular trading session of one day.
type Session struct {
	Open    time.Time
	Close   time.Time
	Partial bool
}

// Contains reports whether t is within [Open, Close).
func (s Session) Contains(t time.Time) bool {
	return !t.Before(s.Open) && t.Before(s.Close)
}

func (s Session) Duration() time.Duration {
	return s.Close.Sub(s.Open)
}
