// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package debounce

import (
	"sync"
	"time"
)

// ResizeDelay is the quiet period after the last resize event.
const ResizeDelay = 250 * time.Millisecond

// Debouncer calls a function once after calls to Schedule have stopped for the delay.
// The function runs on a timer goroutine.
type Debouncer struct {
	delay     time.Duration
	fn        func()
	timer     *time.Timer
	timerLock sync.Mutex
}

func New(delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{
		delay: delay,
		fn:    fn,
	}
}

// Schedule (re)starts the delay. Safe to call from any goroutine.
func (d *Debouncer) Schedule() {
	d.timerLock.Lock()
	defer d.timerLock.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(d.delay, func() {
		d.timerLock.Lock()
		current := d.timer == t
		if current {
			d.timer = nil
		}
		d.timerLock.Unlock()
		// A timer which was replaced while firing must not call fn.
		if current {
			d.fn()
		}
	})
	d.timer = t
}

// Cancel stops a pending call. Returns true if a call was pending.
func (d *Debouncer) Cancel() bool {
	d.timerLock.Lock()
	defer d.timerLock.Unlock()
	if d.timer == nil {
		return false
	}
	d.timer.Stop()
	d.timer = nil
	return true
}

func (d *Debouncer) Pending() bool {
	d.timerLock.Lock()
	defer d.timerLock.Unlock()
	return d.timer != nil
}
