// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduleCallsOnce(t *testing.T) {
	var calls atomic.Int32
	d := New(20*time.Millisecond, func() { calls.Add(1) })
	for i := 0; i < 5; i++ {
		d.Schedule()
	}
	assert.True(t, d.Pending())
	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Never(t, func() bool { return calls.Load() > 1 }, 100*time.Millisecond, 10*time.Millisecond)
	assert.False(t, d.Pending())
}

func TestScheduleRestartsDelay(t *testing.T) {
	var calls atomic.Int32
	d := New(200*time.Millisecond, func() { calls.Add(1) })
	d.Schedule()
	time.Sleep(100 * time.Millisecond)
	d.Schedule()
	time.Sleep(120 * time.Millisecond)
	// The first timer would have fired by now.
	assert.Equal(t, int32(0), calls.Load())
	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestCancel(t *testing.T) {
	var calls atomic.Int32
	d := New(20*time.Millisecond, func() { calls.Add(1) })
	assert.False(t, d.Cancel())
	d.Schedule()
	assert.True(t, d.Cancel())
	assert.False(t, d.Pending())
	assert.Never(t, func() bool { return calls.Load() > 0 }, 100*time.Millisecond, 10*time.Millisecond)
}
