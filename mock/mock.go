// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package mock

import (
	"bufio"
	"log"
	"os"
	"testing"
	"time"

	"stockchart/chartval"

	"github.com/stretchr/testify/assert"
)

func NewLogger(t *testing.T) (*log.Logger, *bufio.Scanner) {
	r, w, err := os.Pipe()
	if err != nil {
		assert.Fail(t, "failed to create logger mock: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	t.Cleanup(func() { w.Close() })
	return log.New(w, "", log.LstdFlags), bufio.NewScanner(r)
}

// NewCandles returns n daily candles with rising prices. Candle i has low i,
// high i+10 and a volume of 1000*(i+1).
func NewCandles(n int) []chartval.Candle {
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	candles := make([]chartval.Candle, n)
	for i := range candles {
		p := float64(i)
		candles[i] = chartval.Candle{
			Time:   start.AddDate(0, 0, i),
			Open:   p + 2,
			High:   p + 10,
			Low:    p,
			Close:  p + 8,
			Volume: 1000 * float64(i+1),
		}
	}
	return candles
}
