// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package viewport

import "math"

const PixelsPerGridLine = 60
const MinTargetTicks = 3
const MaxTargetTicks = 15

const tickEpsilon = 1e-8
const maxTicks = 1000

// NiceScale holds axis boundaries and a tick spacing of 1, 2 or 5 times a power of ten.
type NiceScale struct {
	Min         float64
	Max         float64
	TickSpacing float64
}

// TargetTicks returns the desired number of grid lines for the plot height.
func TargetTicks(plotHeight float64) int {
	n := int(math.Floor(plotHeight / PixelsPerGridLine))
	return max(MinTargetTicks, min(n, MaxTargetTicks))
}

// ComputeNiceScale implements the "nice numbers" axis labeling algorithm of Paul Heckbert.
func ComputeNiceScale(minValue, maxValue float64, targetTicks int) NiceScale {
	if math.Abs(maxValue-minValue) < 1e-5 {
		minValue -= 1
		maxValue += 1
	}
	targetTicks = max(targetTicks, 2)
	rng := niceNumber(math.Abs(maxValue-minValue), false)
	spacing := niceNumber(rng/float64(targetTicks-1), true)
	return NiceScale{
		Min:         math.Floor(minValue/spacing) * spacing,
		Max:         math.Ceil(maxValue/spacing) * spacing,
		TickSpacing: spacing,
	}
}

// niceNumber returns a value of 1, 2, 5 or 10 times 10^floor(log10(x)).
// If round is set, the nearest such value is returned, otherwise the next greater or equal one.
func niceNumber(x float64, round bool) float64 {
	if x == 0 {
		return 1
	}
	exp := math.Floor(math.Log10(x))
	frac := x / math.Pow(10, exp)
	var nice float64
	if round {
		switch {
		case frac < 1.5:
			nice = 1
		case frac < 3:
			nice = 2
		case frac < 7:
			nice = 5
		default:
			nice = 10
		}
	} else {
		switch {
		case frac <= 1:
			nice = 1
		case frac <= 2:
			nice = 2
		case frac <= 5:
			nice = 5
		default:
			nice = 10
		}
	}
	return nice * math.Pow(10, exp)
}

// Ticks returns the grid values from Min up to and including Max.
func (n NiceScale) Ticks() []float64 {
	if !(n.TickSpacing > 0) || math.IsInf(n.TickSpacing, 0) {
		return nil
	}
	var ticks []float64
	for v := n.Min; v <= n.Max+tickEpsilon && len(ticks) < maxTicks; v += n.TickSpacing {
		ticks = append(ticks, v)
	}
	return ticks
}
