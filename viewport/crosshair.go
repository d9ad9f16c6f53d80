// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package viewport

import "stockchart/chartval"

// Crosshair is a resolved pointer position within the plot.
type Crosshair struct {
	Candle     chartval.Candle
	DataIndex  int
	LocalIndex int
	Price      float64
	X          float64
	Y          float64
}

// ResolveCrosshair returns the candle and price under the pointer.
// It returns false for positions outside the plot or without a candle.
func ResolveCrosshair(f Frame, data []chartval.Candle, x, y float64) (Crosshair, bool) {
	if !f.InPlot(x, y) || f.InGutter(x) || x < f.Padding.Left {
		return Crosshair{}, false
	}
	localIndex := f.XToLocalIndex(x)
	if localIndex < 0 || localIndex >= f.State.VisibleCount {
		return Crosshair{}, false
	}
	dataIndex := f.State.DataOffset + localIndex
	if dataIndex < 0 || dataIndex >= len(data) {
		return Crosshair{}, false
	}
	return Crosshair{
		Candle:     data[dataIndex],
		DataIndex:  dataIndex,
		LocalIndex: localIndex,
		Price:      f.YToPrice(y),
		X:          x,
		Y:          y,
	}, true
}
