// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartview

import (
	"fmt"
	"image"
	"log"

	"stockchart/chartval"
	"stockchart/config"

	"gioui.org/app"
	"gioui.org/op"
	"gioui.org/unit"
	"github.com/inkeliz/giohyperlink"
)

// windowMount hosts a chart in a desktop window.
type windowMount struct {
	win   *app.Window
	width unit.Dp
}

func (m *windowMount) Invalidate() {
	m.win.Invalidate()
}

func (m *windowMount) SetFullscreen(fullscreen bool) {
	if fullscreen {
		m.win.Option(app.Fullscreen.Option())
	} else {
		m.win.Option(app.Windowed.Option())
	}
}

func (m *windowMount) Width() unit.Dp {
	return m.width
}

// Run shows the candles in a new window and blocks until the window is closed.
// The toggled preferences and the window size are stored to cfg afterwards.
func Run(cfg config.Config, options config.ChartConfig, candles []chartval.Candle, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}
	size := options.Window.Size
	win := app.NewWindow(
		app.Title(fmt.Sprintf("%s - %s", cfg.GetAppName(), options.Ticker)),
		app.Size(unit.Dp(size.X), unit.Dp(size.Y)),
	)
	chart, err := NewChart(&windowMount{win: win, width: unit.Dp(size.X)}, candles, options, logger)
	if err != nil {
		return err
	}
	defer chart.Close()

	var ops op.Ops
	for {
		e := win.NextEvent()
		giohyperlink.ListenEvents(e)
		switch e := e.(type) {
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			chart.Layout(gtx)
			if !chart.Fullscreen() && gtx.Metric.PxPerDp > 0 {
				size = image.Point{
					X: int(float32(e.Size.X) / gtx.Metric.PxPerDp),
					Y: int(float32(e.Size.Y) / gtx.Metric.PxPerDp),
				}
			}
			e.Frame(gtx.Ops)
		case app.DestroyEvent:
			if err := saveWindowOptions(cfg, chart, size); err != nil {
				logger.Printf("error saving configuration: %v", err)
			}
			return e.Err
		}
	}
}

func saveWindowOptions(cfg config.Config, chart *Chart, size image.Point) error {
	chartConfig, err := cfg.Lock()
	if err != nil {
		return err
	}
	chart.StoreOptions(chartConfig)
	chartConfig.Window.Size = size
	return cfg.Unlock(chartConfig)
}
