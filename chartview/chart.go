// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartview

import (
	"errors"
	"log"
	"sync/atomic"

	"stockchart/chartplot"
	"stockchart/chartval"
	"stockchart/config"
	"stockchart/debounce"
	"stockchart/gesture"
	"stockchart/timeframe"
	"stockchart/viewport"
	"stockchart/widgets"

	"gioui.org/text"
	"gioui.org/unit"
)

var ErrNoMount = errors.New("chart mount is missing")

// Mount is the host of a chart, usually a window.
type Mount interface {
	// Invalidate requests a new frame. Safe to call from any goroutine.
	Invalidate()
	SetFullscreen(fullscreen bool)
	// Width of the chart area in dp.
	Width() unit.Dp
}

// Chart owns the viewport state of one chart and applies user input to it.
// Apart from the resize timer, all methods are called from the goroutine
// which handles the window events.
type Chart struct {
	mount        Mount
	logger       *log.Logger
	data         []chartval.Candle
	options      config.ChartConfig
	timeframe    timeframe.Timeframe
	sizeClass    viewport.SizeClass
	state        viewport.State
	fullscreen   bool
	gestures     *gesture.Controller
	crosshair    viewport.Crosshair
	hasCrosshair bool
	pointerX     float64
	pointerY     float64
	pointerIn    bool
	readout      Readout
	renderer     *chartplot.Renderer
	branding     *widgets.Link
	width        unit.Dp
	resize       *debounce.Debouncer
	// Set by the resize timer, applied on the next frame.
	resizePending atomic.Bool
	// Options as passed in, to detect the preferences changed by the user.
	initialOptions config.ChartConfig

	shaper          *text.Shaper
	toolbar         widgets.Toolbar
	readoutField    widgets.ReadoutField
	labelWidth      float64
	brandingHovered bool
}

// NewChart creates a chart showing the most recent candles. The candles must
// be sorted ascending by time and are not modified.
func NewChart(mount Mount, candles []chartval.Candle, options config.ChartConfig, logger *log.Logger) (*Chart, error) {
	if mount == nil {
		return nil, ErrNoMount
	}
	if logger == nil {
		logger = log.Default()
	}
	options.Sanitize()
	if len(candles) == 0 {
		logger.Println("No OHLC data provided.")
	}
	tf := options.Timeframe
	if tf == "" {
		tf = timeframe.Detect(candles)
	}
	sizeClass := viewport.SizeClassFromWidth(mount.Width())
	c := &Chart{
		mount:          mount,
		logger:         logger,
		data:           candles,
		options:        options,
		initialOptions: options,
		timeframe:      tf,
		sizeClass:      sizeClass,
		state:          viewport.NewState(len(candles), sizeClass.InitialVisibleCount(), sizeClass.MaxVisibleCount()),
		gestures:       gesture.NewController(),
		readout:        lastReadout(candles),
		renderer:       chartplot.NewRenderer(),
		branding:       widgets.NewLink(chartval.BrandingUrl, logger),
		width:          mount.Width(),
		labelWidth:     -1,
	}
	c.resize = debounce.New(debounce.ResizeDelay, func() {
		c.resizePending.Store(true)
		c.mount.Invalidate()
	})
	return c, nil
}

func (c *Chart) State() viewport.State {
	return c.state
}

func (c *Chart) SizeClass() viewport.SizeClass {
	return c.sizeClass
}

func (c *Chart) Timeframe() timeframe.Timeframe {
	return c.timeframe
}

func (c *Chart) ChartType() chartval.ChartType {
	return c.options.ChartType
}

func (c *Chart) DarkMode() bool {
	return c.options.DarkMode
}

func (c *Chart) Fullscreen() bool {
	return c.fullscreen
}

// Readout returns the values shown in the OHLCV overlay.
func (c *Chart) Readout() Readout {
	return c.readout
}

func (c *Chart) Crosshair() (viewport.Crosshair, bool) {
	return c.crosshair, c.hasCrosshair
}

func (c *Chart) Theme() widgets.ChartTheme {
	return widgets.DeriveTheme(c.options.DarkMode)
}

func (c *Chart) ToggleChartType() {
	c.options.ChartType = c.options.ChartType.Toggle()
	c.mount.Invalidate()
}

func (c *Chart) ToggleDarkMode() {
	c.options.DarkMode = !c.options.DarkMode
	c.mount.Invalidate()
}

// ToggleFullscreen raises the visible candle limit in fullscreen mode and
// restores the limit of the size class when leaving it.
func (c *Chart) ToggleFullscreen() {
	c.fullscreen = !c.fullscreen
	c.mount.SetFullscreen(c.fullscreen)
	c.state = c.state.SetMaxVisible(c.sizeClass.MaxVisibleCountFor(c.fullscreen))
	c.mount.Invalidate()
}

func (c *Chart) ExitFullscreen() {
	if c.fullscreen {
		c.ToggleFullscreen()
	}
}

// Resize records the current chart width. The size class is updated after
// the width did not change for debounce.ResizeDelay.
func (c *Chart) Resize(width unit.Dp) {
	if width == c.width {
		return
	}
	c.width = width
	c.resize.Schedule()
}

// ApplyPendingResize recomputes the size class after the resize delay has
// passed. If the class changed, the viewport is reset for the new class.
func (c *Chart) ApplyPendingResize() bool {
	if !c.resizePending.CompareAndSwap(true, false) {
		return false
	}
	sizeClass := viewport.SizeClassFromWidth(c.width)
	if sizeClass == c.sizeClass {
		return false
	}
	c.sizeClass = sizeClass
	c.state = c.state.ResetForSizeClass(sizeClass, c.fullscreen)
	c.gestures.Reset()
	c.ClearHover()
	return true
}

// Frame computes the layout of the current state for a surface size.
func (c *Chart) Frame(width, height float64) viewport.Frame {
	return viewport.NewFrame(width, height, c.state, c.data, c.sizeClass, viewport.NewLayoutConfig())
}

// HandleEvent applies a pointer event. Frame needs to be the layout of the current state.
// Returns true if a new frame needs to be painted.
func (c *Chart) HandleEvent(f viewport.Frame, e gesture.Event) bool {
	state, changed := c.gestures.Handle(gesture.Scene{State: c.state, Frame: f, Data: c.data}, e)
	c.state = state
	if changed {
		f = c.Frame(f.Width, f.Height)
	}
	switch e.Kind {
	case gesture.Press, gesture.Move, gesture.Release:
		c.pointerX, c.pointerY, c.pointerIn = e.X, e.Y, true
	case gesture.Cancel:
		c.pointerIn = false
	}
	hadCrosshair := c.hasCrosshair
	c.updateHover(f)
	return changed || hadCrosshair || c.hasCrosshair
}

// Hover moves the crosshair to a pointer position.
func (c *Chart) Hover(f viewport.Frame, x, y float64) {
	c.pointerX, c.pointerY, c.pointerIn = x, y, true
	c.updateHover(f)
}

// ClearHover removes the crosshair, the readout shows the last candle again.
func (c *Chart) ClearHover() {
	c.pointerIn = false
	c.hasCrosshair = false
	c.crosshair = viewport.Crosshair{}
	c.readout = lastReadout(c.data)
}

// The crosshair is hidden while dragging.
func (c *Chart) updateHover(f viewport.Frame) {
	if !c.pointerIn || c.gestures.Dragging() {
		c.hasCrosshair = false
		c.crosshair = viewport.Crosshair{}
		c.readout = lastReadout(c.data)
		return
	}
	c.crosshair, c.hasCrosshair = viewport.ResolveCrosshair(f, c.data, c.pointerX, c.pointerY)
	if c.hasCrosshair {
		c.readout = NewReadout(c.crosshair.Candle)
	} else {
		c.readout = lastReadout(c.data)
	}
}

// Scene returns everything which is painted for a frame.
func (c *Chart) Scene(f viewport.Frame) chartplot.Scene {
	return chartplot.Scene{
		Frame:         f,
		Data:          c.data,
		ChartType:     c.options.ChartType,
		Theme:         c.Theme(),
		Timeframe:     c.timeframe,
		SizeClass:     c.sizeClass,
		Ticker:        c.options.Ticker,
		ShowWatermark: c.options.Ticker != "",
		ShowBranding:  !c.options.HideBranding,
		Crosshair:     c.crosshair,
		HasCrosshair:  c.hasCrosshair,
	}
}

// Paint paints the current state onto a surface.
func (c *Chart) Paint(s chartplot.Surface) viewport.Frame {
	w, h := s.Size()
	f := c.Frame(w, h)
	c.renderer.Paint(s, c.Scene(f))
	return f
}

// BrandingHit reports whether x, y is on the visible branding text.
func (c *Chart) BrandingHit(m chartplot.TextMeasurer, f viewport.Frame, x, y float64) bool {
	return !c.options.HideBranding && chartplot.BrandingHit(m, f, c.sizeClass, x, y)
}

// ClickBranding opens the branding link.
func (c *Chart) ClickBranding() error {
	return c.branding.Click()
}

// StoreOptions copies the preferences which were toggled in the chart to a configuration.
// Options which only differ from the configuration because they were passed in are kept.
func (c *Chart) StoreOptions(chartConfig *config.ChartConfig) {
	if c.options.ChartType != c.initialOptions.ChartType {
		chartConfig.ChartType = c.options.ChartType
	}
	if c.options.DarkMode != c.initialOptions.DarkMode {
		chartConfig.DarkMode = c.options.DarkMode
	}
}

// SaveOptions stores the toggled preferences.
func (c *Chart) SaveOptions(cfg config.Config) error {
	chartConfig, err := cfg.Lock()
	if err != nil {
		return err
	}
	c.StoreOptions(chartConfig)
	return cfg.Unlock(chartConfig)
}

// Close stops the resize timer.
func (c *Chart) Close() {
	c.resize.Cancel()
}
