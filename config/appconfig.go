// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"stockchart/chartval"
	"stockchart/timeframe"

	"github.com/barkimedes/go-deepcopy"
)

// ChartConfig contains the chart options. Viewport state is never stored.
type ChartConfig struct {
	ChartType    chartval.ChartType  `yaml:"chartType,omitempty"`
	DarkMode     bool                `yaml:"darkMode,omitempty"`
	Ticker       string              `yaml:"ticker,omitempty"`
	HideBranding bool                `yaml:"hideBranding,omitempty"`
	// An empty timeframe is detected from the data.
	Timeframe timeframe.Timeframe `yaml:"timeframe,omitempty"`
	DataFile  string              `yaml:"dataFile,omitempty"`
	Window    WindowConfig        `yaml:"window"`
}

func NewChartConfig() ChartConfig {
	return ChartConfig{
		ChartType: chartval.ChartTypeLine,
		Ticker:    chartval.DefaultTicker,
		Window:    NewWindowConfig(),
	}
}

func (c *ChartConfig) deepCopy() ChartConfig {
	cp, err := deepcopy.Anything(c)
	if err != nil {
		panic(err)
	}
	return *cp.(*ChartConfig)
}

// Sanitize replaces invalid values by defaults.
func (c *ChartConfig) Sanitize() {
	if _, err := chartval.ParseChartType(string(c.ChartType)); err != nil || c.ChartType == "" {
		c.ChartType = chartval.ChartTypeLine
	}
	if _, err := timeframe.Parse(string(c.Timeframe)); err != nil {
		c.Timeframe = ""
	}
	c.Window.sanitize()
	c.RestoreDefaults()
}

// We do not want to store default values in the configuration file,
// so that changed defaults of a new release are applied.
func (c *ChartConfig) RemoveDefaults() {
	if c.Ticker == chartval.DefaultTicker {
		c.Ticker = ""
	}
	if c.ChartType == chartval.ChartTypeLine {
		c.ChartType = ""
	}
}

// Restore default values which are not stored in the configuration file.
func (c *ChartConfig) RestoreDefaults() {
	if len(c.Ticker) == 0 {
		c.Ticker = chartval.DefaultTicker
	}
	if len(c.ChartType) == 0 {
		c.ChartType = chartval.ChartTypeLine
	}
}
