// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package main

import (
	"fmt"
	"log"
	"os"

	"stockchart/calendar"
	"stockchart/chartplot"
	"stockchart/chartval"
	"stockchart/chartview"
	"stockchart/config"
	"stockchart/sampledata"
	"stockchart/timeframe"

	"gioui.org/app"
	"gioui.org/unit"
	"github.com/urfave/cli/v2"
)

var (
	configFile string
	sampleSeed int64
)

var chartFlags = []cli.Flag{
	&cli.StringFlag{
		Name:        "config",
		Usage:       "the configuration file, defaults to the user configuration directory",
		TakesFile:   true,
		Destination: &configFile,
	},
	&cli.StringFlag{
		Name:      "data",
		Usage:     "candle file (.json, .yaml or .yml), sample data is generated if empty",
		TakesFile: true,
	},
	&cli.BoolFlag{
		Name:  "dark",
		Usage: "use the dark theme",
	},
	&cli.StringFlag{
		Name:  "type",
		Usage: "chart type, line or candlestick",
	},
	&cli.StringFlag{
		Name:  "ticker",
		Usage: "ticker shown as watermark",
	},
	&cli.StringFlag{
		Name:  "timeframe",
		Usage: "one of 1min, 5min, 15min, hour, 4hour, day, week, month, detected from the data if empty",
	},
	&cli.BoolFlag{
		Name:  "hide-branding",
		Usage: "do not show the branding",
	},
	&cli.Int64Flag{
		Name:        "seed",
		Value:       1,
		Usage:       "random seed of the generated sample data",
		Destination: &sampleSeed,
	},
}

var runCommand = &cli.Command{
	Name:   "run",
	Usage:  "show the chart in a window",
	Flags:  chartFlags,
	Action: runChart,
}

var snapshotCommand = &cli.Command{
	Name:  "snapshot",
	Usage: "render the chart to a png file",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:      "out",
			Value:     "chart.png",
			Usage:     "the png file to write",
			TakesFile: true,
		},
		&cli.IntFlag{
			Name:  "width",
			Value: config.DefaultWindowSize.X,
			Usage: "image width in pixels",
		},
		&cli.IntFlag{
			Name:  "height",
			Value: config.DefaultWindowSize.Y,
			Usage: "image height in pixels",
		},
	}, chartFlags...),
	Action: snapshotChart,
}

// applyFlags overrides configuration values by command line flags.
func applyFlags(c *cli.Context, options *config.ChartConfig) error {
	if c.IsSet("data") {
		options.DataFile = c.String("data")
	}
	if c.IsSet("dark") {
		options.DarkMode = c.Bool("dark")
	}
	if c.IsSet("type") {
		chartType, err := chartval.ParseChartType(c.String("type"))
		if err != nil {
			return err
		}
		options.ChartType = chartType
	}
	if c.IsSet("ticker") {
		options.Ticker = c.String("ticker")
	}
	if c.IsSet("timeframe") {
		tf, err := timeframe.Parse(c.String("timeframe"))
		if err != nil {
			return err
		}
		options.Timeframe = tf
	}
	if c.IsSet("hide-branding") {
		options.HideBranding = c.Bool("hide-branding")
	}
	options.Sanitize()
	return nil
}

func loadOptions(c *cli.Context) (config.Config, config.ChartConfig, error) {
	cfg := config.NewFileConfig(configFile, log.Default())
	options, err := cfg.Copy()
	if err != nil {
		return nil, config.ChartConfig{}, err
	}
	if err := applyFlags(c, &options); err != nil {
		return nil, config.ChartConfig{}, err
	}
	return cfg, options, nil
}

func loadCandles(options config.ChartConfig) ([]chartval.Candle, error) {
	if options.DataFile != "" {
		return chartval.ReadCandleFile(options.DataFile)
	}
	tradingCalendar, err := calendar.NewUSTradingCalendar()
	if err != nil {
		return nil, err
	}
	o := sampledata.NewOptions()
	if options.Timeframe != "" {
		o.Timeframe = options.Timeframe
	}
	o.Seed = sampleSeed
	return sampledata.Generate(tradingCalendar, o)
}

func runChart(c *cli.Context) error {
	cfg, options, err := loadOptions(c)
	if err != nil {
		return err
	}
	candles, err := loadCandles(options)
	if err != nil {
		return err
	}
	return chartview.Run(cfg, options, candles, log.Default())
}

// headlessMount hosts a chart which is only painted once.
type headlessMount struct {
	width unit.Dp
}

func (m headlessMount) Invalidate() {}

func (m headlessMount) SetFullscreen(bool) {}

func (m headlessMount) Width() unit.Dp {
	return m.width
}

func snapshotChart(c *cli.Context) error {
	_, options, err := loadOptions(c)
	if err != nil {
		return err
	}
	candles, err := loadCandles(options)
	if err != nil {
		return err
	}
	width := c.Int("width")
	height := c.Int("height")
	chart, err := chartview.NewChart(headlessMount{width: unit.Dp(width)}, candles, options, log.Default())
	if err != nil {
		return err
	}
	defer chart.Close()
	surface, err := chartplot.NewRasterSurface(width, height)
	if err != nil {
		return err
	}
	defer surface.Close()
	chart.Paint(surface)

	f, err := os.Create(c.String("out"))
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %v", err)
	}
	defer f.Close()
	return surface.WritePNG(f)
}

func main() {
	cliApp := cli.NewApp()
	cliApp.Name = config.AppName
	cliApp.Usage = "interactive candlestick and line chart"
	cliApp.Flags = chartFlags
	cliApp.Action = runChart
	cliApp.Commands = []*cli.Command{runCommand, snapshotCommand}

	go func() {
		if err := cliApp.Run(os.Args); err != nil {
			log.Fatalf("error: %v", err)
		}
		os.Exit(0)
	}()
	app.Main()
}
