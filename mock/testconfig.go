// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package mock

import "stockchart/config"

// TestConfig counts the write accesses, so that tests can check whether options were stored.
type TestConfig struct {
	chartConfig config.ChartConfig
	Unlocked    int
}

// Test configurations are not stored and not thread safe.
// Intended only for use in unit tests.
func NewTestConfig() *TestConfig {
	return &TestConfig{
		chartConfig: config.NewChartConfig(),
	}
}

func (t *TestConfig) GetAppName() string {
	return "test"
}

func (t *TestConfig) Lock() (*config.ChartConfig, error) {
	c := t.chartConfig
	return &c, nil
}

func (t *TestConfig) Unlock(c *config.ChartConfig) error {
	t.chartConfig = *c
	t.Unlocked++
	return nil
}

func (t *TestConfig) Copy() (config.ChartConfig, error) {
	return t.chartConfig, nil
}
