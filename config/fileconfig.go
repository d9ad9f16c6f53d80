// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

const AppName = "stockchart"
const configFileName = "chartconfig.yaml"
const configFileVersion = 1

// FileConfig is a chart configuration which is stored as YAML file.
type FileConfig struct {
	fileName         string
	logger           *log.Logger
	loaded           bool
	version          VersionConfig
	chartConfig      ChartConfig
	chartConfigMutex sync.Mutex
}

type VersionConfig struct {
	FileVersion int
}

// NewFileConfig uses the given file, or the default file in the user configuration directory if fileName is empty.
func NewFileConfig(fileName string, logger *log.Logger) Config {
	if logger == nil {
		logger = log.Default()
	}
	return &FileConfig{
		fileName: fileName,
		logger:   logger,
		version: VersionConfig{
			FileVersion: configFileVersion,
		},
		chartConfig: NewChartConfig(),
	}
}

func (g *FileConfig) GetAppName() string {
	return AppName
}

// Locks access to the configuration and returns a copy which can be modified.
// Unlock needs to be called afterwards, if no error was returned.
func (g *FileConfig) Lock() (*ChartConfig, error) {
	g.chartConfigMutex.Lock()
	if !g.loaded {
		err := g.read()
		if err != nil {
			g.chartConfigMutex.Unlock()
			return nil, err
		}
	}
	chartConfigCopy := g.chartConfig.deepCopy()
	return &chartConfigCopy, nil
}

// Update the configuration and unlock access.
// If the configuration was changed, the configuration will be written before unlocking.
func (g *FileConfig) Unlock(c *ChartConfig) error {
	var err error
	if !cmp.Equal(g.chartConfig, *c) {
		g.chartConfig = *c
		err = g.write()
	}
	g.chartConfigMutex.Unlock()
	return err
}

func (g *FileConfig) Copy() (ChartConfig, error) {
	g.chartConfigMutex.Lock()
	defer g.chartConfigMutex.Unlock()
	if !g.loaded {
		err := g.read()
		if err != nil {
			return ChartConfig{}, err
		}
	}
	return g.chartConfig.deepCopy(), nil
}

func (g *FileConfig) getFileName() string {
	if len(g.fileName) > 0 {
		return g.fileName
	}
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		// We do not want to run on operating systems without config dir.
		// This is considered to be a fatal error.
		log.Fatalf("unable to determine configuration path: %v", err)
	}
	return filepath.Join(userConfigDir, g.GetAppName(), configFileName)
}

func (g *FileConfig) read() error {
	fileName := g.getFileName()
	if _, err := os.Stat(fileName); os.IsNotExist(err) {
		// It is fine if the configuration file does not yet exist.
		g.logger.Printf("Configuration file \"%s\" does not yet exist, using defaults.", fileName)
		g.loaded = true
		return nil
	}
	file, err := os.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("failed to read configuration file: %v", err)
	}
	err = yaml.Unmarshal(file, &g.version)
	if err != nil {
		return fmt.Errorf("failed to parse configuration version: %v", err)
	}
	// Avoid removing new unknown settings if an old release is started with a newer config file.
	if g.version.FileVersion > configFileVersion {
		return fmt.Errorf(
			"invalid configuration file version %d instead of %d, probably from a newer release",
			g.version.FileVersion,
			configFileVersion)
	}
	g.version.FileVersion = configFileVersion
	err = yaml.Unmarshal(file, &g.chartConfig)
	if err != nil {
		return fmt.Errorf("failed to parse chart configuration: %v", err)
	}
	g.chartConfig.Sanitize()
	g.loaded = true
	return nil
}

func (g *FileConfig) write() error {
	fileName := g.getFileName()
	err := os.MkdirAll(filepath.Dir(fileName), 0700)
	if err != nil {
		return fmt.Errorf("failed to create configuration directory: %v", err)
	}
	g.chartConfig.Sanitize()
	stored := g.chartConfig.deepCopy()
	stored.RemoveDefaults()
	fileVersion, err := yaml.Marshal(&g.version)
	if err != nil {
		return fmt.Errorf("error generating configuration version: %v", err)
	}
	fileChartConfig, err := yaml.Marshal(&stored)
	if err != nil {
		return fmt.Errorf("error generating chart configuration: %v", err)
	}

	file := append(fileVersion, fileChartConfig...)
	tmpFileName := fileName + ".tmp"
	// Writing may fail, so we write to a temporary file and replace afterwards.
	err = os.WriteFile(tmpFileName, file, 0600)
	if err != nil {
		return fmt.Errorf("failed to write configuration file: %v", err)
	}
	err = os.Rename(tmpFileName, fileName)
	if err != nil {
		return fmt.Errorf("failed to replace configuration file: %v", err)
	}
	return nil
}
