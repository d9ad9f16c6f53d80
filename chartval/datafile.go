// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartval

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type DataFormat int

const (
	DataFormatJson DataFormat = iota
	DataFormatYaml
)

// candleRecord is the on-disk representation, timestamps are unix milliseconds.
type candleRecord struct {
	T      int64   `json:"t" yaml:"t"`
	Open   float64 `json:"open" yaml:"open"`
	High   float64 `json:"high" yaml:"high"`
	Low    float64 `json:"low" yaml:"low"`
	Close  float64 `json:"close" yaml:"close"`
	Volume float64 `json:"volume" yaml:"volume"`
}

func DataFormatFromFileName(fileName string) (DataFormat, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".json":
		return DataFormatJson, nil
	case ".yaml", ".yml":
		return DataFormatYaml, nil
	default:
		return 0, fmt.Errorf("unsupported candle file extension of %q", fileName)
	}
}

func ReadCandleFile(fileName string) ([]Candle, error) {
	format, err := DataFormatFromFileName(fileName)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to open candle file: %v", err)
	}
	defer f.Close()
	return ReadCandles(f, format)
}

// ReadCandles parses a list of candle records and returns them in ascending time order.
func ReadCandles(r io.Reader, format DataFormat) ([]Candle, error) {
	var records []candleRecord
	var err error
	switch format {
	case DataFormatJson:
		err = json.NewDecoder(r).Decode(&records)
	case DataFormatYaml:
		err = yaml.NewDecoder(r).Decode(&records)
	default:
		return nil, fmt.Errorf("unsupported candle data format %d", format)
	}
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse candle data: %v", err)
	}
	candles := make(CandleList, 0, len(records))
	for _, rec := range records {
		candles = append(candles, Candle{
			Time:   time.UnixMilli(rec.T),
			Open:   rec.Open,
			High:   rec.High,
			Low:    rec.Low,
			Close:  rec.Close,
			Volume: rec.Volume,
		})
	}
	sort.Stable(candles)
	return candles, nil
}

func WriteCandles(w io.Writer, candles []Candle, format DataFormat) error {
	records := make([]candleRecord, 0, len(candles))
	for _, c := range candles {
		records = append(records, candleRecord{
			T:      c.Time.UnixMilli(),
			Open:   c.Open,
			High:   c.High,
			Low:    c.Low,
			Close:  c.Close,
			Volume: c.Volume,
		})
	}
	switch format {
	case DataFormatJson:
		enc := json.NewEncoder(w)
		enc.SetIndent("", " ")
		return enc.Encode(records)
	case DataFormatYaml:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(records)
	default:
		return fmt.Errorf("unsupported candle data format %d", format)
	}
}
