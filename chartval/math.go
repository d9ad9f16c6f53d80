// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartval

import (
	"strconv"
	"strings"

	"github.com/ericlagergren/decimal"
	"golang.org/x/exp/constraints"
)

const NearZero = 0.000001

func Clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func IsGreenCandle(o, c float64) bool {
	// A candle with equal open and close counts as green.
	return c >= o
}

// RoundPrice rounds price z to two digits after decimal point and returns z.
func RoundPrice(z *decimal.Big) *decimal.Big {
	// Call Quantize twice, otherwise one digit may be missing, see https://github.com/ericlagergren/decimal/issues/151
	return z.Quantize(2).Quantize(2)
}

// Returns a new decimal with prepared formatting, enforce a minimum of 2 digits after decimal point.
func PrepareFormattedPrice(z *decimal.Big) *decimal.Big {
	if z.Scale() < 2 {
		// Adding 0.00 will enforce the proper format
		return new(decimal.Big).Add(z, decimal.New(0, 2))
	}
	return new(decimal.Big).Copy(z)
}

// The builtin decimal.Big conversion from float64 is an "exact" conversion, and useless for our cases.
// Therefore, convert using string conversion, even though this requires memory allocation.
// See also https://github.com/ericlagergren/decimal/issues/142

// Convert float to string and then to decimal.
func ConvertFloatToDecimal(v float64) *decimal.Big {
	d, _ := new(decimal.Big).SetString(strconv.FormatFloat(v, 'f', -1, 64))
	return d
}

// FormatPrice returns v with exactly two digits after the decimal point.
func FormatPrice(v float64) string {
	d := ConvertFloatToDecimal(v)
	if d == nil {
		// NaN or Inf
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	return PrepareFormattedPrice(RoundPrice(d)).String()
}

// FormatVolume scales large volumes to K, M or B and keeps at most two decimals.
func FormatVolume(vol float64) string {
	suffix := ""
	scaled := vol
	if vol >= 1e9 {
		suffix = "B"
		scaled = vol / 1e9
	} else if vol >= 1e6 {
		suffix = "M"
		scaled = vol / 1e6
	} else if vol >= 1e3 {
		suffix = "K"
		scaled = vol / 1e3
	}
	s := strconv.FormatFloat(scaled, 'f', 2, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s + suffix
}
