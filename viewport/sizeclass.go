// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package viewport

import "gioui.org/unit"

// SizeClass is the responsive breakpoint class of the chart surface width.
type SizeClass int

const (
	SizeXs SizeClass = iota
	SizeSm
	SizeMd
	SizeLg
	SizeXl
)

const FullscreenMaxVisible = 200

func SizeClassFromWidth(width unit.Dp) SizeClass {
	switch {
	case width < 576:
		return SizeXs
	case width < 768:
		return SizeSm
	case width < 992:
		return SizeMd
	case width < 1200:
		return SizeLg
	default:
		return SizeXl
	}
}

func (c SizeClass) String() string {
	switch c {
	case SizeXs:
		return "xs"
	case SizeSm:
		return "sm"
	case SizeMd:
		return "md"
	case SizeLg:
		return "lg"
	default:
		return "xl"
	}
}

func (c SizeClass) InitialVisibleCount() int {
	switch c {
	case SizeXs:
		return 20
	case SizeSm:
		return 30
	case SizeMd:
		return 40
	case SizeLg:
		return 50
	default:
		return 60
	}
}

func (c SizeClass) MaxVisibleCount() int {
	switch c {
	case SizeXs:
		return 50
	case SizeSm:
		return 70
	case SizeMd:
		return 80
	case SizeLg:
		return 90
	default:
		return 100
	}
}

// MaxVisibleCountFor includes the raised limit in fullscreen mode.
func (c SizeClass) MaxVisibleCountFor(fullscreen bool) int {
	if fullscreen {
		return FullscreenMaxVisible
	}
	return c.MaxVisibleCount()
}

// Spacing is the gap between two candles in pixels.
func (c SizeClass) Spacing() float64 {
	if c == SizeXs || c == SizeSm {
		return 2
	}
	return 4
}
