// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartplot

import "stockchart/viewport"

var LabelFont = Font{Size: 12}

func WatermarkFont(c viewport.SizeClass) Font {
	sizes := [...]float64{40, 50, 60, 70, 80}
	return Font{Size: sizes[sizeIndex(c)], Bold: true}
}

func BrandingFont(c viewport.SizeClass) Font {
	sizes := [...]float64{9, 10, 12, 12, 12}
	return Font{Size: sizes[sizeIndex(c)]}
}

func sizeIndex(c viewport.SizeClass) int {
	if c < viewport.SizeXs {
		return int(viewport.SizeXs)
	}
	if c > viewport.SizeXl {
		return int(viewport.SizeXl)
	}
	return int(c)
}
