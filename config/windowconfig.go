// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"image"
)

const minWindowSize = 200

var DefaultWindowSize = image.Point{X: 1024, Y: 600}

type WindowConfig struct {
	// Size in dp.
	Size image.Point `yaml:",omitempty"`
}

func NewWindowConfig() WindowConfig {
	return WindowConfig{
		Size: DefaultWindowSize,
	}
}

func (w *WindowConfig) sanitize() {
	if w.Size.X <= 0 || w.Size.Y <= 0 {
		w.Size = DefaultWindowSize
	}
	w.Size.X = max(w.Size.X, minWindowSize)
	w.Size.Y = max(w.Size.Y, minWindowSize)
}
