// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package widgets

import (
	"fmt"
	"log"

	"gioui.org/io/pointer"
	"gioui.org/op"
	"github.com/inkeliz/giohyperlink"
)

// LinkOpener opens a URL in the system browser.
type LinkOpener func(url string) error

// Link is a clickable area which opens an URL. The area itself is hit tested by the caller.
type Link struct {
	Url    string
	Open   LinkOpener
	Logger *log.Logger
}

func NewLink(url string, logger *log.Logger) *Link {
	if logger == nil {
		logger = log.Default()
	}
	return &Link{Url: url, Open: giohyperlink.Open, Logger: logger}
}

func (l *Link) Click() error {
	if err := l.Open(l.Url); err != nil {
		l.Logger.Printf("error: opening link: %v", err)
		return fmt.Errorf("failed to open %s: %v", l.Url, err)
	}
	return nil
}

// SetCursor shows the hand cursor while hovered.
func (l *Link) SetCursor(ops *op.Ops, hovered bool) {
	if hovered {
		pointer.CursorPointer.Add(ops)
	} else {
		pointer.CursorDefault.Add(ops)
	}
}
