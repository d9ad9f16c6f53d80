// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gesture

type Kind uint8

const (
	Press Kind = iota
	Move
	Release
	Scroll
	Cancel
)

func (k Kind) String() string {
	switch k {
	case Press:
		return "press"
	case Move:
		return "move"
	case Release:
		return "release"
	case Scroll:
		return "scroll"
	default:
		return "cancel"
	}
}

type Source uint8

const (
	Mouse Source = iota
	Touch
)

// Event is a pointer event in surface coordinates. Mouse and touch input are
// both translated to this shape, touches are told apart by ID.
type Event struct {
	Kind    Kind
	Source  Source
	ID      int64
	X       float64
	Y       float64
	ScrollY float64
}

type touchPoint struct {
	X float64
	Y float64
}
