// Package event wires host-environment events (pointer movement, clicks,
// focus changes) to handlers registered per node.
//
// The model is single-goroutine and synchronous, mirroring a UI event loop:
// Dispatch runs every matching handler to completion before returning, and
// no handler ever observes a half-applied transition of another.
package event

import (
	"github.com/lhagen/inplace/internal/dom"
)

// Type identifies a kind of event.
type Type int

const (
	_ Type = iota
	// PointerEnter fires when the pointer moves onto a node.
	PointerEnter
	// PointerLeave fires when the pointer moves off a node.
	PointerLeave
	// Click fires when the primary button is pressed on a node.
	Click
	// Focus fires when a node gains input focus.
	Focus
	// Blur fires when a node loses input focus.
	Blur
)

// String returns the name of the event type, for logging.
func (t Type) String() string {
	switch t {
	case PointerEnter:
		return "pointerenter"
	case PointerLeave:
		return "pointerleave"
	case Click:
		return "click"
	case Focus:
		return "focus"
	case Blur:
		return "blur"
	}
	return "[unknown event type]"
}

// An Event is a single occurrence delivered to handlers subscribed to its
// target node.
type Event struct {
	Type   Type
	Target *dom.Node
}

// A Handler handles a single event.
type Handler func(Event)
