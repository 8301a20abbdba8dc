// Package input turns heterogeneous physical controllers into one stream of
// logical player actions. Sources (gamepad, keyboard, MIDI) emit abstract
// events once per tick; the multiplexer binds each source to a player slot
// and folds the events into per-player frames.
package input

import "github.com/mkoval/hivegate/model"

// SourceID names one physical controller, e.g. "pad:0" or "midi:4".
type SourceID string

type Kind int

const (
	KindJoin Kind = iota
	KindLeave
	KindMove
	KindPrimary
	KindSecondary
)

// Event is one abstract controller event.
type Event struct {
	Source SourceID
	Kind   Kind

	Team    model.Team // join hint; TeamNone lets the roster pick
	Axis    float64    // KindMove, -1..1
	Pressed bool       // KindPrimary / KindSecondary
}

// Frame is the logical input of one player for one tick. Primary doubles as
// jump (workers) and flight (queens, fighters); Secondary is the queen dive.
type Frame struct {
	Move         float64
	Primary      bool
	PrimaryHit   bool
	Secondary    bool
	SecondaryHit bool
}

// Source produces whatever events it buffered since the last tick.
// Poll never blocks.
type Source interface {
	Poll() []Event
}
