package input

import (
	log "github.com/sirupsen/logrus"

	"github.com/mkoval/hivegate/model"
)

// Roster is the multiplexer's view of the match: it creates and removes
// players and decides roles and team capacity.
type Roster interface {
	Join(team model.Team) (id int64, ok bool)
	Leave(id int64)
}

// Multiplexer owns the source-to-slot binding. No two sources ever share a
// slot; events from unbound sources are dropped.
type Multiplexer struct {
	roster Roster
	slots  map[SourceID]int64
	held   map[int64]*Frame // persistent held state per slot
}

func NewMultiplexer(roster Roster) *Multiplexer {
	return &Multiplexer{
		roster: roster,
		slots:  make(map[SourceID]int64),
		held:   make(map[int64]*Frame),
	}
}

// Bound reports the slot a source is bound to.
func (mx *Multiplexer) Bound(src SourceID) (int64, bool) {
	id, ok := mx.slots[src]
	return id, ok
}

// Collect folds one tick's worth of source events into per-player frames.
// Join binds, Leave unbinds; a second Join from a bound source is a no-op.
func (mx *Multiplexer) Collect(events []Event) map[int64]Frame {
	// Per-tick fields reset; held buttons carry over.
	for _, f := range mx.held {
		f.Move = 0
		f.PrimaryHit = false
		f.SecondaryHit = false
	}

	for _, ev := range events {
		id, bound := mx.slots[ev.Source]
		switch ev.Kind {
		case KindJoin:
			if bound {
				continue // idempotent
			}
			newID, ok := mx.roster.Join(ev.Team)
			if !ok {
				continue
			}
			mx.slots[ev.Source] = newID
			mx.held[newID] = &Frame{}
			log.WithFields(log.Fields{"source": ev.Source, "player": newID}).Info("controller bound")
		case KindLeave:
			if !bound {
				continue
			}
			delete(mx.slots, ev.Source)
			delete(mx.held, id)
			mx.roster.Leave(id)
			log.WithFields(log.Fields{"source": ev.Source, "player": id}).Info("controller unbound")
		case KindMove:
			if !bound {
				continue
			}
			mx.held[id].Move = clampAxis(ev.Axis)
		case KindPrimary:
			if !bound {
				continue
			}
			f := mx.held[id]
			if ev.Pressed && !f.Primary {
				f.PrimaryHit = true
			}
			f.Primary = ev.Pressed
		case KindSecondary:
			if !bound {
				continue
			}
			f := mx.held[id]
			if ev.Pressed && !f.Secondary {
				f.SecondaryHit = true
			}
			f.Secondary = ev.Pressed
		default:
			// Malformed event, drop it.
		}
	}

	out := make(map[int64]Frame, len(mx.held))
	for id, f := range mx.held {
		out[id] = *f
	}
	return out
}

// Reset drops every binding, e.g. when the match is torn down.
func (mx *Multiplexer) Reset() {
	mx.slots = make(map[SourceID]int64)
	mx.held = make(map[int64]*Frame)
}

func clampAxis(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
