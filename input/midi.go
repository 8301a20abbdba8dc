package input

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mkoval/hivegate/model"
)

// NoteEvent is a debounced note-on/off from whatever MIDI backend is driving
// the keyboard. Device discovery and wire parsing stay outside the core.
type NoteEvent struct {
	On   bool
	Note uint8
}

// MidiSource turns a musical keyboard into controllers, one per octave.
// Pitch classes carry fixed meanings:
//
//	C / D    move left / right (held)
//	C# / D#  join gold / purple; pressed again, leave
//	E        primary (jump, flight while held)
//	F        secondary (dive)
type MidiSource struct {
	mu     sync.Mutex
	queue  []NoteEvent
	moves  map[uint8]float64 // held move notes
	joined map[uint8]bool    // octaves currently joined

	joinable bool // leave-toggle armed; owned by the game loop goroutine
}

func NewMidiSource() *MidiSource {
	return &MidiSource{
		moves:    make(map[uint8]float64),
		joined:   make(map[uint8]bool),
		joinable: true,
	}
}

// SetJoinable arms or disarms the leave half of the join-note toggle. While
// disarmed a joined octave's join note is dead, so a player hammering the
// keyboard mid-match cannot drop out of the game by accident. Call from the
// same goroutine as Poll.
func (s *MidiSource) SetJoinable(v bool) { s.joinable = v }

// Feed buffers a note event; safe to call from the device goroutine.
func (s *MidiSource) Feed(ev NoteEvent) {
	s.mu.Lock()
	s.queue = append(s.queue, ev)
	s.mu.Unlock()
}

func midiID(octave uint8) SourceID {
	return SourceID(fmt.Sprintf("midi:%d", octave))
}

// Poll drains buffered notes into events and re-emits held move axes.
func (s *MidiSource) Poll() []Event {
	s.mu.Lock()
	pending := s.queue
	s.queue = nil
	s.mu.Unlock()

	var out []Event
	for _, n := range pending {
		pitch := n.Note % 12
		octave := n.Note / 12
		id := midiID(octave)
		switch pitch {
		case 1, 3: // C#, D#
			if !n.On {
				continue
			}
			if s.joined[octave] {
				if s.joinable {
					delete(s.joined, octave)
					out = append(out, Event{Source: id, Kind: KindLeave})
				}
				continue
			}
			team := model.TeamGold
			if pitch == 3 {
				team = model.TeamPurple
			}
			s.joined[octave] = true
			out = append(out, Event{Source: id, Kind: KindJoin, Team: team})
		case 0, 2: // C, D
			axis := -1.0
			if pitch == 2 {
				axis = 1.0
			}
			if n.On {
				s.moves[n.Note] = axis
			} else {
				delete(s.moves, n.Note)
			}
		case 4: // E
			out = append(out, Event{Source: id, Kind: KindPrimary, Pressed: n.On})
		case 5: // F
			out = append(out, Event{Source: id, Kind: KindSecondary, Pressed: n.On})
		default:
			// Other pitches mean nothing; drop them.
		}
	}

	notes := make([]int, 0, len(s.moves))
	for note := range s.moves {
		notes = append(notes, int(note))
	}
	sort.Ints(notes)
	for _, note := range notes {
		n := uint8(note)
		out = append(out, Event{Source: midiID(n / 12), Kind: KindMove, Axis: s.moves[n]})
	}
	return out
}
