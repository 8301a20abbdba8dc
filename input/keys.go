package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mkoval/hivegate/model"
)

type keyLayout struct {
	id         SourceID
	left       ebiten.Key
	right      ebiten.Key
	primary    ebiten.Key
	secondary  ebiten.Key
	joinGold   ebiten.Key
	joinPurple ebiten.Key
	leave      ebiten.Key
}

// KeySource maps two fixed keyboard layouts to two controller slots so the
// game is playable with no pads plugged in: WASD-side (A/D move, Space
// primary, S secondary, 1/2 join, Q leave) and the arrow-key side (arrows,
// Up primary, Down secondary, 9/0 join, P leave).
type KeySource struct {
	layouts []keyLayout
}

func NewKeySource() *KeySource {
	return &KeySource{layouts: []keyLayout{
		{
			id:   "keys:left",
			left: ebiten.KeyA, right: ebiten.KeyD,
			primary: ebiten.KeySpace, secondary: ebiten.KeyS,
			joinGold: ebiten.KeyDigit1, joinPurple: ebiten.KeyDigit2,
			leave: ebiten.KeyQ,
		},
		{
			id:   "keys:right",
			left: ebiten.KeyArrowLeft, right: ebiten.KeyArrowRight,
			primary: ebiten.KeyArrowUp, secondary: ebiten.KeyArrowDown,
			joinGold: ebiten.KeyDigit9, joinPurple: ebiten.KeyDigit0,
			leave: ebiten.KeyP,
		},
	}}
}

func (s *KeySource) Poll() []Event {
	var out []Event
	for _, l := range s.layouts {
		if inpututil.IsKeyJustPressed(l.joinGold) {
			out = append(out, Event{Source: l.id, Kind: KindJoin, Team: model.TeamGold})
		}
		if inpututil.IsKeyJustPressed(l.joinPurple) {
			out = append(out, Event{Source: l.id, Kind: KindJoin, Team: model.TeamPurple})
		}
		if inpututil.IsKeyJustPressed(l.leave) {
			out = append(out, Event{Source: l.id, Kind: KindLeave})
		}

		if inpututil.IsKeyJustPressed(l.primary) {
			out = append(out, Event{Source: l.id, Kind: KindPrimary, Pressed: true})
		}
		if inpututil.IsKeyJustReleased(l.primary) {
			out = append(out, Event{Source: l.id, Kind: KindPrimary, Pressed: false})
		}
		if inpututil.IsKeyJustPressed(l.secondary) {
			out = append(out, Event{Source: l.id, Kind: KindSecondary, Pressed: true})
		}
		if inpututil.IsKeyJustReleased(l.secondary) {
			out = append(out, Event{Source: l.id, Kind: KindSecondary, Pressed: false})
		}

		axis := 0.0
		if ebiten.IsKeyPressed(l.left) {
			axis -= 1
		}
		if ebiten.IsKeyPressed(l.right) {
			axis += 1
		}
		if axis != 0 {
			out = append(out, Event{Source: l.id, Kind: KindMove, Axis: axis})
		}
	}
	return out
}
