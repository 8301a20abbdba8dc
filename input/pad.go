package input

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mkoval/hivegate/model"
)

const padDeadzone = 0.25

// PadSource polls every connected gamepad. Left stick steers; the bottom
// face button is primary, the left face button secondary. Bumpers join gold
// or purple, the center-left (select/back) button leaves.
type PadSource struct {
	ids []ebiten.GamepadID
}

func NewPadSource() *PadSource { return &PadSource{} }

func padID(id ebiten.GamepadID) SourceID {
	return SourceID(fmt.Sprintf("pad:%d", id))
}

func (s *PadSource) Poll() []Event {
	s.ids = ebiten.AppendGamepadIDs(s.ids[:0])

	var out []Event
	for _, id := range s.ids {
		src := padID(id)
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}

		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontTopLeft) {
			out = append(out, Event{Source: src, Kind: KindJoin, Team: model.TeamGold})
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontTopRight) {
			out = append(out, Event{Source: src, Kind: KindJoin, Team: model.TeamPurple})
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterLeft) {
			out = append(out, Event{Source: src, Kind: KindLeave})
		}

		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom) {
			out = append(out, Event{Source: src, Kind: KindPrimary, Pressed: true})
		}
		if inpututil.IsStandardGamepadButtonJustReleased(id, ebiten.StandardGamepadButtonRightBottom) {
			out = append(out, Event{Source: src, Kind: KindPrimary, Pressed: false})
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft) {
			out = append(out, Event{Source: src, Kind: KindSecondary, Pressed: true})
		}
		if inpututil.IsStandardGamepadButtonJustReleased(id, ebiten.StandardGamepadButtonRightLeft) {
			out = append(out, Event{Source: src, Kind: KindSecondary, Pressed: false})
		}

		axis := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if axis > padDeadzone || axis < -padDeadzone {
			out = append(out, Event{Source: src, Kind: KindMove, Axis: axis})
		}
	}
	return out
}
