package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkoval/hivegate/input"
	"github.com/mkoval/hivegate/model"
)

func TestWorkerBoardsAndShipHeadsHome(t *testing.T) {
	m := New(testWorld(), testConfig())
	startMatch(t, m)

	w, _ := m.Join(model.TeamGold)
	p := m.Model.Players[w]
	p.Pos = m.Model.Ship.Pos
	m.Step(nil)

	ship := m.Model.Ship
	require.Equal(t, w, ship.Rider)
	assert.Equal(t, model.TeamGold, ship.Heading)
	assert.True(t, p.RidingShip)

	startX := ship.Pos.X
	m.Step(nil)
	assert.Less(t, ship.Pos.X, startX, "gold rides toward the left goal")
	assert.Equal(t, ship.Pos.X, p.Pos.X, "the rider moves with the ship")
}

func TestShipWin(t *testing.T) {
	cfg := testConfig()
	cfg.ShipSpeed = 6000 // cross the arena in a handful of ticks
	m := New(testWorld(), cfg)
	startMatch(t, m)

	w, _ := m.Join(model.TeamGold)
	m.Model.Players[w].Pos = m.Model.Ship.Pos

	for i := 0; i < 10 && m.Phase != PhaseOver; i++ {
		m.Step(nil)
	}
	require.Equal(t, PhaseOver, m.Phase)
	assert.Equal(t, model.TeamGold, m.Winner)
	assert.Equal(t, VictoryShip, m.Victory)
}

func TestPurpleRiderHeadsRight(t *testing.T) {
	m := New(testWorld(), testConfig())
	startMatch(t, m)

	w, _ := m.Join(model.TeamPurple)
	m.Model.Players[w].Pos = m.Model.Ship.Pos
	m.Step(nil)
	require.Equal(t, model.TeamPurple, m.Model.Ship.Heading)

	startX := m.Model.Ship.Pos.X
	m.Step(nil)
	assert.Greater(t, m.Model.Ship.Pos.X, startX)
}

func TestBerryCarrierBouncesOff(t *testing.T) {
	m := New(testWorld(), testConfig())
	startMatch(t, m)

	w, _ := m.Join(model.TeamGold)
	p := m.Model.Players[w]
	giveBerry(m, p, 0)
	p.Pos = vec(490, 380) // just right of the ship's center
	m.Step(nil)

	assert.Zero(t, m.Model.Ship.Rider)
	assert.False(t, p.RidingShip)
	assert.InDelta(t, 527, p.Pos.X, 0.01, "shoved flush off the right side")
	assert.Negative(t, p.Vel.Y, "bounced upward")
}

func TestSecondWorkerBouncesOffOccupiedShip(t *testing.T) {
	m := New(testWorld(), testConfig())
	startMatch(t, m)

	w1, _ := m.Join(model.TeamGold)
	rider := m.Model.Players[w1]
	rider.Pos = m.Model.Ship.Pos
	m.Step(nil)
	require.True(t, rider.RidingShip)

	w2, _ := m.Join(model.TeamPurple)
	p := m.Model.Players[w2]
	p.Pos = vec(m.Model.Ship.Pos.X-10, m.Model.Ship.Pos.Y)
	m.Step(nil)

	assert.True(t, rider.RidingShip, "the rider keeps the ship")
	assert.False(t, p.RidingShip)
	assert.Negative(t, p.Vel.Y)
}

func TestRiderJumpsOff(t *testing.T) {
	m := New(testWorld(), testConfig())
	startMatch(t, m)

	w, _ := m.Join(model.TeamGold)
	p := m.Model.Players[w]
	p.Pos = m.Model.Ship.Pos
	m.Step(nil)
	require.True(t, p.RidingShip)

	m.Step(map[int64]input.Frame{w: {Primary: true, PrimaryHit: true}})
	assert.False(t, p.RidingShip)
	assert.Zero(t, m.Model.Ship.Rider)
	assert.Equal(t, model.TeamNone, m.Model.Ship.Heading)
	assert.Equal(t, -m.Cfg.JumpSpeed, p.Vel.Y)
}
