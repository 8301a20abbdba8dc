package sim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkoval/hivegate/model"
	"github.com/mkoval/hivegate/world"
)

func vec(x, y float64) model.Vec { return model.Vec{X: x, Y: y} }

func rect(x0, y0, x1, y1 float64) model.Rect {
	return model.Rect{Min: model.Vec{X: x0, Y: y0}, Max: model.Vec{X: x1, Y: y1}}
}

// testWorld is a small hand-built arena: one floor, one gate, a base per
// side and a ship track floating above the gate.
func testWorld() *world.World {
	return &world.World{
		Width:  960,
		Height: 540,

		Platforms: []model.Rect{rect(0, 500, 960, 540)},
		Gates:     []model.Rect{rect(440, 420, 520, 500)},
		Bases: map[model.Team]model.Rect{
			model.TeamGold:   rect(40, 420, 200, 500),
			model.TeamPurple: rect(760, 420, 920, 500),
		},
		BerrySpawns: []model.Vec{vec(300, 480), vec(360, 480)},

		ShipStart: vec(480, 380),
		ShipGoals: map[model.Team]float64{model.TeamGold: 60, model.TeamPurple: 900},

		StartGates: map[model.Team]model.Rect{
			model.TeamGold:   rect(240, 420, 300, 500),
			model.TeamPurple: rect(660, 420, 720, 500),
		},
		StartBarriers: map[model.Team][]model.Rect{
			model.TeamGold:   {rect(330, 0, 340, 500)},
			model.TeamPurple: {rect(620, 0, 630, 500)},
		},
		JoinSpawns: map[model.Team]model.Vec{
			model.TeamGold:   vec(380, 460),
			model.TeamPurple: vec(580, 460),
		},
		BaseSpawns: map[model.Team]model.Vec{
			model.TeamGold:   vec(120, 460),
			model.TeamPurple: vec(840, 460),
		},
	}
}

// testConfig shortens every timer so tests resolve in a handful of ticks.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.QueenLives = 2
	cfg.BerriesToWin = 2
	cfg.GateHoldTicks = 3
	cfg.RespawnTicks = 4
	cfg.RestartTicks = 0
	return cfg
}

// startMatch joins a queen per side and walks them through the start gates,
// leaving the match in the playing phase. Returns the queen ids.
func startMatch(t *testing.T, m *Match) (gold, purple int64) {
	t.Helper()

	gold, ok := m.Join(model.TeamGold)
	require.True(t, ok)
	purple, ok = m.Join(model.TeamPurple)
	require.True(t, ok)

	m.Step(nil)
	require.Equal(t, PhasePreGame, m.Phase)

	m.Model.Players[gold].Pos = m.World.StartGates[model.TeamGold].Center()
	m.Model.Players[purple].Pos = m.World.StartGates[model.TeamPurple].Center()
	m.Step(nil)
	require.Equal(t, PhasePlaying, m.Phase)
	return gold, purple
}
