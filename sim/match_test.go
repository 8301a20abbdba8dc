package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkoval/hivegate/input"
	"github.com/mkoval/hivegate/model"
)

func TestFirstJoinerIsQueen(t *testing.T) {
	m := New(testWorld(), testConfig())

	q, ok := m.Join(model.TeamGold)
	require.True(t, ok)
	w, ok := m.Join(model.TeamGold)
	require.True(t, ok)

	assert.Equal(t, model.RoleQueen, m.Model.Players[q].Role)
	assert.Equal(t, model.RoleWorker, m.Model.Players[w].Role)
}

func TestJoinNoPreferenceBalances(t *testing.T) {
	m := New(testWorld(), testConfig())

	a, _ := m.Join(model.TeamNone)
	assert.Equal(t, model.TeamGold, m.Model.Players[a].Team)
	b, _ := m.Join(model.TeamNone)
	assert.Equal(t, model.TeamPurple, m.Model.Players[b].Team)
}

func TestJoinRespectsTeamCap(t *testing.T) {
	cfg := testConfig()
	cfg.MaxTeamSize = 2
	m := New(testWorld(), cfg)

	m.Join(model.TeamGold)
	m.Join(model.TeamGold)
	_, ok := m.Join(model.TeamGold)
	assert.False(t, ok)
	_, ok = m.Join(model.TeamPurple)
	assert.True(t, ok)
}

func TestPhaseFlowToPlaying(t *testing.T) {
	m := New(testWorld(), testConfig())
	assert.Equal(t, PhaseWaiting, m.Phase)

	g, _ := m.Join(model.TeamGold)
	m.Step(nil)
	assert.Equal(t, PhaseWaiting, m.Phase, "one side has no queen yet")

	p, _ := m.Join(model.TeamPurple)
	m.Step(nil)
	require.Equal(t, PhasePreGame, m.Phase)
	assert.True(t, m.Snapshot().BarrierUp[model.TeamGold])
	assert.True(t, m.Snapshot().BarrierUp[model.TeamPurple])

	// Gold's queen crosses first; her barrier drops, the match waits.
	m.Model.Players[g].Pos = m.World.StartGates[model.TeamGold].Center()
	m.Step(nil)
	assert.Equal(t, PhasePreGame, m.Phase)
	assert.False(t, m.Snapshot().BarrierUp[model.TeamGold])
	assert.True(t, m.Snapshot().BarrierUp[model.TeamPurple])

	m.Model.Players[p].Pos = m.World.StartGates[model.TeamPurple].Center()
	m.Step(nil)
	assert.Equal(t, PhasePlaying, m.Phase)
}

func TestQueenLeavingPreGameStallsStart(t *testing.T) {
	m := New(testWorld(), testConfig())
	g, _ := m.Join(model.TeamGold)
	m.Join(model.TeamPurple)
	m.Step(nil)
	require.Equal(t, PhasePreGame, m.Phase)

	m.Model.Players[g].Pos = m.World.StartGates[model.TeamGold].Center()
	m.Step(nil)

	// The crossing is forfeited when the queen leaves.
	m.Leave(g)
	m.Model.Players[m.Model.PlayerKeys[0]].Pos = m.World.StartGates[model.TeamPurple].Center()
	for i := 0; i < 5; i++ {
		m.Step(nil)
	}
	assert.Equal(t, PhasePreGame, m.Phase)

	// A fresh gold joiner becomes queen and can re-cross.
	g2, ok := m.Join(model.TeamGold)
	require.True(t, ok)
	require.Equal(t, model.RoleQueen, m.Model.Players[g2].Role)
	m.Model.Players[g2].Pos = m.World.StartGates[model.TeamGold].Center()
	m.Step(nil)
	assert.Equal(t, PhasePlaying, m.Phase)
}

func TestBerryPickupAndDeposit(t *testing.T) {
	m := New(testWorld(), testConfig())
	startMatch(t, m)

	w, _ := m.Join(model.TeamGold)
	p := m.Model.Players[w]
	p.Pos = vec(300, 472)
	m.Step(nil)

	b := m.Model.Berries[p.HeldBerry]
	require.NotNil(t, b)
	assert.Equal(t, model.BerryHeld, b.State)
	assert.Equal(t, w, b.Holder)

	p.Pos = m.World.BaseSpawns[model.TeamGold]
	m.Step(nil)
	assert.Zero(t, p.HeldBerry)
	assert.Equal(t, 1, m.Model.Bases[model.TeamGold].Berries)
	assert.NotContains(t, m.Model.Berries, b.ID)
	assert.Equal(t, PhasePlaying, m.Phase, "one berry short of the threshold")
}

func TestEconomicWin(t *testing.T) {
	cfg := testConfig()
	cfg.BerriesToWin = 1
	m := New(testWorld(), cfg)
	startMatch(t, m)

	w, _ := m.Join(model.TeamGold)
	p := m.Model.Players[w]
	b := m.Model.Berries[m.Model.BerryKeys[0]]
	b.State, b.Holder = model.BerryHeld, w
	p.HeldBerry = b.ID

	// The joiner spawns at the base, so the next tick banks the berry.
	m.Step(nil)
	assert.Equal(t, PhaseOver, m.Phase)
	assert.Equal(t, model.TeamGold, m.Winner)
	assert.Equal(t, VictoryEconomic, m.Victory)

	_, ok := m.Join(model.TeamPurple)
	assert.False(t, ok, "no joining a finished match")
}

func TestMilitaryWin(t *testing.T) {
	m := New(testWorld(), testConfig()) // two queen lives
	_, pq := startMatch(t, m)
	queen := m.Model.Players[pq]

	m.kill(queen)
	m.Step(nil)
	assert.Equal(t, PhasePlaying, m.Phase)

	m.kill(queen)
	m.Step(nil)
	assert.Equal(t, PhaseOver, m.Phase)
	assert.Equal(t, model.TeamGold, m.Winner)
	assert.Equal(t, VictoryMilitary, m.Victory)
}

func TestOverIsFrozenWithoutRestart(t *testing.T) {
	m := New(testWorld(), testConfig()) // RestartTicks 0
	m.finish(model.TeamGold, VictoryEconomic)

	for i := 0; i < 10; i++ {
		m.Step(nil)
	}
	assert.Equal(t, PhaseOver, m.Phase)
	assert.Equal(t, model.TeamGold, m.Winner)
}

func TestRestartAfterCountdown(t *testing.T) {
	cfg := testConfig()
	cfg.RestartTicks = 2
	m := New(testWorld(), cfg)
	startMatch(t, m)
	m.finish(model.TeamPurple, VictoryShip)

	m.Step(nil)
	assert.Equal(t, PhaseOver, m.Phase)
	m.Step(nil)

	assert.Equal(t, PhaseWaiting, m.Phase)
	assert.Equal(t, model.TeamNone, m.Winner)
	assert.Equal(t, VictoryNone, m.Victory)
	assert.Empty(t, m.Model.Players, "roster does not carry over")
	assert.Len(t, m.Model.BerryKeys, len(m.World.BerrySpawns))
	assert.Zero(t, m.Model.Bases[model.TeamPurple].Berries)
}

func TestMidiQueenSurvivesHerJoinNoteMidMatch(t *testing.T) {
	m := New(testWorld(), testConfig())
	mx := input.NewMultiplexer(m)
	midi := input.NewMidiSource()

	midi.Feed(input.NoteEvent{On: true, Note: 49}) // C#4 joins gold
	midi.Feed(input.NoteEvent{On: true, Note: 63}) // D#5 joins purple
	mx.Collect(midi.Poll())
	require.NotNil(t, m.Model.Queen(model.TeamGold))
	require.NotNil(t, m.Model.Queen(model.TeamPurple))

	m.Step(nil)
	require.Equal(t, PhasePreGame, m.Phase)
	m.Model.Queen(model.TeamGold).Pos = m.World.StartGates[model.TeamGold].Center()
	m.Model.Queen(model.TeamPurple).Pos = m.World.StartGates[model.TeamPurple].Center()
	m.Step(nil)
	require.Equal(t, PhasePlaying, m.Phase)

	// The gold player hammers the join note mid-match; nothing happens.
	midi.SetJoinable(false)
	midi.Feed(input.NoteEvent{On: true, Note: 49})
	mx.Collect(midi.Poll())
	assert.NotNil(t, m.Model.Queen(model.TeamGold))
}

func TestWalkAcrossTheSeam(t *testing.T) {
	m := New(testWorld(), testConfig())
	w, _ := startMatch(t, m)
	p := m.Model.Players[w]
	p.Pos = vec(958, 472)

	m.Step(map[int64]input.Frame{w: {Move: 1}})
	assert.InDelta(t, 4.67, p.Pos.X, 0.1)
	assert.Equal(t, m.Cfg.MoveSpeed, p.Vel.X)
	assert.True(t, p.Alive)
}
