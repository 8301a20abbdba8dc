// Package sim is the authoritative rules engine: one fixed-timestep,
// single-writer simulation advanced by Step. Nothing in here blocks; every
// abnormal condition degrades to a no-op so the tick rate never stalls.
package sim

import (
	log "github.com/sirupsen/logrus"

	"github.com/mkoval/hivegate/input"
	"github.com/mkoval/hivegate/model"
	"github.com/mkoval/hivegate/world"
)

type Phase int

const (
	PhaseWaiting Phase = iota
	PhasePreGame
	PhasePlaying
	PhaseOver
)

func (p Phase) Name() string {
	switch p {
	case PhaseWaiting:
		return "WAITING"
	case PhasePreGame:
		return "PREGAME"
	case PhasePlaying:
		return "PLAYING"
	case PhaseOver:
		return "OVER"
	default:
		return "N/A"
	}
}

type Victory int

const (
	VictoryNone Victory = iota
	VictoryMilitary
	VictoryEconomic
	VictoryShip
)

func (v Victory) Name() string {
	switch v {
	case VictoryMilitary:
		return "MILITARY"
	case VictoryEconomic:
		return "ECONOMIC"
	case VictoryShip:
		return "SHIP"
	default:
		return "NONE"
	}
}

// Match owns the whole per-match state and its lifecycle. It is not safe for
// concurrent use: one goroutine calls Step, everyone else reads Snapshots.
type Match struct {
	Cfg   Config
	World *world.World
	Model *model.Model

	Phase   Phase
	Tick    int64
	Winner  model.Team
	Victory Victory

	barrierUp   map[model.Team]bool
	gateCrossed map[model.Team]bool
	restartLeft int
}

func New(w *world.World, cfg Config) *Match {
	m := &Match{Cfg: cfg, World: w}
	m.Reset()
	return m
}

// Reset tears the match down to a fresh waiting state. Every entity is
// rebuilt from the map; nothing leaks across matches.
func (m *Match) Reset() {
	mm := model.NewModel()
	for _, spawn := range m.World.BerrySpawns {
		b := &model.Berry{ID: mm.NextID(), State: model.BerryOnGround, Pos: spawn}
		mm.AddBerry(b)
	}
	for _, r := range m.World.Gates {
		mm.Gates = append(mm.Gates, &model.Gate{ID: mm.NextID(), Region: r})
	}
	mm.Ship = &model.Ship{Pos: m.World.ShipStart}
	for t, r := range m.World.Bases {
		mm.Bases[t].Region = r
	}

	m.Model = mm
	m.Phase = PhaseWaiting
	m.Tick = 0
	m.Winner = model.TeamNone
	m.Victory = VictoryNone
	m.barrierUp = map[model.Team]bool{model.TeamGold: true, model.TeamPurple: true}
	m.gateCrossed = map[model.Team]bool{model.TeamGold: false, model.TeamPurple: false}
	m.restartLeft = 0
	log.Info("match reset")
}

// Join adds a player to a team and returns its id. The first player on a
// side becomes that team's queen; later joiners are workers. Implements
// input.Roster.
func (m *Match) Join(team model.Team) (int64, bool) {
	if m.Phase == PhaseOver {
		return 0, false
	}
	if team == model.TeamNone {
		team = m.smallerTeam()
	}
	if m.Model.TeamSize(team) >= m.Cfg.MaxTeamSize {
		return 0, false
	}

	role := model.RoleWorker
	if m.Model.Queen(team) == nil {
		role = model.RoleQueen
	}
	p := &model.Player{
		ID:     m.Model.NextID(),
		Team:   team,
		Role:   role,
		Pos:    m.spawnPos(team),
		Size:   m.bodySize(role),
		Alive:  true,
		Facing: facingToward(team),
	}
	m.Model.AddPlayer(p)
	log.WithFields(log.Fields{
		"player": p.ID, "team": team.Name(), "role": role.Name(),
	}).Info("player joined")
	return p.ID, true
}

// Leave removes a player. A departing queen leaves her side unable to finish
// the pre-game until a new queen joins; nobody is promoted automatically.
func (m *Match) Leave(id int64) {
	p, ok := m.Model.Players[id]
	if !ok {
		return
	}
	m.dropBerry(p)
	if p.RidingShip {
		m.dismount(p)
	}
	if p.Role == model.RoleQueen && m.Phase == PhasePreGame {
		m.gateCrossed[p.Team] = false
	}
	m.Model.RemovePlayer(id)
	log.WithFields(log.Fields{"player": id, "team": p.Team.Name()}).Info("player left")
}

func (m *Match) smallerTeam() model.Team {
	if m.Model.TeamSize(model.TeamPurple) < m.Model.TeamSize(model.TeamGold) {
		return model.TeamPurple
	}
	return model.TeamGold
}

func (m *Match) spawnPos(team model.Team) model.Vec {
	if m.Phase == PhasePlaying {
		return m.World.BaseSpawns[team]
	}
	return m.World.JoinSpawns[team]
}

func (m *Match) bodySize(role model.Role) model.Vec {
	if role.Armed() {
		return model.Vec{X: m.Cfg.ArmedW, Y: m.Cfg.ArmedH}
	}
	return model.Vec{X: m.Cfg.WorkerW, Y: m.Cfg.WorkerH}
}

// Gold attacks rightward from the left half and vice versa.
func facingToward(t model.Team) model.Facing {
	if t == model.TeamPurple {
		return model.FacingLeft
	}
	return model.FacingRight
}

// Step advances the simulation one tick. Resolution order within a tick is
// fixed: motion, solid collision, combat, gates, berry pickup, deposit,
// ship, win check.
func (m *Match) Step(frames map[int64]input.Frame) {
	m.Tick++

	switch m.Phase {
	case PhaseWaiting, PhasePreGame:
		m.integrate(frames)
		m.collideAll()
		m.settleBerries()
		m.advanceLobby()
	case PhasePlaying:
		m.integrate(frames)
		m.collideAll()
		m.settleBerries()
		m.resolveCombat()
		m.resolveGates()
		m.resolveBerries()
		m.resolveDeposits()
		m.resolveShip(frames)
		m.checkWin()
	case PhaseOver:
		// Frozen. Count down to the next match.
		if m.restartLeft > 0 {
			m.restartLeft--
			if m.restartLeft == 0 {
				m.Reset()
			}
		}
	}
}

// advanceLobby runs the waiting and pre-game phase transitions.
func (m *Match) advanceLobby() {
	if m.Phase == PhaseWaiting {
		if m.rosterReady() {
			m.Phase = PhasePreGame
			log.Info("rosters ready, waiting for queens at the start gates")
		}
		return
	}

	// A queen crossing her side's start gate drops that side's barrier.
	for _, t := range teams {
		q := m.Model.Queen(t)
		if q == nil || !q.Alive {
			continue
		}
		if q.Rect().Overlaps(m.World.StartGates[t], m.World.Width) {
			if !m.gateCrossed[t] {
				m.gateCrossed[t] = true
				m.barrierUp[t] = false
				log.WithField("team", t.Name()).Info("start gate crossed")
			}
		}
	}
	if m.gateCrossed[model.TeamGold] && m.gateCrossed[model.TeamPurple] {
		m.Phase = PhasePlaying
		log.Info("match started")
	}
}

var teams = []model.Team{model.TeamGold, model.TeamPurple}

func (m *Match) rosterReady() bool {
	for _, t := range teams {
		if m.Model.TeamSize(t) < m.Cfg.MinTeamSize {
			return false
		}
		if m.Model.Queen(t) == nil {
			return false
		}
	}
	return true
}

// finish freezes the match with a result.
func (m *Match) finish(winner model.Team, v Victory) {
	m.Phase = PhaseOver
	m.Winner = winner
	m.Victory = v
	m.restartLeft = m.Cfg.RestartTicks
	log.WithFields(log.Fields{
		"team": winner.Name(), "victory": v.Name(), "tick": m.Tick,
	}).Info("match over")
}

// Snapshot is the immutable per-tick view handed to presentation.
type Snapshot struct {
	Tick    int64
	Phase   Phase
	Winner  model.Team
	Victory Victory

	View      model.View
	BarrierUp map[model.Team]bool
}

func (m *Match) Snapshot() Snapshot {
	barriers := map[model.Team]bool{
		model.TeamGold:   m.barrierUp[model.TeamGold],
		model.TeamPurple: m.barrierUp[model.TeamPurple],
	}
	return Snapshot{
		Tick:      m.Tick,
		Phase:     m.Phase,
		Winner:    m.Winner,
		Victory:   m.Victory,
		View:      m.Model.Snapshot(),
		BarrierUp: barriers,
	}
}
