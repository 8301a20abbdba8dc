package sim

import "github.com/mkoval/hivegate/model"

// checkWin races the three victory tracks after the resolver has run. If a
// tick satisfies more than one, the tie-break is fixed: military beats
// economic beats ship. The first hit freezes the match.
func (m *Match) checkWin() {
	for _, t := range teams {
		if m.Model.Bases[t].QueenDeaths >= m.Cfg.QueenLives {
			m.finish(t.Other(), VictoryMilitary)
			return
		}
	}
	for _, t := range teams {
		if m.Model.Bases[t].Berries >= m.Cfg.BerriesToWin {
			m.finish(t, VictoryEconomic)
			return
		}
	}
	ship := m.Model.Ship
	if ship.Pos.X <= m.World.ShipGoals[model.TeamGold] {
		m.finish(model.TeamGold, VictoryShip)
		return
	}
	if ship.Pos.X >= m.World.ShipGoals[model.TeamPurple] {
		m.finish(model.TeamPurple, VictoryShip)
	}
}
