package sim

import (
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/mkoval/hivegate/input"
	"github.com/mkoval/hivegate/model"
)

// resolveCombat applies the kill rules to every opposing pair in contact.
// Pairs are visited in registry order so the outcome never depends on map
// iteration. All ambiguous geometry fails safe to no kill; the pair is
// simply re-examined next tick.
func (m *Match) resolveCombat() {
	keys := m.Model.PlayerKeys
	for i := 0; i < len(keys); i++ {
		a := m.Model.Players[keys[i]]
		for j := i + 1; j < len(keys); j++ {
			b := m.Model.Players[keys[j]]
			if !a.Alive || !b.Alive {
				continue
			}
			if a.Team == b.Team {
				continue
			}
			if !a.Role.Armed() && !b.Role.Armed() {
				continue
			}
			if !a.Rect().Overlaps(b.Rect(), m.World.Width) {
				continue
			}

			switch {
			case a.Role.Armed() && !b.Role.Armed():
				m.kill(b)
			case !a.Role.Armed() && b.Role.Armed():
				m.kill(a)
			default:
				if v := m.duel(a, b); v != nil {
					m.kill(v)
				}
			}
		}
	}
}

// duel decides an armed-versus-armed contact and returns the loser, or nil
// when the geometry is a tie.
func (m *Match) duel(a, b *model.Player) *model.Player {
	tol := m.Cfg.StompTolerance

	// Stomp: one body strictly above the other's top edge, within tolerance.
	aAbove := a.Rect().Max.Y <= b.Rect().Min.Y+tol
	bAbove := b.Rect().Max.Y <= a.Rect().Min.Y+tol
	if aAbove != bAbove {
		if aAbove {
			return b
		}
		return a
	}

	// Side-on: whoever is struck from behind dies.
	d := model.DeltaX(a.Pos.X, b.Pos.X, m.World.Width)
	if d == 0 {
		return nil
	}
	aStruck := a.Facing.Sign()*d < 0 // a's back is toward b
	bStruck := b.Facing.Sign()*d > 0
	if aStruck == bStruck {
		return nil
	}
	if aStruck {
		return a
	}
	return b
}

// kill handles every death side effect in one place.
func (m *Match) kill(p *model.Player) {
	p.Alive = false
	p.Vel = model.Vec{}
	p.RespawnLeft = m.Cfg.RespawnTicks
	p.GateID, p.GateTicks = 0, 0
	m.dropBerry(p)
	if p.RidingShip {
		m.dismount(p)
	}
	if p.Role == model.RoleQueen {
		base := m.Model.Bases[p.Team]
		base.QueenDeaths++
		log.WithFields(log.Fields{
			"team": p.Team.Name(), "deaths": base.QueenDeaths,
		}).Info("queen down")
	}
}

// dropBerry returns a held berry to the ground where the holder stands.
func (m *Match) dropBerry(p *model.Player) {
	if p.HeldBerry == 0 {
		return
	}
	if b, ok := m.Model.Berries[p.HeldBerry]; ok {
		b.State = model.BerryOnGround
		b.Holder = 0
		b.Pos = p.Pos
		b.Vel = model.Vec{}
	}
	p.HeldBerry = 0
}

// resolveGates runs the claim and transformation rules. A queen overlapping
// a gate rewrites its claim to her team unconditionally; a claimed gate only
// serves its owners. Each berry-carrying worker accumulates its own
// occupancy ticks and transforms at the threshold, earliest id first.
func (m *Match) resolveGates() {
	for _, g := range m.Model.Gates {
		for _, k := range m.Model.PlayerKeys {
			q := m.Model.Players[k]
			if !q.Alive || q.Role != model.RoleQueen {
				continue
			}
			if !q.Rect().Overlaps(g.Region, m.World.Width) {
				continue
			}
			if g.Claim != q.Team {
				g.Claim = q.Team
				log.WithFields(log.Fields{"gate": g.ID, "team": q.Team.Name()}).Info("gate claimed")
				// Occupants of the other team just lost eligibility.
				for _, k2 := range m.Model.PlayerKeys {
					o := m.Model.Players[k2]
					if o.GateID == g.ID && o.Team != q.Team {
						o.GateID, o.GateTicks = 0, 0
					}
				}
			}
		}
	}

	for _, k := range m.Model.PlayerKeys {
		p := m.Model.Players[k]
		if p.Role != model.RoleWorker {
			continue
		}
		g := m.eligibleGate(p)
		if g == nil {
			p.GateID, p.GateTicks = 0, 0
			continue
		}
		if p.GateID != g.ID {
			p.GateID, p.GateTicks = g.ID, 0
		}
		p.GateTicks++
	}

	// One transformation per gate per tick; the rest keep accumulating.
	done := make(map[int64]bool)
	for _, k := range m.Model.PlayerKeys {
		p := m.Model.Players[k]
		if p.GateID == 0 || p.GateTicks < m.Cfg.GateHoldTicks || done[p.GateID] {
			continue
		}
		done[p.GateID] = true
		m.transform(p)
	}
}

// eligibleGate returns the gate the worker is charging, if any: alive,
// carrying, afoot, standing in an unclaimed or own-team gate.
func (m *Match) eligibleGate(p *model.Player) *model.Gate {
	if !p.Alive || p.HeldBerry == 0 || p.RidingShip {
		return nil
	}
	for _, g := range m.Model.Gates {
		if g.Claim != model.TeamNone && g.Claim != p.Team {
			continue
		}
		if p.Rect().Overlaps(g.Region, m.World.Width) {
			return g
		}
	}
	return nil
}

// transform promotes a worker to fighter, consuming the berry it carried.
func (m *Match) transform(p *model.Player) {
	m.Model.RemoveBerry(p.HeldBerry)
	p.HeldBerry = 0
	p.GateID, p.GateTicks = 0, 0
	p.Role = model.RoleFighter
	grow := m.bodySize(model.RoleFighter)
	p.Pos.Y -= (grow.Y - p.Size.Y) / 2
	p.Size = grow
	log.WithFields(log.Fields{"player": p.ID, "team": p.Team.Name()}).Info("worker transformed")
}

// resolveBerries hands each grounded berry to the first overlapping
// empty-handed worker in registry order.
func (m *Match) resolveBerries() {
	for _, bk := range m.Model.BerryKeys {
		b := m.Model.Berries[bk]
		if b.State != model.BerryOnGround {
			continue
		}
		br := model.RectAt(b.Pos, m.Cfg.BerryR*2, m.Cfg.BerryR*2)
		for _, k := range m.Model.PlayerKeys {
			p := m.Model.Players[k]
			if !p.Alive || p.Role != model.RoleWorker || p.HeldBerry != 0 || p.RidingShip {
				continue
			}
			if !p.Rect().Overlaps(br, m.World.Width) {
				continue
			}
			b.State = model.BerryHeld
			b.Holder = p.ID
			p.HeldBerry = b.ID
			break
		}
	}
}

// resolveDeposits banks carried berries at the carrier's own base.
func (m *Match) resolveDeposits() {
	for _, k := range m.Model.PlayerKeys {
		p := m.Model.Players[k]
		if !p.Alive || p.Role != model.RoleWorker || p.HeldBerry == 0 {
			continue
		}
		base := m.Model.Bases[p.Team]
		if !p.Rect().Overlaps(base.Region, m.World.Width) {
			continue
		}
		id := p.HeldBerry
		if b, ok := m.Model.Berries[id]; ok {
			b.State = model.BerryDeposited
		}
		m.Model.RemoveBerry(id)
		p.HeldBerry = 0
		base.Berries++
		log.WithFields(log.Fields{
			"team": p.Team.Name(), "berries": base.Berries,
		}).Info("berry deposited")
	}
}

// resolveShip moves the ship with its rider and handles boarding and
// jump-off. Only an empty-handed worker may ride, and only an empty ship may
// be boarded; anyone else bounces off.
func (m *Match) resolveShip(frames map[int64]input.Frame) {
	ship := m.Model.Ship
	dt := m.Cfg.dt()

	if ship.Rider != 0 {
		if r, ok := m.Model.Players[ship.Rider]; ok && frames[r.ID].PrimaryHit {
			m.dismount(r)
			r.Vel.Y = -m.Cfg.JumpSpeed
		}
	}

	if ship.Rider != 0 {
		dir := 1.0
		if ship.Heading == model.TeamGold {
			dir = -1
		}
		ship.Pos.X += dir * m.Cfg.ShipSpeed * dt
		r := m.Model.Players[ship.Rider]
		r.Pos = model.Vec{X: ship.Pos.X, Y: ship.Pos.Y - m.Cfg.ShipH/2 - r.Size.Y/2}
		r.Vel = model.Vec{}
	}

	shipRect := model.RectAt(ship.Pos, m.Cfg.ShipW, m.Cfg.ShipH)
	for _, k := range m.Model.PlayerKeys {
		p := m.Model.Players[k]
		if !p.Alive || p.Role != model.RoleWorker || p.RidingShip {
			continue
		}
		if !p.Rect().Overlaps(shipRect, m.World.Width) {
			continue
		}
		if ship.Rider == 0 && p.HeldBerry == 0 {
			ship.Rider = p.ID
			ship.Heading = p.Team
			p.RidingShip = true
			p.Vel = model.Vec{}
			p.Pos = model.Vec{X: ship.Pos.X, Y: ship.Pos.Y - m.Cfg.ShipH/2 - p.Size.Y/2}
			log.WithFields(log.Fields{"player": p.ID, "team": p.Team.Name()}).Info("ship boarded")
		} else if ship.Rider != p.ID {
			// Occupied, or the worker is carrying: shove the newcomer off.
			d := model.DeltaX(ship.Pos.X, p.Pos.X, m.World.Width)
			if d == 0 {
				d = 1
			}
			push := (m.Cfg.ShipW + p.Size.X) / 2
			p.Pos.X = model.WrapX(ship.Pos.X+math.Copysign(push, d), m.World.Width)
			p.Vel.X = math.Copysign(m.Cfg.KnockbackSpeed, d)
			p.Vel.Y = -m.Cfg.KnockbackSpeed / 2
		}
	}
}

// dismount detaches the rider and halts the ship where it is.
func (m *Match) dismount(p *model.Player) {
	p.RidingShip = false
	if m.Model.Ship.Rider == p.ID {
		m.Model.Ship.Rider = 0
		m.Model.Ship.Heading = model.TeamNone
	}
}
