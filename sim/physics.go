package sim

import (
	"math"

	"github.com/mkoval/hivegate/input"
	"github.com/mkoval/hivegate/model"
)

// integrate applies one tick of role-specific movement. Workers run and
// jump; queens and fighters thrust upward while primary is held; queens can
// dive. Dead players only count down toward respawn.
func (m *Match) integrate(frames map[int64]input.Frame) {
	dt := m.Cfg.dt()
	for _, k := range m.Model.PlayerKeys {
		p := m.Model.Players[k]
		if !p.Alive {
			p.RespawnLeft--
			if p.RespawnLeft <= 0 {
				m.respawn(p)
			}
			continue
		}
		if p.RidingShip {
			// Position follows the ship; handled in the ship pass.
			continue
		}

		f := frames[k]
		p.Vel.X = f.Move * m.Cfg.MoveSpeed
		if f.Move > 0 {
			p.Facing = model.FacingRight
		} else if f.Move < 0 {
			p.Facing = model.FacingLeft
		}

		switch p.Role {
		case model.RoleWorker:
			p.Vel.Y += m.Cfg.Gravity * dt
			if f.PrimaryHit && p.OnGround {
				p.Vel.Y = -m.Cfg.JumpSpeed
			}
		case model.RoleQueen, model.RoleFighter:
			if f.Primary {
				p.Vel.Y -= m.Cfg.FlightThrust * dt
			} else {
				p.Vel.Y += m.Cfg.Gravity * dt
			}
			if p.Vel.Y < -m.Cfg.MaxFlySpeed {
				p.Vel.Y = -m.Cfg.MaxFlySpeed
			}
		}
		if p.Vel.Y > m.Cfg.MaxFallSpeed {
			p.Vel.Y = m.Cfg.MaxFallSpeed
		}
		// The dive burst may exceed the ordinary fall cap.
		if p.Role == model.RoleQueen && f.SecondaryHit {
			p.Vel.Y = m.Cfg.DiveSpeed
		}

		p.Pos.X = model.WrapX(p.Pos.X+p.Vel.X*dt, m.World.Width)
		p.Pos.Y = model.WrapX(p.Pos.Y+p.Vel.Y*dt, m.World.Height)
	}
}

func (m *Match) respawn(p *model.Player) {
	if p.Role == model.RoleFighter {
		p.Role = model.RoleWorker
	}
	p.Size = m.bodySize(p.Role)
	p.Alive = true
	p.Pos = m.spawnPos(p.Team)
	p.Vel = model.Vec{}
	p.Facing = facingToward(p.Team)
	p.OnGround = false
}

// settleBerries lets loose berries fall until they land on a solid. A berry
// dropped by a carrier killed mid-air ends up on the platform below, not
// hovering at the death spot.
func (m *Match) settleBerries() {
	dt := m.Cfg.dt()
	solids := m.solids()
	for _, k := range m.Model.BerryKeys {
		b := m.Model.Berries[k]
		if b.State != model.BerryOnGround {
			continue
		}
		b.Vel.Y += m.Cfg.Gravity * dt
		if b.Vel.Y > m.Cfg.MaxFallSpeed {
			b.Vel.Y = m.Cfg.MaxFallSpeed
		}
		b.Pos.Y = model.WrapX(b.Pos.Y+b.Vel.Y*dt, m.World.Height)
		r := model.RectAt(b.Pos, m.Cfg.BerryR*2, m.Cfg.BerryR*2)
		for _, s := range solids {
			if !r.Overlaps(s, m.World.Width) {
				continue
			}
			if b.Vel.Y > 0 {
				b.Pos.Y = s.Min.Y - m.Cfg.BerryR
				b.Vel.Y = 0
			}
		}
	}
}

// solids is every rectangle that blocks motion this tick: the map platforms
// plus any start barrier still up.
func (m *Match) solids() []model.Rect {
	out := m.World.Platforms
	for _, t := range teams {
		if m.barrierUp[t] {
			out = append(out[:len(out):len(out)], m.World.StartBarriers[t]...)
		}
	}
	return out
}

func (m *Match) collideAll() {
	solids := m.solids()
	for _, k := range m.Model.PlayerKeys {
		p := m.Model.Players[k]
		if !p.Alive || p.RidingShip {
			continue
		}
		m.collide(p, solids)
	}
}

// collide pushes the player out of any overlapping solid along the axis of
// least penetration. Horizontal distances use wrap-aware arithmetic so the
// seam behaves like any other span of map.
func (m *Match) collide(p *model.Player, solids []model.Rect) {
	p.OnGround = false
	for _, s := range solids {
		r := p.Rect()
		if !r.Overlaps(s, m.World.Width) {
			continue
		}
		dx := model.DeltaX(s.Center().X, r.Center().X, m.World.Width)
		px := (r.W()+s.W())/2 - math.Abs(dx)
		dy := r.Center().Y - s.Center().Y
		py := (r.H()+s.H())/2 - math.Abs(dy)

		if px < py {
			if dx >= 0 {
				p.Pos.X += px
			} else {
				p.Pos.X -= px
			}
			p.Pos.X = model.WrapX(p.Pos.X, m.World.Width)
			p.Vel.X = 0
		} else if dy >= 0 {
			// Pushed down: bumped a ceiling.
			p.Pos.Y += py
			if p.Vel.Y < 0 {
				p.Vel.Y = 0
			}
		} else {
			// Pushed up: landed.
			p.Pos.Y -= py
			if p.Vel.Y > 0 {
				p.Vel.Y = 0
			}
			p.OnGround = true
		}
	}
}
