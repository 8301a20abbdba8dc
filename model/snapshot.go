package model

// View types are immutable value copies handed to the presentation layer
// after each tick. The renderer never reaches back into the registry.

type PlayerView struct {
	ID     int64
	Team   Team
	Role   Role
	Pos    Vec
	Size   Vec
	Facing Facing
	Alive  bool

	Carrying  bool
	Riding    bool
	GateTicks int
}

type BerryView struct {
	ID  int64
	Pos Vec
}

type GateView struct {
	ID     int64
	Region Rect
	Claim  Team
}

type ShipView struct {
	Pos     Vec
	Ridden  bool
	Heading Team
}

type BaseView struct {
	Team        Team
	Region      Rect
	Berries     int
	QueenDeaths int
}

type View struct {
	Players []PlayerView
	Berries []BerryView
	Gates   []GateView
	Ship    ShipView
	Bases   map[Team]BaseView
}

// Snapshot copies the registry into a View, in key order.
func (m *Model) Snapshot() View {
	v := View{Bases: make(map[Team]BaseView, len(m.Bases))}
	for _, k := range m.PlayerKeys {
		p := m.Players[k]
		v.Players = append(v.Players, PlayerView{
			ID:        p.ID,
			Team:      p.Team,
			Role:      p.Role,
			Pos:       p.Pos,
			Size:      p.Size,
			Facing:    p.Facing,
			Alive:     p.Alive,
			Carrying:  p.HeldBerry != 0,
			Riding:    p.RidingShip,
			GateTicks: p.GateTicks,
		})
	}
	for _, k := range m.BerryKeys {
		b := m.Berries[k]
		if b.State != BerryOnGround {
			continue
		}
		v.Berries = append(v.Berries, BerryView{ID: b.ID, Pos: b.Pos})
	}
	for _, g := range m.Gates {
		v.Gates = append(v.Gates, GateView{ID: g.ID, Region: g.Region, Claim: g.Claim})
	}
	if m.Ship != nil {
		v.Ship = ShipView{Pos: m.Ship.Pos, Ridden: m.Ship.Rider != 0, Heading: m.Ship.Heading}
	}
	for t, b := range m.Bases {
		v.Bases[t] = BaseView{Team: b.Team, Region: b.Region, Berries: b.Berries, QueenDeaths: b.QueenDeaths}
	}
	return v
}
