package model

// Team identifies one of the two sides. TeamNone marks unclaimed things.
type Team int

const (
	TeamNone Team = iota
	TeamGold
	TeamPurple
)

func (t Team) Name() string {
	switch t {
	case TeamGold:
		return "GOLD"
	case TeamPurple:
		return "PURPLE"
	default:
		return "NONE"
	}
}

// Other returns the opposing team.
func (t Team) Other() Team {
	switch t {
	case TeamGold:
		return TeamPurple
	case TeamPurple:
		return TeamGold
	default:
		return TeamNone
	}
}

// Role is the closed set of player variants. Every role-specific rule
// switches exhaustively over these.
type Role int

const (
	RoleWorker Role = iota
	RoleQueen
	RoleFighter
)

func (r Role) Name() string {
	switch r {
	case RoleQueen:
		return "QUEEN"
	case RoleFighter:
		return "FIGHTER"
	default:
		return "WORKER"
	}
}

// Armed reports whether the role participates in combat as an attacker.
func (r Role) Armed() bool { return r == RoleQueen || r == RoleFighter }

// Flies reports whether the role has continuous vertical thrust.
func (r Role) Flies() bool { return r == RoleQueen || r == RoleFighter }

type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

type Player struct {
	ID     int64
	Team   Team
	Role   Role
	Pos    Vec
	Vel    Vec
	Size   Vec
	Facing Facing

	Alive       bool
	RespawnLeft int // ticks until respawn while dead

	OnGround  bool
	HeldBerry int64 // berry id, 0 when empty handed

	// Gate occupancy. Each occupant accumulates its own timer.
	GateID    int64
	GateTicks int

	RidingShip bool
}

func (p *Player) Rect() Rect { return RectAt(p.Pos, p.Size.X, p.Size.Y) }

type BerryState int

const (
	BerryOnGround BerryState = iota
	BerryHeld
	BerryDeposited
)

type Berry struct {
	ID     int64
	State  BerryState
	Pos    Vec
	Vel    Vec        // loose berries fall until they land
	Holder int64      // player id while held
}

type Gate struct {
	ID     int64
	Region Rect
	Claim  Team // TeamNone while unclaimed
}

// Ship is the single shared vehicle. It moves along a fixed horizontal track
// toward the riding worker's side.
type Ship struct {
	Pos     Vec
	Rider   int64 // worker id, 0 while empty
	Heading Team  // team whose side the ship is moving toward
}

type Base struct {
	Team        Team
	Region      Rect
	Berries     int // deposited berries, the economic score
	QueenDeaths int
}

// Model is the entity registry: the sole owner of entity lifetime. Key slices
// are kept sorted so every per-tick pass iterates in a stable order.
type Model struct {
	Players    map[int64]*Player
	PlayerKeys []int64
	Berries    map[int64]*Berry
	BerryKeys  []int64
	Gates      []*Gate
	Ship       *Ship
	Bases      map[Team]*Base

	nextID int64
}

func NewModel() *Model {
	return &Model{
		Players: make(map[int64]*Player),
		Berries: make(map[int64]*Berry),
		Bases: map[Team]*Base{
			TeamGold:   {Team: TeamGold},
			TeamPurple: {Team: TeamPurple},
		},
	}
}

func (m *Model) NextID() int64 {
	m.nextID++
	return m.nextID
}

func (m *Model) AddPlayer(p *Player) {
	m.Players[p.ID] = p
	m.PlayerKeys = append(m.PlayerKeys, p.ID)
}

func (m *Model) RemovePlayer(id int64) {
	delete(m.Players, id)
	for i, k := range m.PlayerKeys {
		if k == id {
			m.PlayerKeys = append(m.PlayerKeys[:i], m.PlayerKeys[i+1:]...)
			break
		}
	}
}

func (m *Model) AddBerry(b *Berry) {
	m.Berries[b.ID] = b
	m.BerryKeys = append(m.BerryKeys, b.ID)
}

func (m *Model) RemoveBerry(id int64) {
	delete(m.Berries, id)
	for i, k := range m.BerryKeys {
		if k == id {
			m.BerryKeys = append(m.BerryKeys[:i], m.BerryKeys[i+1:]...)
			break
		}
	}
}

// Queen returns the team's queen, dead or alive, or nil.
func (m *Model) Queen(t Team) *Player {
	for _, k := range m.PlayerKeys {
		p := m.Players[k]
		if p.Team == t && p.Role == RoleQueen {
			return p
		}
	}
	return nil
}

// TeamSize counts joined players on a team.
func (m *Model) TeamSize(t Team) int {
	n := 0
	for _, k := range m.PlayerKeys {
		if m.Players[k].Team == t {
			n++
		}
	}
	return n
}
