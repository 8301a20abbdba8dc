package sim

// Config collects the gameplay constants. All durations are tick counts so a
// match replays identically at any wall-clock rate.
type Config struct {
	TPS int // fixed simulation rate

	// Rosters.
	MaxTeamSize int
	MinTeamSize int // players per team required to leave the waiting phase

	// Movement, map units per second.
	MoveSpeed    float64
	Gravity      float64
	JumpSpeed    float64
	FlightThrust float64
	MaxFlySpeed  float64
	MaxFallSpeed float64
	DiveSpeed    float64 // queen's downward burst

	// Body sizes.
	WorkerW, WorkerH float64
	ArmedW, ArmedH   float64 // queen and fighter
	BerryR           float64
	ShipW, ShipH     float64

	// Rules.
	QueenLives     int     // queen deaths that end the match
	BerriesToWin   int     // economic threshold
	GateHoldTicks  int     // occupancy before a worker transforms
	RespawnTicks   int     // death to respawn
	RestartTicks   int     // post-game pause before the next match
	ShipSpeed      float64 // map units per second along the track
	KnockbackSpeed float64 // push on a worker bouncing off an occupied ship

	// Vertical overlap tolerance separating a stomp from a side-on clash.
	StompTolerance float64
}

func DefaultConfig() Config {
	return Config{
		TPS: 60,

		MaxTeamSize: 5,
		MinTeamSize: 1,

		MoveSpeed:    400,
		Gravity:      2600,
		JumpSpeed:    1000,
		FlightThrust: 5200,
		MaxFlySpeed:  620,
		MaxFallSpeed: 1100,
		DiveSpeed:    1200,

		WorkerW: 32, WorkerH: 56,
		ArmedW: 44, ArmedH: 72,
		BerryR: 10,
		ShipW:  62, ShipH: 34,

		QueenLives:     3,
		BerriesToWin:   6,
		GateHoldTicks:  60,
		RespawnTicks:   180,
		RestartTicks:   180,
		ShipSpeed:      30,
		KnockbackSpeed: 480,

		StompTolerance: 12,
	}
}

func (c Config) dt() float64 { return 1.0 / float64(c.TPS) }
