// Package world holds the static map topology: solid platforms, gate and base
// regions, berry spawn points, the ship track and the pre-game start barrier.
// Geometry is toroidal along X; wrap arithmetic lives in the model package.
package world

import (
	"github.com/mkoval/hivegate/model"
)

// Tile is the edge length of one map cell in map units.
const Tile = 40.0

type World struct {
	Width, Height float64

	Platforms []model.Rect

	// Gate regions, in map order.
	Gates []model.Rect

	Bases map[model.Team]model.Rect

	BerrySpawns []model.Vec

	// Ship track: the ship spawns at ShipStart and wins for a team when its
	// X crosses that team's goal.
	ShipStart model.Vec
	ShipGoals map[model.Team]float64

	// Pre-game geometry. Each side's barrier is solid until that side's
	// queen crosses the matching start gate.
	StartGates    map[model.Team]model.Rect
	StartBarriers map[model.Team][]model.Rect

	// Spawn points: JoinSpawns hold the pre-game perch above each start
	// gate, BaseSpawns the in-game respawn spot at each base.
	JoinSpawns map[model.Team]model.Vec
	BaseSpawns map[model.Team]model.Vec
}

// Side returns the team owning the given X coordinate: gold holds the left
// half of the map, purple the right.
func (w *World) Side(x float64) model.Team {
	if x < w.Width/2 {
		return model.TeamGold
	}
	return model.TeamPurple
}
