package world

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mkoval/hivegate/model"
)

// Map legend, one character per tile:
//
//	#  solid platform
//	T  start barrier (solid until the side's queen crosses its start gate)
//	1  gold start gate       2  purple start gate
//	G  gate
//	A  gold base             B  purple base
//	*  berry spawn
//	S  ship spawn
//	.  empty
//
// Horizontal runs of the same character merge into one region.
const legend = "#T12GAB*S."

// Parse reads an ASCII map into a World.
func Parse(reader io.Reader) (*World, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)

	w := &World{
		Bases:         make(map[model.Team]model.Rect),
		ShipGoals:     make(map[model.Team]float64),
		StartGates:    make(map[model.Team]model.Rect),
		StartBarriers: make(map[model.Team][]model.Rect),
		JoinSpawns:    make(map[model.Team]model.Vec),
		BaseSpawns:    make(map[model.Team]model.Vec),
	}

	var (
		cols    int
		row     int
		hasShip bool
	)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if cols == 0 {
			cols = len(line)
			w.Width = float64(cols) * Tile
		} else if len(line) != cols {
			return nil, fmt.Errorf("map row %d: want %d columns, have %d", row, cols, len(line))
		}

		col := 0
		for col < len(line) {
			ch := line[col]
			if !strings.ContainsRune(legend, rune(ch)) {
				return nil, fmt.Errorf("map row %d col %d: unknown tile %q", row, col, ch)
			}
			run := col
			for run < len(line) && line[run] == ch {
				run++
			}
			r := tileRect(col, row, run-col)
			switch ch {
			case '#':
				w.Platforms = append(w.Platforms, r)
			case 'T':
				side := w.Side(r.Center().X)
				w.StartBarriers[side] = append(w.StartBarriers[side], r)
			case '1':
				w.StartGates[model.TeamGold] = r
			case '2':
				w.StartGates[model.TeamPurple] = r
			case 'G':
				w.Gates = append(w.Gates, r)
			case 'A':
				w.Bases[model.TeamGold] = r
			case 'B':
				w.Bases[model.TeamPurple] = r
			case '*':
				for c := col; c < run; c++ {
					w.BerrySpawns = append(w.BerrySpawns, tileCenter(c, row))
				}
			case 'S':
				w.ShipStart = r.Center()
				hasShip = true
			}
			col = run
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if row == 0 {
		return nil, fmt.Errorf("empty map")
	}

	w.Height = float64(row) * Tile

	for _, t := range []model.Team{model.TeamGold, model.TeamPurple} {
		if _, ok := w.Bases[t]; !ok {
			return nil, fmt.Errorf("map has no %s base", t.Name())
		}
		if _, ok := w.StartGates[t]; !ok {
			return nil, fmt.Errorf("map has no %s start gate", t.Name())
		}
	}
	if !hasShip {
		return nil, fmt.Errorf("map has no ship spawn")
	}
	if len(w.Gates) == 0 {
		return nil, fmt.Errorf("map has no gates")
	}

	// The ship scores a short way in from each edge of its track.
	w.ShipGoals[model.TeamGold] = w.Width / 18
	w.ShipGoals[model.TeamPurple] = w.Width - w.Width/18

	for t, g := range w.StartGates {
		c := g.Center()
		w.JoinSpawns[t] = model.Vec{X: c.X, Y: c.Y - Tile}
	}
	for t, b := range w.Bases {
		c := b.Center()
		w.BaseSpawns[t] = model.Vec{X: c.X, Y: c.Y - Tile}
	}
	return w, nil
}

func tileRect(col, row, n int) model.Rect {
	return model.Rect{
		Min: model.Vec{X: float64(col) * Tile, Y: float64(row) * Tile},
		Max: model.Vec{X: float64(col+n) * Tile, Y: float64(row+1) * Tile},
	}
}

func tileCenter(col, row int) model.Vec {
	return model.Vec{X: (float64(col) + 0.5) * Tile, Y: (float64(row) + 0.5) * Tile}
}

// Default returns the built-in arena.
func Default() *World {
	w, err := Parse(strings.NewReader(DefaultMap))
	if err != nil {
		panic(err) // the built-in map must parse
	}
	return w
}
