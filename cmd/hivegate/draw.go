package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/mkoval/hivegate/model"
	"github.com/mkoval/hivegate/sim"
)

var (
	colBackground = color.RGBA{58, 58, 66, 255}
	colPlatform   = color.RGBA{74, 79, 105, 255}
	colBarrier    = color.RGBA{20, 20, 20, 255}
	colBerry      = color.RGBA{214, 60, 96, 255}
	colShip       = color.RGBA{198, 203, 222, 255}
	colGateFree   = color.RGBA{228, 228, 228, 255}
	colGold       = color.RGBA{233, 186, 36, 255}
	colPurple     = color.RGBA{154, 82, 211, 255}
)

func teamColor(t model.Team) color.RGBA {
	switch t {
	case model.TeamGold:
		return colGold
	case model.TeamPurple:
		return colPurple
	default:
		return colGateFree
	}
}

func fillRect(dst *ebiten.Image, r model.Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.W()), float32(r.H()), c, false)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)
	w := g.match.World
	snap := g.snap

	for t, base := range snap.View.Bases {
		c := teamColor(t)
		c.A = 140
		fillRect(screen, base.Region, c)
	}
	for _, p := range w.Platforms {
		fillRect(screen, p, colPlatform)
	}
	for t, up := range snap.BarrierUp {
		if !up {
			continue
		}
		for _, r := range w.StartBarriers[t] {
			fillRect(screen, r, colBarrier)
		}
	}
	if snap.Phase == sim.PhaseWaiting || snap.Phase == sim.PhasePreGame {
		for t, r := range w.StartGates {
			fillRect(screen, r, teamColor(t))
		}
	}

	for _, gate := range snap.View.Gates {
		fillRect(screen, gate.Region, teamColor(gate.Claim))
	}

	for _, b := range snap.View.Berries {
		vector.DrawFilledCircle(screen, float32(b.Pos.X), float32(b.Pos.Y), 10, colBerry, false)
	}

	ship := snap.View.Ship
	shipCol := colShip
	if ship.Ridden {
		shipCol = teamColor(ship.Heading)
	}
	fillRect(screen, model.RectAt(ship.Pos, 62, 34), shipCol)
	for t, goal := range w.ShipGoals {
		vector.DrawFilledCircle(screen, float32(goal), float32(ship.Pos.Y), 8, teamColor(t), false)
	}

	for _, p := range snap.View.Players {
		g.drawPlayer(screen, p)
	}

	g.drawHUD(screen, snap)
}

func (g *Game) drawPlayer(screen *ebiten.Image, p model.PlayerView) {
	c := teamColor(p.Team)
	if !p.Alive {
		c.A = 70
	}
	r := model.RectAt(p.Pos, p.Size.X, p.Size.Y)
	fillRect(screen, r, c)

	// Facing notch at eye height.
	nx := p.Pos.X + p.Facing.Sign()*p.Size.X/2
	vector.DrawFilledCircle(screen, float32(nx), float32(r.Min.Y+10), 4, color.White, false)

	if p.Role == model.RoleQueen {
		fillRect(screen, model.Rect{
			Min: model.Vec{X: r.Min.X, Y: r.Min.Y - 8},
			Max: model.Vec{X: r.Max.X, Y: r.Min.Y - 2},
		}, color.RGBA{255, 255, 255, 255})
	}
	if p.Carrying {
		vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(r.Min.Y-8), 6, colBerry, false)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image, snap sim.Snapshot) {
	gold := snap.View.Bases[model.TeamGold]
	purple := snap.View.Bases[model.TeamPurple]
	status := fmt.Sprintf("%s  |  GOLD %d berries, %d queen deaths  |  PURPLE %d berries, %d queen deaths  |  tick %d",
		snap.Phase.Name(), gold.Berries, gold.QueenDeaths, purple.Berries, purple.QueenDeaths, snap.Tick)
	ebitenutil.DebugPrintAt(screen, status, 8, 8)

	if snap.Phase != sim.PhaseOver {
		return
	}
	banner := fmt.Sprintf("%s VICTORY BY %s", snap.Winner.Name(), snap.Victory.Name())
	if g.face == nil {
		ebitenutil.DebugPrintAt(screen, banner, int(g.match.World.Width)/2-80, int(g.match.World.Height)/2)
		return
	}
	c := teamColor(snap.Winner)
	c.A = uint8(255 * g.bannerAlpha)
	bounds := text.BoundString(g.face, banner)
	x := (int(g.match.World.Width) - bounds.Dx()) / 2
	y := int(g.match.World.Height) / 2
	text.Draw(screen, banner, g.face, x, y, c)
}
