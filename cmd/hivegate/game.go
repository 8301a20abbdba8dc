package main

import (
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"

	"github.com/mkoval/hivegate/input"
	"github.com/mkoval/hivegate/sim"
)

// joinAware sources gate their leave toggle on the match phase.
type joinAware interface {
	SetJoinable(bool)
}

// Game glues the controller sources, the multiplexer and the match to
// ebiten's loop. Update advances the simulation exactly once per tick; Draw
// only ever reads the latest snapshot.
type Game struct {
	match   *sim.Match
	mux     *input.Multiplexer
	sources []input.Source

	snap      sim.Snapshot
	prevPhase sim.Phase

	face   font.Face
	tweens map[*gween.Tween]func(float32)

	bannerAlpha float32
}

func NewGame(match *sim.Match, mux *input.Multiplexer, sources []input.Source) *Game {
	return &Game{
		match:   match,
		mux:     mux,
		sources: sources,
		snap:    match.Snapshot(),
		tweens:  make(map[*gween.Tween]func(float32)),
	}
}

// LoadFace parses a truetype file for the HUD.
func (g *Game) LoadFace(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	tt, err := truetype.Parse(raw)
	if err != nil {
		return err
	}
	g.face = truetype.NewFace(tt, &truetype.Options{
		Size:    52,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	return nil
}

func (g *Game) Update() error {
	var events []input.Event
	for _, s := range g.sources {
		events = append(events, s.Poll()...)
	}
	frames := g.mux.Collect(events)
	g.match.Step(frames)
	g.snap = g.match.Snapshot()

	if g.snap.Phase == sim.PhaseOver && g.prevPhase != sim.PhaseOver {
		g.bannerAlpha = 0
		t := gween.New(0, 1, 0.6, ease.OutQuad)
		g.tweens[t] = func(v float32) { g.bannerAlpha = v }
	}
	if g.snap.Phase == sim.PhaseWaiting && g.prevPhase == sim.PhaseOver {
		// The match rebuilt itself; controllers have to rejoin.
		g.mux.Reset()
	}
	g.prevPhase = g.snap.Phase

	joinable := g.snap.Phase == sim.PhaseWaiting || g.snap.Phase == sim.PhasePreGame
	for _, s := range g.sources {
		if ja, ok := s.(joinAware); ok {
			ja.SetJoinable(joinable)
		}
	}

	dt := float32(1.0 / float64(ebiten.TPS()))
	for t, apply := range g.tweens {
		v, done := t.Update(dt)
		apply(v)
		if done {
			delete(g.tweens, t)
		}
	}
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.match.World.Width), int(g.match.World.Height)
}
