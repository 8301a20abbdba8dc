package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	"github.com/mkoval/hivegate/input"
	"github.com/mkoval/hivegate/sim"
	"github.com/mkoval/hivegate/world"
)

func main() {
	var (
		fontPath = flag.String("font", "", "path to a .ttf for the HUD; debug text when empty")
		mapPath  = flag.String("map", "", "path to a map file; built-in arena when empty")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	w := world.Default()
	if *mapPath != "" {
		f, err := os.Open(*mapPath)
		if err != nil {
			log.Fatalf("open map: %v", err)
		}
		w, err = world.Parse(f)
		f.Close()
		if err != nil {
			log.Fatalf("parse map: %v", err)
		}
	}

	cfg := sim.DefaultConfig()
	match := sim.New(w, cfg)
	mux := input.NewMultiplexer(match)

	g := NewGame(match, mux, []input.Source{
		input.NewKeySource(),
		input.NewPadSource(),
	})
	if *fontPath != "" {
		if err := g.LoadFace(*fontPath); err != nil {
			log.Warnf("font %s: %v, falling back to debug text", *fontPath, err)
		}
	}

	ebiten.SetWindowSize(int(w.Width)/2, int(w.Height)/2)
	ebiten.SetWindowTitle("hivegate")
	ebiten.SetTPS(cfg.TPS)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
