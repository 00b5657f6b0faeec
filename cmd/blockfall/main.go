// Command blockfall plays a falling-block session in a window.
package main

import (
	"flag"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/render"
)

const inspectorWidth = 720

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg.Flags(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("flags: %v", err)
	}

	// Pick the seed here so every session can be replayed from the log.
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}
	log.Printf("Starting blockfall: seed=%d fall=%s lock=%s tps=%d", cfg.Seed, cfg.FallInterval, cfg.LockDelay, cfg.TickRate)

	g := game.New(cfg.GameOptions()...)
	scheduler := loop.NewScheduler(g)

	keyboard := input.NewKeyboard()
	scheduler.Register(&loop.InputSystem{Source: keyboard})
	scheduler.Register(&loop.GravitySystem{})
	scheduler.Register(&loop.PhaseSystem{OnChange: logPhase})

	renderer := render.New(cfg.CellSize, cfg.Preview)
	width, height := renderer.Layout.Size()

	h := &host{
		game:      g,
		scheduler: scheduler,
		renderer:  renderer,
		preview:   cfg.Preview,
		dt:        cfg.TickInterval().Seconds(),
		width:     width,
		height:    height,
	}

	if cfg.DebugUI {
		h.imgui = debugui_ebiten.NewImguiBackend("blockfall", width+inspectorWidth, max(height, 600))
		inspector := debugui.NewInspector(scheduler)
		keyboard.Captured = inspector.CapturesKeyboard
		scheduler.Register(inspector)
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle("blockfall")
	}
	ebiten.SetTPS(cfg.TickRate)

	if err := ebiten.RunGame(h); err != nil {
		log.Fatalf("run: %v", err)
	}
	log.Printf("Quit with score %d", g.Score())
}

func logPhase(from, to game.Phase, g *game.State) {
	switch to {
	case game.GameOver:
		log.Printf("Game over: score=%d lines=%d pieces=%d", g.Score(), g.Stats().Lines, g.Stats().Locked)
	case game.Playing:
		log.Printf("Restarted from %s", from)
	}
}
