package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/render"
)

// host implements ebiten.Game. Every update runs one scheduler frame of
// fixed length; drawing reads a snapshot taken after that frame.
type host struct {
	game      *game.State
	scheduler *loop.Scheduler
	renderer  *render.Renderer
	imgui     *debugui_ebiten.ImguiBackend

	preview       int
	dt            float64
	width, height int
}

func (h *host) Update() error {
	if h.imgui != nil {
		h.imgui.Update(func() {
			h.scheduler.Once(h.dt)
		})
	} else {
		h.scheduler.Once(h.dt)
	}

	if h.scheduler.Done() {
		return ebiten.Termination
	}
	return nil
}

func (h *host) Draw(screen *ebiten.Image) {
	sn := h.game.Snapshot(h.preview)
	h.renderer.Draw(screen, &sn)

	if h.imgui != nil {
		h.imgui.Draw(screen)
	}
}

func (h *host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if h.imgui != nil {
		h.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return h.width, h.height
}
