package main

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/matriarch/game"
	"github.com/milk9111/matriarch/hud"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	// fpsRefreshFrames is how often the fps slot is rewritten.
	fpsRefreshFrames = 20
	hudLineHeight    = 16
)

// Shell adapts game.Game to ebiten. It owns no gameplay state.
type Shell struct {
	frames int
	debug  bool

	game  *game.Game
	input *Input
}

func NewShell(g *game.Game, input *Input, debug bool) *Shell {
	return &Shell{game: g, input: input, debug: debug}
}

func (s *Shell) Update() error {
	s.frames++
	s.input.Publish(s.game.Commands())

	if s.frames%fpsRefreshFrames == 0 {
		s.game.Board().SetText(hud.SlotFPS, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()))
	}

	if err := s.game.Update(1 / float64(ebiten.TPS())); err != nil {
		if errors.Is(err, game.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (s *Shell) Draw(screen *ebiten.Image) {
	view := newViewport(s.game, screen.Bounds().Dx(), screen.Bounds().Dy())
	drawShapes(screen, s.game, view)
	if s.debug {
		drawColliders(screen, s.game, view)
	}

	board := s.game.Board()
	for i, slot := range board.Slots() {
		text, _ := board.Text(slot)
		ebitenutil.DebugPrintAt(screen, text, 8, 8+i*hudLineHeight)
	}
}

func (s *Shell) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (s *Shell) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
