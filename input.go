package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/matriarch/ecs"
	"github.com/milk9111/matriarch/ecs/component"
)

// Input turns key and gamepad presses into commands on the bus.
type Input struct {
	keys map[ebiten.Key]component.CommandKind
	pads map[ebiten.StandardGamepadButton]component.CommandKind
}

func NewInput() *Input {
	return &Input{
		keys: map[ebiten.Key]component.CommandKind{
			ebiten.KeyEscape: component.CommandQuit,
			ebiten.KeyR:      component.CommandReloadConfig,
			ebiten.KeyN:      component.CommandNextLevel,
			ebiten.KeyL:      component.CommandDropLift,
			ebiten.KeySpace:  component.CommandDropRam,
			ebiten.KeyD:      component.CommandDropDirectionChanger,
		},
		pads: map[ebiten.StandardGamepadButton]component.CommandKind{
			ebiten.StandardGamepadButtonCenterRight: component.CommandQuit,
			ebiten.StandardGamepadButtonRightTop:    component.CommandDropLift,
			ebiten.StandardGamepadButtonRightBottom: component.CommandDropRam,
			ebiten.StandardGamepadButtonRightLeft:   component.CommandDropDirectionChanger,
		},
	}
}

// Publish sends one command per key pressed this frame, plus a zoom command
// while a zoom key is held.
func (i *Input) Publish(commands *ecs.Channel[component.Command]) {
	for key, kind := range i.keys {
		if inpututil.IsKeyJustPressed(key) {
			commands.Publish(component.Command{Kind: kind})
		}
	}

	zoom := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyPageUp) {
		zoom -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyPageDown) {
		zoom += 1
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		for button, kind := range i.pads {
			if inpututil.IsStandardGamepadButtonJustPressed(id, button) {
				commands.Publish(component.Command{Kind: kind})
			}
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontTopLeft) {
			zoom -= 1
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontTopRight) {
			zoom += 1
		}
	}

	if zoom != 0 {
		commands.Publish(component.Command{Kind: component.CommandZoom, Amount: zoom})
	}
}
