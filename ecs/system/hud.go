package system

import (
	"fmt"

	"github.com/milk9111/matriarch/ecs"
	"github.com/milk9111/matriarch/ecs/component"
	"github.com/milk9111/matriarch/hud"
)

// HUDSystem writes the spawn counters and the current spawn interval into the
// board.
type HUDSystem struct {
	board *hud.Board
}

func NewHUDSystem(board *hud.Board) *HUDSystem {
	return &HUDSystem{board: board}
}

func (s *HUDSystem) Update(w *ecs.World) {
	stats, ok := Stats(w)
	if !ok {
		return
	}
	s.board.SetText(hud.SlotSpawned, fmt.Sprintf("Spawned: %d / %d", stats.Spawned, stats.Total))
	s.board.SetText(hud.SlotKilled, fmt.Sprintf("Killed: %d", stats.Killed))
	s.board.SetText(hud.SlotSaved, fmt.Sprintf("Saved: %d", stats.Saved))

	rate := "Rate: -"
	if e, ok := w.First(component.SpawnerComponent.Kind()); ok {
		sp, _ := ecs.Get(w, e, component.SpawnerComponent)
		if sp.Spawned < sp.MaxCount {
			rate = fmt.Sprintf("Rate: 1 per %.1fs", sp.Frequency)
		}
	}
	s.board.SetText(hud.SlotRate, rate)
}
