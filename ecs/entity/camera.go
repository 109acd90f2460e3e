package entity

import (
	"fmt"

	"github.com/milk9111/matriarch/ecs"
	"github.com/milk9111/matriarch/ecs/component"
)

const cameraPersistentID = "camera"

// NewCamera creates the persistent camera at (x, y) with depth z.
func NewCamera(w *ecs.World, x, y, z float64) (ecs.Entity, error) {
	camera := w.CreateEntity()
	if err := ecs.Add(w, camera, component.CameraTagComponent, component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.TransformComponent, component.Transform{X: x, Y: y, Z: z}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}
	if err := ecs.Add(w, camera, component.PersistentComponent, component.Persistent{
		ID:                cameraPersistentID,
		KeepOnLevelChange: true,
		KeepOnReload:      true,
	}); err != nil {
		return 0, fmt.Errorf("camera: add persistent: %w", err)
	}
	return camera, nil
}
