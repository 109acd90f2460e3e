package ecs

import (
	"github.com/milk9111/matriarch/ecs/component"
)

// System updates a world each tick.
type System interface {
	Update(w *World)
}

type hook func(e Entity, value any)

// World owns entities and their components. Physics objects are owned by the
// attached PhysicsWorld and only referenced from components.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	onAdd    map[component.ComponentID][]hook
	onRemove map[component.ComponentID][]hook
	deferred []func(w *World)

	delta float64

	physicsWorld *PhysicsWorld
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores:   make(map[component.ComponentID]*SparseSet),
		onAdd:    make(map[component.ComponentID][]hook),
		onRemove: make(map[component.ComponentID][]hook),
	}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e, running remove hooks, and then
// frees the slot. It returns false when e was already dead.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for id, store := range w.stores {
		value, ok := store.Remove(e)
		if !ok {
			continue
		}
		w.runHooks(w.onRemove[id], e, value)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every living entity in slot order.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// Len returns the number of living entities.
func (w *World) Len() int {
	if w == nil {
		return 0
	}
	return w.entities.count
}

// Defer queues fn to run at the next Flush. Systems use it to create or
// destroy entities without disturbing iteration of the current tick.
func (w *World) Defer(fn func(w *World)) {
	if w == nil || fn == nil {
		return
	}
	w.deferred = append(w.deferred, fn)
}

// DeferDestroy queues e for destruction at the next Flush.
func (w *World) DeferDestroy(e Entity) {
	w.Defer(func(w *World) { w.DestroyEntity(e) })
}

// Pending returns the number of queued deferred operations.
func (w *World) Pending() int {
	if w == nil {
		return 0
	}
	return len(w.deferred)
}

// Flush applies deferred operations in queue order. Operations queued while
// flushing run in the same flush.
func (w *World) Flush() {
	if w == nil {
		return
	}
	for len(w.deferred) > 0 {
		batch := w.deferred
		w.deferred = nil
		for _, fn := range batch {
			fn(w)
		}
	}
}

// SetDelta records the simulated seconds covered by the current tick.
func (w *World) SetDelta(dt float64) {
	if w == nil {
		return
	}
	w.delta = dt
}

// Delta returns the simulated seconds covered by the current tick.
func (w *World) Delta() float64 {
	if w == nil {
		return 0
	}
	return w.delta
}

// SetPhysicsWorld attaches a physics world to this ECS world.
func (w *World) SetPhysicsWorld(pw *PhysicsWorld) {
	if w == nil {
		return
	}
	w.physicsWorld = pw
}

// PhysicsWorld returns the attached physics world, if any.
func (w *World) PhysicsWorld() *PhysicsWorld {
	if w == nil {
		return nil
	}
	return w.physicsWorld
}

func (w *World) store(id component.ComponentID) *SparseSet {
	s := w.stores[id]
	if s == nil {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

func (w *World) addComponent(e Entity, id component.ComponentID, value any) error {
	if w == nil {
		return component.ErrEntityNotAlive
	}
	if id == 0 {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(id).Set(e, value)
	w.runHooks(w.onAdd[id], e, value)
	return nil
}

func (w *World) removeComponent(e Entity, id component.ComponentID) bool {
	if w == nil {
		return false
	}
	s := w.stores[id]
	if s == nil {
		return false
	}
	value, ok := s.Remove(e)
	if !ok {
		return false
	}
	w.runHooks(w.onRemove[id], e, value)
	return true
}

func (w *World) getComponent(e Entity, id component.ComponentID) (any, bool) {
	if w == nil {
		return nil, false
	}
	s := w.stores[id]
	if s == nil {
		return nil, false
	}
	return s.Get(e)
}

func (w *World) hasComponent(e Entity, id component.ComponentID) bool {
	if w == nil {
		return false
	}
	return w.stores[id].Has(e)
}

func (w *World) runHooks(hooks []hook, e Entity, value any) {
	for _, h := range hooks {
		h(e, value)
	}
}
