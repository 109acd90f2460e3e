package ecs

import "github.com/milk9111/matriarch/ecs/component"

// Add inserts or replaces the component value on e. Add hooks run on every
// call, including replacement.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	return w.addComponent(e, handle.Kind().ID(), value)
}

// Remove deletes the component from e, running remove hooks.
func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.removeComponent(e, handle.Kind().ID())
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.hasComponent(e, handle.Kind().ID())
}

func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (T, bool) {
	var zero T
	value, ok := w.getComponent(e, handle.Kind().ID())
	if !ok {
		return zero, false
	}
	cast, ok := value.(T)
	if !ok {
		return zero, false
	}
	return cast, true
}

// OnAdd registers fn to run whenever a T is added to an entity.
func OnAdd[T any](w *World, handle component.ComponentHandle[T], fn func(e Entity, value T)) {
	id := handle.Kind().ID()
	w.onAdd[id] = append(w.onAdd[id], func(e Entity, value any) {
		if cast, ok := value.(T); ok {
			fn(e, cast)
		}
	})
}

// OnRemove registers fn to run whenever a T leaves an entity, either through
// Remove or DestroyEntity. It runs synchronously before the call returns.
func OnRemove[T any](w *World, handle component.ComponentHandle[T], fn func(e Entity, value T)) {
	id := handle.Kind().ID()
	w.onRemove[id] = append(w.onRemove[id], func(e Entity, value any) {
		if cast, ok := value.(T); ok {
			fn(e, cast)
		}
	})
}

// ForEach calls fn for every entity holding a T, in slot order. fn may add or
// remove components and destroy entities.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(e Entity, value T)) {
	for _, e := range w.Query(handle.Kind()) {
		value, ok := Get(w, e, handle)
		if !ok {
			continue
		}
		fn(e, value)
	}
}
