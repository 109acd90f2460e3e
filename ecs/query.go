package ecs

import (
	"sort"

	"github.com/milk9111/matriarch/ecs/component"
)

// Query returns the living entities holding every given kind, sorted by slot
// index. The result is a copy, so callers may mutate the world while ranging
// over it.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	var smallest *SparseSet
	for _, k := range kinds {
		s := w.stores[k.ID()]
		if s == nil || s.Len() == 0 {
			return nil
		}
		if smallest == nil || s.Len() < smallest.Len() {
			smallest = s
		}
	}

	out := make([]Entity, 0, smallest.Len())
	for _, e := range smallest.Entities() {
		match := true
		for _, k := range kinds {
			if !w.stores[k.ID()].Has(e) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id() < out[j].id() })
	return out
}

// First returns the lowest-slot entity holding every given kind.
func (w *World) First(kinds ...component.Kind) (Entity, bool) {
	ents := w.Query(kinds...)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// Count returns how many living entities hold every given kind.
func (w *World) Count(kinds ...component.Kind) int {
	return len(w.Query(kinds...))
}
