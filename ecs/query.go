package ecs

import "github.com/milk9111/triggerzones/ecs/component"

// intersectEntities returns the entities present in every store, ordered as
// in the smallest one.
func intersectEntities(stores ...componentStore) []Entity {
	if len(stores) == 0 {
		return nil
	}
	smallest := stores[0]
	for _, s := range stores[1:] {
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}
	out := make([]Entity, 0, smallest.Len())
	for _, e := range smallest.Entities() {
		all := true
		for _, s := range stores {
			if s != smallest && !s.Has(e) {
				all = false
				break
			}
		}
		if all {
			out = append(out, e)
		}
	}
	return out
}

// Query returns entities holding every given component kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	stores := make([]componentStore, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID())
		if s == nil {
			return nil
		}
		stores = append(stores, s)
	}
	return intersectEntities(stores...)
}

// First returns the first entity holding kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	s := w.store(kind.ID())
	if s == nil || s.Len() == 0 {
		return 0, false
	}
	return s.Entities()[0], true
}
