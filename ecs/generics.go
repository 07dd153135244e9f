package ecs

import (
	"slices"

	"github.com/milk9111/triggerzones/ecs/component"
)

// Add attaches value to e, replacing any existing component of that kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if w == nil || !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	storeFor(w, kind, true).Set(e, value)
	return nil
}

// Remove detaches the component of the given kind.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	s := storeFor(w, kind, false)
	if s == nil {
		return false
	}
	return s.Remove(e)
}

// Has reports whether e carries a component of the given kind.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	s := storeFor(w, kind, false)
	return s != nil && s.Has(e)
}

// Get returns e's component of the given kind.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	s := storeFor(w, kind, false)
	if s == nil {
		return nil, false
	}
	return s.Get(e)
}

// ForEach calls fn for every entity holding kind. fn may add or remove
// components; entities removed before their turn are skipped.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := storeFor(w, kind, false)
	if s == nil || fn == nil {
		return
	}
	for _, e := range slices.Clone(s.Entities()) {
		if v, ok := s.Get(e); ok {
			fn(e, v)
		}
	}
}

// ForEach2 calls fn for entities holding both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa := storeFor(w, ka, false)
	sb := storeFor(w, kb, false)
	if sa == nil || sb == nil || fn == nil {
		return
	}
	for _, e := range intersectEntities(sa, sb) {
		a, okA := sa.Get(e)
		b, okB := sb.Get(e)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

// ForEach3 calls fn for entities holding all three kinds.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sa := storeFor(w, ka, false)
	sb := storeFor(w, kb, false)
	sc := storeFor(w, kc, false)
	if sa == nil || sb == nil || sc == nil || fn == nil {
		return
	}
	for _, e := range intersectEntities(sa, sb, sc) {
		a, okA := sa.Get(e)
		b, okB := sb.Get(e)
		c, okC := sc.Get(e)
		if okA && okB && okC {
			fn(e, a, b, c)
		}
	}
}
