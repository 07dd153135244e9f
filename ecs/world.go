package ecs

import "github.com/milk9111/triggerzones/ecs/component"

// componentStore is the type-erased view of a SparseSet[*T].
type componentStore interface {
	Has(e Entity) bool
	Remove(e Entity) bool
	Entities() []Entity
	Len() int
}

// World owns entities, their components and the frame's event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]componentStore
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]componentStore)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity drops every component of e and recycles its id. It reports
// false when e was not alive.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.Remove(e)
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

// Entities returns every alive entity in id order.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.entities()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) store(id component.ComponentID) componentStore {
	if w == nil || w.stores == nil {
		return nil
	}
	return w.stores[id]
}

func storeFor[T any](w *World, kind component.ComponentKind[T], create bool) *SparseSet[*T] {
	if w == nil || !kind.Valid() {
		return nil
	}
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]componentStore)
	}
	if s, ok := w.stores[kind.ID()]; ok {
		typed, _ := s.(*SparseSet[*T])
		return typed
	}
	if !create {
		return nil
	}
	s := &SparseSet[*T]{}
	w.stores[kind.ID()] = s
	return s
}
