package component

import (
	"errors"
	"sync/atomic"
)

// Errors returned by the world's component storage.
var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID numbers component kinds from 1; 0 is never issued.
type ComponentID uint32

var nextComponentID atomic.Uint32

// Kind is the untyped view of a ComponentKind, used for multi-kind queries.
type Kind interface {
	ID() ComponentID
}

// ComponentKind is the typed key for one component type. Declare each kind
// once as a package variable:
//
//	var TransformComponent = NewComponentKind[Transform]()
//
// The zero value is invalid and rejected by the world.
type ComponentKind[T any] struct {
	id ComponentID
}

func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{id: ComponentID(nextComponentID.Add(1))}
}

func (k ComponentKind[T]) ID() ComponentID {
	return k.id
}

func (k ComponentKind[T]) Valid() bool {
	return k.id != 0
}
