package trigger

import (
	"fmt"

	"github.com/milk9111/triggerzones/ecs"
)

// EventKind is the transition an entity made relative to a trigger.
type EventKind uint8

const (
	EventEnter EventKind = iota + 1
	EventStay
	EventExit
)

func (k EventKind) String() string {
	switch k {
	case EventEnter:
		return "enter"
	case EventStay:
		return "stay"
	case EventExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Event describes one detected transition. X and Y are the entity's
// position when the event was dispatched.
type Event struct {
	Kind   EventKind
	Entity ecs.Entity
	X      float64
	Y      float64
}

// Position returns the position snapshot carried by the event.
func (e Event) Position() (float64, float64) {
	return e.X, e.Y
}

func (e Event) String() string {
	return fmt.Sprintf("%s entity=%s pos=(%.2f, %.2f)", e.Kind, e.Entity, e.X, e.Y)
}
