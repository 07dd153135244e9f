package system

import (
	"fmt"
	"strings"

	"github.com/milk9111/triggerzones/ecs"
	"github.com/milk9111/triggerzones/trigger"
)

const defaultEventLogCapacity = 64

// TriggerEvent is the payload of the "trigger.*" world events pushed by
// EventLog.
type TriggerEvent struct {
	TriggerID string
	Kind      trigger.EventKind
	Entity    ecs.Entity
	X         float64
	Y         float64
}

func (e TriggerEvent) String() string {
	id := e.TriggerID
	if id == "" {
		id = "<anon>"
	}
	return fmt.Sprintf("%-5s %s entity=%s pos=(%.1f, %.1f)", e.Kind, id, e.Entity, e.X, e.Y)
}

// EventTypeFor returns the world event type used for kind.
func EventTypeFor(kind trigger.EventKind) string {
	return "trigger." + kind.String()
}

// EventLog listens to a trigger.Manager, keeps the most recent events as
// text and mirrors every event into the world event queue.
type EventLog struct {
	// World receives a copy of every event; nil disables the mirror.
	World *ecs.World
	// Capacity bounds the retained lines; zero means 64.
	Capacity int
	// IncludeStay records stay events in the text log. Stays are always
	// mirrored to the world.
	IncludeStay bool

	lines []string
	total int
}

func NewEventLog(w *ecs.World) *EventLog {
	return &EventLog{World: w, Capacity: defaultEventLogCapacity}
}

func (l *EventLog) TriggerEntered(t *trigger.Trigger, ev trigger.Event) { l.record(t, ev) }
func (l *EventLog) TriggerStayed(t *trigger.Trigger, ev trigger.Event)  { l.record(t, ev) }
func (l *EventLog) TriggerExited(t *trigger.Trigger, ev trigger.Event)  { l.record(t, ev) }

func (l *EventLog) record(t *trigger.Trigger, ev trigger.Event) {
	if l == nil {
		return
	}
	te := TriggerEvent{TriggerID: t.ID(), Kind: ev.Kind, Entity: ev.Entity, X: ev.X, Y: ev.Y}
	if l.World != nil {
		l.World.Events().Push(ecs.Event{Type: EventTypeFor(ev.Kind), Data: te})
	}
	if ev.Kind == trigger.EventStay && !l.IncludeStay {
		return
	}

	l.total++
	l.lines = append(l.lines, fmt.Sprintf("#%d %s", l.total, te))
	capacity := l.Capacity
	if capacity <= 0 {
		capacity = defaultEventLogCapacity
	}
	if over := len(l.lines) - capacity; over > 0 {
		l.lines = append(l.lines[:0], l.lines[over:]...)
	}
}

// Lines returns the retained lines, oldest first.
func (l *EventLog) Lines() []string {
	if l == nil {
		return nil
	}
	return append([]string(nil), l.lines...)
}

// Total counts every recorded event, including ones already dropped.
func (l *EventLog) Total() int {
	if l == nil {
		return 0
	}
	return l.total
}

func (l *EventLog) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(l.lines, "\n")
}

func (l *EventLog) Clear() {
	if l == nil {
		return
	}
	l.lines = nil
	l.total = 0
}
