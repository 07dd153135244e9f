package trigger

import "github.com/milk9111/triggerzones/ecs"

// Callback is the per-trigger observer channel.
type Callback func(kind EventKind, entity ecs.Entity)

// Listener is the per-manager observer channel. Each event kind arrives on
// its own method.
type Listener interface {
	TriggerEntered(t *Trigger, ev Event)
	TriggerStayed(t *Trigger, ev Event)
	TriggerExited(t *Trigger, ev Event)
}

// ListenerID identifies a listener registered with a Manager.
type ListenerID uint64

// ListenerFuncs adapts plain functions to Listener. Nil funcs are skipped;
// OnEvent, when set, additionally receives every event.
type ListenerFuncs struct {
	OnEnter func(t *Trigger, ev Event)
	OnStay  func(t *Trigger, ev Event)
	OnExit  func(t *Trigger, ev Event)
	OnEvent func(t *Trigger, ev Event)
}

func (l *ListenerFuncs) TriggerEntered(t *Trigger, ev Event) {
	if l == nil {
		return
	}
	if l.OnEnter != nil {
		l.OnEnter(t, ev)
	}
	if l.OnEvent != nil {
		l.OnEvent(t, ev)
	}
}

func (l *ListenerFuncs) TriggerStayed(t *Trigger, ev Event) {
	if l == nil {
		return
	}
	if l.OnStay != nil {
		l.OnStay(t, ev)
	}
	if l.OnEvent != nil {
		l.OnEvent(t, ev)
	}
}

func (l *ListenerFuncs) TriggerExited(t *Trigger, ev Event) {
	if l == nil {
		return
	}
	if l.OnExit != nil {
		l.OnExit(t, ev)
	}
	if l.OnEvent != nil {
		l.OnEvent(t, ev)
	}
}

type listenerEntry struct {
	id       ListenerID
	listener Listener
}
