package trigger

import (
	"log"
	"slices"

	"github.com/milk9111/triggerzones/ecs"
)

// entityState is the manager's snapshot of one tracked entity.
type entityState struct {
	entity ecs.Entity
	x      float64
	y      float64
	layer  uint32
	inside map[*Trigger]struct{}
	// set once the entity is unregistered so an in-flight sweep skips it
	removed bool
}

// Manager owns a set of triggers, tracks registered entities and, on every
// Update, dispatches enter, stay and exit events for each entity/trigger pair.
//
// A Manager is not safe for concurrent use. Mutating the manager from inside
// an event callback is not supported.
type Manager struct {
	// Debug enables registration logging.
	Debug bool

	triggers []*Trigger
	byID     map[string]*Trigger

	entities entityRegistry

	listeners      []listenerEntry
	nextListenerID ListenerID

	// reused by Update to iterate stable snapshots
	entityScratch  []*entityState
	triggerScratch []*Trigger
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{byID: make(map[string]*Trigger)}
}

// AddTrigger hands ownership of t to the manager. It fails for a nil trigger,
// a trigger already owned by a manager, or a non-empty id already in use.
func (m *Manager) AddTrigger(t *Trigger) bool {
	if m == nil || t == nil || t.manager != nil {
		return false
	}
	if t.id != "" {
		if _, exists := m.byID[t.id]; exists {
			return false
		}
		if m.byID == nil {
			m.byID = make(map[string]*Trigger)
		}
		m.byID[t.id] = t
	}
	t.manager = m
	m.triggers = append(m.triggers, t)
	if m.Debug {
		log.Printf("trigger: add id=%q shape=%s bounds=%+v", t.id, t.ShapeKind(), t.Bounds())
	}
	return true
}

// RemoveTrigger releases t and forgets every entity's membership in it. No
// exit events are dispatched.
func (m *Manager) RemoveTrigger(t *Trigger) bool {
	if m == nil || t == nil || t.manager != m {
		return false
	}
	idx := slices.Index(m.triggers, t)
	if idx < 0 {
		return false
	}
	m.triggers = slices.Delete(slices.Clone(m.triggers), idx, idx+1)
	if t.id != "" && m.byID[t.id] == t {
		delete(m.byID, t.id)
	}
	for _, st := range m.entities.states {
		delete(st.inside, t)
	}
	t.manager = nil
	if m.Debug {
		log.Printf("trigger: remove id=%q", t.id)
	}
	return true
}

// RemoveTriggerByID removes the trigger registered under id.
func (m *Manager) RemoveTriggerByID(id string) bool {
	if m == nil || id == "" {
		return false
	}
	return m.RemoveTrigger(m.byID[id])
}

// Trigger looks a trigger up by id.
func (m *Manager) Trigger(id string) *Trigger {
	if m == nil || id == "" {
		return nil
	}
	return m.byID[id]
}

// Triggers returns the owned triggers in registration order.
func (m *Manager) Triggers() []*Trigger {
	if m == nil {
		return nil
	}
	return slices.Clone(m.triggers)
}

func (m *Manager) TriggerCount() int {
	if m == nil {
		return 0
	}
	return len(m.triggers)
}

// Clear releases every trigger. Registered entities stay registered with
// empty memberships; no events are dispatched.
func (m *Manager) Clear() {
	if m == nil {
		return
	}
	for _, t := range m.triggers {
		t.manager = nil
	}
	m.triggers = nil
	clear(m.byID)
	for _, st := range m.entities.states {
		clear(st.inside)
	}
	if m.Debug {
		log.Printf("trigger: cleared all triggers")
	}
}

// ResetTriggers calls Reset on every owned trigger.
func (m *Manager) ResetTriggers() {
	if m == nil {
		return
	}
	for _, t := range m.triggers {
		t.Reset()
	}
}

// RegisterEntity starts tracking e with the given collision layer. The entity
// is considered outside every trigger until the next Update. Registering an
// already tracked entity does nothing and returns false.
func (m *Manager) RegisterEntity(e ecs.Entity, layer uint32) bool {
	if m == nil || !e.Valid() || m.entities.has(e) {
		return false
	}
	m.entities.add(e, &entityState{
		entity: e,
		layer:  layer,
		inside: make(map[*Trigger]struct{}),
	})
	if m.Debug {
		log.Printf("trigger: register entity=%s layer=%#x", e, layer)
	}
	return true
}

// UnregisterEntity dispatches an exit for every trigger e is still inside,
// regardless of enabled, cooldown or one-shot state, then stops tracking e.
func (m *Manager) UnregisterEntity(e ecs.Entity) bool {
	if m == nil {
		return false
	}
	st, ok := m.entities.get(e)
	if !ok {
		return false
	}
	for _, t := range slices.Clone(m.triggers) {
		if _, in := st.inside[t]; !in {
			continue
		}
		delete(st.inside, t)
		m.dispatch(t, EventExit, st)
	}
	st.removed = true
	m.entities.remove(e)
	if m.Debug {
		log.Printf("trigger: unregister entity=%s", e)
	}
	return true
}

// ClearEntities unregisters every tracked entity, dispatching their exits.
func (m *Manager) ClearEntities() {
	if m == nil {
		return
	}
	for _, e := range slices.Clone(m.entities.entities) {
		m.UnregisterEntity(e)
	}
}

func (m *Manager) IsRegistered(e ecs.Entity) bool {
	return m != nil && m.entities.has(e)
}

// SetEntityPosition records e's position. Events are computed on the next
// Update.
func (m *Manager) SetEntityPosition(e ecs.Entity, x, y float64) bool {
	st, ok := m.state(e)
	if !ok {
		return false
	}
	st.x = x
	st.y = y
	return true
}

// SetEntityLayer records e's collision layer for the next Update.
func (m *Manager) SetEntityLayer(e ecs.Entity, layer uint32) bool {
	st, ok := m.state(e)
	if !ok {
		return false
	}
	st.layer = layer
	return true
}

func (m *Manager) EntityPosition(e ecs.Entity) (float64, float64, bool) {
	st, ok := m.state(e)
	if !ok {
		return 0, 0, false
	}
	return st.x, st.y, true
}

func (m *Manager) EntityLayer(e ecs.Entity) (uint32, bool) {
	st, ok := m.state(e)
	if !ok {
		return 0, false
	}
	return st.layer, true
}

func (m *Manager) EntityCount() int {
	if m == nil {
		return 0
	}
	return m.entities.len()
}

// Entities returns the tracked entities in sweep order.
func (m *Manager) Entities() []ecs.Entity {
	if m == nil {
		return nil
	}
	return slices.Clone(m.entities.entities)
}

func (m *Manager) state(e ecs.Entity) (*entityState, bool) {
	if m == nil {
		return nil, false
	}
	return m.entities.get(e)
}

// Update advances cooldowns by dt seconds, then tests every tracked entity
// against every trigger and dispatches the resulting events. A negative dt is
// treated as zero.
func (m *Manager) Update(dt float64) {
	if m == nil {
		return
	}
	dt = max(dt, 0)

	for _, t := range m.triggers {
		t.UpdateCooldown(dt)
	}

	m.entityScratch = append(m.entityScratch[:0], m.entities.states...)
	m.triggerScratch = append(m.triggerScratch[:0], m.triggers...)
	defer func() {
		clear(m.entityScratch)
		clear(m.triggerScratch)
	}()

	for _, st := range m.entityScratch {
		for _, t := range m.triggerScratch {
			if st.removed {
				break
			}
			if t.manager != m {
				continue
			}
			m.sweep(t, st)
		}
	}
}

func (m *Manager) sweep(t *Trigger, st *entityState) {
	if !t.CanCollideWith(st.layer) {
		return
	}
	canFire := t.CanFire()
	_, wasInside := st.inside[t]
	isInside := t.TestPoint(st.x, st.y)

	switch {
	case !wasInside && isInside:
		st.inside[t] = struct{}{}
		if canFire {
			m.dispatch(t, EventEnter, st)
			t.MarkFired()
		}
	case wasInside && isInside:
		if canFire {
			m.dispatch(t, EventStay, st)
		}
	case wasInside && !isInside:
		delete(st.inside, t)
		m.dispatch(t, EventExit, st)
	}
}

func (m *Manager) dispatch(t *Trigger, kind EventKind, st *entityState) {
	ev := Event{Kind: kind, Entity: st.entity, X: st.x, Y: st.y}
	t.notify(kind, st.entity)
	for _, entry := range m.listeners {
		switch kind {
		case EventEnter:
			entry.listener.TriggerEntered(t, ev)
		case EventStay:
			entry.listener.TriggerStayed(t, ev)
		case EventExit:
			entry.listener.TriggerExited(t, ev)
		}
	}
}

// AddListener subscribes l to every event the manager dispatches.
func (m *Manager) AddListener(l Listener) ListenerID {
	if m == nil || l == nil {
		return 0
	}
	m.nextListenerID++
	m.listeners = append(m.listeners, listenerEntry{id: m.nextListenerID, listener: l})
	return m.nextListenerID
}

// RemoveListener unsubscribes the listener registered under id.
func (m *Manager) RemoveListener(id ListenerID) bool {
	if m == nil || id == 0 {
		return false
	}
	idx := slices.IndexFunc(m.listeners, func(e listenerEntry) bool { return e.id == id })
	if idx < 0 {
		return false
	}
	m.listeners = slices.Delete(slices.Clone(m.listeners), idx, idx+1)
	return true
}

// CheckPoint returns every enabled trigger whose mask matches layer and whose
// shape contains (x, y). Cooldown, one-shot state and memberships are ignored.
func (m *Manager) CheckPoint(x, y float64, layer uint32) []*Trigger {
	if m == nil {
		return nil
	}
	var out []*Trigger
	for _, t := range m.triggers {
		if !t.enabled || !t.CanCollideWith(layer) {
			continue
		}
		if t.TestPoint(x, y) {
			out = append(out, t)
		}
	}
	return out
}

// CheckBounds returns every enabled trigger whose mask matches layer and whose
// bounding box overlaps the given box. The shapes themselves are not tested.
func (m *Manager) CheckBounds(x, y, width, height float64, layer uint32) []*Trigger {
	if m == nil {
		return nil
	}
	query := Bounds{X: x, Y: y, W: width, H: height}
	var out []*Trigger
	for _, t := range m.triggers {
		if !t.enabled || !t.CanCollideWith(layer) || t.shape == nil {
			continue
		}
		if t.Bounds().Overlaps(query) {
			out = append(out, t)
		}
	}
	return out
}

// EntitiesInTrigger returns the tracked entities currently inside t.
func (m *Manager) EntitiesInTrigger(t *Trigger) []ecs.Entity {
	if m == nil || t == nil || t.manager != m {
		return nil
	}
	var out []ecs.Entity
	for _, st := range m.entities.states {
		if _, in := st.inside[t]; in {
			out = append(out, st.entity)
		}
	}
	return out
}

// TriggersContainingEntity returns the triggers e is currently inside, in
// registration order.
func (m *Manager) TriggersContainingEntity(e ecs.Entity) []*Trigger {
	st, ok := m.state(e)
	if !ok || len(st.inside) == 0 {
		return nil
	}
	out := make([]*Trigger, 0, len(st.inside))
	for _, t := range m.triggers {
		if _, in := st.inside[t]; in {
			out = append(out, t)
		}
	}
	return out
}

// IsEntityInTrigger reports whether e is currently a member of t.
func (m *Manager) IsEntityInTrigger(e ecs.Entity, t *Trigger) bool {
	st, ok := m.state(e)
	if !ok || t == nil {
		return false
	}
	_, in := st.inside[t]
	return in
}
