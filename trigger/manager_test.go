package trigger

import (
	"math"
	"runtime"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/triggerzones/ecs"
)

type recordedEvent struct {
	trigger *Trigger
	event   Event
}

type recorder struct {
	events []recordedEvent
}

func (r *recorder) TriggerEntered(t *Trigger, ev Event) { r.events = append(r.events, recordedEvent{t, ev}) }
func (r *recorder) TriggerStayed(t *Trigger, ev Event)  { r.events = append(r.events, recordedEvent{t, ev}) }
func (r *recorder) TriggerExited(t *Trigger, ev Event)  { r.events = append(r.events, recordedEvent{t, ev}) }

func (r *recorder) kinds() []EventKind {
	out := make([]EventKind, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.event.Kind)
	}
	return out
}

func (r *recorder) count(kind EventKind) int {
	n := 0
	for _, e := range r.events {
		if e.event.Kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) reset() {
	r.events = nil
}

func newTestManager() (*Manager, *recorder) {
	m := NewManager()
	rec := &recorder{}
	m.AddListener(rec)
	return m, rec
}

func entity(id uint32) ecs.Entity {
	return ecs.NewEntity(id, 0)
}

func TestManagerEnterStayExit(t *testing.T) {
	m, rec := newTestManager()
	zone := NewRectangleTrigger("zone", 0, 0, 100, 100)
	zone.SetOneShot(true)
	if !m.AddTrigger(zone) {
		t.Fatalf("expected AddTrigger to succeed")
	}

	e := entity(1)
	m.RegisterEntity(e, 1)
	m.SetEntityPosition(e, 50, 50)

	m.Update(1.0 / 60)
	if got := rec.kinds(); len(got) != 1 || got[0] != EventEnter {
		t.Fatalf("expected exactly one enter, got %v", got)
	}
	if ev := rec.events[0].event; ev.Entity != e || ev.X != 50 || ev.Y != 50 {
		t.Fatalf("expected enter for %s at (50, 50), got %+v", e, ev)
	}
	if !zone.HasFired() {
		t.Fatalf("expected one-shot trigger to be marked fired")
	}

	rec.reset()
	zone.SetOneShot(false)
	m.Update(1.0 / 60)
	if got := rec.kinds(); len(got) != 1 || got[0] != EventStay {
		t.Fatalf("expected exactly one stay, got %v", got)
	}

	rec.reset()
	m.SetEntityPosition(e, 150, 50)
	m.Update(1.0 / 60)
	if got := rec.kinds(); len(got) != 1 || got[0] != EventExit {
		t.Fatalf("expected exactly one exit, got %v", got)
	}
	if ev := rec.events[0].event; ev.X != 150 {
		t.Fatalf("expected exit to carry the new position, got %+v", ev)
	}

	rec.reset()
	m.Update(1.0 / 60)
	if len(rec.events) != 0 {
		t.Fatalf("expected no events while outside, got %v", rec.kinds())
	}
}

func TestManagerOneShotStaysSilentButExits(t *testing.T) {
	m, rec := newTestManager()
	zone := NewCircleTrigger("pickup", 0, 0, 10)
	zone.SetOneShot(true)
	m.AddTrigger(zone)

	e := entity(1)
	m.RegisterEntity(e, 1)
	m.Update(0.1)
	m.Update(0.1)
	m.Update(0.1)
	if got := rec.kinds(); len(got) != 1 || got[0] != EventEnter {
		t.Fatalf("expected a single enter and no stays from spent one-shot, got %v", got)
	}

	rec.reset()
	m.SetEntityPosition(e, 100, 100)
	m.Update(0.1)
	if got := rec.kinds(); len(got) != 1 || got[0] != EventExit {
		t.Fatalf("expected exit from spent one-shot trigger, got %v", got)
	}

	rec.reset()
	m.SetEntityPosition(e, 0, 0)
	m.Update(0.1)
	if len(rec.events) != 0 {
		t.Fatalf("expected re-entry into spent one-shot to be silent, got %v", rec.kinds())
	}
	if !m.IsEntityInTrigger(e, zone) {
		t.Fatalf("expected membership to be tracked even when the trigger cannot fire")
	}
}

func TestManagerExitAlwaysDispatched(t *testing.T) {
	tests := []struct {
		name    string
		disable func(tr *Trigger)
	}{
		{"disabled", func(tr *Trigger) { tr.SetEnabled(false) }},
		{"cooling_down", func(tr *Trigger) { tr.SetCooldown(10); tr.MarkFired() }},
		{"one_shot_spent", func(tr *Trigger) { tr.SetOneShot(true); tr.MarkFired() }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, rec := newTestManager()
			zone := NewRectangleTrigger("", 0, 0, 10, 10)
			m.AddTrigger(zone)
			e := entity(1)
			m.RegisterEntity(e, 1)
			m.SetEntityPosition(e, 5, 5)
			m.Update(0)

			tc.disable(zone)
			rec.reset()
			m.Update(0)
			if rec.count(EventStay) != 0 {
				t.Fatalf("expected no stay while the trigger cannot fire, got %v", rec.kinds())
			}

			m.SetEntityPosition(e, 50, 50)
			m.Update(0)
			if got := rec.kinds(); len(got) != 1 || got[0] != EventExit {
				t.Fatalf("expected exactly one exit, got %v", got)
			}
		})
	}
}

func TestManagerCooldown(t *testing.T) {
	m, rec := newTestManager()
	zone := NewRectangleTrigger("", 0, 0, 10, 10)
	zone.SetCooldown(1.0)
	m.AddTrigger(zone)

	e := entity(1)
	m.RegisterEntity(e, 1)
	m.SetEntityPosition(e, 5, 5)
	m.Update(0.25)
	if rec.count(EventEnter) != 1 {
		t.Fatalf("expected enter, got %v", rec.kinds())
	}
	if !zone.IsOnCooldown() {
		t.Fatalf("expected trigger on cooldown after firing")
	}

	// stays are suppressed while cooling down and never re-arm the cooldown
	rec.reset()
	for i := 0; i < 3; i++ {
		m.Update(0.25)
	}
	if len(rec.events) != 0 {
		t.Fatalf("expected no events while cooling down, got %v", rec.kinds())
	}
	if !zone.IsOnCooldown() {
		t.Fatalf("expected cooldown to remain after 0.75s")
	}

	m.Update(0.25)
	if zone.IsOnCooldown() {
		t.Fatalf("expected cooldown to clear after 1.0s, remaining %v", zone.CooldownRemaining())
	}
	if got := rec.kinds(); len(got) != 1 || got[0] != EventStay {
		t.Fatalf("expected stay once the cooldown elapsed, got %v", got)
	}
	if zone.IsOnCooldown() {
		t.Fatalf("expected stay not to restart the cooldown")
	}
}

func TestManagerLayerFiltering(t *testing.T) {
	m, rec := newTestManager()
	zone := NewRectangleTrigger("", 0, 0, 10, 10)
	zone.SetMask(0b0010)
	m.AddTrigger(zone)

	e := entity(1)
	m.RegisterEntity(e, 0b0001)
	m.SetEntityPosition(e, 5, 5)
	m.Update(0)
	if len(rec.events) != 0 {
		t.Fatalf("expected masked-out entity to produce no events, got %v", rec.kinds())
	}
	if m.IsEntityInTrigger(e, zone) {
		t.Fatalf("expected masked-out entity not to become a member")
	}

	m.SetEntityLayer(e, 0b0010)
	m.Update(0)
	if got := rec.kinds(); len(got) != 1 || got[0] != EventEnter {
		t.Fatalf("expected enter once the layer matches, got %v", got)
	}

	// a masked-out pair is skipped entirely, so membership is frozen
	rec.reset()
	m.SetEntityLayer(e, 0b0001)
	m.SetEntityPosition(e, 50, 50)
	m.Update(0)
	if len(rec.events) != 0 {
		t.Fatalf("expected no exit while masked out, got %v", rec.kinds())
	}
	if !m.IsEntityInTrigger(e, zone) {
		t.Fatalf("expected membership to persist while masked out")
	}
}

func TestManagerUnregisterSynthesizesExits(t *testing.T) {
	m, rec := newTestManager()
	a := NewRectangleTrigger("a", 0, 0, 10, 10)
	b := NewCircleTrigger("b", 5, 5, 5)
	c := NewPolygonTrigger("c", cp.Vector{X: 0, Y: 0}, cp.Vector{X: 10, Y: 0}, cp.Vector{X: 5, Y: 10})
	far := NewRectangleTrigger("far", 100, 100, 10, 10)
	for _, tr := range []*Trigger{a, b, c, far} {
		m.AddTrigger(tr)
	}
	b.SetEnabled(false)

	e := entity(1)
	m.RegisterEntity(e, 1)
	m.SetEntityPosition(e, 5, 5)
	m.Update(0)
	if got := len(m.TriggersContainingEntity(e)); got != 3 {
		t.Fatalf("expected entity inside 3 triggers, got %d", got)
	}

	rec.reset()
	if !m.UnregisterEntity(e) {
		t.Fatalf("expected UnregisterEntity to succeed")
	}
	if rec.count(EventExit) != 3 || len(rec.events) != 3 {
		t.Fatalf("expected exactly 3 exits, got %v", rec.kinds())
	}
	for i, want := range []*Trigger{a, b, c} {
		if rec.events[i].trigger != want {
			t.Fatalf("expected exit %d from %q, got %q", i, want.ID(), rec.events[i].trigger.ID())
		}
	}
	if m.IsRegistered(e) || m.EntityCount() != 0 {
		t.Fatalf("expected entity to be forgotten")
	}
	if m.UnregisterEntity(e) {
		t.Fatalf("expected second UnregisterEntity to fail")
	}
}

func TestManagerRegistration(t *testing.T) {
	m := NewManager()
	e := entity(7)

	if !m.RegisterEntity(e, 4) {
		t.Fatalf("expected first registration to succeed")
	}
	m.SetEntityPosition(e, 3, 4)
	if m.RegisterEntity(e, 8) {
		t.Fatalf("expected duplicate registration to be a no-op")
	}
	if layer, _ := m.EntityLayer(e); layer != 4 {
		t.Fatalf("expected layer to stay 4, got %d", layer)
	}
	if x, y, _ := m.EntityPosition(e); x != 3 || y != 4 {
		t.Fatalf("expected position to survive duplicate registration, got (%v, %v)", x, y)
	}
	if m.RegisterEntity(0, 1) {
		t.Fatalf("expected zero entity to be rejected")
	}

	unknown := entity(99)
	if m.SetEntityPosition(unknown, 1, 1) || m.SetEntityLayer(unknown, 1) {
		t.Fatalf("expected updates for unknown entity to fail")
	}
	if _, _, ok := m.EntityPosition(unknown); ok {
		t.Fatalf("expected no position for unknown entity")
	}

	// a recycled slot with a new generation is a different entity
	recycled := ecs.NewEntity(7, 1)
	if m.IsRegistered(recycled) {
		t.Fatalf("expected recycled handle not to be registered")
	}
}

func TestManagerTriggerOwnership(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "duplicate_id_rejected",
			run: func(t *testing.T) {
				m := NewManager()
				if !m.AddTrigger(NewRectangleTrigger("x", 0, 0, 1, 1)) {
					t.Fatalf("expected first trigger to be added")
				}
				if m.AddTrigger(NewRectangleTrigger("x", 0, 0, 1, 1)) {
					t.Fatalf("expected duplicate id to be rejected")
				}
				if !m.AddTrigger(NewRectangleTrigger("", 0, 0, 1, 1)) || !m.AddTrigger(NewRectangleTrigger("", 0, 0, 1, 1)) {
					t.Fatalf("expected anonymous triggers to be accepted")
				}
				if m.TriggerCount() != 3 {
					t.Fatalf("expected 3 triggers, got %d", m.TriggerCount())
				}
			},
		},
		{
			name: "single_owner",
			run: func(t *testing.T) {
				m1 := NewManager()
				m2 := NewManager()
				tr := NewRectangleTrigger("x", 0, 0, 1, 1)
				m1.AddTrigger(tr)
				if m2.AddTrigger(tr) || m1.AddTrigger(tr) {
					t.Fatalf("expected an owned trigger to be rejected")
				}
				if m2.RemoveTrigger(tr) {
					t.Fatalf("expected removal from a non-owner to fail")
				}
				if !m1.RemoveTrigger(tr) || tr.Manager() != nil {
					t.Fatalf("expected owner to release the trigger")
				}
				if m1.RemoveTrigger(tr) {
					t.Fatalf("expected second removal to fail")
				}
				if !m2.AddTrigger(tr) {
					t.Fatalf("expected released trigger to be adoptable")
				}
			},
		},
		{
			name: "remove_by_id_purges_membership",
			run: func(t *testing.T) {
				m, rec := newTestManager()
				tr := NewRectangleTrigger("x", 0, 0, 10, 10)
				m.AddTrigger(tr)
				e := entity(1)
				m.RegisterEntity(e, 1)
				m.SetEntityPosition(e, 1, 1)
				m.Update(0)

				rec.reset()
				if m.RemoveTriggerByID("missing") {
					t.Fatalf("expected unknown id removal to fail")
				}
				if !m.RemoveTriggerByID("x") {
					t.Fatalf("expected removal by id to succeed")
				}
				if m.Trigger("x") != nil {
					t.Fatalf("expected id lookup to miss after removal")
				}
				if len(m.TriggersContainingEntity(e)) != 0 {
					t.Fatalf("expected membership purged")
				}
				if len(rec.events) != 0 {
					t.Fatalf("expected removal to dispatch nothing, got %v", rec.kinds())
				}
				m.UnregisterEntity(e)
				if len(rec.events) != 0 {
					t.Fatalf("expected no exits for a removed trigger, got %v", rec.kinds())
				}
			},
		},
		{
			name: "clear_releases_everything",
			run: func(t *testing.T) {
				m := NewManager()
				a := NewRectangleTrigger("a", 0, 0, 10, 10)
				b := NewRectangleTrigger("b", 0, 0, 10, 10)
				m.AddTrigger(a)
				m.AddTrigger(b)
				e := entity(1)
				m.RegisterEntity(e, 1)
				m.Update(0)

				m.Clear()
				if m.TriggerCount() != 0 || a.Manager() != nil || b.Manager() != nil {
					t.Fatalf("expected all triggers released")
				}
				if !m.IsRegistered(e) || len(m.TriggersContainingEntity(e)) != 0 {
					t.Fatalf("expected entity kept with empty membership")
				}
				if !m.AddTrigger(a) {
					t.Fatalf("expected id to be reusable after Clear")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestManagerQueries(t *testing.T) {
	m := NewManager()
	rect := NewRectangleTrigger("rect", 0, 0, 10, 10)
	circle := NewCircleTrigger("circle", 20, 20, 5)
	masked := NewRectangleTrigger("masked", 0, 0, 10, 10)
	masked.SetMask(0b100)
	disabled := NewRectangleTrigger("disabled", 0, 0, 10, 10)
	disabled.SetEnabled(false)
	spent := NewRectangleTrigger("spent", 0, 0, 10, 10)
	spent.SetOneShot(true)
	spent.SetCooldown(5)
	spent.MarkFired()
	for _, tr := range []*Trigger{rect, circle, masked, disabled, spent} {
		m.AddTrigger(tr)
	}

	tests := []struct {
		name string
		got  []*Trigger
		want []string
	}{
		{"point_in_rects", m.CheckPoint(5, 5, 1), []string{"rect", "spent"}},
		{"point_with_masked_layer", m.CheckPoint(5, 5, 0b100), []string{"rect", "masked", "spent"}},
		{"point_in_circle", m.CheckPoint(20, 24, 1), []string{"circle"}},
		{"point_in_circle_bounds_only", m.CheckPoint(24, 24, 1), nil},
		{"point_nowhere", m.CheckPoint(100, 100, 1), nil},
		// the box touches the circle's bounding square but not the circle
		{"bounds_broad_phase", m.CheckBounds(24, 24, 2, 2, 1), []string{"circle"}},
		{"bounds_all", m.CheckBounds(-5, -5, 50, 50, 1), []string{"rect", "circle", "spent"}},
		{"bounds_miss", m.CheckBounds(11, 11, 2, 2, 1), nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if len(tc.got) != len(tc.want) {
				t.Fatalf("expected %v, got %d triggers", tc.want, len(tc.got))
			}
			for i, id := range tc.want {
				if tc.got[i].ID() != id {
					t.Fatalf("expected trigger %d to be %q, got %q", i, id, tc.got[i].ID())
				}
			}
		})
	}
}

func TestManagerMembershipLookups(t *testing.T) {
	m := NewManager()
	left := NewRectangleTrigger("left", 0, 0, 10, 10)
	right := NewRectangleTrigger("right", 5, 0, 10, 10)
	m.AddTrigger(left)
	m.AddTrigger(right)

	a, b, c := entity(1), entity(2), entity(3)
	m.RegisterEntity(a, 1)
	m.RegisterEntity(b, 1)
	m.RegisterEntity(c, 1)
	m.SetEntityPosition(a, 2, 2)
	m.SetEntityPosition(b, 7, 2)
	m.SetEntityPosition(c, 12, 2)
	m.Update(0)

	if got := m.EntitiesInTrigger(left); len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("expected [a b] in left, got %v", got)
	}
	if got := m.EntitiesInTrigger(right); len(got) != 2 || got[0] != b || got[1] != c {
		t.Fatalf("expected [b c] in right, got %v", got)
	}
	if got := m.TriggersContainingEntity(b); len(got) != 2 || got[0] != left || got[1] != right {
		t.Fatalf("expected b inside both triggers, got %v", got)
	}
	if got := m.TriggersContainingEntity(entity(42)); got != nil {
		t.Fatalf("expected nil for unknown entity, got %v", got)
	}
	if got := m.EntitiesInTrigger(NewRectangleTrigger("", 0, 0, 1, 1)); got != nil {
		t.Fatalf("expected nil for foreign trigger, got %v", got)
	}
}

func TestManagerDispatchChannels(t *testing.T) {
	m := NewManager()
	zone := NewRectangleTrigger("zone", 0, 0, 10, 10)
	m.AddTrigger(zone)

	var order []string
	zone.OnEvent(func(kind EventKind, _ ecs.Entity) { order = append(order, "trigger:"+kind.String()) })
	first := m.AddListener(&ListenerFuncs{
		OnEnter: func(*Trigger, Event) { order = append(order, "enter") },
		OnExit:  func(*Trigger, Event) { order = append(order, "exit") },
		OnEvent: func(_ *Trigger, ev Event) { order = append(order, "any:"+ev.Kind.String()) },
	})
	second := m.AddListener(&ListenerFuncs{
		OnStay: func(*Trigger, Event) { order = append(order, "stay") },
	})

	e := entity(1)
	m.RegisterEntity(e, 1)
	m.Update(0)
	m.Update(0)

	want := []string{"trigger:enter", "enter", "any:enter", "trigger:stay", "any:stay", "stay"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}

	if !m.RemoveListener(first) || m.RemoveListener(first) {
		t.Fatalf("expected listener removal to succeed exactly once")
	}
	order = nil
	m.SetEntityPosition(e, 50, 50)
	m.Update(0)
	if len(order) != 1 || order[0] != "trigger:exit" {
		t.Fatalf("expected only the trigger callback after removal, got %v", order)
	}
	if !m.RemoveListener(second) {
		t.Fatalf("expected second listener removal to succeed")
	}
}

func TestManagerDeterministicOrder(t *testing.T) {
	m, rec := newTestManager()
	var zones []*Trigger
	for _, id := range []string{"z1", "z2", "z3"} {
		tr := NewRectangleTrigger(id, 0, 0, 10, 10)
		zones = append(zones, tr)
		m.AddTrigger(tr)
	}
	ents := []ecs.Entity{entity(3), entity(1), entity(2)}
	for _, e := range ents {
		m.RegisterEntity(e, 1)
	}
	m.Update(0)

	if len(rec.events) != 9 {
		t.Fatalf("expected 9 enters, got %d", len(rec.events))
	}
	i := 0
	for _, e := range ents {
		for _, z := range zones {
			got := rec.events[i]
			if got.event.Entity != e || got.trigger != z {
				t.Fatalf("expected event %d to be %s/%s, got %s/%s", i, e, z.ID(), got.event.Entity, got.trigger.ID())
			}
			i++
		}
	}
}

func TestManagerLargeEntityIDs(t *testing.T) {
	m, rec := newTestManager()
	m.AddTrigger(NewRectangleTrigger("zone", 0, 0, 10, 10))

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	big := ecs.NewEntity(1<<26, 0)
	if !m.RegisterEntity(big, 1) {
		t.Fatalf("expected large id to register")
	}
	runtime.ReadMemStats(&after)
	if grown := after.TotalAlloc - before.TotalAlloc; grown > 1<<20 {
		t.Fatalf("expected registration to allocate under 1 MiB, got %d bytes", grown)
	}

	top := ecs.NewEntity(math.MaxUint32, 3)
	same := ecs.NewEntity(math.MaxUint32, 4)
	small := entity(1)
	for _, e := range []ecs.Entity{top, same, small} {
		if !m.RegisterEntity(e, 1) {
			t.Fatalf("expected %s to register", e)
		}
	}
	if m.EntityCount() != 4 {
		t.Fatalf("expected 4 tracked entities, got %d", m.EntityCount())
	}

	m.Update(0)
	if rec.count(EventEnter) != 4 {
		t.Fatalf("expected 4 enters, got %d", rec.count(EventEnter))
	}

	if !m.UnregisterEntity(big) {
		t.Fatalf("expected unregister to succeed")
	}
	if m.IsRegistered(big) || !m.IsRegistered(top) || !m.IsRegistered(same) {
		t.Fatalf("expected only the large id to be dropped")
	}
	got := m.Entities()
	want := []ecs.Entity{small, top, same}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected sweep order %v, got %v", want, got)
		}
	}
}

func TestManagerPolygonEditBetweenUpdates(t *testing.T) {
	m, rec := newTestManager()
	zone := NewPolygonTrigger("poly",
		cp.Vector{X: 0, Y: 0},
		cp.Vector{X: 10, Y: 0},
		cp.Vector{X: 10, Y: 10},
		cp.Vector{X: 0, Y: 10},
	)
	m.AddTrigger(zone)
	e := entity(1)
	m.RegisterEntity(e, 1)
	m.SetEntityPosition(e, 15, 5)
	m.Update(0)
	if len(rec.events) != 0 {
		t.Fatalf("expected no events outside polygon, got %v", rec.kinds())
	}

	poly, _ := zone.Polygon()
	poly.Translate(10, 0)
	m.Update(0)
	if got := rec.kinds(); len(got) != 1 || got[0] != EventEnter {
		t.Fatalf("expected enter after moving the polygon over the entity, got %v", got)
	}
}

func TestManagerClearEntities(t *testing.T) {
	m, rec := newTestManager()
	m.AddTrigger(NewRectangleTrigger("", 0, 0, 10, 10))
	m.RegisterEntity(entity(1), 1)
	m.RegisterEntity(entity(2), 1)
	m.SetEntityPosition(entity(2), 50, 50)
	m.Update(0)

	rec.reset()
	m.ClearEntities()
	if got := rec.kinds(); len(got) != 1 || got[0] != EventExit {
		t.Fatalf("expected one exit for the entity inside, got %v", got)
	}
	if m.EntityCount() != 0 {
		t.Fatalf("expected no tracked entities, got %d", m.EntityCount())
	}
}

func TestNilManager(t *testing.T) {
	var m *Manager
	if m.AddTrigger(NewRectangleTrigger("", 0, 0, 1, 1)) || m.RegisterEntity(entity(1), 1) || m.UnregisterEntity(entity(1)) {
		t.Fatalf("expected nil manager to reject operations")
	}
	m.Update(1)
	if m.CheckPoint(0, 0, 1) != nil || m.TriggerCount() != 0 {
		t.Fatalf("expected nil manager queries to be empty")
	}
}
