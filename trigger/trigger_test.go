package trigger

import (
	"testing"

	"github.com/milk9111/triggerzones/ecs"
)

func TestTriggerDefaults(t *testing.T) {
	tr := NewRectangleTrigger("door", 0, 0, 10, 10)

	if !tr.Enabled() {
		t.Fatalf("expected new trigger to be enabled")
	}
	if tr.OneShot() || tr.HasFired() {
		t.Fatalf("expected new trigger to be reusable and unfired")
	}
	if tr.Cooldown() != 0 || tr.IsOnCooldown() {
		t.Fatalf("expected no cooldown, got %v", tr.Cooldown())
	}
	if tr.Layer() != 1 {
		t.Fatalf("expected default layer 1, got %#x", tr.Layer())
	}
	if tr.Mask() != 0xFFFFFFFF {
		t.Fatalf("expected default mask all bits, got %#x", tr.Mask())
	}
	if tr.ShapeKind() != ShapeRectangle {
		t.Fatalf("expected rectangle shape, got %s", tr.ShapeKind())
	}
	if !tr.CanFire() {
		t.Fatalf("expected default trigger to be able to fire")
	}
}

func TestTriggerCanCollideWith(t *testing.T) {
	tests := []struct {
		name  string
		layer uint32
		mask  uint32
		other uint32
		want  bool
	}{
		{"default_mask_hits_anything", 1, 0xFFFFFFFF, 0x80, true},
		{"shared_bit", 1, 0b0110, 0b0100, true},
		{"no_shared_bit", 1, 0b0110, 0b1001, false},
		{"own_layer_ignored", 0b1000, 0b0001, 0b1000, false},
		{"own_layer_zero_still_collides", 0, 0b0001, 0b0001, true},
		{"zero_other_layer", 1, 0xFFFFFFFF, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := NewCircleTrigger("", 0, 0, 1)
			tr.SetLayer(tc.layer)
			tr.SetMask(tc.mask)
			if got := tr.CanCollideWith(tc.other); got != tc.want {
				t.Fatalf("expected CanCollideWith(%#b)=%v, got %v", tc.other, tc.want, got)
			}
		})
	}
}

func TestTriggerStateMachine(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "one_shot_spent_after_fire",
			run: func(t *testing.T) {
				tr := NewCircleTrigger("", 0, 0, 1)
				tr.SetOneShot(true)
				tr.MarkFired()
				if !tr.HasFired() {
					t.Fatalf("expected one-shot trigger to be marked fired")
				}
				if tr.CanFire() {
					t.Fatalf("expected spent one-shot trigger to be unable to fire")
				}
				tr.Reset()
				if tr.HasFired() || !tr.CanFire() {
					t.Fatalf("expected Reset to re-arm the trigger")
				}
			},
		},
		{
			name: "has_fired_only_when_one_shot",
			run: func(t *testing.T) {
				tr := NewCircleTrigger("", 0, 0, 1)
				tr.MarkFired()
				if tr.HasFired() {
					t.Fatalf("expected reusable trigger never to report HasFired")
				}
				tr.SetOneShot(true)
				tr.MarkFired()
				tr.SetOneShot(false)
				if tr.HasFired() {
					t.Fatalf("expected leaving one-shot mode to clear HasFired")
				}
			},
		},
		{
			name: "cooldown_counts_down",
			run: func(t *testing.T) {
				tr := NewCircleTrigger("", 0, 0, 1)
				tr.SetCooldown(1.0)
				tr.MarkFired()
				if !tr.IsOnCooldown() || tr.CanFire() {
					t.Fatalf("expected trigger on cooldown after firing")
				}
				for i := 0; i < 9; i++ {
					tr.UpdateCooldown(0.1)
				}
				if !tr.IsOnCooldown() {
					t.Fatalf("expected cooldown to remain after 0.9s, remaining %v", tr.CooldownRemaining())
				}
				tr.UpdateCooldown(0.1)
				if tr.IsOnCooldown() {
					t.Fatalf("expected cooldown to clear after 1.0s, remaining %v", tr.CooldownRemaining())
				}
				tr.UpdateCooldown(5)
				if tr.CooldownRemaining() != 0 {
					t.Fatalf("expected cooldown clamped at 0, got %v", tr.CooldownRemaining())
				}
			},
		},
		{
			name: "negative_values_ignored",
			run: func(t *testing.T) {
				tr := NewCircleTrigger("", 0, 0, 1)
				tr.SetCooldown(-3)
				if tr.Cooldown() != 0 {
					t.Fatalf("expected negative cooldown clamped to 0, got %v", tr.Cooldown())
				}
				tr.SetCooldown(2)
				tr.MarkFired()
				tr.UpdateCooldown(-1)
				if tr.CooldownRemaining() != 2 {
					t.Fatalf("expected negative dt to be ignored, got %v", tr.CooldownRemaining())
				}
			},
		},
		{
			name: "reset_keeps_enabled_flag",
			run: func(t *testing.T) {
				tr := NewCircleTrigger("", 0, 0, 1)
				tr.SetEnabled(false)
				tr.SetCooldown(3)
				tr.MarkFired()
				tr.Reset()
				if tr.Enabled() {
					t.Fatalf("expected Reset to leave trigger disabled")
				}
				if tr.IsOnCooldown() {
					t.Fatalf("expected Reset to clear the cooldown")
				}
				if tr.CanFire() {
					t.Fatalf("expected disabled trigger to be unable to fire")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestTriggerTypedShapeViews(t *testing.T) {
	tr := NewCircleTrigger("c", 1, 2, 3)
	if _, ok := tr.Rectangle(); ok {
		t.Fatalf("expected circle trigger not to be a rectangle")
	}
	c, ok := tr.Circle()
	if !ok || c.Radius() != 3 {
		t.Fatalf("expected circle view with radius 3, got %v ok=%v", c, ok)
	}

	tr.SetShape(NewPolygon())
	if _, ok := tr.Polygon(); !ok {
		t.Fatalf("expected polygon view after SetShape")
	}
	if tr.TestPoint(1, 2) {
		t.Fatalf("expected empty polygon to contain nothing")
	}

	var nilTrigger *Trigger
	if nilTrigger.TestPoint(0, 0) || nilTrigger.CanFire() || nilTrigger.CanCollideWith(1) {
		t.Fatalf("expected nil trigger to answer false")
	}
}

func TestTriggerCallbacks(t *testing.T) {
	tr := NewCircleTrigger("", 0, 0, 1)
	var got []EventKind
	tr.OnEvent(func(kind EventKind, _ ecs.Entity) { got = append(got, kind) })
	tr.OnEvent(nil)

	tr.notify(EventEnter, ecs.NewEntity(1, 0))
	tr.notify(EventExit, ecs.NewEntity(1, 0))
	if len(got) != 2 || got[0] != EventEnter || got[1] != EventExit {
		t.Fatalf("expected [enter exit], got %v", got)
	}

	tr.ClearCallbacks()
	tr.notify(EventStay, ecs.NewEntity(1, 0))
	if len(got) != 2 {
		t.Fatalf("expected no callbacks after ClearCallbacks, got %v", got)
	}
}
