package trigger

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/triggerzones/ecs"
)

const (
	// DefaultLayer is bit 0.
	DefaultLayer uint32 = 1
	// DefaultMask collides with every layer.
	DefaultMask uint32 = math.MaxUint32

	// remaining cooldown below this is treated as elapsed, so that ticks
	// summing to the cooldown clear it despite rounding
	cooldownEpsilon = 1e-9
)

// Trigger is a zone that reports entities entering, staying in and leaving
// its shape. Once added to a Manager the manager owns it until removal.
type Trigger struct {
	id    string
	shape Shape

	enabled  bool
	oneShot  bool
	hasFired bool

	// seconds
	cooldown          float64
	cooldownRemaining float64

	layer uint32
	mask  uint32

	callbacks []Callback
	manager   *Manager
}

// NewTrigger wraps shape in an enabled trigger with default filtering. The id
// may be empty; a non-empty id must be unique within a manager.
func NewTrigger(id string, shape Shape) *Trigger {
	return &Trigger{
		id:      id,
		shape:   shape,
		enabled: true,
		layer:   DefaultLayer,
		mask:    DefaultMask,
	}
}

func NewRectangleTrigger(id string, x, y, width, height float64) *Trigger {
	return NewTrigger(id, NewRectangle(x, y, width, height))
}

func NewCircleTrigger(id string, cx, cy, radius float64) *Trigger {
	return NewTrigger(id, NewCircle(cx, cy, radius))
}

func NewPolygonTrigger(id string, vertices ...cp.Vector) *Trigger {
	return NewTrigger(id, NewPolygon(vertices...))
}

func (t *Trigger) ID() string {
	if t == nil {
		return ""
	}
	return t.id
}

// Manager returns the manager that owns the trigger, or nil.
func (t *Trigger) Manager() *Manager {
	if t == nil {
		return nil
	}
	return t.manager
}

func (t *Trigger) Shape() Shape {
	if t == nil {
		return nil
	}
	return t.shape
}

// SetShape swaps the trigger's geometry. Membership is re-evaluated against
// the new shape on the next manager update.
func (t *Trigger) SetShape(shape Shape) {
	if t == nil {
		return
	}
	t.shape = shape
}

// Rectangle returns the shape as a rectangle when it is one.
func (t *Trigger) Rectangle() (*Rectangle, bool) {
	if t == nil {
		return nil, false
	}
	r, ok := t.shape.(*Rectangle)
	return r, ok
}

func (t *Trigger) Circle() (*Circle, bool) {
	if t == nil {
		return nil, false
	}
	c, ok := t.shape.(*Circle)
	return c, ok
}

func (t *Trigger) Polygon() (*Polygon, bool) {
	if t == nil {
		return nil, false
	}
	p, ok := t.shape.(*Polygon)
	return p, ok
}

// ShapeKind returns the kind of the wrapped shape, or 0 without one.
func (t *Trigger) ShapeKind() ShapeKind {
	if t == nil || t.shape == nil {
		return 0
	}
	return t.shape.Kind()
}

// TestPoint delegates to the shape.
func (t *Trigger) TestPoint(x, y float64) bool {
	if t == nil || t.shape == nil {
		return false
	}
	return t.shape.TestPoint(x, y)
}

// ContainsPoint is an alias of TestPoint.
func (t *Trigger) ContainsPoint(x, y float64) bool {
	return t.TestPoint(x, y)
}

func (t *Trigger) Bounds() Bounds {
	if t == nil || t.shape == nil {
		return Bounds{}
	}
	return t.shape.Bounds()
}

func (t *Trigger) Enabled() bool {
	return t != nil && t.enabled
}

func (t *Trigger) SetEnabled(enabled bool) {
	if t == nil {
		return
	}
	t.enabled = enabled
}

func (t *Trigger) OneShot() bool {
	return t != nil && t.oneShot
}

// SetOneShot toggles one-shot mode. Leaving one-shot mode forgets whether the
// trigger already fired.
func (t *Trigger) SetOneShot(oneShot bool) {
	if t == nil {
		return
	}
	t.oneShot = oneShot
	if !oneShot {
		t.hasFired = false
	}
}

// HasFired is only ever true for one-shot triggers.
func (t *Trigger) HasFired() bool {
	return t != nil && t.hasFired
}

func (t *Trigger) Cooldown() float64 {
	if t == nil {
		return 0
	}
	return t.cooldown
}

// SetCooldown sets the delay in seconds after an enter before the trigger can
// fire again. Negative values become zero.
func (t *Trigger) SetCooldown(seconds float64) {
	if t == nil {
		return
	}
	t.cooldown = max(seconds, 0)
}

func (t *Trigger) CooldownRemaining() float64 {
	if t == nil {
		return 0
	}
	return t.cooldownRemaining
}

func (t *Trigger) IsOnCooldown() bool {
	return t != nil && t.cooldownRemaining > 0
}

func (t *Trigger) Layer() uint32 {
	if t == nil {
		return 0
	}
	return t.layer
}

func (t *Trigger) SetLayer(layer uint32) {
	if t == nil {
		return
	}
	t.layer = layer
}

func (t *Trigger) Mask() uint32 {
	if t == nil {
		return 0
	}
	return t.mask
}

func (t *Trigger) SetMask(mask uint32) {
	if t == nil {
		return
	}
	t.mask = mask
}

// CanCollideWith reports whether the trigger's mask shares a bit with
// otherLayer. The trigger's own layer is not consulted.
func (t *Trigger) CanCollideWith(otherLayer uint32) bool {
	return t != nil && t.mask&otherLayer != 0
}

// CanFire reports whether an enter or stay may be dispatched right now.
func (t *Trigger) CanFire() bool {
	if t == nil || !t.enabled || t.cooldownRemaining > 0 {
		return false
	}
	return !(t.oneShot && t.hasFired)
}

// MarkFired records an enter dispatch: one-shot triggers become spent and the
// cooldown, if any, restarts.
func (t *Trigger) MarkFired() {
	if t == nil {
		return
	}
	if t.oneShot {
		t.hasFired = true
	}
	if t.cooldown > 0 {
		t.cooldownRemaining = t.cooldown
	}
}

// Reset re-arms a spent one-shot trigger and clears any cooldown. The enabled
// flag is left alone.
func (t *Trigger) Reset() {
	if t == nil {
		return
	}
	t.hasFired = false
	t.cooldownRemaining = 0
}

// UpdateCooldown counts the cooldown down by dt seconds, stopping at zero.
func (t *Trigger) UpdateCooldown(dt float64) {
	if t == nil || dt <= 0 || t.cooldownRemaining <= 0 {
		return
	}
	t.cooldownRemaining -= dt
	if t.cooldownRemaining < cooldownEpsilon {
		t.cooldownRemaining = 0
	}
}

// OnEvent registers a callback invoked for every event this trigger
// dispatches, before the manager's listeners.
func (t *Trigger) OnEvent(cb Callback) {
	if t == nil || cb == nil {
		return
	}
	t.callbacks = append(t.callbacks, cb)
}

func (t *Trigger) ClearCallbacks() {
	if t == nil {
		return
	}
	t.callbacks = nil
}

func (t *Trigger) notify(kind EventKind, e ecs.Entity) {
	for _, cb := range t.callbacks {
		cb(kind, e)
	}
}
