package system

import (
	"github.com/milk9111/triggerzones/ecs"
	"github.com/milk9111/triggerzones/ecs/component"
	"github.com/milk9111/triggerzones/trigger"
)

// DefaultDT is one tick at 60 TPS.
const DefaultDT = 1.0 / 60.0

// TriggerSystem feeds a trigger.Manager from the world. Every entity holding
// a Transform and an enabled TriggerSensor is tracked, using its
// CollisionLayer category (1 when absent) as its layer. Entities that die or
// lose their sensor are unregistered, which dispatches their exits.
type TriggerSystem struct {
	Manager *trigger.Manager
	// DT is the simulated seconds per tick; zero means DefaultDT.
	DT float64

	tracked ecs.SparseSet[struct{}]
}

func NewTriggerSystem(manager *trigger.Manager) *TriggerSystem {
	return &TriggerSystem{Manager: manager, DT: DefaultDT}
}

func (s *TriggerSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.Manager == nil {
		return
	}

	for _, e := range append([]ecs.Entity(nil), s.tracked.Entities()...) {
		if s.eligible(w, e) {
			continue
		}
		s.Manager.UnregisterEntity(e)
		s.tracked.Remove(e)
	}

	ecs.ForEach2(w, component.TransformComponent, component.TriggerSensorComponent, func(e ecs.Entity, tf *component.Transform, sensor *component.TriggerSensor) {
		if tf == nil || sensor == nil || sensor.Disabled {
			return
		}
		layer := uint32(1)
		if cl, ok := ecs.Get(w, e, component.CollisionLayerComponent); ok {
			layer = cl.EffectiveCategory()
		}

		if !s.tracked.Has(e) {
			if !s.Manager.RegisterEntity(e, layer) {
				return
			}
			s.tracked.Set(e, struct{}{})
		} else {
			s.Manager.SetEntityLayer(e, layer)
		}
		s.Manager.SetEntityPosition(e, tf.X, tf.Y)
	})

	dt := s.DT
	if dt <= 0 {
		dt = DefaultDT
	}
	s.Manager.Update(dt)
}

// Release unregisters every entity this system registered, dispatching
// their exits.
func (s *TriggerSystem) Release() {
	if s == nil {
		return
	}
	for _, e := range append([]ecs.Entity(nil), s.tracked.Entities()...) {
		if s.Manager != nil {
			s.Manager.UnregisterEntity(e)
		}
	}
	s.tracked.Clear()
}

func (s *TriggerSystem) eligible(w *ecs.World, e ecs.Entity) bool {
	if !w.IsAlive(e) || !ecs.Has(w, e, component.TransformComponent) {
		return false
	}
	sensor, ok := ecs.Get(w, e, component.TriggerSensorComponent)
	return ok && !sensor.Disabled
}
