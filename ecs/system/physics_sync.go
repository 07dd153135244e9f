package system

import (
	"github.com/milk9111/triggerzones/ecs"
	"github.com/milk9111/triggerzones/ecs/component"
)

// PhysicsSyncSystem copies Chipmunk body positions into transforms so the
// trigger system samples where the physics step left each body.
type PhysicsSyncSystem struct{}

func NewPhysicsSyncSystem() *PhysicsSyncSystem {
	return &PhysicsSyncSystem{}
}

func (s *PhysicsSyncSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.TransformComponent, component.PhysicsBodyComponent, func(e ecs.Entity, tf *component.Transform, pb *component.PhysicsBody) {
		if tf == nil || pb == nil || pb.Body == nil {
			return
		}
		pos := pb.Body.Position()
		tf.X = pos.X + pb.OffsetX
		tf.Y = pos.Y + pb.OffsetY
	})
}
