package system

import (
	"github.com/milk9111/triggerzones/ecs"
	"github.com/milk9111/triggerzones/ecs/component"
)

// EventActorExpired is the world event type pushed when a TTL runs out.
const EventActorExpired = "actor.expired"

// ActorExpired is the payload of EventActorExpired. Name comes from the
// entity's ActorTag, if it had one.
type ActorExpired struct {
	Entity ecs.Entity
	Name   string
}

// TTLSystem counts TTL frames down and destroys the entity at zero. Schedule
// it before TriggerSystem so an expired actor leaves its zones on the same
// tick.
type TTLSystem struct{}

func NewTTLSystem() *TTLSystem {
	return &TTLSystem{}
}

func (s *TTLSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.TTLComponent, func(e ecs.Entity, ttl *component.TTL) {
		if ttl == nil {
			return
		}
		if ttl.Frames > 0 {
			ttl.Frames--
			if ttl.Frames > 0 {
				return
			}
		}

		ev := ActorExpired{Entity: e}
		if tag, ok := ecs.Get(w, e, component.ActorTagComponent); ok {
			ev.Name = tag.Name
		}
		w.DestroyEntity(e)
		w.Events().Push(ecs.Event{Type: EventActorExpired, Data: ev})
	})
}
