package prefabs

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/triggerzones/ecs"
	"github.com/milk9111/triggerzones/ecs/component"
	"github.com/milk9111/triggerzones/trigger"
)

// Scene is what BuildScene produced.
type Scene struct {
	Spec     *SceneSpec
	Triggers []*trigger.Trigger
	// Actors maps actor names to their entities; unnamed actors are only in
	// ActorList.
	Actors    map[string]ecs.Entity
	ActorList []ecs.Entity
	Player    ecs.Entity
}

// BuildZone turns a zone spec into an unowned trigger.
func BuildZone(z ZoneSpec) (*trigger.Trigger, error) {
	if err := z.Validate(); err != nil {
		return nil, err
	}

	var t *trigger.Trigger
	switch strings.ToLower(strings.TrimSpace(z.Shape)) {
	case ShapeRectangle:
		t = trigger.NewRectangleTrigger(z.ID, z.X, z.Y, z.Width, z.Height)
	case ShapeCircle:
		t = trigger.NewCircleTrigger(z.ID, z.X, z.Y, z.Radius)
	case ShapePolygon:
		verts := make([]cp.Vector, 0, len(z.Points))
		for _, p := range z.Points {
			verts = append(verts, cp.Vector{X: p.X, Y: p.Y})
		}
		t = trigger.NewPolygonTrigger(z.ID, verts...)
		if z.Rotation != 0 {
			poly, _ := t.Polygon()
			poly.Rotate(z.Rotation * math.Pi / 180)
		}
	}

	t.SetEnabled(z.IsEnabled())
	t.SetOneShot(z.OneShot)
	t.SetCooldown(z.Cooldown)
	t.SetLayer(z.Collision.EffectiveCategory())
	t.SetMask(z.Collision.EffectiveMask())
	return t, nil
}

// BuildScene adds the scene's zones to m and spawns its actors into w. Zones
// and actors that fail to build are skipped and reported in the joined
// error; everything else is still built.
func BuildScene(spec *SceneSpec, m *trigger.Manager, w *ecs.World) (*Scene, error) {
	if spec == nil || m == nil || w == nil {
		return nil, errors.New("prefabs: build scene: nil spec, manager or world")
	}

	scene := &Scene{Spec: spec, Actors: map[string]ecs.Entity{}}
	var errs []error

	for _, z := range spec.Zones {
		t, err := BuildZone(z)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !m.AddTrigger(t) {
			errs = append(errs, fmt.Errorf("zone %q: id already in use", z.ID))
			continue
		}
		scene.Triggers = append(scene.Triggers, t)

		if z.Script != "" {
			if z.ID == "" {
				errs = append(errs, fmt.Errorf("zone with script %q needs an id", z.Script))
				continue
			}
			e := w.CreateEntity()
			_ = ecs.Add(w, e, component.TriggerScriptComponent, &component.TriggerScript{TriggerID: z.ID, Path: z.Script})
		}
	}

	for _, a := range spec.Actors {
		e, err := buildActor(w, a)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		scene.ActorList = append(scene.ActorList, e)
		if a.Name != "" {
			scene.Actors[a.Name] = e
		}
		if a.Player && !scene.Player.Valid() {
			scene.Player = e
		}
	}

	if err := errors.Join(errs...); err != nil {
		return scene, fmt.Errorf("prefabs: build scene %q: %w", spec.Name, err)
	}
	return scene, nil
}

func buildActor(w *ecs.World, a ActorSpec) (ecs.Entity, error) {
	comps, err := a.Decode()
	if err != nil {
		return 0, err
	}

	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.TransformComponent, &component.Transform{X: a.X, Y: a.Y})
	_ = ecs.Add(w, e, component.ActorTagComponent, &component.ActorTag{Name: a.Name})

	sensor := &component.TriggerSensor{}
	if comps.Sensor != nil {
		sensor.Disabled = comps.Sensor.Disabled
	}
	_ = ecs.Add(w, e, component.TriggerSensorComponent, sensor)

	layer := &component.CollisionLayer{}
	if comps.CollisionLayer != nil {
		*layer = *comps.CollisionLayer
	}
	_ = ecs.Add(w, e, component.CollisionLayerComponent, layer)

	if comps.Path != nil && len(comps.Path.Waypoints) > 0 {
		_ = ecs.Add(w, e, component.PathFollowerComponent, &component.PathFollower{
			Waypoints: append([]component.Waypoint(nil), comps.Path.Waypoints...),
			Speed:     comps.Path.Speed,
			Loop:      comps.Path.Loop,
		})
	}
	if comps.TTL != nil && comps.TTL.Frames > 0 {
		_ = ecs.Add(w, e, component.TTLComponent, &component.TTL{Frames: comps.TTL.Frames})
	}
	if a.Player {
		_ = ecs.Add(w, e, component.PlayerTagComponent, &component.PlayerTag{})
	}
	return e, nil
}
