package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/triggerzones/ecs"
	"github.com/milk9111/triggerzones/ecs/component"
)

// PathSystem walks transforms along their PathFollower waypoints. Do not
// combine it with a PhysicsBody on the same entity; the physics sync would
// overwrite the transform.
type PathSystem struct {
	// DT is the simulated seconds per tick; zero means DefaultDT.
	DT float64
}

func NewPathSystem() *PathSystem {
	return &PathSystem{DT: DefaultDT}
}

func (s *PathSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	dt := s.DT
	if dt <= 0 {
		dt = DefaultDT
	}

	ecs.ForEach2(w, component.TransformComponent, component.PathFollowerComponent, func(e ecs.Entity, tf *component.Transform, pf *component.PathFollower) {
		if tf == nil || pf == nil {
			return
		}
		advancePath(tf, pf, pf.Speed*dt)
	})
}

// advancePath spends step units of travel, possibly passing several
// waypoints in one tick.
func advancePath(tf *component.Transform, pf *component.PathFollower, step float64) {
	if pf.Done || len(pf.Waypoints) == 0 || step <= 0 {
		return
	}
	pos := cp.Vector{X: tf.X, Y: tf.Y}
	// bounded so a looping path of coincident points cannot spin forever
	for range len(pf.Waypoints) + 1 {
		if pf.Next < 0 || pf.Next >= len(pf.Waypoints) {
			pf.Next = 0
		}
		wp := pf.Waypoints[pf.Next]
		target := cp.Vector{X: wp.X, Y: wp.Y}
		delta := target.Sub(pos)
		dist := delta.Length()
		if dist > step {
			pos = pos.Add(delta.Mult(step / dist))
			break
		}

		pos = target
		step -= dist
		pf.Next++
		if pf.Next >= len(pf.Waypoints) {
			if !pf.Loop {
				pf.Next = len(pf.Waypoints) - 1
				pf.Done = true
				break
			}
			pf.Next = 0
		}
		if step <= 0 {
			break
		}
	}
	tf.X = pos.X
	tf.Y = pos.Y
}
