package trigger

import "github.com/milk9111/triggerzones/ecs"

// entityRegistry keys tracked entities by their full handle. Entities are
// opaque here, so memory follows the number of tracked entities rather than
// the size of their ids. Iteration is registration order, except that remove
// moves the last entry into the freed slot.
type entityRegistry struct {
	index    map[ecs.Entity]int
	entities []ecs.Entity
	states   []*entityState
}

func (r *entityRegistry) has(e ecs.Entity) bool {
	_, ok := r.index[e]
	return ok
}

func (r *entityRegistry) get(e ecs.Entity) (*entityState, bool) {
	idx, ok := r.index[e]
	if !ok {
		return nil, false
	}
	return r.states[idx], true
}

// add stores st under e unless e is already tracked.
func (r *entityRegistry) add(e ecs.Entity, st *entityState) bool {
	if r.has(e) {
		return false
	}
	if r.index == nil {
		r.index = make(map[ecs.Entity]int)
	}
	r.index[e] = len(r.states)
	r.entities = append(r.entities, e)
	r.states = append(r.states, st)
	return true
}

func (r *entityRegistry) remove(e ecs.Entity) bool {
	idx, ok := r.index[e]
	if !ok {
		return false
	}
	last := len(r.states) - 1
	if idx != last {
		r.entities[idx] = r.entities[last]
		r.states[idx] = r.states[last]
		r.index[r.entities[idx]] = idx
	}
	r.entities[last] = 0
	r.states[last] = nil
	r.entities = r.entities[:last]
	r.states = r.states[:last]
	delete(r.index, e)
	return true
}

func (r *entityRegistry) len() int {
	return len(r.states)
}
