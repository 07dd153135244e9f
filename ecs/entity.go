package ecs

import "strconv"

// Entity is an opaque handle: the low 32 bits are a slot id, the high 32 bits
// the slot's generation. Zero is never a valid entity.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

// NewEntity builds a handle from an id and generation owned by the caller's
// own storage. id 0 yields an invalid entity.
func NewEntity(id, gen uint32) Entity {
	if id == 0 {
		return 0
	}
	return makeEntity(entityID(id), generation(gen))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

// ID returns the slot id part of the handle.
func (e Entity) ID() uint32 {
	return uint32(e.id())
}

// Generation returns the generation part of the handle.
func (e Entity) Generation() uint32 {
	return uint32(e.generation())
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e.id()), 10) + "v" + strconv.FormatUint(uint64(e.generation()), 10)
}

func (e Entity) Valid() bool {
	return e.id() > 0
}
