package component

// PlayerTag marks the keyboard-driven actor in the sandbox.
type PlayerTag struct{}

var PlayerTagComponent = NewComponentKind[PlayerTag]()

// ActorTag names an actor so logs and event output can refer to it.
type ActorTag struct {
	Name string
}

var ActorTagComponent = NewComponentKind[ActorTag]()
