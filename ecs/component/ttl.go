package component

// TTL destroys its entity after Frames ticks. A tracked entity that expires
// leaves every trigger zone it was inside.
type TTL struct {
	Frames int
}

var TTLComponent = NewComponentKind[TTL]()
