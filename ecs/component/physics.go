package component

import "github.com/jakecoffman/cp"

// PhysicsBody links an entity to a Chipmunk body whose position drives the
// entity's Transform.
type PhysicsBody struct {
	Body *cp.Body
	// OffsetX/OffsetY shift the sampled point relative to the body centre.
	OffsetX float64
	OffsetY float64
}

var PhysicsBodyComponent = NewComponentKind[PhysicsBody]()
