package component

// Transform is an entity's world position. Trigger detection samples X/Y.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponentKind[Transform]()
