package component

// Waypoint is a point on a PathFollower route.
type Waypoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PathFollower moves an entity along Waypoints at Speed units per second.
type PathFollower struct {
	Waypoints []Waypoint
	Speed     float64
	Loop      bool

	// Next is the index of the waypoint being approached.
	Next int
	Done bool
}

var PathFollowerComponent = NewComponentKind[PathFollower]()
