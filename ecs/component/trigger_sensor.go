package component

// TriggerSensor marks an entity whose position is tracked by trigger zones.
type TriggerSensor struct {
	// Disabled keeps the component attached but stops tracking; the entity
	// leaves every zone it was inside.
	Disabled bool
}

var TriggerSensorComponent = NewComponentKind[TriggerSensor]()
