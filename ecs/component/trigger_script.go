package component

// TriggerScript binds a tengo script to the trigger zone with TriggerID. The
// script reactor picks bindings up on its next update; changing Path rebinds.
type TriggerScript struct {
	TriggerID string
	Path      string
}

var TriggerScriptComponent = NewComponentKind[TriggerScript]()
