package prefabs

import (
	"fmt"
	"sort"

	"github.com/milk9111/triggerzones/ecs/component"
	"gopkg.in/yaml.v3"
)

// ActorSpec is an entity tracked by the trigger zones. Optional behaviour is
// declared per component name under components.
type ActorSpec struct {
	Name       string         `yaml:"name"`
	X          float64        `yaml:"x"`
	Y          float64        `yaml:"y"`
	Player     bool           `yaml:"player"`
	Components map[string]any `yaml:"components"`
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type PathComponentSpec struct {
	Speed     float64              `yaml:"speed"`
	Loop      bool                 `yaml:"loop"`
	Waypoints []component.Waypoint `yaml:"waypoints"`
}

type TTLComponentSpec struct {
	Frames int `yaml:"frames"`
}

type SensorComponentSpec struct {
	Disabled bool `yaml:"disabled"`
}

// ActorComponents is the decoded form of ActorSpec.Components. Nil fields
// were not declared.
type ActorComponents struct {
	CollisionLayer *component.CollisionLayer
	Path           *PathComponentSpec
	TTL            *TTLComponentSpec
	Sensor         *SensorComponentSpec
}

// Decode resolves every declared component, failing on unknown names.
func (a ActorSpec) Decode() (ActorComponents, error) {
	var out ActorComponents

	names := make([]string, 0, len(a.Components))
	for name := range a.Components {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		raw := a.Components[name]
		var err error
		switch name {
		case "collision_layer":
			var spec component.CollisionLayer
			spec, err = DecodeComponentSpec[component.CollisionLayer](raw)
			out.CollisionLayer = &spec
		case "path":
			var spec PathComponentSpec
			spec, err = DecodeComponentSpec[PathComponentSpec](raw)
			out.Path = &spec
		case "ttl":
			var spec TTLComponentSpec
			spec, err = DecodeComponentSpec[TTLComponentSpec](raw)
			out.TTL = &spec
		case "sensor":
			var spec SensorComponentSpec
			spec, err = DecodeComponentSpec[SensorComponentSpec](raw)
			out.Sensor = &spec
		default:
			err = fmt.Errorf("unknown component")
		}
		if err != nil {
			return ActorComponents{}, fmt.Errorf("actor %q: component %s: %w", a.Name, name, err)
		}
	}
	return out, nil
}
