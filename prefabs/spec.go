package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/triggerzones/ecs/component"
	"gopkg.in/yaml.v3"
)

const (
	ShapeRectangle = "rectangle"
	ShapeCircle    = "circle"
	ShapePolygon   = "polygon"
)

// SceneSpec is a yaml scene: trigger zones plus the actors walking through
// them.
type SceneSpec struct {
	Name     string        `yaml:"name"`
	Settings SceneSettings `yaml:"settings"`
	Zones    []ZoneSpec    `yaml:"zones"`
	Actors   []ActorSpec   `yaml:"actors"`
}

type SceneSettings struct {
	TPS    int     `yaml:"tps"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Ticks  int     `yaml:"ticks"`
}

// DT returns seconds per tick, defaulting to 60 TPS.
func (s SceneSettings) DT() float64 {
	if s.TPS <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(s.TPS)
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ZoneSpec describes one trigger. Which geometry fields apply depends on
// Shape: x/y/width/height for rectangles, x/y/radius for circles (x/y is the
// centre) and points for polygons.
type ZoneSpec struct {
	ID     string      `yaml:"id"`
	Shape  string      `yaml:"shape"`
	X      float64     `yaml:"x"`
	Y      float64     `yaml:"y"`
	Width  float64     `yaml:"width"`
	Height float64     `yaml:"height"`
	Radius float64     `yaml:"radius"`
	Points []PointSpec `yaml:"points"`
	// Rotation in degrees, applied to polygons around their centroid.
	Rotation float64 `yaml:"rotation"`

	Enabled   *bool                    `yaml:"enabled"`
	OneShot   bool                     `yaml:"one_shot"`
	Cooldown  float64                  `yaml:"cooldown"`
	Collision component.CollisionLayer `yaml:"collision"`
	Script    string                   `yaml:"script"`
	Color     *YAMLColor               `yaml:"color"`
}

// IsEnabled applies the enabled-by-default rule.
func (z ZoneSpec) IsEnabled() bool {
	return z.Enabled == nil || *z.Enabled
}

// Validate reports geometry problems that would make the zone useless.
func (z ZoneSpec) Validate() error {
	switch strings.ToLower(strings.TrimSpace(z.Shape)) {
	case ShapeRectangle:
		if z.Width <= 0 || z.Height <= 0 {
			return fmt.Errorf("zone %q: rectangle needs positive width and height", z.ID)
		}
	case ShapeCircle:
		if z.Radius <= 0 {
			return fmt.Errorf("zone %q: circle needs a positive radius", z.ID)
		}
	case ShapePolygon:
		if len(z.Points) < 3 {
			return fmt.Errorf("zone %q: polygon needs at least 3 points, got %d", z.ID, len(z.Points))
		}
	default:
		return fmt.Errorf("zone %q: unknown shape %q", z.ID, z.Shape)
	}
	if z.Cooldown < 0 {
		return fmt.Errorf("zone %q: negative cooldown %v", z.ID, z.Cooldown)
	}
	return nil
}

// Validate checks every zone and actor, joining all problems found.
func (s *SceneSpec) Validate() error {
	if s == nil {
		return errors.New("prefabs: nil scene")
	}
	var errs []error
	ids := make(map[string]bool, len(s.Zones))
	for _, z := range s.Zones {
		if err := z.Validate(); err != nil {
			errs = append(errs, err)
		}
		if z.ID == "" {
			continue
		}
		if ids[z.ID] {
			errs = append(errs, fmt.Errorf("zone %q: duplicate id", z.ID))
		}
		ids[z.ID] = true
	}
	for _, a := range s.Actors {
		if _, err := a.Decode(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadScene loads a scene by name from disk or the embedded scenes.
func LoadScene(name string) (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec](name)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// ParseScene decodes scene yaml that did not come from the prefabs tree.
func ParseScene(data []byte) (*SceneSpec, error) {
	var spec SceneSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal scene: %w", err)
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
