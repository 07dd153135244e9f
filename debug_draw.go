package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/triggerzones/common"
	"github.com/milk9111/triggerzones/ecs"
	"github.com/milk9111/triggerzones/ecs/component"
	"github.com/milk9111/triggerzones/prefabs"
	"github.com/milk9111/triggerzones/trigger"
	"golang.org/x/image/colornames"
)

const (
	debugCircleSegments = 24
	debugDotSize        = 4
)

func zoneStyles(spec *prefabs.SceneSpec) map[string]color.Color {
	styles := make(map[string]color.Color, len(spec.Zones))
	for _, z := range spec.Zones {
		if z.ID != "" && z.Color != nil && z.Color.Color != nil {
			styles[z.ID] = z.Color.Color
		}
	}
	return styles
}

// zoneColor fades zones that cannot fire: disabled zones are grey, spent
// one-shots dim and cooling zones brighten back as the cooldown runs out.
func zoneColor(t *trigger.Trigger, styles map[string]color.Color) color.NRGBA {
	base := color.Color(colornames.Lightskyblue)
	if c, ok := styles[t.ID()]; ok {
		base = c
	}
	if !t.Enabled() {
		base = colornames.Gray
	}
	c := color.NRGBAModel.Convert(base).(color.NRGBA)

	alpha := 1.0
	switch {
	case t.HasFired():
		alpha = 0.3
	case t.IsOnCooldown() && t.Cooldown() > 0:
		alpha = common.Lerp(1, 0.3, common.Clamp(t.CooldownRemaining()/t.Cooldown(), 0, 1))
	}
	c.A = uint8(float64(c.A) * alpha)
	return c
}

func drawTriggers(screen *ebiten.Image, m *trigger.Manager, styles map[string]color.Color, showBounds bool) {
	for _, t := range m.Triggers() {
		c := zoneColor(t, styles)
		width := float32(1)
		if len(m.EntitiesInTrigger(t)) > 0 {
			width = 3
		}

		switch s := t.Shape().(type) {
		case *trigger.Rectangle:
			x, y := s.Position()
			w, h := s.Size()
			if width > 1 {
				fill := c
				fill.A /= 4
				vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), fill, false)
			}
			vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), width, c, false)
		case *trigger.Circle:
			cx, cy := s.Center()
			vector.StrokeCircle(screen, float32(cx), float32(cy), float32(s.Radius()), width, c, true)
		case *trigger.Polygon:
			verts := s.Vertices()
			for i := range verts {
				a, b := verts[i], verts[(i+1)%len(verts)]
				vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, c, true)
			}
		}

		if showBounds {
			b := t.Bounds()
			vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, colornames.Dimgray, false)
		}
		if t.ID() != "" {
			b := t.Bounds()
			ebitenutil.DebugPrintAt(screen, t.ID(), int(b.X), int(b.Y)-16)
		}
	}
}

func drawActors(screen *ebiten.Image, w *ecs.World) {
	ecs.ForEach2(w, component.TransformComponent, component.TriggerSensorComponent, func(e ecs.Entity, tf *component.Transform, sensor *component.TriggerSensor) {
		c := color.Color(colornames.White)
		switch {
		case sensor.Disabled:
			c = colornames.Gray
		case ecs.Has(w, e, component.PlayerTagComponent):
			c = colornames.Yellow
		}
		half := float32(debugDotSize)
		x, y := float32(tf.X), float32(tf.Y)
		vector.StrokeLine(screen, x-half, y, x+half, y, 2, c, false)
		vector.StrokeLine(screen, x, y-half, x, y+half, 2, c, false)
		if tag, ok := ecs.Get(w, e, component.ActorTagComponent); ok && tag.Name != "" {
			ebitenutil.DebugPrintAt(screen, tag.Name, int(tf.X)+6, int(tf.Y)+2)
		}
	})
}

// drawSpace outlines the Chipmunk shapes, i.e. the player's body.
func drawSpace(screen *ebiten.Image, space *cp.Space) {
	if space == nil || screen == nil {
		return
	}
	cp.DrawSpace(space, &physicsDebugDrawer{screen: screen})
}

type physicsDebugDrawer struct {
	screen *ebiten.Image
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawCircle(pos, radius, outline)
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.drawLine(pos, end, outline)
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
	if radius > 0 {
		d.drawCircle(a, radius, outline)
		d.drawCircle(b, radius, outline)
	}
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], outline)
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if size <= 0 {
		size = debugDotSize
	}
	half := size / 2
	d.drawLine(cp.Vector{X: pos.X - half, Y: pos.Y}, cp.Vector{X: pos.X + half, Y: pos.Y}, fill)
	d.drawLine(cp.Vector{X: pos.X, Y: pos.Y - half}, cp.Vector{X: pos.X, Y: pos.Y + half}, fill)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	return cp.FColor{R: 0.1, G: 0.6, B: 0.1, A: 0.5}
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	ebitenutil.DrawLine(d.screen, a.X, a.Y, b.X, b.Y, toNRGBA(c))
}

func (d *physicsDebugDrawer) drawPolygon(verts []cp.Vector, c cp.FColor) {
	for i := range verts {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], c)
	}
}

func (d *physicsDebugDrawer) drawCircle(center cp.Vector, radius float64, c cp.FColor) {
	if radius <= 0 {
		return
	}
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius})
	}
	d.drawPolygon(points, c)
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(common.Clamp(float64(c.R), 0, 1) * 255),
		G: uint8(common.Clamp(float64(c.G), 0, 1) * 255),
		B: uint8(common.Clamp(float64(c.B), 0, 1) * 255),
		A: uint8(common.Clamp(float64(c.A), 0, 1) * 255),
	}
}
