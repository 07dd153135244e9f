package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/triggerzones/common"
	"github.com/milk9111/triggerzones/ecs"
	"github.com/milk9111/triggerzones/ecs/component"
)

const (
	walkSpeed   = 120.0 // units per second
	sprintSpeed = 240.0
	playerSize  = 12.0
)

// playerState is the interface each concrete player state implements.
type playerState interface {
	Name() string
	Speed() float64
	HandleInput(p *Player, moving, sprint bool)
}

type idleState struct{}

func (idleState) Name() string   { return "idle" }
func (idleState) Speed() float64 { return 0 }
func (idleState) HandleInput(p *Player, moving, sprint bool) {
	if moving {
		p.setState(stateWalking)
	}
}

type walkingState struct{}

func (walkingState) Name() string   { return "walking" }
func (walkingState) Speed() float64 { return walkSpeed }
func (walkingState) HandleInput(p *Player, moving, sprint bool) {
	switch {
	case !moving:
		p.setState(stateIdle)
	case sprint:
		p.setState(stateSprinting)
	}
}

type sprintingState struct{}

func (sprintingState) Name() string   { return "sprinting" }
func (sprintingState) Speed() float64 { return sprintSpeed }
func (sprintingState) HandleInput(p *Player, moving, sprint bool) {
	switch {
	case !moving:
		p.setState(stateIdle)
	case !sprint:
		p.setState(stateWalking)
	}
}

var (
	stateIdle      playerState = idleState{}
	stateWalking   playerState = walkingState{}
	stateSprinting playerState = sprintingState{}
)

// Player drives a kinematic Chipmunk body from the keyboard. Its entity gets
// a PhysicsBody so the physics sync feeds the body position to the trigger
// zones.
type Player struct {
	Entity ecs.Entity
	body   *cp.Body
	state  playerState
}

func NewPlayer(space *cp.Space, w *ecs.World, e ecs.Entity) *Player {
	x, y := 0.0, 0.0
	if tf, ok := ecs.Get(w, e, component.TransformComponent); ok {
		x, y = tf.X, tf.Y
	}

	body := cp.NewKinematicBody()
	body.SetPosition(cp.Vector{X: x, Y: y})
	space.AddBody(body)
	shape := cp.NewBox(body, playerSize, playerSize, 0)
	shape.SetSensor(true)
	space.AddShape(shape)

	_ = ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Body: body})
	return &Player{Entity: e, body: body, state: stateIdle}
}

func (p *Player) setState(s playerState) {
	p.state = s
}

func (p *Player) StateName() string {
	return p.state.Name()
}

// Update sets the body velocity for the next space step and keeps the body
// inside the scene.
func (p *Player) Update(dt, width, height float64) {
	dir := cp.Vector{}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dir.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dir.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dir.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dir.Y++
	}
	moving := dir.X != 0 || dir.Y != 0
	sprint := ebiten.IsKeyPressed(ebiten.KeyShift)
	p.state.HandleInput(p, moving, sprint)

	vel := cp.Vector{}
	if moving {
		vel = dir.Normalize().Mult(p.state.Speed())
	}

	// stop at the scene edge instead of stepping past it
	pos := p.body.Position()
	next := pos.Add(vel.Mult(dt))
	half := playerSize / 2
	clamped := cp.Vector{
		X: common.Clamp(next.X, half, width-half),
		Y: common.Clamp(next.Y, half, height-half),
	}
	if dt > 0 {
		vel = clamped.Sub(pos).Mult(1 / dt)
	}
	p.body.SetVelocityVector(vel)
}
