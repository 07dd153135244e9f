package main

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/triggerzones/ecs"
	"github.com/milk9111/triggerzones/ecs/system"
	"github.com/milk9111/triggerzones/prefabs"
	"github.com/milk9111/triggerzones/trigger"
	"golang.design/x/clipboard"
)

const (
	defaultWidth  = 640
	defaultHeight = 360
	statusFrames  = 180
)

type Game struct {
	frames int
	dt     float64

	sceneName string
	debug     bool

	world     *ecs.World
	manager   *trigger.Manager
	scheduler *ecs.Scheduler
	space     *cp.Space
	scene     *prefabs.Scene
	styles    map[string]color.Color

	triggers *system.TriggerSystem
	reactor  *system.ScriptReactor
	eventLog *system.EventLog
	player   *Player

	watcher *prefabs.Watcher

	paused      bool
	showBounds  bool
	pauseUI     *ebitenui.UI
	clipboardOK bool

	status      string
	statusTimer int
}

func NewGame(sceneName string, debug bool, tps int, watch bool) (*Game, error) {
	g := &Game{
		sceneName: sceneName,
		debug:     debug,
		eventLog:  system.NewEventLog(nil),
	}
	if err := g.loadScene(tps); err != nil {
		return nil, err
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard: unavailable: %v", err)
	} else {
		g.clipboardOK = true
	}

	if watch {
		w, err := prefabs.NewWatcher(prefabs.DefaultWatchDirs()...)
		if err != nil {
			log.Printf("prefabs: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.pauseUI = NewPauseUI(g)
	return g, nil
}

// loadScene builds a fresh world and manager from the current scene file.
// The event log survives reloads.
func (g *Game) loadScene(tps int) error {
	spec, err := prefabs.LoadScene(g.sceneName)
	if err != nil {
		return err
	}
	if tps > 0 {
		spec.Settings.TPS = tps
	}

	world := ecs.NewWorld()
	manager := trigger.NewManager()
	manager.Debug = g.debug

	scene, err := prefabs.BuildScene(spec, manager, world)
	if err != nil {
		if scene == nil {
			return err
		}
		// partial scenes are still playable
		log.Printf("%v", err)
	}

	if g.triggers != nil {
		g.triggers.Release()
	}

	g.world = world
	g.manager = manager
	g.scene = scene
	g.dt = spec.Settings.DT()
	g.styles = zoneStyles(spec)
	g.space = cp.NewSpace()

	g.eventLog.World = world
	g.triggers = system.NewTriggerSystem(manager)
	g.triggers.DT = g.dt
	g.reactor = system.NewScriptReactor(manager, world)
	manager.AddListener(g.eventLog)
	manager.AddListener(g.reactor)

	path := system.NewPathSystem()
	path.DT = g.dt
	g.scheduler = ecs.NewScheduler(
		g.reactor,
		path,
		system.NewPhysicsSyncSystem(),
		system.NewTTLSystem(),
		g.triggers,
	)

	g.player = nil
	if scene.Player.Valid() {
		g.player = NewPlayer(g.space, world, scene.Player)
	}

	if spec.Settings.TPS > 0 {
		ebiten.SetTPS(spec.Settings.TPS)
	} else {
		ebiten.SetTPS(ebiten.DefaultTPS)
	}
	g.setStatus(fmt.Sprintf("loaded %s: %d zones, %d actors", spec.Name, manager.TriggerCount(), len(scene.ActorList)))
	return nil
}

func (g *Game) Update() error {
	g.frames++
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.showBounds = !g.showBounds
	}
	if g.statusTimer > 0 {
		g.statusTimer--
	}

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if g.player != nil {
		w, h := g.bounds()
		g.player.Update(g.dt, w, h)
	}
	g.space.Step(g.dt)
	g.scheduler.Update(g.world)
	g.drainEvents()
	return nil
}

func (g *Game) drainEvents() {
	for _, ev := range g.world.Events().Drain() {
		switch data := ev.Data.(type) {
		case system.ScriptEvent:
			g.setStatus(fmt.Sprintf("%s from %s", data.Name, data.TriggerID))
		case system.ActorExpired:
			g.setStatus(fmt.Sprintf("%s expired", data.Name))
		}
	}
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case ev, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.handleReload(ev)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("prefabs: watch error: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) handleReload(ev prefabs.WatchEvent) {
	switch ev.Kind {
	case prefabs.WatchScript:
		g.reactor.Invalidate(ev.Path)
		g.setStatus("reloaded " + prefabs.ScriptName(ev.Path))
	case prefabs.WatchScene:
		if prefabs.SceneName(ev.Path) != prefabs.SceneName(g.sceneName) {
			return
		}
		if err := g.loadScene(0); err != nil {
			log.Printf("prefabs: reload %s: %v", g.sceneName, err)
			g.setStatus("reload failed, see log")
		}
	}
}

// ResetTriggers re-arms every zone.
func (g *Game) ResetTriggers() {
	g.manager.ResetTriggers()
	g.setStatus("triggers reset")
}

// CopyLog puts the event log on the system clipboard.
func (g *Game) CopyLog() {
	if !g.clipboardOK {
		g.setStatus("clipboard unavailable")
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(g.eventLog.String()))
	g.setStatus(fmt.Sprintf("copied %d log lines", len(g.eventLog.Lines())))
}

func (g *Game) Reload() {
	if err := g.loadScene(0); err != nil {
		log.Printf("prefabs: reload %s: %v", g.sceneName, err)
		g.setStatus("reload failed, see log")
	}
}

func (g *Game) setStatus(s string) {
	g.status = s
	g.statusTimer = statusFrames
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) bounds() (float64, float64) {
	w, h := g.scene.Spec.Settings.Width, g.scene.Spec.Settings.Height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawTriggers(screen, g.manager, g.styles, g.showBounds)
	drawActors(screen, g.world)
	if g.debug {
		drawSpace(screen, g.space)
	}

	hud := fmt.Sprintf("FPS: %.1f  zones: %d  tracked: %d  [Esc] pause  [F2] bounds", ebiten.ActualFPS(), g.manager.TriggerCount(), g.manager.EntityCount())
	if g.player != nil {
		hud += "\nplayer: " + g.player.StateName()
	}
	ebitenutil.DebugPrint(screen, hud)
	lines := g.eventLog.Lines()
	if n := len(lines); n > 6 {
		lines = lines[n-6:]
	}
	w, h := g.bounds()
	ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), 4, int(h)-16*len(lines)-4)
	if g.statusTimer > 0 {
		ebitenutil.DebugPrintAt(screen, g.status, int(w)/2-3*len(g.status), 20)
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.bounds()
	return int(w), int(h)
}
