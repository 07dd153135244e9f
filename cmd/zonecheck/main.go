// Command zonecheck loads a scene without opening a window, prints what its
// trigger zones look like and replays a fixed number of ticks, printing the
// events the zones produce.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/milk9111/triggerzones/ecs"
	"github.com/milk9111/triggerzones/ecs/component"
	"github.com/milk9111/triggerzones/ecs/system"
	"github.com/milk9111/triggerzones/prefabs"
	"github.com/milk9111/triggerzones/trigger"
)

const defaultTicks = 300

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("zonecheck", flag.ContinueOnError)
	sceneName := fs.String("scene", "sandbox.yaml", "scene name in prefabs/scenes/ (.yaml optional)")
	ticks := fs.Int("ticks", 0, "ticks to simulate; 0 uses the scene's ticks setting")
	dt := fs.Float64("dt", 0, "seconds per tick; 0 uses the scene's tps")
	verbose := fs.Bool("v", false, "print stay events too")
	if err := fs.Parse(args); err != nil {
		return err
	}

	spec, err := prefabs.LoadScene(*sceneName)
	if err != nil {
		return err
	}

	w := ecs.NewWorld()
	m := trigger.NewManager()
	scene, err := prefabs.BuildScene(spec, m, w)
	if err != nil {
		if scene == nil {
			return err
		}
		fmt.Fprintf(out, "warning: %v\n", err)
	}

	step := *dt
	if step <= 0 {
		step = spec.Settings.DT()
	}
	n := *ticks
	if n <= 0 {
		n = spec.Settings.Ticks
	}
	if n <= 0 {
		n = defaultTicks
	}

	printZones(out, spec.Name, m)

	eventLog := system.NewEventLog(w)
	reactor := system.NewScriptReactor(m, w)
	m.AddListener(eventLog)
	m.AddListener(reactor)

	path := system.NewPathSystem()
	path.DT = step
	triggers := system.NewTriggerSystem(m)
	triggers.DT = step
	scheduler := ecs.NewScheduler(reactor, path, system.NewTTLSystem(), triggers)

	fmt.Fprintf(out, "\nsimulating %d ticks at dt=%.4f with %d actors\n", n, step, len(scene.ActorList))
	p := &eventPrinter{out: out, names: actorNames(w), verbose: *verbose, counts: map[trigger.EventKind]int{}}
	for tick := 1; tick <= n; tick++ {
		scheduler.Update(w)
		p.drain(w, fmt.Sprintf("%5d", tick))
	}
	// exit hooks run during release, so their script events land here too
	triggers.Release()
	p.drain(w, "  end")

	fmt.Fprintf(out, "\n%d enter, %d stay, %d exit\n", p.counts[trigger.EventEnter], p.counts[trigger.EventStay], p.counts[trigger.EventExit])
	return nil
}

type eventPrinter struct {
	out     io.Writer
	names   map[ecs.Entity]string
	verbose bool
	counts  map[trigger.EventKind]int
}

// drain prints the queued world events, each prefixed with when.
func (p *eventPrinter) drain(w *ecs.World, when string) {
	for _, ev := range w.Events().Drain() {
		switch data := ev.Data.(type) {
		case system.TriggerEvent:
			p.counts[data.Kind]++
			if data.Kind == trigger.EventStay && !p.verbose {
				continue
			}
			fmt.Fprintf(p.out, "%s  %s%s\n", when, data, p.actor(data.Entity))
		case system.ScriptEvent:
			fmt.Fprintf(p.out, "%s  %s from %s data=%v\n", when, ev.Type, data.TriggerID, data.Data)
		case system.ActorExpired:
			fmt.Fprintf(p.out, "%s  %s %s%s\n", when, ev.Type, data.Entity, p.actor(data.Entity))
		}
	}
}

func (p *eventPrinter) actor(e ecs.Entity) string {
	if name, ok := p.names[e]; ok {
		return " (" + name + ")"
	}
	return ""
}

func printZones(out io.Writer, name string, m *trigger.Manager) {
	fmt.Fprintf(out, "scene %s: %d zones\n", name, m.TriggerCount())
	for _, t := range m.Triggers() {
		id := t.ID()
		if id == "" {
			id = "<anon>"
		}
		b := t.Bounds()
		line := fmt.Sprintf("  %-12s %-9s bounds=(%.1f, %.1f, %.1f, %.1f) area=%.1f layer=%d mask=%#x",
			id, t.ShapeKind(), b.X, b.Y, b.W, b.H, shapeArea(t.Shape()), t.Layer(), t.Mask())

		var flags []string
		if poly, ok := t.Polygon(); ok {
			if !poly.IsValid() {
				flags = append(flags, "invalid")
			} else if !poly.IsConvex() {
				flags = append(flags, "concave")
			}
		}
		if !t.Enabled() {
			flags = append(flags, "disabled")
		}
		if t.OneShot() {
			flags = append(flags, "one-shot")
		}
		if t.Cooldown() > 0 {
			flags = append(flags, fmt.Sprintf("cooldown=%.2fs", t.Cooldown()))
		}
		if len(flags) > 0 {
			line += " [" + strings.Join(flags, " ") + "]"
		}
		fmt.Fprintln(out, line)
	}
}

func shapeArea(s trigger.Shape) float64 {
	switch s := s.(type) {
	case *trigger.Rectangle:
		return s.Area()
	case *trigger.Circle:
		return s.Area()
	case *trigger.Polygon:
		return s.Area()
	}
	return 0
}

func actorNames(w *ecs.World) map[ecs.Entity]string {
	names := map[ecs.Entity]string{}
	ecs.ForEach(w, component.ActorTagComponent, func(e ecs.Entity, tag *component.ActorTag) {
		if tag.Name != "" {
			names[e] = tag.Name
		}
	})
	return names
}
