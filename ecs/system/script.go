package system

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/triggerzones/ecs"
	"github.com/milk9111/triggerzones/ecs/component"
	"github.com/milk9111/triggerzones/prefabs"
	"github.com/milk9111/triggerzones/trigger"
)

// Scripts assign the hooks they need with `=`; undefined hooks are skipped.
const scriptPrelude = `
on_enter := undefined
on_stay := undefined
on_exit := undefined
`

const scriptDispatch = `
if __phase == "enter" && is_callable(on_enter) {
	on_enter(__engine, __event)
} else if __phase == "stay" && is_callable(on_stay) {
	on_stay(__engine, __event)
} else if __phase == "exit" && is_callable(on_exit) {
	on_exit(__engine, __event)
}
`

// ScriptEvent is the payload of "script.*" world events raised by emit().
type ScriptEvent struct {
	TriggerID string
	Entity    ecs.Entity
	Name      string
	Data      any
}

type scriptRuntime struct {
	path     string
	compiled *tengo.Compiled
	err      error
}

// ScriptReactor runs tengo scripts in response to trigger events. A script
// is bound to a trigger id, either directly with Bind or through a
// TriggerScript component picked up by Update.
//
// Hooks receive (engine, event). The engine exposes enable, disable, reset,
// fired and count, each taking an optional trigger id and defaulting to the
// trigger that raised the event, plus emit(name, data) and log(args...).
// engine.state is a map that persists per trigger across calls.
type ScriptReactor struct {
	Manager *trigger.Manager
	// World receives emitted events; nil drops them.
	World *ecs.World
	// Load reads a script by name; nil means prefabs.LoadScript.
	Load func(name string) ([]byte, error)

	bindings map[string]string
	runtimes map[string]*scriptRuntime
	states   map[string]*tengo.Map
}

func NewScriptReactor(manager *trigger.Manager, w *ecs.World) *ScriptReactor {
	return &ScriptReactor{
		Manager:  manager,
		World:    w,
		bindings: map[string]string{},
		runtimes: map[string]*scriptRuntime{},
		states:   map[string]*tengo.Map{},
	}
}

// Bind attaches the script at path to the trigger with triggerID.
func (r *ScriptReactor) Bind(triggerID, path string) bool {
	if r == nil || strings.TrimSpace(triggerID) == "" || strings.TrimSpace(path) == "" {
		return false
	}
	if r.bindings == nil {
		r.bindings = map[string]string{}
	}
	key := prefabs.ScriptName(path)
	if r.bindings[triggerID] != key {
		r.bindings[triggerID] = key
		delete(r.states, triggerID)
	}
	return true
}

func (r *ScriptReactor) Unbind(triggerID string) {
	if r == nil {
		return
	}
	delete(r.bindings, triggerID)
	delete(r.states, triggerID)
}

// Binding returns the script name bound to triggerID.
func (r *ScriptReactor) Binding(triggerID string) (string, bool) {
	if r == nil {
		return "", false
	}
	path, ok := r.bindings[triggerID]
	return path, ok
}

// Invalidate drops the compiled script for path so the next event reloads
// it. Per-trigger state survives.
func (r *ScriptReactor) Invalidate(path string) {
	if r == nil {
		return
	}
	delete(r.runtimes, prefabs.ScriptName(path))
}

// Update binds scripts declared through TriggerScript components.
func (r *ScriptReactor) Update(w *ecs.World) {
	if r == nil || w == nil {
		return
	}
	ecs.ForEach(w, component.TriggerScriptComponent, func(e ecs.Entity, ts *component.TriggerScript) {
		if ts == nil {
			return
		}
		r.Bind(ts.TriggerID, ts.Path)
	})
}

func (r *ScriptReactor) TriggerEntered(t *trigger.Trigger, ev trigger.Event) { r.run(t, ev) }
func (r *ScriptReactor) TriggerStayed(t *trigger.Trigger, ev trigger.Event)  { r.run(t, ev) }
func (r *ScriptReactor) TriggerExited(t *trigger.Trigger, ev trigger.Event)  { r.run(t, ev) }

func (r *ScriptReactor) run(t *trigger.Trigger, ev trigger.Event) {
	if r == nil || t == nil || t.ID() == "" {
		return
	}
	path, ok := r.bindings[t.ID()]
	if !ok {
		return
	}
	rt := r.runtime(path)
	if rt.err != nil {
		return
	}

	engine := r.buildEngine(t, ev)
	if err := rt.compiled.Set("__phase", ev.Kind.String()); err != nil {
		log.Printf("script: trigger=%s path=%s set phase: %v", t.ID(), path, err)
		return
	}
	if err := rt.compiled.Set("__engine", engine); err != nil {
		log.Printf("script: trigger=%s path=%s set engine: %v", t.ID(), path, err)
		return
	}
	if err := rt.compiled.Set("__event", eventObject(t, ev)); err != nil {
		log.Printf("script: trigger=%s path=%s set event: %v", t.ID(), path, err)
		return
	}
	if err := rt.compiled.Run(); err != nil {
		log.Printf("script: trigger=%s path=%s %s error: %v", t.ID(), path, ev.Kind, err)
	}
}

func (r *ScriptReactor) runtime(path string) *scriptRuntime {
	if r.runtimes == nil {
		r.runtimes = map[string]*scriptRuntime{}
	}
	if rt, ok := r.runtimes[path]; ok {
		return rt
	}
	rt := &scriptRuntime{path: path}
	rt.compiled, rt.err = compileTriggerScript(r.load, path)
	if rt.err != nil {
		log.Printf("script: path=%s load error: %v", path, rt.err)
	}
	r.runtimes[path] = rt
	return rt
}

func (r *ScriptReactor) load(name string) ([]byte, error) {
	if r.Load != nil {
		return r.Load(name)
	}
	return prefabs.LoadScript(name)
}

func compileTriggerScript(load func(string) ([]byte, error), path string) (*tengo.Compiled, error) {
	src, err := load(path)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript([]byte(scriptPrelude + "\n" + string(src) + "\n" + scriptDispatch))
	_ = script.Add("__phase", "")
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__event", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", path, err)
	}
	return compiled, nil
}

func eventObject(t *trigger.Trigger, ev trigger.Event) *tengo.ImmutableMap {
	return &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"kind":    &tengo.String{Value: ev.Kind.String()},
		"trigger": &tengo.String{Value: t.ID()},
		"entity":  &tengo.Int{Value: int64(ev.Entity)},
		"x":       &tengo.Float{Value: ev.X},
		"y":       &tengo.Float{Value: ev.Y},
	}}
}

func (r *ScriptReactor) buildEngine(current *trigger.Trigger, ev trigger.Event) *tengo.ImmutableMap {
	if r.states == nil {
		r.states = map[string]*tengo.Map{}
	}
	state, ok := r.states[current.ID()]
	if !ok {
		state = &tengo.Map{Value: map[string]tengo.Object{}}
		r.states[current.ID()] = state
	}

	target := func(args []tengo.Object) *trigger.Trigger {
		if len(args) < 1 {
			return current
		}
		id := strings.TrimSpace(objectAsString(args[0]))
		if id == "" {
			return current
		}
		return r.Manager.Trigger(id)
	}
	boolObject := func(v bool) tengo.Object {
		if v {
			return tengo.TrueValue
		}
		return tengo.FalseValue
	}

	values := map[string]tengo.Object{"state": state}

	values["enable"] = &tengo.UserFunction{Name: "enable", Value: func(args ...tengo.Object) (tengo.Object, error) {
		t := target(args)
		if t == nil {
			return tengo.FalseValue, nil
		}
		t.SetEnabled(true)
		return tengo.TrueValue, nil
	}}

	values["disable"] = &tengo.UserFunction{Name: "disable", Value: func(args ...tengo.Object) (tengo.Object, error) {
		t := target(args)
		if t == nil {
			return tengo.FalseValue, nil
		}
		t.SetEnabled(false)
		return tengo.TrueValue, nil
	}}

	values["reset"] = &tengo.UserFunction{Name: "reset", Value: func(args ...tengo.Object) (tengo.Object, error) {
		t := target(args)
		if t == nil {
			return tengo.FalseValue, nil
		}
		t.Reset()
		return tengo.TrueValue, nil
	}}

	values["fired"] = &tengo.UserFunction{Name: "fired", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return boolObject(target(args).HasFired()), nil
	}}

	values["count"] = &tengo.UserFunction{Name: "count", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: int64(len(r.Manager.EntitiesInTrigger(target(args))))}, nil
	}}

	values["emit"] = &tengo.UserFunction{Name: "emit", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if r.World == nil || len(args) < 1 {
			return tengo.FalseValue, nil
		}
		name := strings.TrimSpace(objectAsString(args[0]))
		if name == "" {
			return tengo.FalseValue, nil
		}
		var data any
		if len(args) > 1 {
			data = objectToAny(args[1])
		}
		r.World.Events().Push(ecs.Event{Type: "script." + name, Data: ScriptEvent{
			TriggerID: current.ID(),
			Entity:    ev.Entity,
			Name:      name,
			Data:      data,
		}})
		return tengo.TrueValue, nil
	}}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			parts = append(parts, objectAsString(a))
		}
		log.Printf("script: trigger=%s %s", current.ID(), strings.Join(parts, " "))
		return tengo.UndefinedValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}

func objectToAny(obj tengo.Object) any {
	if obj == nil {
		return nil
	}

	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	case *tengo.Int:
		return int(v.Value)
	case *tengo.Float:
		return v.Value
	case *tengo.Bool:
		return !v.IsFalsy()
	case *tengo.Array:
		out := make([]any, 0, len(v.Value))
		for _, item := range v.Value {
			out = append(out, objectToAny(item))
		}
		return out
	case *tengo.Map:
		out := make(map[string]any, len(v.Value))
		for k, item := range v.Value {
			out[k] = objectToAny(item)
		}
		return out
	case *tengo.ImmutableMap:
		out := make(map[string]any, len(v.Value))
		for k, item := range v.Value {
			out[k] = objectToAny(item)
		}
		return out
	case *tengo.Undefined:
		return nil
	default:
		return v.String()
	}
}
