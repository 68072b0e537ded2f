package screen

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/sqwad/input"
	"github.com/milk9111/sqwad/prefabs"
	"github.com/milk9111/sqwad/state"
	"github.com/milk9111/sqwad/ui"
)

// ScriptHost is what a screen offers to its scripts.
type ScriptHost interface {
	state.Screen
	Manager() *state.Manager
	Canvas() *ui.Canvas
	Input() input.State
	Action(name string, arg any) bool
}

const scriptLifecycleDispatch = `
if __phase == "init" {
	onInit(__engine, __state)
} else if __phase == "update" {
	onUpdate(__engine, __state)
} else if __phase == "exit" {
	onExit(__engine, __state)
}
`

var scriptButtons = []input.Button{input.Select, input.Cancel, input.Fire, input.Up, input.Down}

// ScriptChild runs a tengo script alongside its screen. The script defines
// onInit, onUpdate and onExit, each called with the engine API and a state
// map that persists between calls. Engine calls that change the screen are
// applied after the script returns.
type ScriptChild struct {
	path     string
	host     ScriptHost
	compiled *tengo.Compiled
	state    *tengo.Map
	engine   *tengo.ImmutableMap
	dt       float64
	ops      []func() error
}

func NewScriptChild(path string) *ScriptChild {
	return &ScriptChild{path: path}
}

func (s *ScriptChild) OnInitializeState(master state.Screen) {
	host, ok := master.(ScriptHost)
	if !ok {
		log.Printf("screen: script %s: %T cannot host scripts", s.path, master)
		return
	}
	s.host = host
	if err := s.load(); err != nil {
		log.Printf("screen: script %s: load: %v", s.path, err)
		return
	}
	s.run("init")
}

func (s *ScriptChild) OnUpdateState(dt float64) {
	s.dt = dt
	s.run("update")
}

func (s *ScriptChild) OnExitState() {
	s.run("exit")
	s.compiled = nil
}

// State returns the value the script stored under key.
func (s *ScriptChild) State(key string) any {
	if s.state == nil {
		return nil
	}
	return objectToAny(s.state.Value[key])
}

func (s *ScriptChild) load() error {
	src, err := prefabs.LoadScript(s.path)
	if err != nil {
		return err
	}
	script := tengo.NewScript([]byte(string(src) + "\n" + scriptLifecycleDispatch))
	_ = script.Add("__phase", "")
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return err
	}
	s.compiled = compiled
	s.state = &tengo.Map{Value: map[string]tengo.Object{}}
	s.engine = s.buildEngine()
	return nil
}

func (s *ScriptChild) run(phase string) {
	if s.compiled == nil {
		return
	}
	if err := s.runPhase(phase); err != nil {
		log.Printf("screen: script %s: %s: %v", s.path, phase, err)
	}
	ops := s.ops
	s.ops = nil
	for _, op := range ops {
		if err := op(); err != nil {
			log.Printf("screen: script %s: %v", s.path, err)
		}
	}
}

func (s *ScriptChild) runPhase(phase string) error {
	if err := s.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := s.compiled.Set("__engine", s.engine); err != nil {
		return err
	}
	if err := s.compiled.Set("__state", s.state); err != nil {
		return err
	}
	return s.compiled.Run()
}

func (s *ScriptChild) later(op func() error) {
	s.ops = append(s.ops, op)
}

func (s *ScriptChild) buildEngine() *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	stateOp := func(name string, op func(m *state.Manager, id state.StateID) error) {
		values[name] = &tengo.UserFunction{Name: name, Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) < 1 {
				return tengo.FalseValue, nil
			}
			target := strings.TrimSpace(objectAsString(args[0]))
			m := s.host.Manager()
			id, err := m.Lookup(target)
			if err != nil {
				return tengo.FalseValue, nil
			}
			s.later(func() error { return op(m, id) })
			return tengo.TrueValue, nil
		}}
	}
	stateOp("push_state", func(m *state.Manager, id state.StateID) error {
		_, err := m.PushState(id)
		return err
	})
	stateOp("switch_state", (*state.Manager).SwitchState)
	stateOp("pop_to_state", (*state.Manager).PopToState)

	values["pop_state"] = &tengo.UserFunction{Name: "pop_state", Value: func(args ...tengo.Object) (tengo.Object, error) {
		m := s.host.Manager()
		s.later(m.PopState)
		return tengo.TrueValue, nil
	}}

	elementOp := func(name string, op func(c *ui.Canvas, element string) error) {
		values[name] = &tengo.UserFunction{Name: name, Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) < 1 {
				return tengo.FalseValue, nil
			}
			element := strings.TrimSpace(objectAsString(args[0]))
			c := s.host.Canvas()
			if _, err := c.Get(element); err != nil {
				return tengo.FalseValue, nil
			}
			s.later(func() error { return op(c, element) })
			return tengo.TrueValue, nil
		}}
	}
	elementOp("show", (*ui.Canvas).Show)
	elementOp("hide", (*ui.Canvas).Hide)

	elementQuery := func(name string, query func(h *ui.Hideable) bool) {
		values[name] = &tengo.UserFunction{Name: name, Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) < 1 {
				return tengo.FalseValue, nil
			}
			h, err := s.host.Canvas().Get(strings.TrimSpace(objectAsString(args[0])))
			if err != nil || !query(h) {
				return tengo.FalseValue, nil
			}
			return tengo.TrueValue, nil
		}}
	}
	elementQuery("is_shown", (*ui.Hideable).IsShown)
	elementQuery("fully_shown", (*ui.Hideable).FullyShown)
	elementQuery("fully_hidden", (*ui.Hideable).FullyHidden)

	values["action"] = &tengo.UserFunction{Name: "action", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		name := strings.TrimSpace(objectAsString(args[0]))
		var arg any
		if len(args) > 1 {
			arg = objectToAny(args[1])
		}
		s.later(func() error {
			if !s.host.Action(name, arg) {
				return fmt.Errorf("unknown action %q", name)
			}
			return nil
		})
		return tengo.TrueValue, nil
	}}

	values["pressed"] = &tengo.UserFunction{Name: "pressed", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		b, ok := input.ParseButton(objectAsString(args[0]))
		if !ok || !s.host.Input().Pressed(b) {
			return tengo.FalseValue, nil
		}
		return tengo.TrueValue, nil
	}}

	values["any_pressed"] = &tengo.UserFunction{Name: "any_pressed", Value: func(args ...tengo.Object) (tengo.Object, error) {
		in := s.host.Input()
		for _, b := range scriptButtons {
			if in.Pressed(b) {
				return tengo.TrueValue, nil
			}
		}
		if in.Rotate != input.RotateNone {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}

	values["dt"] = &tengo.UserFunction{Name: "dt", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: s.dt}, nil
	}}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, arg := range args {
			parts = append(parts, objectAsString(arg))
		}
		log.Printf("screen: script %s: %s", s.path, strings.Join(parts, " "))
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
	case *tengo.Undefined:
		return nil
	default:
		return v.String()
	}
}
