package reconcile

import (
	"context"
	"maps"

	"github.com/vango-dev/minidom/internal/errors"
	"github.com/vango-dev/minidom/pkg/host"
	"github.com/vango-dev/minidom/pkg/vdom"
)

// Instance is a live component. It is created when a component node is
// first mounted at a position and survives re-renders for as long as the
// component type at that position stays the same.
type Instance struct {
	engine   *Engine
	typ      *vdom.ComponentType
	props    vdom.Props
	state    vdom.State
	stateful vdom.Stateful // nil for function components
	dom      host.Node     // host node holding the rendered output
	owner    *Instance     // component that rendered this one directly
	child    *Instance     // component this one rendered directly
}

var _ vdom.Ctx = (*Instance)(nil)

func (e *Engine) newInstance(v *vdom.VNode, owner *Instance) *Instance {
	inst := &Instance{
		engine: e,
		typ:    v.Comp,
		props:  v.Props,
		state:  vdom.State{},
		owner:  owner,
	}
	if v.Comp.IsStateful() {
		inst.stateful = v.Comp.Construct(v.Props)
		if s, ok := inst.stateful.(vdom.InitialStater); ok {
			maps.Copy(inst.state, s.InitialState(v.Props))
		}
	}
	return inst
}

// Type returns the component type the instance was created from.
func (i *Instance) Type() *vdom.ComponentType { return i.typ }

// Props implements vdom.Ctx.
func (i *Instance) Props() vdom.Props { return i.props }

// State implements vdom.Ctx.
func (i *Instance) State() vdom.State { return i.state }

// Stateful returns the value built by the component's constructor, or nil
// for function components.
func (i *Instance) Stateful() vdom.Stateful { return i.stateful }

// Child returns the instance this one rendered directly, or nil when its
// output is an element or text node.
func (i *Instance) Child() *Instance { return i.child }

// Owner returns the instance that rendered this one directly, or nil.
func (i *Instance) Owner() *Instance { return i.owner }

// DOM returns the host node currently holding the instance's output.
func (i *Instance) DOM() host.Node { return i.dom }

func (i *Instance) setDOM(node host.Node) { i.dom = node }

// Mounted reports whether the instance still owns its host node.
func (i *Instance) Mounted() bool {
	return i.engine.owns(i)
}

// SetState implements vdom.Ctx. partial is merged into the state, later keys
// overwriting earlier ones, and the component is re-rendered and reconciled
// against its current host node before SetState returns. If the pass fails,
// the state is left as it was.
func (i *Instance) SetState(partial vdom.State) error {
	return i.engine.setState(context.Background(), i, partial)
}

// SetStateContext is SetState with a parent context for tracing.
func (i *Instance) SetStateContext(ctx context.Context, partial vdom.State) error {
	return i.engine.setState(ctx, i, partial)
}

// render produces the instance's output for its current props and state.
func (i *Instance) render() (*vdom.VNode, error) {
	var out *vdom.VNode
	if i.typ.IsStateful() {
		if i.stateful == nil {
			return nil, errors.New("R002").WithDetailf("Constructor of %s returned nil.", i.typ.Name())
		}
		out = i.stateful.Render(i)
	} else {
		fn := i.typ.RenderFunction()
		if fn == nil {
			return nil, errors.New("R002").WithDetailf("Component %s has no render function.", i.typ.Name())
		}
		out = fn(i.props)
	}
	if out == nil {
		return nil, errors.New("R006").WithDetailf("%s rendered nil.", i.typ.Name())
	}
	if err := validate(out); err != nil {
		return nil, err
	}
	return out, nil
}

// reconcileComponent updates oldInst in place when v is the same component,
// and otherwise mounts a fresh instance over oldHost. Props never force a
// remount on their own.
func (e *Engine) reconcileComponent(v *vdom.VNode, oldInst *Instance, oldHost, container host.Node, owner *Instance) (host.Node, *Instance, error) {
	if oldInst != nil && oldInst.typ == v.Comp {
		oldInst.props = v.Props
		out, err := oldInst.render()
		if err != nil {
			return nil, nil, err
		}
		node, err := e.reconcileOutput(oldInst, out, oldHost, container)
		return node, oldInst, err
	}
	return e.mountComponent(v, container, oldHost, owner)
}

// reconcileOutput diffs inst's fresh output against oldHost and records inst
// as the owner of the resulting node.
func (e *Engine) reconcileOutput(inst *Instance, out *vdom.VNode, oldHost, container host.Node) (host.Node, error) {
	var (
		node host.Node
		err  error
	)
	if out.Kind == vdom.KindComponent {
		var child *Instance
		node, child, err = e.reconcileComponent(out, inst.child, oldHost, container, inst)
		if err != nil {
			return nil, err
		}
		inst.child = child
	} else {
		node, err = e.diff(out, container, oldHost, inst)
		if err != nil {
			return nil, err
		}
		inst.child = nil
	}

	inst.setDOM(node)
	if rec := e.records[node]; rec != nil {
		rec.component = inst
	}
	return node, nil
}

// setState merges partial into inst's state and reconciles its subtree.
// If the pass fails the previous state is restored.
func (e *Engine) setState(ctx context.Context, inst *Instance, partial vdom.State) error {
	name := inst.typ.Name()
	if e.rendering {
		// runPass rejects the nested call without running anything.
		return e.runPass(ctx, TriggerSetState, name, nil)
	}
	if !e.owns(inst) {
		return errors.New("R004").WithDetailf("%s was replaced or removed before SetState.", name)
	}

	next := maps.Clone(inst.state)
	if next == nil {
		next = vdom.State{}
	}
	maps.Copy(next, partial)
	prev := inst.state
	inst.state = next

	err := e.runPass(ctx, TriggerSetState, name, func() error {
		oldHost := inst.dom
		container := e.host.Parent(oldHost)
		if container == nil {
			return errors.New("R005").WithDetailf("The host node of %s is detached.", name)
		}

		out, err := inst.render()
		if err != nil {
			return err
		}
		node, err := e.reconcileOutput(inst, out, oldHost, container)
		if err != nil {
			return err
		}

		// Components whose output is inst share its host node.
		top := inst
		for o := inst.owner; o != nil && o.child == top; o = o.owner {
			o.setDOM(node)
			top = o
		}
		if rec := e.records[node]; rec != nil {
			rec.component = top
		}
		return nil
	})
	if err != nil {
		inst.state = prev
	}
	return err
}

// owns reports whether inst is part of the component chain recorded on its
// host node.
func (e *Engine) owns(inst *Instance) bool {
	if inst == nil || inst.dom == nil {
		return false
	}
	rec := e.records[inst.dom]
	if rec == nil {
		return false
	}
	for c := rec.component; c != nil; c = c.child {
		if c == inst {
			return true
		}
	}
	return false
}
