package reconcile

import (
	"github.com/vango-dev/minidom/pkg/host"
	"github.com/vango-dev/minidom/pkg/vdom"
)

// mount materializes v under container. If oldHost is set, the new host node
// takes its place and the old subtree is forgotten; otherwise the new node is
// appended.
func (e *Engine) mount(v *vdom.VNode, container, oldHost host.Node) (host.Node, error) {
	if err := validate(v); err != nil {
		return nil, err
	}
	if v.Kind == vdom.KindComponent {
		node, _, err := e.mountComponent(v, container, oldHost, nil)
		return node, err
	}
	return e.mountNative(v, container, oldHost)
}

// mountComponent creates a fresh instance for v and mounts what it renders,
// resolving component chains until a native or text node is reached.
// owner is the instance whose render output v is, if any.
func (e *Engine) mountComponent(v *vdom.VNode, container, oldHost host.Node, owner *Instance) (host.Node, *Instance, error) {
	inst := e.newInstance(v, owner)
	out, err := inst.render()
	if err != nil {
		return nil, nil, err
	}

	var node host.Node
	if out.Kind == vdom.KindComponent {
		var child *Instance
		node, child, err = e.mountComponent(out, container, oldHost, inst)
		inst.child = child
	} else {
		node, err = e.mountNative(out, container, oldHost)
	}
	if err != nil {
		return nil, nil, err
	}

	inst.setDOM(node)
	e.records[node].component = inst
	return node, inst, nil
}

// mountNative creates the host node for an element or text node, mounts its
// children while it is still detached, and then inserts it with a single
// host insertion.
func (e *Engine) mountNative(v *vdom.VNode, container, oldHost host.Node) (host.Node, error) {
	var (
		node host.Node
		err  error
	)
	if v.Kind == vdom.KindText {
		node, err = e.host.CreateTextNode(v.TextContent())
	} else {
		node, err = e.host.CreateElement(v.Tag)
		if err == nil {
			err = e.reconcileAttributes(node, v, nil)
		}
	}
	if err != nil {
		return nil, err
	}
	e.records[node] = &record{vnode: v}

	if v.Kind == vdom.KindElement {
		for _, child := range v.Children {
			if _, err := e.mount(child, node, nil); err != nil {
				e.forget(node)
				return nil, err
			}
		}
	}

	if oldHost != nil {
		if err := e.host.ReplaceChild(container, node, oldHost); err != nil {
			e.forget(node)
			return nil, err
		}
		e.forget(oldHost)
		return node, nil
	}
	if err := e.host.AppendChild(container, node); err != nil {
		e.forget(node)
		return nil, err
	}
	return node, nil
}
