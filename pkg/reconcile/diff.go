package reconcile

import (
	"github.com/vango-dev/minidom/pkg/host"
	"github.com/vango-dev/minidom/pkg/vdom"
)

// diff reconciles v against oldHost, the host node currently at v's position
// under container, and returns the host node that occupies the position
// afterwards. owner is set when v is the render output of that instance.
func (e *Engine) diff(v *vdom.VNode, container, oldHost host.Node, owner *Instance) (host.Node, error) {
	if err := validate(v); err != nil {
		return nil, err
	}
	if oldHost == nil {
		return e.mount(v, container, nil)
	}

	rec := e.records[oldHost]
	if v.Kind == vdom.KindComponent {
		var oldInst *Instance
		if rec != nil {
			oldInst = rec.component
		}
		node, _, err := e.reconcileComponent(v, oldInst, oldHost, container, owner)
		return node, err
	}

	// Nodes the engine did not produce have no record and are replaced.
	if rec == nil || !vdom.SameType(rec.vnode, v) {
		return e.mount(v, container, oldHost)
	}

	// A component used to render here and a plain node took its place.
	if owner == nil {
		rec.component = nil
	}
	return oldHost, e.update(v, oldHost, rec)
}

// update patches a host node whose type matches v, then its children.
func (e *Engine) update(v *vdom.VNode, node host.Node, rec *record) error {
	old := rec.vnode
	rec.vnode = v

	if v.Kind == vdom.KindText {
		if text := v.TextContent(); text != old.TextContent() {
			return e.host.SetText(node, text)
		}
		return nil
	}

	if err := e.reconcileAttributes(node, v, old); err != nil {
		return err
	}

	// Positions at or past len(children) do not exist yet; diff mounts them
	// in order, so appending keeps indices aligned.
	children := e.host.ChildNodes(node)
	for i, child := range v.Children {
		var oldChild host.Node
		if i < len(children) {
			oldChild = children[i]
		}
		if _, err := e.diff(child, node, oldChild, nil); err != nil {
			return err
		}
	}

	return e.prune(node, len(v.Children))
}

// prune removes host children at index keep and beyond, last first.
func (e *Engine) prune(node host.Node, keep int) error {
	children := e.host.ChildNodes(node)
	for i := len(children) - 1; i >= keep; i-- {
		if err := e.host.RemoveChild(node, children[i]); err != nil {
			return err
		}
		e.forget(children[i])
	}
	return nil
}
