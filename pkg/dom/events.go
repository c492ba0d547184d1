package dom

import "github.com/vango-dev/minidom/pkg/vdom"

// Dispatch fires event on n and returns the number of listeners invoked.
//
// For "input" and "change" events the value is stored in the node's value
// property before the listeners run, mirroring what a browser does for form
// controls. Listeners registered or removed while dispatching take effect on
// the next dispatch.
func (d *Document) Dispatch(n *Node, event, value string) int {
	if n == nil || n.typ != ElementNode {
		return 0
	}
	if event == "input" || event == "change" {
		n.props["value"] = value
	}
	listeners := n.Listeners(event)
	for _, l := range listeners {
		l.Handle(vdom.Event{Type: event, Target: n, Value: value})
	}
	return len(listeners)
}

// DispatchID fires event on the node with the given ID.
func (d *Document) DispatchID(id int, event, value string) (int, bool) {
	n, ok := d.Find(id)
	if !ok || !d.Attached(n) {
		return 0, false
	}
	return d.Dispatch(n, event, value), true
}
