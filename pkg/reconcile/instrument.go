package reconcile

import (
	"maps"

	"github.com/vango-dev/minidom/pkg/host"
	"github.com/vango-dev/minidom/pkg/vdom"
)

// Host operation names used in PassStats.Ops and metric labels.
const (
	OpCreateElement  = "create_element"
	OpCreateText     = "create_text"
	OpSetText        = "set_text"
	OpSetAttribute   = "set_attribute"
	OpRemoveAttr     = "remove_attribute"
	OpSetProperty    = "set_property"
	OpAddListener    = "add_listener"
	OpRemoveListener = "remove_listener"
	OpAppendChild    = "append_child"
	OpReplaceChild   = "replace_child"
	OpRemoveChild    = "remove_child"
)

// countingAdapter forwards to a host.Adapter and counts successful mutations.
type countingAdapter struct {
	host.Adapter
	counts map[string]int
}

func newCountingAdapter(a host.Adapter) *countingAdapter {
	return &countingAdapter{Adapter: a, counts: make(map[string]int)}
}

func (c *countingAdapter) reset() {
	clear(c.counts)
}

func (c *countingAdapter) total() int {
	n := 0
	for _, v := range c.counts {
		n += v
	}
	return n
}

func (c *countingAdapter) snapshot() map[string]int {
	return maps.Clone(c.counts)
}

func (c *countingAdapter) count(op string, err error) error {
	if err == nil {
		c.counts[op]++
	}
	return err
}

func (c *countingAdapter) CreateElement(tag string) (host.Node, error) {
	n, err := c.Adapter.CreateElement(tag)
	return n, c.count(OpCreateElement, err)
}

func (c *countingAdapter) CreateTextNode(text string) (host.Node, error) {
	n, err := c.Adapter.CreateTextNode(text)
	return n, c.count(OpCreateText, err)
}

func (c *countingAdapter) SetText(node host.Node, text string) error {
	return c.count(OpSetText, c.Adapter.SetText(node, text))
}

func (c *countingAdapter) SetAttribute(node host.Node, name, value string) error {
	return c.count(OpSetAttribute, c.Adapter.SetAttribute(node, name, value))
}

func (c *countingAdapter) RemoveAttribute(node host.Node, name string) error {
	return c.count(OpRemoveAttr, c.Adapter.RemoveAttribute(node, name))
}

func (c *countingAdapter) SetProperty(node host.Node, name string, value any) error {
	return c.count(OpSetProperty, c.Adapter.SetProperty(node, name, value))
}

func (c *countingAdapter) AddEventListener(node host.Node, event string, l *vdom.Listener) error {
	return c.count(OpAddListener, c.Adapter.AddEventListener(node, event, l))
}

func (c *countingAdapter) RemoveEventListener(node host.Node, event string, l *vdom.Listener) error {
	return c.count(OpRemoveListener, c.Adapter.RemoveEventListener(node, event, l))
}

func (c *countingAdapter) AppendChild(parent, child host.Node) error {
	return c.count(OpAppendChild, c.Adapter.AppendChild(parent, child))
}

func (c *countingAdapter) ReplaceChild(parent, newChild, oldChild host.Node) error {
	return c.count(OpReplaceChild, c.Adapter.ReplaceChild(parent, newChild, oldChild))
}

func (c *countingAdapter) RemoveChild(parent, child host.Node) error {
	return c.count(OpRemoveChild, c.Adapter.RemoveChild(parent, child))
}
