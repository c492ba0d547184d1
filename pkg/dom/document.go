package dom

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vango-dev/minidom/pkg/host"
	"github.com/vango-dev/minidom/pkg/vdom"
)

// RootTag is the tag of the container element created by NewDocument.
const RootTag = "main"

// Document is an in-memory host tree. It is not safe for concurrent use.
type Document struct {
	nextID  int
	nodes   map[int]*Node
	root    *Node
	journal Journal
}

var _ host.Adapter = (*Document)(nil)

// NewDocument creates a document with an empty root container.
// Creating the root is not journaled.
func NewDocument() *Document {
	d := &Document{nodes: make(map[int]*Node)}
	d.root = d.newNode(ElementNode, RootTag, "")
	return d
}

// Root returns the root container.
func (d *Document) Root() *Node { return d.root }

// Journal returns the mutation journal.
func (d *Document) Journal() *Journal { return &d.journal }

// Find returns the node with the given ID. Nodes removed or replaced are
// dropped from the index.
func (d *Document) Find(id int) (*Node, bool) {
	n, ok := d.nodes[id]
	return n, ok
}

// Attached reports whether n is reachable from the root.
func (d *Document) Attached(n *Node) bool {
	return n != nil && d.root.contains(n)
}

func (d *Document) newNode(typ NodeType, tag, text string) *Node {
	d.nextID++
	n := &Node{
		id:   d.nextID,
		typ:  typ,
		tag:  tag,
		text: text,
		doc:  d,
	}
	if typ == ElementNode {
		n.attrs = make(map[string]string)
		n.props = make(map[string]any)
		n.listeners = make(map[string][]*vdom.Listener)
	}
	d.nodes[n.id] = n
	return n
}

// node converts a handle to a node of this document.
func (d *Document) node(h host.Node) (*Node, error) {
	n, ok := h.(*Node)
	if !ok || n == nil || n.doc != d {
		return nil, fmt.Errorf("%w: %T", ErrForeignNode, h)
	}
	return n, nil
}

func (d *Document) element(h host.Node) (*Node, error) {
	n, err := d.node(h)
	if err != nil {
		return nil, err
	}
	if n.typ != ElementNode {
		return nil, fmt.Errorf("%w: #%d", ErrNotElement, n.id)
	}
	return n, nil
}

// validAttrName rejects names that could not be written as markup.
func validAttrName(name string) bool {
	return name != "" && !strings.ContainsAny(name, " \t\n\r\f\"'<>/=")
}

// CreateElement implements host.Adapter.
func (d *Document) CreateElement(tag string) (host.Node, error) {
	if !validAttrName(tag) {
		return nil, fmt.Errorf("dom: invalid tag name %q", tag)
	}
	n := d.newNode(ElementNode, tag, "")
	d.journal.add(Record{Op: OpCreateElement, Node: n.id, Name: tag})
	return n, nil
}

// CreateTextNode implements host.Adapter.
func (d *Document) CreateTextNode(text string) (host.Node, error) {
	n := d.newNode(TextNode, "", text)
	d.journal.add(Record{Op: OpCreateText, Node: n.id, Value: text})
	return n, nil
}

// SetText implements host.Adapter.
func (d *Document) SetText(h host.Node, text string) error {
	n, err := d.node(h)
	if err != nil {
		return err
	}
	if n.typ != TextNode {
		return fmt.Errorf("%w: #%d", ErrNotText, n.id)
	}
	n.text = text
	d.journal.add(Record{Op: OpSetText, Node: n.id, Value: text})
	return nil
}

// SetAttribute implements host.Adapter.
func (d *Document) SetAttribute(h host.Node, name, value string) error {
	n, err := d.element(h)
	if err != nil {
		return err
	}
	if !validAttrName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidAttribute, name)
	}
	n.attrs[name] = value
	d.journal.add(Record{Op: OpSetAttr, Node: n.id, Name: name, Value: value})
	return nil
}

// RemoveAttribute implements host.Adapter.
func (d *Document) RemoveAttribute(h host.Node, name string) error {
	n, err := d.element(h)
	if err != nil {
		return err
	}
	delete(n.attrs, name)
	d.journal.add(Record{Op: OpRemoveAttr, Node: n.id, Name: name})
	return nil
}

// SetProperty implements host.Adapter.
func (d *Document) SetProperty(h host.Node, name string, value any) error {
	n, err := d.element(h)
	if err != nil {
		return err
	}
	n.props[name] = value
	d.journal.add(Record{Op: OpSetProp, Node: n.id, Name: name, Value: fmt.Sprint(value)})
	return nil
}

// AddEventListener implements host.Adapter. Registering the same listener
// twice for one event is a no-op, as in a browser.
func (d *Document) AddEventListener(h host.Node, event string, l *vdom.Listener) error {
	n, err := d.element(h)
	if err != nil {
		return err
	}
	if slices.Contains(n.listeners[event], l) {
		return nil
	}
	n.listeners[event] = append(n.listeners[event], l)
	d.journal.add(Record{Op: OpAddListener, Node: n.id, Name: event})
	return nil
}

// RemoveEventListener implements host.Adapter.
func (d *Document) RemoveEventListener(h host.Node, event string, l *vdom.Listener) error {
	n, err := d.element(h)
	if err != nil {
		return err
	}
	ls := n.listeners[event]
	i := slices.Index(ls, l)
	if i < 0 {
		return nil
	}
	n.listeners[event] = slices.Delete(ls, i, i+1)
	if len(n.listeners[event]) == 0 {
		delete(n.listeners, event)
	}
	d.journal.add(Record{Op: OpRemoveListener, Node: n.id, Name: event})
	return nil
}

// AppendChild implements host.Adapter.
func (d *Document) AppendChild(parent, child host.Node) error {
	p, err := d.element(parent)
	if err != nil {
		return err
	}
	c, err := d.node(child)
	if err != nil {
		return err
	}
	if c.contains(p) {
		return ErrHierarchy
	}
	c.detach()
	c.parent = p
	p.children = append(p.children, c)
	d.journal.add(Record{Op: OpAppend, Node: c.id, Parent: p.id})
	return nil
}

// ReplaceChild implements host.Adapter.
func (d *Document) ReplaceChild(parent, newChild, oldChild host.Node) error {
	p, err := d.element(parent)
	if err != nil {
		return err
	}
	nc, err := d.node(newChild)
	if err != nil {
		return err
	}
	oc, err := d.node(oldChild)
	if err != nil {
		return err
	}
	if oc.parent != p {
		return fmt.Errorf("%w: #%d under #%d", ErrNotChild, oc.id, p.id)
	}
	if nc.contains(p) {
		return ErrHierarchy
	}
	nc.detach()
	i := p.indexOf(oc)
	p.children[i] = nc
	nc.parent = p
	oc.parent = nil
	d.forget(oc)
	d.journal.add(Record{Op: OpReplace, Node: nc.id, Parent: p.id, Old: oc.id})
	return nil
}

// RemoveChild implements host.Adapter.
func (d *Document) RemoveChild(parent, child host.Node) error {
	p, err := d.element(parent)
	if err != nil {
		return err
	}
	c, err := d.node(child)
	if err != nil {
		return err
	}
	if c.parent != p {
		return fmt.Errorf("%w: #%d under #%d", ErrNotChild, c.id, p.id)
	}
	c.detach()
	d.forget(c)
	d.journal.add(Record{Op: OpRemove, Node: c.id, Parent: p.id})
	return nil
}

// forget drops a detached subtree from the ID index.
func (d *Document) forget(n *Node) {
	delete(d.nodes, n.id)
	for _, c := range n.children {
		d.forget(c)
	}
}

// Parent implements host.Adapter.
func (d *Document) Parent(h host.Node) host.Node {
	n, err := d.node(h)
	if err != nil || n.parent == nil {
		return nil
	}
	return n.parent
}

// ChildNodes implements host.Adapter.
func (d *Document) ChildNodes(h host.Node) []host.Node {
	n, err := d.node(h)
	if err != nil {
		return nil
	}
	out := make([]host.Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}
