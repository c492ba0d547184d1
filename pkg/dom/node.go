package dom

import (
	"maps"
	"slices"

	"github.com/vango-dev/minidom/pkg/vdom"
)

// NodeType distinguishes element and text nodes.
type NodeType uint8

const (
	ElementNode NodeType = iota + 1
	TextNode
)

// String returns the string representation of the NodeType.
func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	default:
		return "Unknown"
	}
}

// Node is a mutable node of a Document.
type Node struct {
	id        int
	typ       NodeType
	tag       string
	text      string
	attrs     map[string]string
	props     map[string]any
	listeners map[string][]*vdom.Listener
	parent    *Node
	children  []*Node
	doc       *Document
}

// ID returns the node's document-unique identifier.
func (n *Node) ID() int { return n.id }

// Type returns the node type.
func (n *Node) Type() NodeType { return n.typ }

// Tag returns the element tag, or "" for text nodes.
func (n *Node) Tag() string { return n.tag }

// Text returns the content of a text node.
func (n *Node) Text() string { return n.text }

// IsText reports whether n is a text node.
func (n *Node) IsText() bool { return n.typ == TextNode }

// Attr returns the value of a markup attribute.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// AttrNames returns the attribute names in sorted order.
func (n *Node) AttrNames() []string {
	return slices.Sorted(maps.Keys(n.attrs))
}

// Property returns a live property value.
func (n *Node) Property(name string) (any, bool) {
	v, ok := n.props[name]
	return v, ok
}

// Listeners returns the listeners registered for event.
func (n *Node) Listeners(event string) []*vdom.Listener {
	return slices.Clone(n.listeners[event])
}

// Events returns the names of events with at least one listener, sorted.
func (n *Node) Events() []string {
	return slices.Sorted(maps.Keys(n.listeners))
}

// ListenerCount returns the number of listeners across all events.
func (n *Node) ListenerCount() int {
	total := 0
	for _, ls := range n.listeners {
		total += len(ls)
	}
	return total
}

// Parent returns the parent node, or nil.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a snapshot of the child nodes.
func (n *Node) Children() []*Node { return slices.Clone(n.children) }

// TextContent returns the concatenated text of n and its descendants.
func (n *Node) TextContent() string {
	if n.typ == TextNode {
		return n.text
	}
	var out []byte
	for _, c := range n.children {
		out = append(out, c.TextContent()...)
	}
	return string(out)
}

// indexOf returns the index of child in n.children, or -1.
func (n *Node) indexOf(child *Node) int {
	return slices.Index(n.children, child)
}

// contains reports whether other is n or one of its descendants.
func (n *Node) contains(other *Node) bool {
	for p := other; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// detach removes n from its current parent, if any.
func (n *Node) detach() {
	if n.parent == nil {
		return
	}
	if i := n.parent.indexOf(n); i >= 0 {
		n.parent.children = slices.Delete(n.parent.children, i, i+1)
	}
	n.parent = nil
}
