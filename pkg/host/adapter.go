// Package host defines the host-tree primitives the reconciler drives.
//
// The reconciler never touches a host tree directly. It creates, mutates,
// navigates and removes nodes through an Adapter, so the same engine can
// drive an in-memory document (package dom), a browser DOM behind
// syscall/js, or a terminal widget tree.
package host

import "github.com/vango-dev/minidom/pkg/vdom"

// Node is an opaque host node handle. Handles must be comparable and stable
// for the lifetime of the node; pointers are the usual choice.
type Node any

// Adapter is the set of host-tree operations used by the reconciler.
//
// Mutating methods report host failures (an invalid attribute name, a node
// that is not a child of the given parent) as errors; the reconciler returns
// them unchanged.
type Adapter interface {
	// CreateElement creates a detached element node.
	CreateElement(tag string) (Node, error)

	// CreateTextNode creates a detached text node.
	CreateTextNode(text string) (Node, error)

	// SetText overwrites the content of a text node.
	SetText(node Node, text string) error

	// SetAttribute sets a markup attribute.
	SetAttribute(node Node, name, value string) error

	// RemoveAttribute removes a markup attribute.
	RemoveAttribute(node Node, name string) error

	// SetProperty assigns a live node property such as value or checked.
	SetProperty(node Node, name string, value any) error

	// AddEventListener registers l for event on node.
	AddEventListener(node Node, event string, l *vdom.Listener) error

	// RemoveEventListener deregisters l for event on node.
	RemoveEventListener(node Node, event string, l *vdom.Listener) error

	// AppendChild inserts child as the last child of parent.
	AppendChild(parent, child Node) error

	// ReplaceChild puts newChild in oldChild's place under parent.
	ReplaceChild(parent, newChild, oldChild Node) error

	// RemoveChild detaches child from parent.
	RemoveChild(parent, child Node) error

	// Parent returns the parent of node, or nil.
	Parent(node Node) Node

	// ChildNodes returns the ordered children of node. The returned slice is
	// a snapshot; mutating the tree does not change it.
	ChildNodes(node Node) []Node
}

// FirstChild returns the first child of node, or nil.
func FirstChild(a Adapter, node Node) Node {
	children := a.ChildNodes(node)
	if len(children) == 0 {
		return nil
	}
	return children[0]
}
