package vdom

import "strings"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <button>, etc.
	KindText                   // Plain text node
	KindComponent              // Function or stateful component
)

// kindInvalid marks nodes built from an unsupported type argument.
const kindInvalid VKind = 255

// TextType is the type name that selects the text variant in H.
const TextType = "text"

// Reserved prop names.
const (
	TextContentProp = "textContent"
	ChildrenProp    = "children"
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node. It must not be modified once built.
type VNode struct {
	Kind     VKind          // Node type
	Tag      string         // Element tag name (e.g., "div")
	Comp     *ComponentType // For KindComponent
	Props    Props          // Attributes, properties and listeners
	Children []*VNode       // Child nodes, empty for text
}

// Props holds attributes, properties and event listeners.
type Props map[string]any

// State holds component state.
type State map[string]any

// TextContent returns the text of a text node.
func (v *VNode) TextContent() string {
	if v == nil || v.Props == nil {
		return ""
	}
	s, _ := v.Props[TextContentProp].(string)
	return s
}

// Valid reports whether the node has a well formed shape.
func (v *VNode) Valid() bool {
	if v == nil {
		return false
	}
	switch v.Kind {
	case KindElement:
		return v.Tag != ""
	case KindText:
		return true
	case KindComponent:
		return v.Comp != nil
	default:
		return false
	}
}

// TypeName describes the node type for logs and errors.
func (v *VNode) TypeName() string {
	if v == nil {
		return "<nil>"
	}
	switch v.Kind {
	case KindElement:
		return v.Tag
	case KindText:
		return TextType
	case KindComponent:
		return v.Comp.Name()
	default:
		return v.Kind.String()
	}
}

// IsInteractive returns true if this node has event listeners.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for key := range v.Props {
		if IsEventProp(key) {
			return true
		}
	}
	return false
}

// SameType reports whether two nodes have the same type: same kind, same tag
// for elements, and the same component identity for components.
func SameType(a, b *VNode) bool {
	if a == nil || b == nil || a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindElement:
		return a.Tag == b.Tag
	case KindComponent:
		return a.Comp == b.Comp
	default:
		return true
	}
}

// IsEventProp returns true if the prop name denotes an event listener.
func IsEventProp(name string) bool {
	return len(name) > 2 && name[:2] == "on"
}

// EventName returns the host event name for an event prop ("onClick" -> "click").
func EventName(prop string) string {
	return strings.ToLower(prop[2:])
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}
