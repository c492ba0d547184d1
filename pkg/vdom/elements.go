package vdom

import "fmt"

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// H builds a VNode from a type, props and children, the way a template
// compiler would. typ is TextType, a tag name, or a *ComponentType.
//
// Children can be *VNode, []*VNode, string (a text node) or nil (skipped).
// Event props holding a func(Event) or func() are wrapped in a Listener.
// A type H does not understand yields a node that the reconciler rejects.
func H(typ any, props Props, children ...any) *VNode {
	switch t := typ.(type) {
	case string:
		if t == TextType {
			text := ""
			if v, ok := props[TextContentProp]; ok && v != nil {
				text = fmt.Sprint(v)
			}
			return Text(text)
		}
		node := &VNode{Kind: KindElement, Tag: t, Props: copyProps(props)}
		node.Children = appendChildren(make([]*VNode, 0, len(children)), children)
		return node
	case *ComponentType:
		node := &VNode{Kind: KindComponent, Comp: t, Props: copyProps(props)}
		node.Children = appendChildren(make([]*VNode, 0, len(children)), children)
		if len(node.Children) > 0 {
			node.Props[ChildrenProp] = node.Children
		}
		return node
	default:
		return &VNode{Kind: kindInvalid, Props: Props{}}
	}
}

func copyProps(props Props) Props {
	out := make(Props, len(props))
	for k, v := range props {
		if IsEventProp(k) {
			v = toListener(v)
		}
		out[k] = v
	}
	return out
}

func appendChildren(dst []*VNode, children []any) []*VNode {
	for _, child := range children {
		switch v := child.(type) {
		case nil:
			continue
		case *VNode:
			if v != nil {
				dst = append(dst, v)
			}
		case []*VNode:
			for _, c := range v {
				if c != nil {
					dst = append(dst, c)
				}
			}
		case string:
			dst = append(dst, Text(v))
		}
	}
	return dst
}

// createElement creates a new VNode with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, *VNode, []*VNode, string.
func createElement(tag string, args []any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)
			continue

		case Attr:
			setAttr(node.Props, v)

		case []Attr:
			for _, a := range v {
				setAttr(node.Props, a)
			}

		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}

		case []*VNode:
			node.Children = appendChildren(node.Children, []any{v})

		case string:
			// Shorthand for text node
			node.Children = append(node.Children, Text(v))
		}
	}

	return node
}

func setAttr(props Props, a Attr) {
	if a.IsEmpty() {
		return
	}
	if IsEventProp(a.Key) {
		props[a.Key] = toListener(a.Value)
		return
	}
	props[a.Key] = a.Value
}

// Content sectioning elements

func Section(args ...any) *VNode { return createElement("section", args) }
func H1(args ...any) *VNode      { return createElement("h1", args) }
func H2(args ...any) *VNode      { return createElement("h2", args) }
func H3(args ...any) *VNode      { return createElement("h3", args) }

// Text content elements

func Div(args ...any) *VNode  { return createElement("div", args) }
func P(args ...any) *VNode    { return createElement("p", args) }
func Span(args ...any) *VNode { return createElement("span", args) }
func Ul(args ...any) *VNode   { return createElement("ul", args) }
func Li(args ...any) *VNode   { return createElement("li", args) }

// Inline text semantics

func Strong(args ...any) *VNode { return createElement("strong", args) }

// Form elements

func Form(args ...any) *VNode   { return createElement("form", args) }
func Input(args ...any) *VNode  { return createElement("input", args) }
func Button(args ...any) *VNode { return createElement("button", args) }
func Label(args ...any) *VNode  { return createElement("label", args) }
