// Package vdom provides the virtual node model for minidom.
//
// A virtual tree is an immutable description of a user interface. It is
// rebuilt on every render pass and handed to the reconciler, which compares
// it with the tree recorded on the host nodes and applies the difference.
//
// # Core Types
//
// VNode is the fundamental building block. It is one of three variants,
// discriminated by Kind: a native element, a text node, or a component.
// Props holds attributes, properties and event listeners.
//
// # Element API
//
// Elements are created with variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P("Content"),
//	    OnClick(handler),
//	)
//
// or with the generic factory:
//
//	H("div", Props{"className": "card"}, H("h1", nil, "Title"))
//
// # Components
//
// Components are declared once, as package level values, because their
// identity is what the reconciler uses to decide whether an existing
// instance can be updated in place:
//
//	var Greeting = FunctionComponent("Greeting", func(p Props) *VNode {
//	    return H1(Textf("Hello %v", p["name"]))
//	})
//
//	var Counter = StatefulComponent("Counter", func(p Props) Stateful {
//	    return &counter{}
//	})
package vdom
