package demo

import "github.com/vango-dev/minidom/pkg/vdom"

// Alert receives the messages the scenario buttons raise when clicked.
type Alert func(msg string)

// Scenario names accepted by Lookup.
const (
	ScenarioUpdate   = "update"
	ScenarioModified = "modified"
	ScenarioShowcase = "showcase"
)

// Initial is the tree rendered first in every scenario.
func Initial(alert Alert) *vdom.VNode {
	return vdom.Div(vdom.Class("container"),
		vdom.H1(vdom.Data("title", "hello"), "你好"),
		vdom.Span("Mini React"),
		vdom.Button(vdom.OnClick(func() { alert("Hi") }), "Click me"),
		vdom.H1("1"),
	)
}

// Updated drops the trailing heading and rebinds the button.
func Updated(alert Alert) *vdom.VNode {
	return vdom.Div(vdom.Class("container"),
		vdom.H1(vdom.Data("title", "hello"), "你好"),
		vdom.Span("Mini React"),
		vdom.Button(vdom.OnClick(func() { alert("Hi") }), "Click me"),
	)
}

// Modified changes element types at the first two positions, swaps the
// button handler and drops the trailing heading.
func Modified(alert Alert) *vdom.VNode {
	return vdom.Div(vdom.Class("container"),
		vdom.H3(vdom.Data("title", "world"), "你好"),
		vdom.Input(vdom.Type("text"), vdom.Value("Hi")),
		vdom.Button(vdom.OnClick(func() { alert("你好") }), "Click me"),
	)
}

// Showcase mixes text children, a form control and conditional headings.
func Showcase(alert Alert) *vdom.VNode {
	return vdom.Div(vdom.Class("container"),
		vdom.H1("Mini React"),
		vdom.H2("Hello World"),
		vdom.H3("(This is a subtitle)"),
		vdom.Input(vdom.Type("text"), vdom.Value("Hi")),
		"你好",
		vdom.If(2 == 1, vdom.H3("2==1")),
		vdom.If(2 == 2, vdom.H3("2==2")),
		vdom.Button(vdom.OnClick(func() { alert("Hi") }), "Click me"),
	)
}

// Lookup returns the second tree of the named scenario. The first tree is
// always Initial.
func Lookup(name string) (func(Alert) *vdom.VNode, bool) {
	switch name {
	case ScenarioUpdate, "":
		return Updated, true
	case ScenarioModified:
		return Modified, true
	case ScenarioShowcase:
		return Showcase, true
	default:
		return nil, false
	}
}

// Scenarios lists the scenario names.
func Scenarios() []string {
	return []string{ScenarioUpdate, ScenarioModified, ScenarioShowcase}
}
