package demo

import (
	"slices"
	"strings"

	"github.com/vango-dev/minidom/pkg/vdom"
)

// App is the playground application: a title, a Counter and a TodoList.
var App = vdom.FunctionComponent("App", func(props vdom.Props) *vdom.VNode {
	title, _ := props["title"].(string)
	if title == "" {
		title = "minidom"
	}
	return vdom.Div(vdom.Class("app"),
		vdom.H1(title),
		vdom.Component(Counter, vdom.Props{"start": props["start"]}),
		vdom.Component(TodoList, nil),
	)
})

// Counter shows a number with buttons to change it. Its listeners are built
// once per instance, so a click only updates the displayed count.
var Counter = vdom.StatefulComponent("Counter", func(vdom.Props) vdom.Stateful {
	return &counter{}
})

type counter struct {
	inc, dec *vdom.Listener
}

func (c *counter) InitialState(props vdom.Props) vdom.State {
	start, _ := props["start"].(int)
	return vdom.State{"count": start}
}

func (c *counter) Render(ctx vdom.Ctx) *vdom.VNode {
	if c.inc == nil {
		c.inc = vdom.Listen(func(vdom.Event) { c.add(ctx, 1) })
		c.dec = vdom.Listen(func(vdom.Event) { c.add(ctx, -1) })
	}
	n, _ := ctx.State()["count"].(int)
	return vdom.Div(vdom.Class("counter"),
		vdom.Button(vdom.ID("dec"), vdom.OnClick(c.dec), "-"),
		vdom.Span(vdom.Class("count"), vdom.Textf("%d", n)),
		vdom.Button(vdom.ID("inc"), vdom.OnClick(c.inc), "+"),
	)
}

func (c *counter) add(ctx vdom.Ctx, delta int) {
	n, _ := ctx.State()["count"].(int)
	_ = ctx.SetState(vdom.State{"count": n + delta})
}

// TodoList keeps a draft and a list of items.
var TodoList = vdom.StatefulComponent("TodoList", func(vdom.Props) vdom.Stateful {
	return &todoList{}
})

type todoList struct{}

func (t *todoList) InitialState(vdom.Props) vdom.State {
	return vdom.State{"draft": "", "items": []string{}}
}

func (t *todoList) Render(ctx vdom.Ctx) *vdom.VNode {
	draft, _ := ctx.State()["draft"].(string)
	items, _ := ctx.State()["items"].([]string)

	add := func() {
		text := strings.TrimSpace(draft)
		if text == "" {
			return
		}
		_ = ctx.SetState(vdom.State{
			"items": append(slices.Clone(items), text),
			"draft": "",
		})
	}

	return vdom.Div(vdom.Class("todos"),
		vdom.H2("Todo"),
		vdom.Input(
			vdom.ID("draft"),
			vdom.Placeholder("What needs doing?"),
			vdom.Value(draft),
			vdom.OnInput(func(e vdom.Event) { _ = ctx.SetState(vdom.State{"draft": e.Value}) }),
		),
		vdom.Button(vdom.ID("add"), vdom.OnClick(add), vdom.Prop("disabled", strings.TrimSpace(draft) == ""), "Add"),
		vdom.Ul(vdom.Range(items, func(item string, i int) *vdom.VNode {
			return vdom.Li(
				vdom.Span(item),
				vdom.Button(vdom.Class("remove"), vdom.OnClick(func() {
					_ = ctx.SetState(vdom.State{"items": slices.Delete(slices.Clone(items), i, i+1)})
				}), "x"),
			)
		})),
		vdom.P(vdom.Class("summary"), vdom.Textf("%d items", len(items))),
	)
}
