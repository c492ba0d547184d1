package reconcile_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/vango-dev/minidom/pkg/reconcile"
	"github.com/vango-dev/minidom/pkg/vdom"
	"github.com/vango-dev/minidom/pkg/vtest"
)

func newHarness(t *testing.T, opts ...reconcile.Option) *vtest.Harness {
	t.Helper()
	quiet := reconcile.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return vtest.New(t, append([]reconcile.Option{quiet}, opts...)...)
}

// counter is a stateful component with a button that increments its count.
type counter struct{}

func (counter) InitialState(props vdom.Props) vdom.State {
	start, _ := props["start"].(int)
	return vdom.State{"count": start}
}

func (counter) Render(ctx vdom.Ctx) *vdom.VNode {
	n := ctx.State()["count"].(int)
	return vdom.Div(
		vdom.Button(vdom.OnClick(func() { _ = ctx.SetState(vdom.State{"count": n + 1}) }), "+"),
		vdom.Span(vdom.Textf("%d", n)),
	)
}

var Counter = vdom.StatefulComponent("Counter", func(vdom.Props) vdom.Stateful { return counter{} })

// App renders a title above a Counter.
var App = vdom.FunctionComponent("App", func(props vdom.Props) *vdom.VNode {
	title, _ := props["title"].(string)
	return vdom.Div(vdom.H1(title), vdom.Component(Counter, nil))
})

// Badge is a function component rendering a span.
var Badge = vdom.FunctionComponent("Badge", func(props vdom.Props) *vdom.VNode {
	label, _ := props["label"].(string)
	return vdom.Span(vdom.Class("badge"), label)
})

type recordingObserver struct {
	passes []reconcile.PassStats
}

func (o *recordingObserver) PassDone(stats reconcile.PassStats) {
	o.passes = append(o.passes, stats)
}
