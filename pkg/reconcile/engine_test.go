package reconcile_test

import (
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vango-dev/minidom/pkg/dom"
	"github.com/vango-dev/minidom/pkg/reconcile"
	"github.com/vango-dev/minidom/pkg/vdom"
	"github.com/vango-dev/minidom/pkg/vtest"
)

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name string
		tree *vdom.VNode
		want error
	}{
		{"nil tree", nil, reconcile.ErrNilNode},
		{"unsupported type", vdom.H(42, nil), reconcile.ErrMalformedNode},
		{"element without tag", &vdom.VNode{Kind: vdom.KindElement}, reconcile.ErrMalformedNode},
		{"component without type", &vdom.VNode{Kind: vdom.KindComponent}, reconcile.ErrMalformedNode},
		{"nil child", &vdom.VNode{Kind: vdom.KindElement, Tag: "div", Children: []*vdom.VNode{nil}}, reconcile.ErrNilNode},
		{
			"handler of wrong type",
			&vdom.VNode{Kind: vdom.KindElement, Tag: "button", Props: vdom.Props{"onClick": "alert('Hi')"}},
			reconcile.ErrInvalidHandler,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			err := h.TryRender(tt.tree)
			if !errors.Is(err, tt.want) {
				t.Errorf("Render() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRenderNilContainer(t *testing.T) {
	h := newHarness(t)
	err := h.Engine.Render(vdom.P("x"), nil)
	if !errors.Is(err, reconcile.ErrDetached) {
		t.Errorf("Render(nil container) = %v, want ErrDetached", err)
	}
}

func TestHostErrorsReturnedUnwrapped(t *testing.T) {
	h := newHarness(t)
	err := h.TryRender(vdom.Div(vdom.Prop("bad name", "x")))
	if !errors.Is(err, dom.ErrInvalidAttribute) {
		t.Errorf("Render() error = %v, want ErrInvalidAttribute", err)
	}
	if h.Engine.LastPass().Err != err {
		t.Error("LastPass().Err does not carry the failure")
	}
}

func TestEventRebindingExactlyOnce(t *testing.T) {
	var calls []string
	first := vdom.Listen(func(vdom.Event) { calls = append(calls, "first") })
	second := vdom.Listen(func(vdom.Event) { calls = append(calls, "second") })

	h := newHarness(t)
	h.Render(vdom.Button(vdom.OnClick(first)))

	h.Mark()
	h.Render(vdom.Button(vdom.OnClick(first)))
	vtest.ExpectNoOps(t, h)

	h.Render(vdom.Button(vdom.OnClick(second)))
	vtest.ExpectOps(t, h.Ops(), dom.OpRemoveListener, dom.OpAddListener)

	button := h.Node()
	if got := button.ListenerCount(); got != 1 {
		t.Fatalf("ListenerCount() = %d, want 1", got)
	}
	h.Dispatch(button, "click", "")
	if len(calls) != 1 || calls[0] != "second" {
		t.Errorf("calls = %v, want [second]", calls)
	}

	h.Mark()
	h.Render(vdom.Button())
	vtest.ExpectOps(t, h.Ops(), dom.OpRemoveListener)
	if button.ListenerCount() != 0 {
		t.Error("listener left after prop removal")
	}
}

func TestEventNameLowercased(t *testing.T) {
	h := newHarness(t)
	h.Render(vdom.Div(vdom.OnMouseEnter(func() {}), vdom.On("drop", func() {})))

	n := h.Node()
	if len(n.Listeners("mouseenter")) != 1 || len(n.Listeners("drop")) != 1 {
		t.Errorf("events = %v, want [drop mouseenter]", n.Events())
	}
}

func TestInputEventCarriesValue(t *testing.T) {
	var got string
	h := newHarness(t)
	h.Render(vdom.Input(vdom.OnInput(func(e vdom.Event) { got = e.Value })))

	h.Dispatch(h.Node(), "input", "typed")
	if got != "typed" {
		t.Errorf("event value = %q, want %q", got, "typed")
	}
}

func TestObserverNotified(t *testing.T) {
	obs := &recordingObserver{}
	h := newHarness(t, reconcile.WithObserver(obs), reconcile.WithTracer(noop.NewTracerProvider().Tracer("test")))

	h.Render(vdom.Div(vdom.Prop("a", 1)))
	h.Render(vdom.Div(vdom.Prop("a", 2)))
	_ = h.TryRender(nil)

	if len(obs.passes) != 3 {
		t.Fatalf("observer saw %d passes, want 3", len(obs.passes))
	}

	first := obs.passes[0]
	if first.Trigger != reconcile.TriggerRender || first.Root != "div" {
		t.Errorf("first pass = %+v", first)
	}
	if first.Mutations != 3 {
		t.Errorf("first pass mutations = %d, want 3", first.Mutations)
	}
	if first.Ops[reconcile.OpCreateElement] != 1 || first.Ops[reconcile.OpSetAttribute] != 1 || first.Ops[reconcile.OpAppendChild] != 1 {
		t.Errorf("first pass ops = %v", first.Ops)
	}

	if obs.passes[1].Mutations != 1 {
		t.Errorf("second pass mutations = %d, want 1", obs.passes[1].Mutations)
	}
	if !errors.Is(obs.passes[2].Err, reconcile.ErrNilNode) {
		t.Errorf("third pass err = %v, want ErrNilNode", obs.passes[2].Err)
	}
}

func TestRenderIntoNonEmptyContainer(t *testing.T) {
	h := newHarness(t)

	// A node the engine did not create is replaced rather than patched.
	foreign, err := h.Doc.CreateElement("div")
	if err != nil {
		t.Fatal(err)
	}
	if err := h.Doc.AppendChild(h.Doc.Root(), foreign); err != nil {
		t.Fatal(err)
	}

	h.Mark()
	h.Render(vdom.Div("mine"))

	records := h.Records()
	if last := records[len(records)-1]; last.Op != dom.OpReplace || last.Old != foreign.(*dom.Node).ID() {
		t.Errorf("last record = %s, want Replace of #%d", last, foreign.(*dom.Node).ID())
	}
}

func TestFailedMountForgetsDetachedNodes(t *testing.T) {
	h := newHarness(t)
	err := h.TryRender(vdom.Div(vdom.P("a"), vdom.Span(vdom.Prop("bad name", "x"))))
	if !errors.Is(err, dom.ErrInvalidAttribute) {
		t.Fatalf("Render() error = %v, want ErrInvalidAttribute", err)
	}
	if n := h.Engine.Tracked(); n != 0 {
		t.Errorf("Tracked() = %d after failed mount, want 0", n)
	}

	h.Render(vdom.Div(vdom.P("a")))
	if n := h.Engine.Tracked(); n != 3 {
		t.Errorf("Tracked() = %d, want 3", n)
	}
}
