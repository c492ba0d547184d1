package vtest_test

import (
	"testing"

	"github.com/vango-dev/minidom/pkg/dom"
	"github.com/vango-dev/minidom/pkg/vdom"
	"github.com/vango-dev/minidom/pkg/vtest"
)

func TestHarnessRenderAndHTML(t *testing.T) {
	h := vtest.New(t)
	h.Render(vdom.Div(vdom.Class("box"), vdom.P("hello")))

	vtest.ExpectHTML(t, h, `<div class="box"><p>hello</p></div>`)

	if got := h.Node(0).Tag(); got != "p" {
		t.Errorf("Node(0).Tag() = %q, want %q", got, "p")
	}
}

func TestHarnessMarkAndOps(t *testing.T) {
	h := vtest.New(t)
	h.Render(vdom.Div(vdom.P("a")))

	h.Mark()
	vtest.ExpectNoOps(t, h)

	h.Render(vdom.Div(vdom.P("b")))
	vtest.ExpectOps(t, h.Ops(), dom.OpSetText)
}

func TestHarnessDispatch(t *testing.T) {
	clicks := 0
	h := vtest.New(t)
	h.Render(vdom.Button(vdom.OnClick(func() { clicks++ }), "go"))

	h.Dispatch(h.Node(), "click", "")
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestHarnessTryRender(t *testing.T) {
	h := vtest.New(t)
	if err := h.TryRender(nil); err == nil {
		t.Error("expected error rendering nil tree")
	}
}
