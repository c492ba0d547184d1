package vtest

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/minidom/pkg/dom"
	"github.com/vango-dev/minidom/pkg/reconcile"
	"github.com/vango-dev/minidom/pkg/render"
	"github.com/vango-dev/minidom/pkg/vdom"
)

// Harness drives one engine against one in-memory document.
type Harness struct {
	t      testing.TB
	Doc    *dom.Document
	Engine *reconcile.Engine
	mark   int
}

// New creates a harness with an empty document.
func New(t testing.TB, opts ...reconcile.Option) *Harness {
	doc := dom.NewDocument()
	return &Harness{
		t:      t,
		Doc:    doc,
		Engine: reconcile.New(doc, opts...),
	}
}

// Render renders tree into the document root and fails the test on error.
func (h *Harness) Render(tree *vdom.VNode) {
	h.t.Helper()
	if err := h.Engine.Render(tree, h.Doc.Root()); err != nil {
		h.t.Fatalf("Render(%s) error: %v", tree.TypeName(), err)
	}
}

// TryRender renders tree into the document root and returns the error.
func (h *Harness) TryRender(tree *vdom.VNode) error {
	return h.Engine.Render(tree, h.Doc.Root())
}

// Mark starts a new journal window.
func (h *Harness) Mark() {
	h.mark = h.Doc.Journal().Len()
}

// Records returns the mutations recorded since the last Mark.
func (h *Harness) Records() []dom.Record {
	return h.Doc.Journal().Since(h.mark)
}

// Ops returns the ops recorded since the last Mark.
func (h *Harness) Ops() []dom.Op {
	records := h.Records()
	ops := make([]dom.Op, len(records))
	for i, r := range records {
		ops[i] = r.Op
	}
	return ops
}

// Node walks the document from the root's first child along path, each
// element being a child index. Node() returns the root's first child.
// It fails the test if the path does not exist.
func (h *Harness) Node(path ...int) *dom.Node {
	h.t.Helper()
	children := h.Doc.Root().Children()
	if len(children) == 0 {
		h.t.Fatalf("document root is empty")
	}
	n := children[0]
	for depth, i := range path {
		children = n.Children()
		if i < 0 || i >= len(children) {
			h.t.Fatalf("path %v: node at depth %d has %d children", path, depth, len(children))
		}
		n = children[i]
	}
	return n
}

// Dispatch fires event on n and fails the test if no listener ran.
func (h *Harness) Dispatch(n *dom.Node, event, value string) {
	h.t.Helper()
	if h.Doc.Dispatch(n, event, value) == 0 {
		h.t.Fatalf("no %q listener on #%d <%s>", event, n.ID(), n.Tag())
	}
}

// HTML returns the serialized content of the document root.
func (h *Harness) HTML() string {
	var b strings.Builder
	if err := render.NewRenderer(render.RendererConfig{}).RenderChildren(&b, h.Doc.Root()); err != nil {
		h.t.Fatalf("render: %v", err)
	}
	return b.String()
}

// ExpectHTML asserts that the document content serializes to want.
func ExpectHTML(t testing.TB, h *Harness, want string) {
	t.Helper()
	if got := h.HTML(); got != want {
		t.Errorf("HTML mismatch (-want +got):\n%s", cmp.Diff(want, got))
	}
}

// ExpectOps asserts that got is exactly the op sequence want.
func ExpectOps(t testing.TB, got []dom.Op, want ...dom.Op) {
	t.Helper()
	if len(want) == 0 {
		want = []dom.Op{}
	}
	if got == nil {
		got = []dom.Op{}
	}
	if diff := cmp.Diff(want, got, cmp.Transformer("name", dom.Op.String)); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
}

// ExpectNoOps asserts that nothing was mutated since the last Mark.
func ExpectNoOps(t testing.TB, h *Harness) {
	t.Helper()
	if records := h.Records(); len(records) > 0 {
		var b strings.Builder
		for _, r := range records {
			b.WriteString("\n  " + r.String())
		}
		t.Errorf("expected no host mutations, got %d:%s", len(records), b.String())
	}
}
