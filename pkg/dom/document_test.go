package dom

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/minidom/pkg/vdom"
)

func mustElement(t *testing.T, d *Document, tag string) *Node {
	t.Helper()
	h, err := d.CreateElement(tag)
	if err != nil {
		t.Fatalf("CreateElement(%q): %v", tag, err)
	}
	return h.(*Node)
}

func TestNewDocument(t *testing.T) {
	d := NewDocument()
	if d.Root().Tag() != RootTag {
		t.Errorf("root tag = %q, want %q", d.Root().Tag(), RootTag)
	}
	if d.Journal().Len() != 0 {
		t.Error("creating the root was journaled")
	}
}

func TestJournalRecordsMutations(t *testing.T) {
	d := NewDocument()
	div := mustElement(t, d, "div")
	txt, _ := d.CreateTextNode("hi")
	_ = d.SetAttribute(div, "class", "box")
	_ = d.AppendChild(div, txt)
	_ = d.AppendChild(d.Root(), div)
	_ = d.SetText(txt, "bye")
	_ = d.RemoveAttribute(div, "class")

	t1 := txt.(*Node).ID()
	want := []Record{
		{Op: OpCreateElement, Node: div.ID(), Name: "div"},
		{Op: OpCreateText, Node: t1, Value: "hi"},
		{Op: OpSetAttr, Node: div.ID(), Name: "class", Value: "box"},
		{Op: OpAppend, Node: t1, Parent: div.ID()},
		{Op: OpAppend, Node: div.ID(), Parent: d.Root().ID()},
		{Op: OpSetText, Node: t1, Value: "bye"},
		{Op: OpRemoveAttr, Node: div.ID(), Name: "class"},
	}
	if diff := cmp.Diff(want, d.Journal().Records()); diff != "" {
		t.Errorf("journal mismatch (-want +got):\n%s", diff)
	}
	if got := d.Journal().Count(OpAppend); got != 2 {
		t.Errorf("Count(OpAppend) = %d, want 2", got)
	}
	if got := len(d.Journal().Since(5)); got != 2 {
		t.Errorf("len(Since(5)) = %d, want 2", got)
	}
	if d.Journal().Since(100) != nil {
		t.Error("Since past the end should be nil")
	}

	d.Journal().Reset()
	if d.Journal().Len() != 0 {
		t.Error("Reset left records")
	}
}

func TestAdapterErrors(t *testing.T) {
	d := NewDocument()
	other := NewDocument()
	div := mustElement(t, d, "div")
	span := mustElement(t, d, "span")
	txt, _ := d.CreateTextNode("x")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"invalid attribute name", d.SetAttribute(div, "a b", "x"), ErrInvalidAttribute},
		{"empty attribute name", d.SetAttribute(div, "", "x"), ErrInvalidAttribute},
		{"attribute on text", d.SetAttribute(txt, "a", "x"), ErrNotElement},
		{"set text on element", d.SetText(div, "x"), ErrNotText},
		{"append into text", d.AppendChild(txt, div), ErrNotElement},
		{"remove non-child", d.RemoveChild(div, span), ErrNotChild},
		{"replace non-child", d.ReplaceChild(div, txt, span), ErrNotChild},
		{"foreign node", d.AppendChild(div, other.Root()), ErrForeignNode},
		{"foreign value", d.AppendChild(div, "not a node"), ErrForeignNode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.want) {
				t.Errorf("error = %v, want %v", tt.err, tt.want)
			}
		})
	}

	if _, err := d.CreateElement("bad tag"); err == nil {
		t.Error("CreateElement accepted an invalid tag")
	}
}

func TestAppendCycleRejected(t *testing.T) {
	d := NewDocument()
	outer := mustElement(t, d, "div")
	inner := mustElement(t, d, "div")
	_ = d.AppendChild(outer, inner)

	if err := d.AppendChild(inner, outer); !errors.Is(err, ErrHierarchy) {
		t.Errorf("AppendChild(inner, outer) = %v, want ErrHierarchy", err)
	}
}

func TestReplaceChild(t *testing.T) {
	d := NewDocument()
	ul := mustElement(t, d, "ul")
	a := mustElement(t, d, "li")
	b := mustElement(t, d, "li")
	c := mustElement(t, d, "li")
	_ = d.AppendChild(ul, a)
	_ = d.AppendChild(ul, b)

	if err := d.ReplaceChild(ul, c, a); err != nil {
		t.Fatalf("ReplaceChild: %v", err)
	}
	children := ul.Children()
	if len(children) != 2 || children[0] != c || children[1] != b {
		t.Errorf("children after replace = %v", children)
	}
	if a.Parent() != nil {
		t.Error("replaced node still has a parent")
	}
	if _, ok := d.Find(a.ID()); ok {
		t.Error("replaced node still indexed")
	}
	if d.Parent(a) != nil {
		t.Error("Parent of detached node should be nil")
	}
}

func TestRemoveChildForgetsSubtree(t *testing.T) {
	d := NewDocument()
	div := mustElement(t, d, "div")
	p := mustElement(t, d, "p")
	txt, _ := d.CreateTextNode("x")
	_ = d.AppendChild(p, txt)
	_ = d.AppendChild(div, p)
	_ = d.AppendChild(d.Root(), div)

	if err := d.RemoveChild(div, p); err != nil {
		t.Fatalf("RemoveChild: %v", err)
	}
	if _, ok := d.Find(txt.(*Node).ID()); ok {
		t.Error("descendant of removed node still indexed")
	}
	if len(d.ChildNodes(div)) != 0 {
		t.Error("removed node still listed")
	}
}

func TestListeners(t *testing.T) {
	d := NewDocument()
	btn := mustElement(t, d, "button")
	l := vdom.Listen(func(vdom.Event) {})

	_ = d.AddEventListener(btn, "click", l)
	_ = d.AddEventListener(btn, "click", l)
	if got := btn.ListenerCount(); got != 1 {
		t.Errorf("ListenerCount() after duplicate add = %d, want 1", got)
	}
	if got := d.Journal().Count(OpAddListener); got != 1 {
		t.Errorf("duplicate add journaled: %d records", got)
	}

	_ = d.RemoveEventListener(btn, "click", vdom.Listen(func(vdom.Event) {}))
	if d.Journal().Count(OpRemoveListener) != 0 {
		t.Error("removing an unknown listener was journaled")
	}

	_ = d.RemoveEventListener(btn, "click", l)
	if btn.ListenerCount() != 0 || len(btn.Events()) != 0 {
		t.Error("listener not removed")
	}
}

func TestDispatch(t *testing.T) {
	d := NewDocument()
	input := mustElement(t, d, "input")
	_ = d.AppendChild(d.Root(), input)

	var seen []vdom.Event
	_ = d.AddEventListener(input, "input", vdom.Listen(func(e vdom.Event) { seen = append(seen, e) }))

	n, ok := d.DispatchID(input.ID(), "input", "abc")
	if !ok || n != 1 {
		t.Fatalf("DispatchID = %d, %v; want 1, true", n, ok)
	}
	if v, _ := input.Property("value"); v != "abc" {
		t.Errorf("value property = %v, want abc", v)
	}
	if len(seen) != 1 || seen[0].Value != "abc" || seen[0].Target != input {
		t.Errorf("event = %+v", seen)
	}

	if n := d.Dispatch(input, "click", ""); n != 0 {
		t.Errorf("Dispatch(click) ran %d listeners, want 0", n)
	}
	if _, ok := d.DispatchID(9999, "click", ""); ok {
		t.Error("DispatchID found a missing node")
	}
}

func TestDispatchDetachedNode(t *testing.T) {
	d := NewDocument()
	btn := mustElement(t, d, "button")
	_ = d.AddEventListener(btn, "click", vdom.Listen(func(vdom.Event) {}))

	if _, ok := d.DispatchID(btn.ID(), "click", ""); ok {
		t.Error("DispatchID reached a node that is not attached")
	}
}

func TestTextContent(t *testing.T) {
	d := NewDocument()
	div := mustElement(t, d, "div")
	a, _ := d.CreateTextNode("你")
	b, _ := d.CreateTextNode("好")
	_ = d.AppendChild(div, a)
	_ = d.AppendChild(div, b)

	if got := div.TextContent(); got != "你好" {
		t.Errorf("TextContent() = %q, want 你好", got)
	}
}

func TestRecordString(t *testing.T) {
	tests := []struct {
		r    Record
		want string
	}{
		{Record{Op: OpSetAttr, Node: 2, Name: "class", Value: "x"}, `SetAttr        #2 class "x"`},
		{Record{Op: OpReplace, Node: 5, Parent: 1, Old: 3}, `Replace        #5 parent=#1 old=#3`},
		{Record{Op: OpRemove, Node: 4, Parent: 2}, `Remove         #4 parent=#2`},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestOpIsStructural(t *testing.T) {
	for _, op := range []Op{OpAppend, OpReplace, OpRemove} {
		if !op.IsStructural() {
			t.Errorf("%s should be structural", op)
		}
	}
	if OpSetAttr.IsStructural() {
		t.Error("SetAttr should not be structural")
	}
}

func TestOpText(t *testing.T) {
	for op := OpCreateElement; op <= OpRemove; op++ {
		text, err := op.MarshalText()
		if err != nil {
			t.Fatalf("%v.MarshalText() error: %v", op, err)
		}
		var got Op
		if err := got.UnmarshalText(text); err != nil || got != op {
			t.Errorf("UnmarshalText(%q) = %v, %v; want %v", text, got, err, op)
		}
	}

	var op Op
	if err := op.UnmarshalText([]byte("Explode")); err == nil {
		t.Error("UnmarshalText(Explode) succeeded, want error")
	}
}

func TestRecordJSON(t *testing.T) {
	data, err := json.Marshal(Record{Op: OpSetText, Node: 4, Value: "1"})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), `{"op":"SetText","node":4,"value":"1"}`; got != want {
		t.Errorf("json = %s, want %s", got, want)
	}
}
