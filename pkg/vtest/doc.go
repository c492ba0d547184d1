// Package vtest provides testing helpers for minidom components.
//
// A Harness bundles an in-memory document, a reconcile engine bound to it and
// a journal mark, so a test can render a tree, act on it and assert on the
// exact host mutations that followed.
//
// # Quick Start
//
//	func TestCounter(t *testing.T) {
//	    h := vtest.New(t)
//	    h.Render(vdom.Component(Counter, nil))
//	    vtest.ExpectHTML(t, h, `<div><button>+</button><span>0</span></div>`)
//
//	    h.Mark()
//	    h.Dispatch(h.Node(0, 0), "click", "")
//	    vtest.ExpectOps(t, h.Ops(), dom.OpSetText)
//	}
//
// # Journal Assertions
//
// Mark starts a new window of recorded mutations; Ops returns the ops
// recorded since the last mark. ExpectOps compares op sequences with go-cmp
// and prints a diff on mismatch.
package vtest
