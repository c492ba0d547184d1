// Package dom is an in-memory host tree for the minidom reconciler.
//
// A Document implements host.Adapter. Every mutation it performs is appended
// to a Journal, which makes the reconciler's decisions observable: tests
// assert on the exact operations of a pass, the demo command prints them, and
// the playground server streams them to the browser.
//
//	doc := dom.NewDocument()
//	engine := reconcile.New(doc)
//	engine.Render(vdom.Div("hi"), doc.Root())
//	for _, rec := range doc.Journal().Records() {
//	    fmt.Println(rec)
//	}
//
// Events are delivered with Dispatch, which calls the listeners registered on
// a node synchronously, in registration order.
package dom
