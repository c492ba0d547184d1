// Package render serializes an in-memory dom.Document to HTML.
//
// The output reflects the host tree as the reconciler left it: attributes
// in sorted order, live properties written back as attributes, and text
// escaped. Listeners are not markup; with IncludeIDs set, elements that
// carry listeners are marked with data-on-<event> so a client can forward
// events by node ID.
//
// # Basic Usage
//
//	r := render.NewRenderer(render.RendererConfig{})
//	html, err := r.RenderToString(doc.Root())
//
// # Pages
//
// RenderPage wraps the tree in a complete HTML document, used by the
// playground server:
//
//	err := r.RenderPage(w, render.PageData{Title: "minidom", Body: doc.Root()})
package render
