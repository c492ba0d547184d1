// Package reconcile mounts virtual trees onto a host tree and keeps the two
// in sync.
//
// An Engine owns a side table mapping each host node it created to the
// virtual node last rendered into it and, when the node is the root output
// of a component, to the live component instance. Each call to Render
// compares the new virtual tree with that table and applies the difference
// through a host.Adapter:
//
//   - no host node at a position: mount the virtual node
//   - a component node: update the existing instance if the component type
//     is unchanged, otherwise mount a fresh instance in its place
//   - a different element tag (or text vs element): replace the host node
//   - same type: update text or attributes in place, then diff the children
//     by position and prune the extra host children from the end
//
// Children are paired by index only. Reordering a list therefore rewrites
// the moved positions instead of moving nodes.
//
// # Components
//
// Function and stateful components are declared with vdom.FunctionComponent
// and vdom.StatefulComponent. A stateful component receives a vdom.Ctx in
// Render; calling SetState on it merges the partial state and re-renders the
// component synchronously, diffing only its own subtree.
//
// # Concurrency
//
// An Engine is single threaded. Render and SetState run to completion before
// returning. Calling either while a pass is running (for example SetState
// from inside Render) is rejected with ErrReentrantUpdate.
package reconcile
