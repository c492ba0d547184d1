package errors

import (
	"maps"
	"slices"
)

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Reconciliation Errors (R001-R099)
	// ============================================

	"R001": {
		Category:   CategoryReconcile,
		Message:    "Nil virtual node",
		Detail:     "A nil *vdom.VNode was passed where a node was expected.",
		Suggestion: "Filter nil children with vdom.If or skip them before building the tree.",
	},
	"R002": {
		Category:   CategoryReconcile,
		Message:    "Malformed virtual node",
		Detail:     "The node has no tag, no component type, or a type vdom.H does not understand.",
		Suggestion: "Build nodes with vdom.H, the element helpers, or vdom.Component.",
	},
	"R003": {
		Category:   CategoryReconcile,
		Message:    "State update during a render pass",
		Detail:     "SetState or Render was called while a render pass was running. Updates are applied synchronously and cannot be nested.",
		Suggestion: "Call SetState from event listeners, not from Render.",
	},
	"R004": {
		Category:   CategoryReconcile,
		Message:    "Component is not mounted",
		Detail:     "The component instance no longer owns a node in the host tree. It was replaced or removed by a later render.",
		Suggestion: "Drop references to instances once their component leaves the tree.",
	},
	"R005": {
		Category:   CategoryReconcile,
		Message:    "Host node has no parent",
		Detail:     "The host node rendered by the component was detached from the tree outside of the reconciler.",
	},
	"R006": {
		Category:   CategoryReconcile,
		Message:    "Component rendered nil",
		Detail:     "Every component must render exactly one node.",
		Suggestion: "Return an empty element such as vdom.Span() instead of nil.",
	},
	"R007": {
		Category:   CategoryReconcile,
		Message:    "Invalid event handler",
		Detail:     "Props starting with \"on\" must hold a *vdom.Listener, a func(vdom.Event) or a func().",
	},

	// ============================================
	// Configuration Errors (C001-C099)
	// ============================================

	"C001": {
		Category:   CategoryConfig,
		Message:    "Configuration file not found",
		Suggestion: "Create minidom.json or minidom.toml, or pass --config.",
	},
	"C002": {
		Category: CategoryConfig,
		Message:  "Configuration file could not be parsed",
	},
	"C003": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
	},

	// ============================================
	// Playground Session Errors (S001-S099)
	// ============================================

	"S001": {
		Category:   CategorySession,
		Message:    "Malformed event frame",
		Detail:     "The client sent a frame that is not a JSON event object.",
		Suggestion: `Send {"node": <id>, "event": "click"}.`,
	},
	"S002": {
		Category: CategorySession,
		Message:  "Unknown node",
		Detail:   "The event targets a node that is not attached to the session's document.",
	},
	"S003": {
		Category: CategorySession,
		Message:  "No listener for event",
		Detail:   "The target node has no listener registered for the event.",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Codes returns all registered codes in sorted order.
func Codes() []string {
	return slices.Sorted(maps.Keys(registry))
}
