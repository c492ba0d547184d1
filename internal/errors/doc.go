// Package errors provides structured, actionable error messages for minidom.
//
// Every failure the engine can diagnose on its own (a malformed virtual
// node, a state update issued in the middle of a render pass, a component
// whose host node was removed) is reported as an *Error carrying a stable
// code:
//   - R0xx: reconciliation errors (caller contract violations)
//   - C0xx: configuration errors
//
// Each code maps to a short message, a longer explanation and a hint.
// Errors compare equal under errors.Is when their codes match, so callers
// can test for a condition without inspecting the message:
//
//	if errors.Is(err, reconcile.ErrReentrantUpdate) {
//	    // schedule the update after the current pass
//	}
//
// Format renders an error for a terminal:
//
//	ERROR R003: State update during a render pass
//
//	  SetState was called while a render pass was running.
//
//	  Hint: Call SetState from event listeners, not from Render.
//
// Errors raised by a host adapter are never wrapped in an *Error; they reach
// the caller unchanged.
package errors
