package dom

import "errors"

// Sentinel errors returned by Document operations.
var (
	// ErrForeignNode is returned when a handle is not a *Node of this document.
	ErrForeignNode = errors.New("dom: node does not belong to this document")

	// ErrInvalidAttribute is returned for empty or malformed attribute names.
	ErrInvalidAttribute = errors.New("dom: invalid attribute name")

	// ErrNotElement is returned when an element operation targets a text node.
	ErrNotElement = errors.New("dom: node is not an element")

	// ErrNotText is returned when SetText targets an element.
	ErrNotText = errors.New("dom: node is not a text node")

	// ErrNotChild is returned when the reference node is not a child of the parent.
	ErrNotChild = errors.New("dom: node is not a child of parent")

	// ErrHierarchy is returned when an insertion would create a cycle.
	ErrHierarchy = errors.New("dom: hierarchy request error")
)
