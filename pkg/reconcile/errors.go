package reconcile

import "github.com/vango-dev/minidom/internal/errors"

// Errors reported by the engine. Match them with errors.Is; the returned
// errors carry extra detail but share these codes.
var (
	// ErrNilNode is returned when a nil virtual node is rendered.
	ErrNilNode error = errors.New("R001")

	// ErrMalformedNode is returned for nodes without a usable type.
	ErrMalformedNode error = errors.New("R002")

	// ErrReentrantUpdate is returned when Render or SetState is called while
	// a pass is already running.
	ErrReentrantUpdate error = errors.New("R003")

	// ErrNotMounted is returned by SetState on an instance that no longer
	// owns a host node.
	ErrNotMounted error = errors.New("R004")

	// ErrDetached is returned when a component's host node has no parent.
	ErrDetached error = errors.New("R005")

	// ErrNilRender is returned when a component renders nil.
	ErrNilRender error = errors.New("R006")

	// ErrInvalidHandler is returned for event props that are not listeners.
	ErrInvalidHandler error = errors.New("R007")
)
