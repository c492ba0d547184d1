package vdom

// Ctx is the view a stateful component has of its live instance.
type Ctx interface {
	// Props returns the latest props passed by the parent.
	Props() Props

	// State returns the current state. Treat it as read-only.
	State() State

	// SetState shallow-merges partial into the state and re-renders the
	// component synchronously.
	SetState(partial State) error
}

// Stateful is a component that keeps state across renders.
type Stateful interface {
	Render(ctx Ctx) *VNode
}

// InitialStater is implemented by stateful components that start with a
// non-empty state.
type InitialStater interface {
	InitialState(props Props) State
}

// RenderFunc renders a function component.
type RenderFunc func(props Props) *VNode

// Constructor builds a stateful component from its first props.
type Constructor func(props Props) Stateful

type componentVariant uint8

const (
	variantFunction componentVariant = iota
	variantStateful
)

// ComponentType identifies a component. Two component nodes are the same
// component only if they point at the same ComponentType.
type ComponentType struct {
	name      string
	variant   componentVariant
	render    RenderFunc
	construct Constructor
}

// FunctionComponent declares a component rendered by a plain function.
func FunctionComponent(name string, render RenderFunc) *ComponentType {
	return &ComponentType{name: name, variant: variantFunction, render: render}
}

// StatefulComponent declares a component backed by a constructed value.
func StatefulComponent(name string, construct Constructor) *ComponentType {
	return &ComponentType{name: name, variant: variantStateful, construct: construct}
}

// Name returns the component's display name.
func (c *ComponentType) Name() string {
	if c == nil {
		return "<nil component>"
	}
	return c.name
}

// IsStateful reports whether the component is the stateful variant.
func (c *ComponentType) IsStateful() bool {
	return c != nil && c.variant == variantStateful
}

// RenderFunction returns the render function of a function component.
func (c *ComponentType) RenderFunction() RenderFunc {
	if c == nil || c.variant != variantFunction {
		return nil
	}
	return c.render
}

// Construct builds a new stateful value. It returns nil for function components.
func (c *ComponentType) Construct(props Props) Stateful {
	if c == nil || c.variant != variantStateful || c.construct == nil {
		return nil
	}
	return c.construct(props)
}

// Component creates a component node.
func Component(typ *ComponentType, props Props, children ...any) *VNode {
	return H(typ, props, children...)
}
