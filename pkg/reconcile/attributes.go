package reconcile

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"

	"github.com/vango-dev/minidom/internal/errors"
	"github.com/vango-dev/minidom/pkg/host"
	"github.com/vango-dev/minidom/pkg/vdom"
)

// reconcileAttributes applies the prop delta between prev and next to node.
// prev is nil on first mount. Names are visited in sorted order so a pass
// always issues host mutations in the same order.
func (e *Engine) reconcileAttributes(node host.Node, next, prev *vdom.VNode) error {
	var oldProps vdom.Props
	if prev != nil {
		oldProps = prev.Props
	}
	newProps := next.Props

	for _, name := range slices.Sorted(maps.Keys(newProps)) {
		val := newProps[name]
		if isAbsent(val) {
			continue
		}
		old, had := oldProps[name]
		if had && sameProp(old, val) {
			continue
		}
		if isAbsent(old) {
			old = nil
		}
		if err := e.setProp(node, name, val, old); err != nil {
			return err
		}
	}

	for _, name := range slices.Sorted(maps.Keys(oldProps)) {
		old := oldProps[name]
		if isAbsent(old) {
			continue
		}
		if val, ok := newProps[name]; ok && !isAbsent(val) {
			continue
		}
		if err := e.removeProp(node, name, old); err != nil {
			return err
		}
	}
	return nil
}

// setProp applies one new or changed prop. old is the previous value, or nil.
func (e *Engine) setProp(node host.Node, name string, val, old any) error {
	switch {
	case vdom.IsEventProp(name):
		l, ok := val.(*vdom.Listener)
		if !ok {
			return errors.New("R007").WithDetailf("Prop %q holds a %T.", name, val)
		}
		event := vdom.EventName(name)
		if ol, ok := old.(*vdom.Listener); ok && ol != nil {
			if err := e.host.RemoveEventListener(node, event, ol); err != nil {
				return err
			}
		}
		return e.host.AddEventListener(node, event, l)
	case name == "value" || name == "checked":
		return e.host.SetProperty(node, name, val)
	case name == vdom.ChildrenProp || name == vdom.TextContentProp:
		return nil
	default:
		return e.host.SetAttribute(node, attrName(name), propToString(val))
	}
}

// removeProp undoes a prop that is no longer present.
func (e *Engine) removeProp(node host.Node, name string, old any) error {
	switch {
	case vdom.IsEventProp(name):
		if ol, ok := old.(*vdom.Listener); ok {
			return e.host.RemoveEventListener(node, vdom.EventName(name), ol)
		}
		return nil
	case name == "value":
		return e.host.SetProperty(node, name, "")
	case name == "checked":
		return e.host.SetProperty(node, name, false)
	case name == vdom.ChildrenProp || name == vdom.TextContentProp:
		return nil
	default:
		return e.host.RemoveAttribute(node, attrName(name))
	}
}

// attrName maps prop names to host attribute names.
func attrName(prop string) string {
	if prop == "className" {
		return "class"
	}
	return prop
}

// isAbsent reports whether a prop value counts as not set.
func isAbsent(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case bool:
		return !val
	case *vdom.Listener:
		return val == nil
	}
	return false
}

// sameProp reports whether two prop values are the same for reconciliation
// purposes: identity for listeners and reference types, equality for
// comparable values. Functions are never the same.
func sameProp(a, b any) bool {
	// Fast path for common types
	switch av := a.(type) {
	case *vdom.Listener:
		bv, ok := b.(*vdom.Listener)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case nil:
		return b == nil
	}

	if b == nil {
		return false
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Func:
		return false
	case reflect.Map, reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}
	if va.Comparable() {
		return va.Equal(vb)
	}
	return false
}

// propToString converts a prop value to an attribute value.
func propToString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
