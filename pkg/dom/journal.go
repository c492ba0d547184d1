package dom

import (
	"fmt"
	"strings"
)

// Op is the type of a recorded host mutation.
type Op uint8

const (
	OpCreateElement  Op = 0x01 // Create element node
	OpCreateText     Op = 0x02 // Create text node
	OpSetText        Op = 0x03 // Update text content
	OpSetAttr        Op = 0x04 // Set/update attribute
	OpRemoveAttr     Op = 0x05 // Remove attribute
	OpSetProp        Op = 0x06 // Assign live property
	OpAddListener    Op = 0x07 // Register event listener
	OpRemoveListener Op = 0x08 // Deregister event listener
	OpAppend         Op = 0x09 // Append child
	OpReplace        Op = 0x0A // Replace child
	OpRemove         Op = 0x0B // Remove child
)

// String returns the string representation of the Op.
func (op Op) String() string {
	switch op {
	case OpCreateElement:
		return "CreateElement"
	case OpCreateText:
		return "CreateText"
	case OpSetText:
		return "SetText"
	case OpSetAttr:
		return "SetAttr"
	case OpRemoveAttr:
		return "RemoveAttr"
	case OpSetProp:
		return "SetProp"
	case OpAddListener:
		return "AddListener"
	case OpRemoveListener:
		return "RemoveListener"
	case OpAppend:
		return "Append"
	case OpReplace:
		return "Replace"
	case OpRemove:
		return "Remove"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the op by name.
func (op Op) MarshalText() ([]byte, error) {
	return []byte(op.String()), nil
}

// UnmarshalText decodes an op name produced by MarshalText.
func (op *Op) UnmarshalText(text []byte) error {
	for o := OpCreateElement; o <= OpRemove; o++ {
		if o.String() == string(text) {
			*op = o
			return nil
		}
	}
	return fmt.Errorf("dom: unknown op %q", text)
}

// IsStructural reports whether op inserts or removes nodes.
func (op Op) IsStructural() bool {
	return op == OpAppend || op == OpReplace || op == OpRemove
}

// Record is one journaled mutation.
type Record struct {
	Op     Op     `json:"op" yaml:"op"`
	Node   int    `json:"node" yaml:"node"`                         // Target node
	Parent int    `json:"parent,omitempty" yaml:"parent,omitempty"` // Parent for Append/Replace/Remove
	Old    int    `json:"old,omitempty" yaml:"old,omitempty"`       // Replaced node for Replace
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`     // Tag, attribute, property or event name
	Value  string `json:"value,omitempty" yaml:"value,omitempty"`   // New value
}

// String formats the record as a single readable line.
func (r Record) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-14s #%d", r.Op, r.Node)
	switch r.Op {
	case OpAppend, OpRemove:
		fmt.Fprintf(&b, " parent=#%d", r.Parent)
	case OpReplace:
		fmt.Fprintf(&b, " parent=#%d old=#%d", r.Parent, r.Old)
	}
	if r.Name != "" {
		fmt.Fprintf(&b, " %s", r.Name)
	}
	if r.Value != "" {
		fmt.Fprintf(&b, " %q", r.Value)
	}
	return b.String()
}

// Journal is an append-only log of host mutations.
type Journal struct {
	records []Record
}

func (j *Journal) add(r Record) {
	j.records = append(j.records, r)
}

// Records returns a copy of the recorded mutations.
func (j *Journal) Records() []Record {
	out := make([]Record, len(j.records))
	copy(out, j.records)
	return out
}

// Len returns the number of recorded mutations.
func (j *Journal) Len() int { return len(j.records) }

// Since returns the mutations recorded after mark.
func (j *Journal) Since(mark int) []Record {
	if mark >= len(j.records) {
		return nil
	}
	out := make([]Record, len(j.records)-mark)
	copy(out, j.records[mark:])
	return out
}

// Count returns the number of records with the given op.
func (j *Journal) Count(op Op) int {
	n := 0
	for _, r := range j.records {
		if r.Op == op {
			n++
		}
	}
	return n
}

// Reset clears the journal.
func (j *Journal) Reset() {
	j.records = j.records[:0]
}
