// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// Package vector holds the runtime state of a controller's register class:
// one Field per schema entry inside a DataVector, plus the contiguous-block
// planner (Block/BlockList) that groups fields into minimal-span telegrams.
package vector

import (
	"fmt"

	"github.com/rob-gra/go-heatlink/codec"
	"github.com/rob-gra/go-heatlink/registry"
)

// Field is the runtime counterpart to a registry.FieldDefinition: its last
// known raw value (or nil if never read), and any value queued for write.
// Grounded on luxtronik/datatypes.py:Base combined with
// luxtronik/shi/vector.py's field/definition pairing.
type Field struct {
	Definition *registry.FieldDefinition

	Raw *int64

	WritePending bool
	PendingRaw   int64
}

// NewField builds an empty Field for def, with no value read yet.
func NewField(def *registry.FieldDefinition) *Field {
	return &Field{Definition: def}
}

// Value decodes the field's raw value through its definition's codec
// variant. It returns (nil, nil) when the field has never been read, or
// when the raw value is the controller's "not available" sentinel for an
// INT16-typed field (see DESIGN.md Open Question 1).
func (f *Field) Value() (interface{}, error) {
	if f.Raw == nil {
		return nil, nil
	}
	if codec.IsSentinel(*f.Raw, f.Definition.DataType) {
		return nil, nil
	}
	return f.Definition.Type.Decode(*f.Raw)
}

// SetRaw records a freshly read raw value and clears any write-pending
// state, matching luxtronik/shi/interface.py's _integrate_data clearing
// write_pending on a successful read. A controller "not available" sentinel
// for an INT16-typed field is stored as a null raw (see spec.md §8 scenarios
// 1 and 4), not as the literal 0x7FFF, matching
// luxtronik/definitions/__init__.py:check_raw_not_none.
func (f *Field) SetRaw(raw int64) {
	if codec.IsSentinel(raw, f.Definition.DataType) {
		f.Raw = nil
		f.WritePending = false
		return
	}
	v := raw
	f.Raw = &v
	f.WritePending = false
}

// QueueWrite encodes value through the field's codec and marks it pending,
// grounded on luxtronik/cfi/parameters.py:Parameters.set. It refuses to
// queue a write for a field that is not writeable.
func (f *Field) QueueWrite(value interface{}) error {
	if !f.Definition.Writeable {
		return fmt.Errorf("vector: field %q is not writeable", f.Definition.Name())
	}
	raw, err := f.Definition.Type.Encode(value)
	if err != nil {
		return fmt.Errorf("vector: field %q: %w", f.Definition.Name(), err)
	}
	f.PendingRaw = raw
	f.WritePending = true
	return nil
}

// AcknowledgeWrite clears write-pending state after a telegram carrying
// this field's write has been acknowledged by the controller, without
// necessarily re-reading the value back.
func (f *Field) AcknowledgeWrite() {
	f.WritePending = false
	v := f.PendingRaw
	f.Raw = &v
}
