// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// Package codec implements the typed conversions between a controller's raw
// register values and the Go values exposed to callers: scaled numerics,
// enumerated selections, and the handful of composite wire formats
// (IPv4 addresses, timestamps, version numbers, bit-packed times of day)
// the controller's register map uses.
package codec

import (
	"fmt"
	"math"
)

// NotAvailable is the sentinel raw value a controller uses to mean "this
// register currently has no value". Only fields whose declared wire width
// is 16-bit signed (DataType == "INT16") are checked against it; see
// DESIGN.md Open Question 1.
const NotAvailable int64 = 0x7FFF

// Variant converts between a field's raw register value and its typed Go
// representation. Decode/Encode operate on the field's fully assembled raw
// value (already concatenated across Words() registers, MSB-first); they
// never see individual register chunks.
type Variant interface {
	// Name identifies the variant for diagnostics and registry tables.
	Name() string
	// Words reports how many underlying register-sized chunks this
	// variant's raw value spans. Most variants report 1.
	Words() int
	// Decode converts a raw register value into its typed representation.
	Decode(raw int64) (interface{}, error)
	// Encode converts a typed value back into its raw register
	// representation for a write.
	Encode(value interface{}) (int64, error)
}

// IsSentinel reports whether raw is the "not available" sentinel for a
// field declared with the given wire data type.
func IsSentinel(raw int64, dataType string) bool {
	return dataType == "INT16" && raw == NotAvailable
}

// scaled implements the Celsius/Kelvin/Percent-style fixed-point variants:
// the wire value is a plain integer scaled by a constant factor.
type scaled struct {
	name   string
	factor float64
}

// NewScaled returns a Variant that multiplies the raw register value by
// factor on decode and divides by factor (rounding to the nearest integer)
// on encode, e.g.
// NewScaled("Celsius", 0.1) for a raw/10 tenths-of-a-degree field.
func NewScaled(name string, factor float64) Variant {
	return scaled{name: name, factor: factor}
}

func (s scaled) Name() string { return s.name }
func (s scaled) Words() int   { return 1 }

func (s scaled) Decode(raw int64) (interface{}, error) {
	return float64(raw) * s.factor, nil
}

func (s scaled) Encode(value interface{}) (int64, error) {
	f, err := toFloat(value)
	if err != nil {
		return 0, fmt.Errorf("codec: %s: %w", s.name, err)
	}
	return int64(math.Round(f / s.factor)), nil
}

func toFloat(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("value %v (%T) is not numeric", value, value)
	}
}
