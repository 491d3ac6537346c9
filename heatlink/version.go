// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package heatlink

import (
	"fmt"
	"strings"

	"github.com/rob-gra/go-heatlink/registry"
	"github.com/rob-gra/go-heatlink/shi"
	"github.com/rob-gra/go-heatlink/vector"
)

// FirstVersionWithSHI is the earliest firmware version known to expose the
// Modbus/SHI interface, grounded on spec.md §4.8's versioning note.
var FirstVersionWithSHI = registry.MustParseVersion("3.90.1.0")

// LatestVersion is the compiled-in default used when the caller asks for
// "latest" instead of an explicit or detected version.
var LatestVersion = registry.MustParseVersion("3.92.1.0")

// ResolveVersion determines the controller's firmware version from input,
// grounded on the four modes of spec.md §4.7 (detect/latest/explicit/nil).
// sess is only used by "detect" and may be nil for every other input.
//
// Accepted inputs:
//   - registry.Version or [4]int: used as-is.
//   - a dotted string "a.b.c.d": parsed with registry.ParseVersion.
//   - "latest": returns LatestVersion.
//   - "detect": probes the controller's input "version" field over sess.
//   - nil: trial-and-error mode, returns (nil, nil) and no error.
func ResolveVersion(input interface{}, sess *shi.Session) (*registry.Version, error) {
	switch v := input.(type) {
	case nil:
		return nil, nil
	case registry.Version:
		return &v, nil
	case [4]int:
		vv := registry.Version(v)
		return &vv, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "latest":
			lv := LatestVersion
			return &lv, nil
		case "detect":
			return detectVersion(sess)
		default:
			vv, err := registry.ParseVersion(v)
			if err != nil {
				return nil, fmt.Errorf("heatlink: resolve version %q: %w", v, err)
			}
			return &vv, nil
		}
	default:
		return nil, fmt.Errorf("heatlink: resolve version: unsupported input %T", input)
	}
}

// detectVersion probes the controller's input "version" field — the sole
// version-tagged definition in the retrieved schema — and parses its
// decoded value. Grounded on spec.md §4.7's "detect" description: probe
// each known version-field definition in turn, returning the first that
// yields a non-null tuple.
func detectVersion(sess *shi.Session) (*registry.Version, error) {
	if sess == nil {
		return nil, fmt.Errorf("heatlink: detect version: no SHI session available")
	}
	dv := vector.New(registry.InputDefinitions, nil, false)
	if !sess.CollectInputsForRead(dv) {
		return nil, fmt.Errorf("heatlink: detect version: read failed")
	}
	f, ok := dv.Get("version")
	if !ok {
		return nil, fmt.Errorf("heatlink: detect version: no version field in schema")
	}
	value, err := f.Value()
	if err != nil {
		return nil, fmt.Errorf("heatlink: detect version: decode: %w", err)
	}
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("heatlink: detect version: field did not decode to a parseable string")
	}
	vv, err := registry.ParseVersion(s)
	if err != nil {
		return nil, fmt.Errorf("heatlink: detect version: %w", err)
	}
	return &vv, nil
}
