// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// Package registry holds the controller's field schema: per-class
// definition tables, the version ranges they apply to, and the lookup
// structures (by index, name, alias) the data vectors use to resolve a
// caller's request to a concrete field definition.
package registry

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a four-part controller firmware version, major.minor.patch.build.
// Grounded on luxtronik/shi/common.py:parse_version, which always pads or
// truncates to exactly four components.
type Version [4]int

// ParseVersion accepts a dotted string ("3.90.1.0") with any number of
// components and normalizes it to a four-part Version, padding with
// zero or truncating as needed. It returns an error only when s contains a
// non-numeric component; out-of-range lengths are tolerated by
// padding/truncation, matching the original's permissive parsing.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	var v Version
	for i := 0; i < 4; i++ {
		if i >= len(parts) {
			break
		}
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return Version{}, fmt.Errorf("registry: invalid version %q: %w", s, err)
		}
		v[i] = n
	}
	return v, nil
}

// MustParseVersion is ParseVersion for compile-time-known version literals
// used in the static definition tables; it panics on a malformed literal.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String renders the version as "major.minor.patch.build".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v[0], v[1], v[2], v[3])
}

// Compare returns -1, 0 or 1 as v is less than, equal to, or greater than o,
// comparing component by component.
func (v Version) Compare(o Version) int {
	for i := 0; i < 4; i++ {
		if v[i] != o[i] {
			if v[i] < o[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// InRange reports whether version is within [since, until], where a nil
// since or until bound is treated as unconstrained and a nil version always
// matches. Grounded on luxtronik/shi/common.py:version_in_range.
func InRange(version *Version, since, until *Version) bool {
	if version == nil {
		return true
	}
	if since != nil && version.Compare(*since) < 0 {
		return false
	}
	if until != nil && version.Compare(*until) > 0 {
		return false
	}
	return true
}
