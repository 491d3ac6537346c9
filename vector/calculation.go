// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package vector

import (
	"fmt"
	"strings"

	"github.com/rob-gra/go-heatlink/registry"
)

// FirmwareVersion assembles the ten Character-typed calculation registers
// (registry.FirmwareVersionCharStart..End) into the firmware version
// string, grounded on luxtronik/cfi/calculations.py:get_firmware_version.
// The obsolete "ID_WEB_SoftStand" alias from that source is not carried
// forward; callers read this directly instead.
func FirmwareVersion(dv *DataVector) (string, error) {
	if dv.Class() != "calculation" {
		return "", fmt.Errorf("vector: firmware version: register class %q is not \"calculation\"", dv.Class())
	}

	var b strings.Builder
	for i := registry.FirmwareVersionCharStart; i <= registry.FirmwareVersionCharEnd; i++ {
		f, ok := dv.Get(dv.Offset() + i)
		if !ok {
			return "", fmt.Errorf("vector: firmware version: no field at index %d", i)
		}
		value, err := f.Value()
		if err != nil {
			return "", fmt.Errorf("vector: firmware version: index %d: %w", i, err)
		}
		s, _ := value.(string)
		b.WriteString(s)
	}
	return strings.Trim(b.String(), "\x00"), nil
}
