// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package codec

import "fmt"

// PackValues concatenates values (each already masked to chunkBits) into a
// single big-endian integer, MSB-first when reverse is true. This mirrors
// luxtronik/shi/definitions.py:pack_values, which assembles a multi-register
// field's raw value from its individual register reads (chunkBits == 16)
// or a CFI multi-int field from its individual 32-bit reads
// (chunkBits == 32).
func PackValues(values []int64, chunkBits uint, reverse bool) int64 {
	mask := int64(1)<<chunkBits - 1
	var out int64
	if reverse {
		for _, v := range values {
			out = (out << chunkBits) | (v & mask)
		}
		return out
	}
	for i := len(values) - 1; i >= 0; i-- {
		out = (out << chunkBits) | (values[i] & mask)
	}
	return out
}

// UnpackValues splits packed into count chunks of chunkBits width, the
// inverse of PackValues. When reverse is true the most significant chunk is
// returned first.
func UnpackValues(packed int64, count int, chunkBits uint, reverse bool) ([]int64, error) {
	if count <= 0 {
		return nil, fmt.Errorf("codec: UnpackValues: count must be positive, got %d", count)
	}
	mask := int64(1)<<chunkBits - 1
	out := make([]int64, count)
	for i := 0; i < count; i++ {
		out[i] = packed & mask
		packed >>= chunkBits
	}
	if reverse {
		for l, r := 0, count-1; l < r; l, r = l+1, r-1 {
			out[l], out[r] = out[r], out[l]
		}
	}
	return out, nil
}
