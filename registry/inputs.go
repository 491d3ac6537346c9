// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package registry

import "github.com/rob-gra/go-heatlink/codec"

// InputsOffset is the address offset added to an input register's index to
// obtain its Modbus address, grounded on
// luxtronik/definitions/inputs.py:INPUTS_OFFSET.
const InputsOffset = 10000

// HeatPumpStatusBitmask is a plain passthrough of the bitmask summarizing
// which heat-generation stage is currently active (VD1/VD2/ZWE1-3),
// represented here as its raw value rather than the five Bool-typed
// bit-slice aliases the original additionally registers at the same index
// (see DESIGN.md's bit-slice scope note); the raw bitmask is still enough
// to answer "is anything active" and to extract any single bit.
var HeatPumpStatusBitmask = codec.Unknown

// ModeStatus enumerates the four-state demand status shared by
// heating, DHW, cooling and pool-heating status registers, grounded on
// luxtronik/definitions/inputs.py's repeated "0 Off / 1 No demand /
// 2 Demand / 3 Active" description blocks.
var ModeStatus = codec.NewSelection("ModeStatus", map[int64]string{
	0: "off", 1: "no demand", 2: "demand", 3: "active",
})

// BufferType enumerates the buffer tank configuration, grounded on
// luxtronik/definitions/inputs.py:buffer_type.
var BufferType = codec.NewSelection("BufferType", map[int64]string{
	0: "series buffer", 1: "separation buffer", 2: "multifunction buffer",
})

// inputOperationMode mirrors the "operation_mode" status register, which
// uses a distinct code table from the OperationMode selection in
// selections.go, which the CFI calculations table uses (compare
// luxtronik/definitions/inputs.py:operation_mode
// against luxtronik/datatypes.py:OperationMode).
var inputOperationMode = codec.NewSelection("InputOperationMode", map[int64]string{
	0: "heating", 1: "dhw heating", 2: "pool heating / solar", 3: "utility lockout",
	4: "defrost", 5: "no demand", 6: "not used", 7: "cooling",
})

var inputDefs = []FieldDefinition{
	{Index: 0, Count: 1, Names: []string{"heatpump_status"}, Type: HeatPumpStatusBitmask, Writeable: false, DataType: "UINT16", Since: &since39,
		Description: "Heat pump status bitmask: 1 VD1, 2 VD2, 4 ZWE1, 8 ZWE2, 16 ZWE3"},
	{Index: 2, Count: 1, Names: []string{"operation_mode"}, Type: inputOperationMode, Writeable: false, DataType: "UINT16", Since: &since39},
	{Index: 3, Count: 1, Names: []string{"heating_status"}, Type: ModeStatus, Writeable: false, DataType: "UINT16", Since: &since39},
	{Index: 4, Count: 1, Names: []string{"hot_water_status", "dhw_status"}, Type: ModeStatus, Writeable: false, DataType: "UINT16", Since: &since39},
	{Index: 6, Count: 1, Names: []string{"cooling_status"}, Type: ModeStatus, Writeable: false, DataType: "UINT16", Since: &since39},
	{Index: 7, Count: 1, Names: []string{"pool_heating_status"}, Type: ModeStatus, Writeable: false, DataType: "UINT16", Since: &since39},
	{Index: 100, Count: 1, Names: []string{"return_line_temp"}, Type: codec.Celsius, Writeable: false, DataType: "UINT16", Since: &since39,
		Description: "Current return line temperature"},
	{Index: 101, Count: 1, Names: []string{"return_line_target"}, Type: codec.Celsius, Writeable: false, DataType: "UINT16", Since: &since39},
	{Index: 102, Count: 1, Names: []string{"return_line_ext"}, Type: codec.Celsius, Writeable: false, DataType: "UINT16", Since: &since39},
	{Index: 103, Count: 1, Names: []string{"return_line_limit"}, Type: codec.Celsius, Writeable: false, DataType: "INT16", Since: &since39},
	{Index: 150, Count: 1, Names: []string{"mc2_temp"}, Type: codec.Celsius, Writeable: false, DataType: "INT16", Since: &since39},
	{Index: 151, Count: 1, Names: []string{"mc2_target"}, Type: codec.Celsius, Writeable: false, DataType: "INT16", Since: &since39},
	{Index: 152, Count: 1, Names: []string{"mc2_min"}, Type: codec.Celsius, Writeable: false, DataType: "INT16", Since: &since39},
	{Index: 153, Count: 1, Names: []string{"mc2_max"}, Type: codec.Celsius, Writeable: false, DataType: "INT16", Since: &since39},
	{Index: 160, Count: 1, Names: []string{"mc3_temp"}, Type: codec.Celsius, Writeable: false, DataType: "INT16", Since: &since39},
	{Index: 161, Count: 1, Names: []string{"mc3_target"}, Type: codec.Celsius, Writeable: false, DataType: "INT16", Since: &since39},
	{Index: 162, Count: 1, Names: []string{"mc3_min"}, Type: codec.Celsius, Writeable: false, DataType: "INT16", Since: &since39},
	{Index: 163, Count: 1, Names: []string{"mc3_max"}, Type: codec.Celsius, Writeable: false, DataType: "INT16", Since: &since39},
	{Index: 201, Count: 1, Names: []string{"error_number"}, Type: codec.Unknown, Writeable: false, DataType: "UINT16", Since: &since39,
		Description: "Current error number, 0 means no error"},
	{Index: 202, Count: 1, Names: []string{"buffer_type"}, Type: BufferType, Writeable: false, DataType: "UINT16", Since: &since39},
	{Index: 203, Count: 1, Names: []string{"min_off_time"}, Type: codec.Minutes, Writeable: false, DataType: "UINT16", Since: &since39},
	{Index: 204, Count: 1, Names: []string{"min_run_time"}, Type: codec.Minutes, Writeable: false, DataType: "UINT16", Since: &since39},
	{Index: 205, Count: 1, Names: []string{"cooling_configured"}, Type: OnOffMode, Writeable: false, DataType: "UINT16", Since: &since39},
	{Index: 206, Count: 1, Names: []string{"pool_heating_configured"}, Type: OnOffMode, Writeable: false, DataType: "UINT16", Since: &since39},
	{Index: 207, Count: 1, Names: []string{"cooling_release"}, Type: OnOffMode, Writeable: false, DataType: "UINT16", Since: &since39},
	{Index: 400, Count: 3, Names: []string{"version"}, Type: codec.FullVersion, Writeable: false, Since: &since39,
		Description: "Full firmware version information"},
}

// InputDefinitions is the input-register class registry.
var InputDefinitions = NewRegistry("input", InputsOffset, inputDefs)
