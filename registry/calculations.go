// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package registry

import "github.com/rob-gra/go-heatlink/codec"

// CalculationsOffset is the CFI "calculations" class's zero-based wire
// offset.
const CalculationsOffset = 0

// FirmwareVersionCharStart and FirmwareVersionCharEnd delimit the ten
// Character-typed registers the firmware version string is assembled
// from, grounded on
// luxtronik/cfi/calculations.py:get_firmware_version (indices 81-90,
// inclusive on both ends).
const (
	FirmwareVersionCharStart = 81
	FirmwareVersionCharEnd   = 90
)

// calculationDefs is a representative slice of the controller's CFI
// "calculations" register class (read-only telemetry). No
// definitions/calculations.py table was present in the retrieved original
// source; the temperature/status entries are authored representatively
// and the firmware-version character run (81-90) is ported exactly from
// luxtronik/cfi/calculations.py. See DESIGN.md.
var calculationDefs = []FieldDefinition{
	{Index: 1, Count: 1, Names: []string{"flow_in_temp"}, Type: codec.Celsius, Writeable: false, DataType: "INT16"},
	{Index: 2, Count: 1, Names: []string{"flow_out_temp"}, Type: codec.Celsius, Writeable: false, DataType: "INT16"},
	{Index: 3, Count: 1, Names: []string{"hot_water_temp", "dhw_temp"}, Type: codec.Celsius, Writeable: false, DataType: "INT16"},
	{Index: 4, Count: 1, Names: []string{"outside_temp"}, Type: codec.Celsius, Writeable: false, DataType: "INT16"},
	{Index: 5, Count: 1, Names: []string{"outside_temp_avg"}, Type: codec.Celsius, Writeable: false, DataType: "INT16"},
	{Index: 6, Count: 1, Names: []string{"heat_source_in_temp"}, Type: codec.Celsius, Writeable: false, DataType: "INT16"},
	{Index: 7, Count: 1, Names: []string{"heat_source_out_temp"}, Type: codec.Celsius, Writeable: false, DataType: "INT16"},
	{Index: 8, Count: 1, Names: []string{"operation_mode"}, Type: OperationMode, Writeable: false, DataType: "UINT16"},
	{Index: 9, Count: 1, Names: []string{"bivalence_level"}, Type: BivalenceLevel, Writeable: false, DataType: "UINT16"},
	{Index: 10, Count: 1, Names: []string{"compressor_runtime_hours", "compressor_hours"}, Type: codec.Hours, Writeable: false, DataType: "UINT32"},
	{Index: 11, Count: 1, Names: []string{"heatpump_running"}, Type: codec.Bool, Writeable: false, DataType: "UINT16"},
	{Index: 12, Count: 1, Names: []string{"status_line_1", "ID_WEB_HauptMenuAHP_Stufe"}, Type: MainMenuStatusLine1, Writeable: false, DataType: "UINT16"},
	{Index: 13, Count: 1, Names: []string{"status_line_3"}, Type: MainMenuStatusLine3, Writeable: false, DataType: "UINT16"},
	{Index: 81, Count: 1, Names: []string{"firmware_version_char_0"}, Type: codec.Character, Writeable: false, DataType: "UINT16"},
	{Index: 82, Count: 1, Names: []string{"firmware_version_char_1"}, Type: codec.Character, Writeable: false, DataType: "UINT16"},
	{Index: 83, Count: 1, Names: []string{"firmware_version_char_2"}, Type: codec.Character, Writeable: false, DataType: "UINT16"},
	{Index: 84, Count: 1, Names: []string{"firmware_version_char_3"}, Type: codec.Character, Writeable: false, DataType: "UINT16"},
	{Index: 85, Count: 1, Names: []string{"firmware_version_char_4"}, Type: codec.Character, Writeable: false, DataType: "UINT16"},
	{Index: 86, Count: 1, Names: []string{"firmware_version_char_5"}, Type: codec.Character, Writeable: false, DataType: "UINT16"},
	{Index: 87, Count: 1, Names: []string{"firmware_version_char_6"}, Type: codec.Character, Writeable: false, DataType: "UINT16"},
	{Index: 88, Count: 1, Names: []string{"firmware_version_char_7"}, Type: codec.Character, Writeable: false, DataType: "UINT16"},
	{Index: 89, Count: 1, Names: []string{"firmware_version_char_8"}, Type: codec.Character, Writeable: false, DataType: "UINT16"},
	{Index: 90, Count: 1, Names: []string{"firmware_version_char_9"}, Type: codec.Character, Writeable: false, DataType: "UINT16"},
}

// CalculationDefinitions is the CFI calculations class registry.
var CalculationDefinitions = NewRegistry("calculation", CalculationsOffset, calculationDefs)
