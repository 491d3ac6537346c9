// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package registry

import "github.com/rob-gra/go-heatlink/codec"

// HoldingsOffset is the address offset added to a holding register's index
// to obtain its Modbus address, grounded on
// luxtronik/definitions/holdings.py:HOLDINGS_OFFSET.
const HoldingsOffset = 10000

var since39 = MustParseVersion("3.90.1")
var since392 = MustParseVersion("3.92.0")
var since3921 = MustParseVersion("3.92.1")

// holdingDefs is a representative slice of the controller's "holding"
// register class (read/write, used to drive the heat pump from a smart
// home system), grounded on
// luxtronik/definitions/holdings.py:HOLDINGS_DEFINITIONS_LIST. Not every
// one of the original's 41 entries is ported; see DESIGN.md for the scope
// decision.
var holdingDefs = []FieldDefinition{
	{Index: 0, Count: 1, Names: []string{"heating_mode"}, Type: ControlMode, Writeable: true, DataType: "UINT16", Since: &since39,
		Description: "Configuration for heating operation: 0 no influence, 1 setpoint, 2 offset, 3 level"},
	{Index: 1, Count: 1, Names: []string{"heating_setpoint"}, Type: codec.Celsius, Writeable: true, DataType: "UINT16", Since: &since39,
		Description: "Overrides the current return temperature setpoint for heating"},
	{Index: 2, Count: 1, Names: []string{"heating_offset"}, Type: codec.Kelvin, Writeable: true, DataType: "INT16", Since: &since39,
		Description: "Offset applied to the current return temperature setpoint for heating"},
	{Index: 3, Count: 1, Names: []string{"heating_level"}, Type: LevelMode, Writeable: true, DataType: "UINT16", Since: &since392},
	{Index: 5, Count: 1, Names: []string{"hot_water_mode", "dhw_mode"}, Type: ControlMode, Writeable: true, DataType: "UINT16", Since: &since39},
	{Index: 6, Count: 1, Names: []string{"hot_water_setpoint", "dhw_setpoint"}, Type: codec.Celsius, Writeable: true, DataType: "UINT16", Since: &since39},
	{Index: 7, Count: 1, Names: []string{"hot_water_offset", "dhw_offset"}, Type: codec.Kelvin, Writeable: true, DataType: "INT16", Since: &since39},
	{Index: 8, Count: 1, Names: []string{"hot_water_level", "dhw_level"}, Type: LevelMode, Writeable: true, DataType: "UINT16", Since: &since392},
	{Index: 10, Count: 1, Names: []string{"mc1_heat_mode"}, Type: ControlMode, Writeable: true, DataType: "UINT16", Since: &since39},
	{Index: 11, Count: 1, Names: []string{"mc1_heat_setpoint"}, Type: codec.Celsius, Writeable: true, DataType: "UINT16", Since: &since39},
	{Index: 12, Count: 1, Names: []string{"mc1_heat_offset"}, Type: codec.Kelvin, Writeable: true, DataType: "INT16", Since: &since39},
	{Index: 13, Count: 1, Names: []string{"mc1_heat_level"}, Type: LevelMode, Writeable: true, DataType: "UINT16", Since: &since392},
	{Index: 15, Count: 1, Names: []string{"mc1_cool_mode"}, Type: ControlMode, Writeable: true, DataType: "UINT16", Since: &since39},
	{Index: 16, Count: 1, Names: []string{"mc1_cool_setpoint"}, Type: codec.Celsius, Writeable: true, DataType: "UINT16", Since: &since39},
	{Index: 17, Count: 1, Names: []string{"mc1_cool_offset"}, Type: codec.Kelvin, Writeable: true, DataType: "INT16", Since: &since39},
	{Index: 20, Count: 1, Names: []string{"mc2_heat_mode"}, Type: ControlMode, Writeable: true, DataType: "UINT16", Since: &since39},
	{Index: 21, Count: 1, Names: []string{"mc2_heat_setpoint"}, Type: codec.Celsius, Writeable: true, DataType: "UINT16", Since: &since39},
	{Index: 22, Count: 1, Names: []string{"mc2_heat_offset"}, Type: codec.Kelvin, Writeable: true, DataType: "INT16", Since: &since39},
	{Index: 23, Count: 1, Names: []string{"mc2_heat_level"}, Type: LevelMode, Writeable: true, DataType: "UINT16", Since: &since392},
	{Index: 60, Count: 1, Names: []string{"unknown_holding_60"}, Type: codec.Unknown, Writeable: false, Since: &since3921,
		Description: "TODO: function unknown, requires further analysis"},
	{Index: 65, Count: 1, Names: []string{"heat_overall_mode"}, Type: ControlMode, Writeable: true, Since: &since392,
		Description: "Operating mode of all heating functions (no setpoint available)"},
	{Index: 66, Count: 1, Names: []string{"heat_overall_offset"}, Type: codec.Kelvin, Writeable: true, DataType: "INT16", Since: &since392,
		Description: "Temperature correction in Kelvin for all heating functions"},
	{Index: 67, Count: 1, Names: []string{"heat_overall_level"}, Type: LevelMode, Writeable: true, Since: &since392},
	{Index: 70, Count: 1, Names: []string{"circulation"}, Type: OnOffMode, Writeable: true, Since: &since392,
		Description: "Activates the circulation pump, unless a time schedule is configured for it"},
	{Index: 71, Count: 1, Names: []string{"hot_water_extra"}, Type: OnOffMode, Writeable: true, Since: &since392,
		Description: "Activates hot water heating until the maximum temperature is reached"},
}

// HoldingDefinitions is the holding-register class registry.
var HoldingDefinitions = NewRegistry("holding", HoldingsOffset, holdingDefs)
