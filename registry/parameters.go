// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package registry

import "github.com/rob-gra/go-heatlink/codec"

// ParametersOffset is the address offset for the CFI "parameters" class.
// The CFI protocol addresses its three register classes with plain,
// zero-based indices on the wire (the offset only exists on the SHI side),
// grounded on luxtronik/cfi/interface.py's PARAMETERS_READ/WRITE exchange,
// which sends and receives a flat array with no address translation.
const ParametersOffset = 0

// parameterDefs is a representative slice of the controller's CFI
// "parameters" register class (read/write setpoints and mode selectors).
// No definitions/parameters.py table was present in the retrieved original
// source (only holdings.py/inputs.py exist there for the SHI side); these
// entries are authored from the field semantics implied by
// luxtronik/cfi/parameters.py's writeable-gate pattern and the analogous
// SHI holding registers. See DESIGN.md.
var parameterDefs = []FieldDefinition{
	{Index: 1, Count: 1, Names: []string{"heating_mode"}, Type: HeatingMode, Writeable: true, DataType: "UINT16"},
	{Index: 2, Count: 1, Names: []string{"heating_setpoint"}, Type: codec.Celsius, Writeable: true, DataType: "UINT16"},
	{Index: 3, Count: 1, Names: []string{"cooling_mode"}, Type: CoolingMode, Writeable: true, DataType: "UINT16"},
	{Index: 4, Count: 1, Names: []string{"hot_water_mode", "dhw_mode"}, Type: HotWaterMode, Writeable: true, DataType: "UINT16"},
	{Index: 5, Count: 1, Names: []string{"hot_water_setpoint", "dhw_setpoint"}, Type: codec.Celsius, Writeable: true, DataType: "UINT16"},
	{Index: 6, Count: 1, Names: []string{"pool_mode"}, Type: PoolMode, Writeable: true, DataType: "UINT16"},
	{Index: 7, Count: 1, Names: []string{"mixed_circuit_1_mode", "mc1_mode"}, Type: MixedCircuitMode, Writeable: true, DataType: "UINT16"},
	{Index: 8, Count: 1, Names: []string{"solar_mode"}, Type: SolarMode, Writeable: true, DataType: "UINT16"},
	{Index: 9, Count: 1, Names: []string{"ventilation_mode"}, Type: VentilationMode, Writeable: true, DataType: "UINT16"},
	{Index: 10, Count: 1, Names: []string{"reset_error"}, Type: codec.Bool, Writeable: true, DataType: "UINT16",
		Description: "Write 1 to acknowledge and clear the current error"},
}

// ParameterDefinitions is the CFI parameters class registry.
var ParameterDefinitions = NewRegistry("parameter", ParametersOffset, parameterDefs)
