// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package registry

import "github.com/rob-gra/go-heatlink/codec"

// VisibilitiesOffset is the CFI "visibilities" class's zero-based wire
// offset.
const VisibilitiesOffset = 0

// visibilityDefs is a representative slice of the controller's CFI
// "visibilities" register class: read-only booleans indicating which
// optional UI sections/features the controller has enabled, grounded on
// the menu-visibility concept referenced throughout
// luxtronik/cfi/visibilities.py (a thin DataVector subclass with no
// concrete field table in the retrieved source). See DESIGN.md.
var visibilityDefs = []FieldDefinition{
	{Index: 0, Count: 1, Names: []string{"cooling_visible"}, Type: codec.Bool, Writeable: false, DataType: "UINT16"},
	{Index: 1, Count: 1, Names: []string{"pool_visible"}, Type: codec.Bool, Writeable: false, DataType: "UINT16"},
	{Index: 2, Count: 1, Names: []string{"solar_visible"}, Type: codec.Bool, Writeable: false, DataType: "UINT16"},
	{Index: 3, Count: 1, Names: []string{"mixed_circuit_1_visible", "mc1_visible"}, Type: codec.Bool, Writeable: false, DataType: "UINT16"},
	{Index: 4, Count: 1, Names: []string{"mixed_circuit_2_visible", "mc2_visible"}, Type: codec.Bool, Writeable: false, DataType: "UINT16"},
	{Index: 5, Count: 1, Names: []string{"ventilation_visible"}, Type: codec.Bool, Writeable: false, DataType: "UINT16"},
	{Index: 6, Count: 1, Names: []string{"second_heat_source_visible"}, Type: codec.Bool, Writeable: false, DataType: "UINT16"},
}

// VisibilityDefinitions is the CFI visibilities class registry.
var VisibilityDefinitions = NewRegistry("visibility", VisibilitiesOffset, visibilityDefs)
