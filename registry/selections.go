// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package registry

import "github.com/rob-gra/go-heatlink/codec"

// The enumerated "selection" variants used across the CFI and SHI register
// tables below, grounded on luxtronik/datatypes.py's SelectionBase
// subclasses and their literal code tables.
var (
	HeatingMode = codec.NewSelection("HeatingMode", map[int64]string{
		0: "Automatic", 1: "Second heatsource", 2: "Party", 3: "Holidays", 4: "Off",
	})
	CoolingMode = codec.NewSelection("CoolingMode", map[int64]string{
		0: "Off", 1: "Automatic",
	})
	HotWaterMode = codec.NewSelection("HotWaterMode", map[int64]string{
		0: "Automatic", 1: "Second heatsource", 2: "Party", 3: "Holidays", 4: "Off",
	})
	PoolMode = codec.NewSelection("PoolMode", map[int64]string{
		0: "Automatic", 2: "Party", 3: "Holidays", 4: "Off",
	})
	MixedCircuitMode = codec.NewSelection("MixedCircuitMode", map[int64]string{
		0: "Automatic", 2: "Party", 3: "Holidays", 4: "Off",
	})
	SolarMode = codec.NewSelection("SolarMode", map[int64]string{
		0: "Automatic", 1: "Second heatsource", 2: "Party", 3: "Holidays", 4: "Off",
	})
	VentilationMode = codec.NewSelection("VentilationMode", map[int64]string{
		0: "Automatic", 1: "Party", 2: "Holidays", 3: "Off",
	})
	BivalenceLevel = codec.NewSelection("BivalenceLevel", map[int64]string{
		1: "one compressor allowed to run",
		2: "two compressors allowed to run",
		3: "additional compressor allowed to run",
	})
	OperationMode = codec.NewSelection("OperationMode", map[int64]string{
		0: "heating", 1: "hot water", 2: "swimming pool/solar", 3: "evu",
		4: "defrost", 5: "no request", 6: "heating external source", 7: "cooling",
	})
	SwitchoffFile = codec.NewSelection("SwitchoffFile", map[int64]string{
		1: "heatpump error", 2: "system error", 3: "evu lock",
		4: "operation mode second heat generator", 5: "air defrost",
		6: "maximal usage temprature", 7: "minimal usage temperature",
		8: "lower usage limit", 9: "no request",
	})
	MainMenuStatusLine1 = codec.NewSelection("MainMenuStatusLine1", map[int64]string{
		0: "heatpump running", 1: "heatpump idle", 2: "heatpump coming",
		3: "errorcode slot 0", 4: "defrost", 5: "witing on LIN connection",
		6: "compressor heating up", 7: "pump forerun",
	})
	MainMenuStatusLine2 = codec.NewSelection("MainMenuStatusLine2", map[int64]string{
		0: "since", 1: "in",
	})
	MainMenuStatusLine3 = codec.NewSelection("MainMenuStatusLine3", map[int64]string{
		0: "heating", 1: "no request", 2: "grid switch on delay", 3: "cycle lock",
		4: "lock time", 5: "domestic water", 6: "info bake out program", 7: "defrost",
		8: "pump forerun", 9: "thermal desinfection", 10: "cooling",
		12: "swimming pool/solar", 13: "heating external engery source",
		14: "domestic water external energy source", 16: "flow monitoring",
		17: "second heat generator 1 active",
	})
	SecOperationMode = codec.NewSelection("SecOperationMode", map[int64]string{
		0: "off", 1: "cooling", 2: "heating", 3: "fault", 4: "transition",
		5: "defrost", 6: "waiting", 7: "waiting", 8: "transition", 9: "stop",
		10: "manual", 11: "simulation start", 12: "evu lock",
	})

	// CodeWP is the heat-pump model/type code table, grounded on
	// luxtronik/datatypes.py:Code_WP.
	CodeWP = codec.NewSelection("Code_WP", map[int64]string{
		0: "ERC", 1: "SW1", 2: "SW2", 3: "WW1", 4: "WW2", 5: "L1I", 6: "L2I",
		7: "L1A", 8: "L2A", 9: "KSW", 10: "KLW", 11: "SWC", 12: "LWC", 13: "L2G",
		14: "WZS", 15: "L1I407", 16: "L2I407", 17: "L1A407", 18: "L2A407",
		19: "L2G407", 20: "LWC407", 21: "L1AREV", 22: "L2AREV", 23: "WWC1",
		24: "WWC2", 25: "L2G404", 26: "WZW", 27: "L1S", 28: "L1H", 29: "L2H",
		30: "WZWD", 40: "WWB_20", 41: "LD5", 42: "LD7", 43: "SW 37_45",
		44: "SW 58_69", 45: "SW 29_56", 46: "LD5 (230V)", 47: "LD7 (230 V)",
		48: "LD9", 49: "LD5 REV", 50: "LD7 REV", 51: "LD5 REV 230V",
		52: "LD7 REV 230V", 53: "LD9 REV 230V", 54: "SW 291", 55: "LW SEC",
		56: "HMD 2", 57: "MSW 4", 58: "MSW 6", 59: "MSW 8", 60: "MSW 10",
		61: "MSW 12", 62: "MSW 14", 63: "MSW 17", 64: "MSW 19", 65: "MSW 23",
		66: "MSW 26", 67: "MSW 30", 68: "MSW 4S", 69: "MSW 6S", 70: "MSW 8S",
		71: "MSW 10S", 72: "MSW 13S", 73: "MSW 16S", 74: "MSW2-6S", 75: "MSW4-16",
	})

	// The SHI-only selections referenced by definitions/holdings.py, not
	// documented in datatypes.py's retrieved excerpt; authored
	// representatively from the field descriptions in holdings.py itself
	// (see DESIGN.md).
	ControlMode = codec.NewSelection("ControlMode", map[int64]string{
		0: "no influence", 1: "setpoint", 2: "offset", 3: "level",
	})
	LevelMode = codec.NewSelection("LevelMode", map[int64]string{
		0: "no change", 1: "increase", 2: "decrease",
	})
	OnOffMode = codec.NewSelection("OnOffMode", map[int64]string{
		0: "off", 1: "on",
	})
	LockMode = codec.NewSelection("LockMode", map[int64]string{
		0: "unlocked", 1: "locked",
	})
	LpcMode = codec.NewSelection("LpcMode", map[int64]string{
		0: "no limit", 1: "limited",
	})
)
