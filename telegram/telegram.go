// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// Package telegram names the unit of work a transport sends to the
// controller: a read or write of one contiguous block of registers,
// tagged with which register class and wire protocol it belongs to.
// Grounded on luxtronik/shi/common.py's telegram class family and
// cs104/apci.go's frame-kind modeling.
package telegram

import "github.com/rob-gra/go-heatlink/vector"

// Kind identifies which register class and direction a Telegram addresses.
type Kind int

// The telegram kinds a controller session can issue.
const (
	CFIParameters Kind = iota
	CFICalculations
	CFIVisibilities
	SHIReadHoldings
	SHIReadInputs
	SHIWriteHoldings
)

// String renders a human-readable telegram kind name.
func (k Kind) String() string {
	switch k {
	case CFIParameters:
		return "CFIParameters"
	case CFICalculations:
		return "CFICalculations"
	case CFIVisibilities:
		return "CFIVisibilities"
	case SHIReadHoldings:
		return "SHIReadHoldings"
	case SHIReadInputs:
		return "SHIReadInputs"
	case SHIWriteHoldings:
		return "SHIWriteHoldings"
	default:
		return "Unknown"
	}
}

// IsWrite reports whether this telegram kind carries a write.
func (k Kind) IsWrite() bool {
	return k == SHIWriteHoldings
}

// Telegram is one unit of wire work: a read or write of block's register
// span, tagged with Kind so a transport's Send dispatcher can route it to
// the right wire call.
type Telegram struct {
	Kind  Kind
	Block *vector.Block
}

// Read builds a read Telegram for block.
func Read(kind Kind, block *vector.Block) Telegram {
	return Telegram{Kind: kind, Block: block}
}

// Write builds a write Telegram for block. The caller is responsible for
// only constructing write telegrams over blocks whose GetDataArr()
// succeeds.
func Write(block *vector.Block) Telegram {
	return Telegram{Kind: SHIWriteHoldings, Block: block}
}

// Count returns the number of registers this telegram's block spans.
func (t Telegram) Count() int {
	return t.Block.LastAddr() - t.Block.FirstAddr() + 1
}

// Address returns the telegram's starting wire address.
func (t Telegram) Address() int {
	return t.Block.FirstAddr()
}
