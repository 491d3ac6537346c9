// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package vector

import (
	"fmt"

	"github.com/rob-gra/go-heatlink/codec"
)

// Block is a contiguous run of register addresses covered by one or more
// Fields, with no gaps between them. Grounded on
// luxtronik/shi/contiguous.py:ContiguousDataBlock.
type Block struct {
	Fields []*Field

	firstAddr int
	lastAddr  int // inclusive

	// chunkBits is the per-register wire width used to pack/unpack a
	// multi-register field's chunks into a single wide raw value: 16 for
	// SHI, 32 for CFI (spec.md §4.2/§9). It is fixed at block-construction
	// time because every field collected into one block belongs to the
	// same protocol.
	chunkBits int
}

// NewBlock starts a new Block containing only f. chunkBits is the
// register-class's wire width (16 for SHI, 32 for CFI) used to pack and
// unpack any of f's multi-register chunks.
func NewBlock(f *Field, chunkBits int) *Block {
	addr := f.Definition.Address()
	return &Block{
		Fields:    []*Field{f},
		firstAddr: addr,
		lastAddr:  addr + f.Definition.Words() - 1,
		chunkBits: chunkBits,
	}
}

// FirstAddr and LastAddr report the inclusive address range this block
// spans on the wire.
func (b *Block) FirstAddr() int { return b.firstAddr }
func (b *Block) LastAddr() int  { return b.lastAddr }

// CanAdd reports whether f's address range is contiguous with (or
// adjacent to) this block, i.e. starts no later than one past the block's
// current end. Grounded on
// luxtronik/shi/contiguous.py:ContiguousDataBlock.can_add.
func (b *Block) CanAdd(f *Field) bool {
	addr := f.Definition.Address()
	return addr >= b.firstAddr && addr <= b.lastAddr+1
}

// Add appends f to the block, extending its address range. The caller must
// have checked CanAdd first.
func (b *Block) Add(f *Field) {
	b.Fields = append(b.Fields, f)
	addr := f.Definition.Address()
	end := addr + f.Definition.Words() - 1
	if addr < b.firstAddr {
		b.firstAddr = addr
	}
	if end > b.lastAddr {
		b.lastAddr = end
	}
}

// IntegrateData scatters a read telegram's raw register values (one entry
// per address in [FirstAddr, LastAddr]) into this block's fields, clearing
// each field's write-pending state. It returns an error if raw's length
// does not exactly match the block's span, grounded on
// luxtronik/shi/contiguous.py:ContiguousDataBlock.integrate_data.
func (b *Block) IntegrateData(raw []int64) error {
	want := b.lastAddr - b.firstAddr + 1
	if len(raw) != want {
		return fmt.Errorf("vector: block integrate: expected %d registers, got %d", want, len(raw))
	}
	for _, f := range b.Fields {
		start := f.Definition.Address() - b.firstAddr
		words := f.Definition.Words()
		chunk := raw[start : start+words]
		if words == 1 {
			f.SetRaw(chunk[0])
			continue
		}
		packed := codec.PackValues(chunk, uint(b.chunkBits), true)
		f.SetRaw(packed)
	}
	return nil
}

// GetDataArr assembles the full write payload for this block: for every
// address in range it uses the pending write value if one is queued, or
// the field's last known value otherwise. It returns ok=false if any
// address in the span has neither a pending write nor a known value,
// mirroring luxtronik/shi/contiguous.py:ContiguousDataBlock.get_data_arr,
// which refuses to synthesize a write for data it cannot account for. It
// also returns ok=false when two fields claim the same address.
func (b *Block) GetDataArr() ([]int64, bool) {
	span := b.lastAddr - b.firstAddr + 1
	out := make([]int64, span)
	filled := make([]bool, span)

	for _, f := range b.Fields {
		start := f.Definition.Address() - b.firstAddr
		words := f.Definition.Words()

		var raw int64
		switch {
		case f.WritePending:
			raw = f.PendingRaw
		case f.Raw != nil:
			raw = *f.Raw
		default:
			return nil, false
		}

		if words == 1 {
			if filled[start] {
				return nil, false
			}
			out[start] = raw
			filled[start] = true
			continue
		}
		chunks, err := codec.UnpackValues(raw, words, uint(b.chunkBits), true)
		if err != nil {
			return nil, false
		}
		for i, c := range chunks {
			if filled[start+i] {
				return nil, false
			}
			out[start+i] = c
			filled[start+i] = true
		}
	}

	for _, ok := range filled {
		if !ok {
			return nil, false
		}
	}
	return out, true
}

// AnyWritePending reports whether any field in the block has a queued
// write.
func (b *Block) AnyWritePending() bool {
	for _, f := range b.Fields {
		if f.WritePending {
			return true
		}
	}
	return false
}

// BlockList groups a set of fields into the minimal number of contiguous
// Blocks, grounded on
// luxtronik/shi/contiguous.py:ContiguousDataBlockList.
type BlockList struct {
	Blocks []*Block

	// chunkBits is the register-class's wire width (16 for SHI, 32 for
	// CFI), applied to every Block subsequently appended via Append or
	// AppendSingle.
	chunkBits int
}

// NewBlockList starts an empty BlockList that packs/unpacks multi-register
// fields at chunkBits-wide chunks (16 for SHI, 32 for CFI).
func NewBlockList(chunkBits int) *BlockList {
	return &BlockList{chunkBits: chunkBits}
}

// Collect groups fields (which must already be sorted ascending by
// address) into contiguous blocks, merging adjacent fields into the same
// block and starting a new one wherever a gap appears. chunkBits is the
// register-class's wire width (16 for SHI, 32 for CFI), passed through to
// every Block it creates. Grounded on
// luxtronik/shi/contiguous.py:ContiguousDataBlockList.collect.
func Collect(fields []*Field, chunkBits int) *BlockList {
	bl := &BlockList{chunkBits: chunkBits}
	for _, f := range fields {
		if len(bl.Blocks) > 0 {
			last := bl.Blocks[len(bl.Blocks)-1]
			if last.CanAdd(f) {
				last.Add(f)
				continue
			}
		}
		bl.Blocks = append(bl.Blocks, NewBlock(f, chunkBits))
	}
	return bl
}

// AppendSingle forces f into its own new block regardless of adjacency to
// the list's existing blocks, grounded on
// luxtronik/shi/contiguous.py:ContiguousDataBlockList.append_single (used
// by trial-and-error mode, where every field is probed independently).
func (bl *BlockList) AppendSingle(f *Field) {
	bl.Blocks = append(bl.Blocks, NewBlock(f, bl.chunkBits))
}

// Append adds f to the last block if contiguous, otherwise starts a new
// block, grounded on
// luxtronik/shi/contiguous.py:ContiguousDataBlockList.append.
func (bl *BlockList) Append(f *Field) {
	if len(bl.Blocks) > 0 {
		last := bl.Blocks[len(bl.Blocks)-1]
		if last.CanAdd(f) {
			last.Add(f)
			return
		}
	}
	bl.AppendSingle(f)
}
