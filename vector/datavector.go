// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package vector

import (
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/rob-gra/go-heatlink/registry"
)

// DataVector holds the runtime Fields for one register class at a fixed
// controller version, indexed by address, name and alias. Grounded on
// luxtronik/shi/vector.py:DataVectorSmartHome (the CFI side's
// data_vector.py:DataVector is the same shape without version filtering).
type DataVector struct {
	class   string
	reg     *registry.Registry
	version *registry.Version
	safe    bool

	mu      sync.RWMutex
	byAddr  map[int]*Field
	byName  map[string]*Field
	ordered []*Field // ascending by address, recomputed on Add
	blocks  *BlockList
}

// New builds a DataVector over every definition in reg whose Since/Until
// range admits version (a nil version admits every definition). safe
// gates writes to non-writeable fields, matching
// luxtronik/parameters.py:Parameters's safe flag.
func New(reg *registry.Registry, version *registry.Version, safe bool) *DataVector {
	dv := &DataVector{
		class:   reg.Class(),
		reg:     reg,
		version: version,
		safe:    safe,
		byAddr:  make(map[int]*Field),
		byName:  make(map[string]*Field),
	}
	for _, def := range reg.Filtered(version) {
		dv.add(def)
	}
	return dv
}

func (dv *DataVector) add(def *registry.FieldDefinition) {
	f := NewField(def)
	dv.byAddr[def.Address()] = f
	for _, name := range def.Names {
		dv.byName[name] = f
	}
	dv.ordered = append(dv.ordered, f)
	sort.Slice(dv.ordered, func(i, j int) bool {
		return dv.ordered[i].Definition.Address() < dv.ordered[j].Definition.Address()
	})
	dv.blocks = nil
}

// Add inserts a new field definition directly into the vector (bypassing
// the backing registry), re-sorting the ordered field list and
// invalidating the cached block plan. Used by trial-and-error mode to
// grow a vector one synthesized definition at a time. Grounded on
// luxtronik/shi/vector.py:DataVectorSmartHome.add, which refuses to add a
// definition whose index is already present.
func (dv *DataVector) Add(def *registry.FieldDefinition) error {
	dv.mu.Lock()
	defer dv.mu.Unlock()
	if _, exists := dv.byAddr[def.Address()]; exists {
		return fmt.Errorf("vector: %s: address %d already present", dv.class, def.Address())
	}
	dv.add(def)
	return nil
}

// RegisterAlias adds obsolete as an additional lookup name for the field
// already registered under canonical, in this vector only; the backing
// registry is not changed. Grounded on
// luxtronik/shi/vector.py:DataVectorSmartHome.register_alias.
func (dv *DataVector) RegisterAlias(obsolete, canonical string) error {
	dv.mu.Lock()
	defer dv.mu.Unlock()
	f, ok := dv.byName[canonical]
	if !ok {
		return fmt.Errorf("vector: %s: cannot alias %q, %q is not registered", dv.class, obsolete, canonical)
	}
	dv.byName[obsolete] = f
	return nil
}

// Get resolves target (an int address, a string name/alias, or a numeric
// string address) to its Field. Grounded on
// luxtronik/shi/vector.py:DataVectorSmartHome._get_definition's lookup
// cascade.
func (dv *DataVector) Get(target interface{}) (*Field, bool) {
	dv.mu.RLock()
	defer dv.mu.RUnlock()

	if addr, ok := target.(int); ok {
		f, ok := dv.byAddr[addr]
		return f, ok
	}
	if name, ok := target.(string); ok {
		if f, ok := dv.byName[name]; ok {
			return f, true
		}
		if addr, err := strconv.Atoi(name); err == nil {
			f, ok := dv.byAddr[addr]
			return f, ok
		}
	}
	return nil, false
}

// Set queues value as a pending write for target, refusing the write if
// the resolved field is not writeable and the vector is in safe mode.
// Grounded on luxtronik/shi/vector.py:DataVectorSmartHome.set (no safety
// check at that layer) combined with
// luxtronik/cfi/parameters.py:Parameters.set (the safe-gated variant).
func (dv *DataVector) Set(target interface{}, value interface{}) error {
	f, ok := dv.Get(target)
	if !ok {
		return fmt.Errorf("vector: %s: field %v not found", dv.class, target)
	}
	if !f.Definition.Writeable {
		if dv.safe {
			return fmt.Errorf("vector: %s: field %q is not writeable", dv.class, f.Definition.Name())
		}
		raw, err := f.Definition.Type.Encode(value)
		if err != nil {
			return fmt.Errorf("vector: %s: field %q: %w", dv.class, f.Definition.Name(), err)
		}
		f.PendingRaw = raw
		f.WritePending = true
		return nil
	}
	return f.QueueWrite(value)
}

// Fields returns every field in the vector, ordered ascending by address.
func (dv *DataVector) Fields() []*Field {
	dv.mu.RLock()
	defer dv.mu.RUnlock()
	out := make([]*Field, len(dv.ordered))
	copy(out, dv.ordered)
	return out
}

// PendingFields returns the subset of fields that currently have a queued
// write.
func (dv *DataVector) PendingFields() []*Field {
	dv.mu.RLock()
	defer dv.mu.RUnlock()
	var out []*Field
	for _, f := range dv.ordered {
		if f.WritePending {
			out = append(out, f)
		}
	}
	return out
}

// chunkBits reports the per-register wire width for this vector's class:
// 32 for the CFI classes (parameter/calculation/visibility), 16 for the SHI
// classes (holding/input), per spec.md §4.2/§9 ("chunk_bits is 16 for SHI
// and 32 for CFI").
func (dv *DataVector) chunkBits() int {
	switch dv.class {
	case "parameter", "calculation", "visibility":
		return 32
	default:
		return 16
	}
}

// Blocks returns the vector's contiguous block plan, computing and caching
// it on first use (and after any Add invalidates the cache). Grounded on
// luxtronik/shi/vector.py:DataVectorSmartHome.update_read_blocks.
func (dv *DataVector) Blocks() *BlockList {
	dv.mu.Lock()
	defer dv.mu.Unlock()
	if dv.blocks == nil {
		dv.blocks = Collect(dv.ordered, dv.chunkBits())
	}
	return dv.blocks
}

// WriteBlocks returns a fresh block plan covering only the fields that
// currently have a pending write, used to build the minimal set of write
// telegrams for a pending Send.
func (dv *DataVector) WriteBlocks() *BlockList {
	return Collect(dv.PendingFields(), dv.chunkBits())
}

// Class returns the register class name this vector holds
// ("holding", "input", "parameter", "calculation", "visibility").
func (dv *DataVector) Class() string { return dv.class }

// Version returns the controller version this vector was built for, or
// nil if unconstrained.
func (dv *DataVector) Version() *registry.Version { return dv.version }

// Offset returns the address offset of the registry this vector was built
// from, needed by trial-and-error mode to synthesize Unknown definitions at
// the correct wire address.
func (dv *DataVector) Offset() int { return dv.reg.Offset() }
