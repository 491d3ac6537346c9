// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package registry

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/rob-gra/go-heatlink/codec"
)

// FieldDefinition describes one register (or, for Count > 1, one
// contiguous run of registers) in a controller's register map. Grounded on
// luxtronik/definitions/__init__.py:LuxtronikDefinition.
type FieldDefinition struct {
	Index  int      // position within the register class, before Offset
	Count  int      // number of underlying registers this field spans
	Offset int      // address offset added to Index to form the wire address
	Names  []string // preferred name first, obsolete aliases after

	Type      codec.Variant
	Writeable bool
	DataType  string // "", "UINT16", "UINT32", "UINT64", "INT16", "INT32", "INT64"

	// Multiregister records whether a Count > 1 field's underlying
	// registers are concatenated into one wide raw value. NewRegistry sets
	// it to true for every Count > 1 entry, so a table entry cannot opt
	// out; the vector package does not read it and always packs a
	// multi-register field into one value. See DESIGN.md Open Question 3.
	Multiregister bool

	Since *Version
	Until *Version

	Description string
}

// ValidDataTypes enumerates the wire integer widths a FieldDefinition may
// declare, matching luxtronik/definitions/__init__.py:VALID_DATA_TYPES.
var ValidDataTypes = []string{"", "UINT16", "UINT32", "UINT64", "INT16", "INT32", "INT64"}

// Name returns the field's preferred (first, non-obsolete) name.
func (d FieldDefinition) Name() string {
	if len(d.Names) == 0 {
		return ""
	}
	return d.Names[0]
}

// Aliases returns every name after the preferred one.
func (d FieldDefinition) Aliases() []string {
	if len(d.Names) <= 1 {
		return nil
	}
	return d.Names[1:]
}

// Address returns the field's wire address, Offset+Index.
func (d FieldDefinition) Address() int {
	return d.Offset + d.Index
}

// Words returns the number of register-sized chunks a read or write of
// this field spans on the wire: Count when it is positive, otherwise the
// codec variant's Words().
func (d FieldDefinition) Words() int {
	if d.Count > 0 {
		return d.Count
	}
	return d.Type.Words()
}

// Unknown builds a synthesized definition for an address that has no known
// schema entry, used by trial-and-error mode. Grounded on
// luxtronik/definitions/__init__.py:LuxtronikDefinition.unknown.
func Unknown(class string, offset, index int) FieldDefinition {
	return FieldDefinition{
		Index:         index,
		Offset:        offset,
		Count:         1,
		Names:         []string{fmt.Sprintf("unknown_%s_%d", class, index)},
		Type:          codec.Unknown,
		Writeable:     false,
		DataType:      "INT16",
		Multiregister: false,
	}
}

// Registry indexes a class's field definitions by index, name and alias,
// following the lookup cascade of
// luxtronik/definitions/__init__.py:LuxtronikDefinitionsDictionary.
type Registry struct {
	class  string
	offset int

	mu          sync.RWMutex
	byIndex     map[int]*FieldDefinition
	byName      map[string]*FieldDefinition
	aliasByName map[string]string // obsolete name -> preferred name
	ordered     []*FieldDefinition
}

// NewRegistry builds a Registry for class (e.g. "holding", "input",
// "parameter") from a static list of definitions, applying offset
// uniformly to every entry's Address(), normalizing Multiregister
// defaults, and indexing every name.
func NewRegistry(class string, offset int, defs []FieldDefinition) *Registry {
	r := &Registry{
		class:       class,
		offset:      offset,
		byIndex:     make(map[int]*FieldDefinition),
		byName:      make(map[string]*FieldDefinition),
		aliasByName: make(map[string]string),
	}
	for i := range defs {
		d := defs[i]
		d.Offset = offset
		if d.Count > 1 && !d.Multiregister {
			d.Multiregister = true
		}
		r.add(&d)
	}
	sort.SliceStable(r.ordered, func(i, j int) bool {
		return r.ordered[i].Index < r.ordered[j].Index
	})
	return r
}

func (r *Registry) add(d *FieldDefinition) {
	r.byIndex[d.Index] = d
	for i, name := range d.Names {
		r.byName[name] = d
		if i > 0 {
			r.aliasByName[name] = d.Names[0]
		}
	}
	r.ordered = append(r.ordered, d)
}

// Get resolves target, which may be an int index, a string that parses as
// an int index, or a field name (preferred or obsolete), to its
// FieldDefinition. Grounded on
// luxtronik/definitions/__init__.py:LuxtronikDefinitionsDictionary._get,
// which tries, in order: hashable alias, int index, string-as-int index,
// then name.
func (r *Registry) Get(target interface{}) (*FieldDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	switch t := target.(type) {
	case int:
		d, ok := r.byIndex[t]
		return d, ok
	case string:
		if n, err := strconv.Atoi(t); err == nil {
			if d, ok := r.byIndex[n]; ok {
				return d, true
			}
		}
		d, ok := r.byName[t]
		return d, ok
	default:
		return nil, false
	}
}

// ByIndex is a convenience wrapper around Get for the common int-index
// case.
func (r *Registry) ByIndex(index int) (*FieldDefinition, bool) {
	return r.Get(index)
}

// RegisterAlias adds obsolete as an additional lookup name resolving to the
// definition already registered under canonical, grounded on
// luxtronik/shi/vector.py:register_alias.
func (r *Registry) RegisterAlias(obsolete, canonical string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.byName[canonical]
	if !ok {
		return fmt.Errorf("registry: %s: cannot alias %q, %q is not registered", r.class, obsolete, canonical)
	}
	d.Names = append(d.Names, obsolete)
	r.byName[obsolete] = d
	r.aliasByName[obsolete] = canonical
	return nil
}

// Filtered returns the definitions whose Since/Until range admits version,
// ordered ascending by Index. A nil version admits every definition.
// Grounded on luxtronik/definitions/__init__.py:LuxtronikDefinitionsList.filtered.
func (r *Registry) Filtered(version *Version) []*FieldDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*FieldDefinition, 0, len(r.ordered))
	for _, d := range r.ordered {
		if InRange(version, d.Since, d.Until) {
			out = append(out, d)
		}
	}
	return out
}

// All returns every definition in the class, ordered ascending by Index,
// regardless of version.
func (r *Registry) All() []*FieldDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*FieldDefinition, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Class returns the register class name this Registry indexes
// ("holding", "input", "parameter", "calculation", "visibility").
func (r *Registry) Class() string { return r.class }

// Offset returns the address offset applied uniformly to every
// definition in this Registry.
func (r *Registry) Offset() int { return r.offset }

// ParseUnknownIndex extracts the index N out of a synthesized
// "unknown_<class>_<N>" name, for trial-and-error mode's reverse lookup.
// Grounded on luxtronik/shi/interface.py's _get_index_from_name.
func ParseUnknownIndex(class, name string) (int, bool) {
	prefix := "unknown_" + class + "_"
	if !strings.HasPrefix(name, prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(name[len(prefix):])
	if err != nil {
		return 0, false
	}
	return n, true
}
