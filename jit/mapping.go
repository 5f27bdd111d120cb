package jit

import (
	"fmt"
	"math"
	"sort"
)

// ScaffoldBlockIndex marks a mapping entry describing generator-internal
// scaffolding (trampoline or entry code) that is not attributable to any
// bytecode basic block. For such entries BytecodeOffset indexes
// scaffoldLabels instead of a block's instruction stream.
const ScaffoldBlockIndex = uint32(math.MaxUint32)

// Indices into scaffoldLabels used by the code generator.
const (
	ScaffoldEntry      = 0
	ScaffoldCommonExit = 1
)

var scaffoldLabels = [...]string{
	"entry",
	"common_exit",
}

// BytecodeMapping relates a region of generated native code to the bytecode
// location it implements. A table of these, sorted ascending and unique on
// NativeOffset, accompanies every compiled unit; the entry active at a
// native offset o is the one with the greatest NativeOffset <= o.
type BytecodeMapping struct {
	NativeOffset   uint32
	BlockIndex     uint32 // basic block index, or ScaffoldBlockIndex
	BytecodeOffset uint32 // byte offset within the block, or scaffold label index
}

// Label renders the human-readable name of the bytecode location for use in
// disassembly and diagnostics. Block numbering is 1-based for display.
func (m BytecodeMapping) Label() string {
	if m.BlockIndex == ScaffoldBlockIndex {
		if int(m.BytecodeOffset) < len(scaffoldLabels) {
			return scaffoldLabels[m.BytecodeOffset]
		}
		return fmt.Sprintf("scaffold_%d", m.BytecodeOffset)
	}
	if m.BytecodeOffset == 0 {
		return fmt.Sprintf("Block %d", m.BlockIndex+1)
	}
	return fmt.Sprintf("%d:%x", m.BlockIndex+1, m.BytecodeOffset)
}

// validateMapping asserts the table invariants: non-empty, covers native
// offset 0, strictly ascending (therefore unique) on NativeOffset, and
// every offset inside the code buffer. A violation is a code generator bug,
// not a recoverable condition.
func validateMapping(mapping []BytecodeMapping, codeSize int) {
	if len(mapping) == 0 {
		panic("jit: empty bytecode mapping table")
	}
	if mapping[0].NativeOffset != 0 {
		panic(fmt.Sprintf("jit: bytecode mapping table does not cover native offset 0 (first entry at %d)",
			mapping[0].NativeOffset))
	}
	for i := 1; i < len(mapping); i++ {
		if mapping[i].NativeOffset <= mapping[i-1].NativeOffset {
			panic(fmt.Sprintf("jit: bytecode mapping table not strictly ascending at index %d (%d <= %d)",
				i, mapping[i].NativeOffset, mapping[i-1].NativeOffset))
		}
	}
	last := mapping[len(mapping)-1].NativeOffset
	if int(last) >= codeSize {
		panic(fmt.Sprintf("jit: bytecode mapping entry at native offset %d outside code buffer (size %d)",
			last, codeSize))
	}
}

// FindMappingEntry returns the mapping entry active at the given native
// offset: the entry with the greatest NativeOffset <= nativeOffset. The
// caller is responsible for checking nativeOffset against the buffer size
// first; the table alone cannot signal out-of-range, and for offsets past
// the end this simply returns the last entry.
func (e *NativeExecutable) FindMappingEntry(nativeOffset uint32) BytecodeMapping {
	i := sort.Search(len(e.mapping), func(i int) bool {
		return e.mapping[i].NativeOffset > nativeOffset
	})
	// i >= 1 because the table covers offset 0.
	return e.mapping[i-1]
}
