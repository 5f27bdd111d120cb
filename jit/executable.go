package jit

import (
	"errors"
	"unsafe"

	"github.com/fernscript/fern/bytecode"
	"github.com/fernscript/fern/internal/platform"
)

// Indirection for tests that count mapping acquire/release calls.
var (
	mmapCodeSegment   = platform.MmapCodeSegment
	munmapCodeSegment = platform.MunmapCodeSegment
)

// NativeExecutable owns one unit of generated native code for its entire
// lifetime: the executable memory mapping, its size, and the bytecode
// mapping table describing it. All three are fixed at construction; there
// is no update-in-place, and the mapping is released exactly once by Close.
//
// The cursor slot used by backtrace recovery is the only mutable state.
// Everything else may be read concurrently, but InstructionStreamIterator
// calls on the same unit must be externally serialized.
type NativeExecutable struct {
	code    []byte
	mapping []BytecodeMapping
	cursor  *bytecode.InstructionIterator
	closed  bool
}

// NewNativeExecutable copies the generator's finished instruction buffer
// into a fresh executable memory mapping and takes ownership of it together
// with the mapping table. The mapping table must satisfy the invariants in
// validateMapping; a malformed table indicates a generator bug and panics.
// Construction is atomic: on error no mapping is retained.
func NewNativeExecutable(code []byte, mapping []BytecodeMapping) (*NativeExecutable, error) {
	if len(code) == 0 {
		return nil, errors.New("jit: empty code buffer")
	}
	validateMapping(mapping, len(code))
	buf, err := mmapCodeSegment(code)
	if err != nil {
		return nil, err
	}
	table := make([]BytecodeMapping, len(mapping))
	copy(table, mapping)
	return &NativeExecutable{code: buf, mapping: table}, nil
}

// Close releases the executable memory mapping. The first call unmaps;
// subsequent calls are no-ops. The unit must not be used after Close: stale
// executable pages are never kept alive for diagnostics.
func (e *NativeExecutable) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	code := e.code
	e.code = nil
	e.cursor = nil
	return munmapCodeSegment(code)
}

// Code returns the generated machine code bytes. The returned slice aliases
// the executable mapping; callers must treat it as read-only and must not
// retain it past Close.
func (e *NativeExecutable) Code() []byte {
	return e.code
}

// Size returns the code buffer size in bytes.
func (e *NativeExecutable) Size() int {
	return len(e.code)
}

// base returns the address of the first code byte.
func (e *NativeExecutable) base() uintptr {
	if len(e.code) == 0 {
		panic("jit: use of closed NativeExecutable")
	}
	return uintptr(unsafe.Pointer(&e.code[0]))
}
