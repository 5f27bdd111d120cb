package jit

import (
	"github.com/fernscript/fern/bytecode"
	"github.com/fernscript/fern/internal/unwind"
)

// InstructionStreamIterator reports which bytecode instruction is currently
// executing (or was, on some enclosing frame) inside this unit. It captures
// the current call stack, finds the innermost return address that falls
// within the unit's code buffer, and reconstructs a cursor positioned at
// the bytecode instruction whose generated code contains that address.
//
// The executable argument must be the live bytecode program this unit was
// compiled from; it is borrowed for validation, not retained beyond the
// returned cursor. The second result is false when no stack frame qualifies
// or the platform cannot unwind.
//
// Exactly one cursor is cached per unit: the returned iterator is valid
// only until the next call. Not safe for concurrent use.
func (e *NativeExecutable) InstructionStreamIterator(exe *bytecode.Executable) (*bytecode.InstructionIterator, bool) {
	if !unwind.Supported() {
		return nil, false
	}
	return e.resolveReturnAddresses(unwind.ReturnAddresses(unwind.DefaultDepth), exe)
}

// resolveReturnAddresses implements the recovery walk over an explicit
// address list. Misses at every stage mean "keep searching the next frame";
// only exhausting the list yields unavailable.
func (e *NativeExecutable) resolveReturnAddresses(addrs []uintptr, exe *bytecode.Executable) (*bytecode.InstructionIterator, bool) {
	start := e.base()
	end := start + uintptr(e.Size())
	for _, addr := range addrs {
		if addr <= start || addr >= end {
			continue
		}
		// A return address points just past the call instruction; step back
		// one byte so resolution stays inside the call site's own mapped
		// region instead of spilling into the next one. If a call ever ends
		// its region this can still resolve one region early; accepted
		// approximation inherited from the generator's call sequences,
		// which always continue past the call.
		offset := uint32(addr - start - 1)
		entry := e.FindMappingEntry(offset)
		if entry.BlockIndex == ScaffoldBlockIndex || int(entry.BlockIndex) >= exe.BlockCount() {
			continue
		}
		if int(entry.BytecodeOffset) >= exe.Block(int(entry.BlockIndex)).Size() {
			continue
		}
		it, err := bytecode.NewInstructionIterator(exe, int(entry.BlockIndex), int(entry.BytecodeOffset))
		if err != nil {
			continue
		}
		e.cursor = it
		return e.cursor, true
	}
	return nil, false
}
