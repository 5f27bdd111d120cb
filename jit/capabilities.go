package jit

import (
	"github.com/fernscript/fern/internal/platform"
	"github.com/fernscript/fern/internal/unwind"
)

// CanExecute reports whether this platform can map and call generated code
// at all. Callers use it to decide whether to JIT or stay in the
// interpreter.
func CanExecute() bool {
	return platform.CanExecute()
}

// CanDisassemble reports whether DumpDisassembly produces a listing on this
// platform. When false, DumpDisassembly is a documented no-op.
func CanDisassemble() bool {
	return platform.CanDisassemble()
}

// CanRecoverBacktrace reports whether InstructionStreamIterator can ever
// succeed on this platform. When false, it always reports unavailable.
func CanRecoverBacktrace() bool {
	return unwind.Supported()
}
