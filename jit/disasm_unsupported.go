//go:build !amd64

package jit

import (
	"io"

	"github.com/fernscript/fern/bytecode"
)

// DumpDisassembly is a no-op on architectures without a disassembler.
func (e *NativeExecutable) DumpDisassembly(w io.Writer, exe *bytecode.Executable, opts ...DumpOption) {
}
