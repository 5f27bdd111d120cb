//go:build amd64

package jit

import (
	"unsafe"

	"github.com/fernscript/fern/vm"
)

// enterJIT transfers control to generated code at the given address.
// Implemented in assembly; see call_amd64.s for the calling contract.
func enterJIT(code uintptr, machine, registers, locals unsafe.Pointer)

// Run calls the compiled unit's entry point directly, passing the machine
// handle, the base of its register slot array, and the base of the running
// execution context's local slot array.
//
// This is the single place where a buffer of bytes is treated as a callable
// function. The contract is established entirely by the code generator and
// is not checked here: the buffer's first byte must be a valid entry point
// compiled against exactly this three-argument signature and exactly the
// vm.Value slot layout. Violating that is undefined behavior, not a
// recoverable error. The call may recurse back into the VM or into other
// compiled units; control returns when the generated code returns, with all
// side effects already applied to the slot arrays.
func (e *NativeExecutable) Run(m *vm.Machine) {
	if e.closed {
		panic("jit: Run on closed NativeExecutable")
	}
	ctx := m.RunningExecutionContext()
	if ctx == nil {
		panic("jit: Run without a running execution context")
	}
	registers := m.Registers()
	if len(registers) == 0 {
		panic("jit: Run with an empty register file")
	}
	var locals unsafe.Pointer
	if len(ctx.Locals) > 0 {
		locals = unsafe.Pointer(&ctx.Locals[0])
	}
	enterJIT(e.base(), unsafe.Pointer(m), unsafe.Pointer(&registers[0]), locals)
}
