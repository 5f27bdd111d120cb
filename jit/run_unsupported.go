//go:build !amd64

package jit

import "github.com/fernscript/fern/vm"

// Run panics: the code generator only targets x86-64, so a unit cannot
// exist with a valid entry point on this architecture.
func (e *NativeExecutable) Run(m *vm.Machine) {
	panic("jit: native execution is not supported on this architecture")
}
