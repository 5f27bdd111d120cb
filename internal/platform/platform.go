// Package platform isolates the OS- and CPU-specific pieces the JIT needs:
// executable memory mapping and capability queries. Callers ask what the
// platform can do instead of sprinkling build tags at call sites; anything
// unsupported degrades to an explicit "unavailable" answer.
package platform

import "runtime"

// CanDisassemble reports whether native-code disassembly is available.
// The decoder only targets x86-64; elsewhere disassembly is a no-op.
func CanDisassemble() bool {
	return runtime.GOARCH == "amd64"
}

// CanExecute reports whether the platform can map and call generated code.
func CanExecute() bool {
	return runtime.GOARCH == "amd64" && mmapSupported
}
