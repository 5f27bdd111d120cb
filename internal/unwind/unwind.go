// Package unwind captures return addresses from the current call stack by
// walking the frame-pointer chain. It exists for JIT diagnostics: Go's own
// unwinder cannot see frames belonging to generated code, but generated
// code emits the standard push-rbp prologue, so its frames stay on the
// chain. On platforms without frame pointers the package reports itself
// unsupported and callers degrade to "unavailable".
package unwind

// DefaultDepth is the number of frames captured when callers have no
// specific bound in mind.
const DefaultDepth = 10
