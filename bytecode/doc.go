// Package bytecode provides immutable representations of compiled Fern code.
//
// This package defines the output of compilation: pure data structures that
// represent an executable as an ordered sequence of basic blocks, each
// holding a byte-addressable instruction stream. These types are created
// once during compilation and shared safely across goroutines; nothing in
// this package mutates them after construction.
//
// The JIT consumes these types read-only: its bytecode mapping table refers
// into executables by (block index, byte offset) pairs, and backtrace
// recovery hands out InstructionIterator values positioned at such pairs.
package bytecode
