// Package jit provides the runtime container for just-in-time-compiled
// Fern code: ownership of the executable memory holding one compiled unit,
// the calling contract used to enter it, and the diagnostic services that
// map native code addresses back to the bytecode locations they implement.
//
// A NativeExecutable is created once, atomically, from the code generator's
// output: the finished instruction buffer and the bytecode mapping table.
// Both are immutable afterwards; a recompilation produces a new unit. Run
// is the hot path and touches no mapping data. Disassembly, symbolication,
// and backtrace recovery are cold-path diagnostics built on one sorted-table
// lookup, and degrade to no-ops on platforms where decoding or unwinding is
// unavailable.
package jit
