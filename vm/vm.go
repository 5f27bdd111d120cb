// Package vm provides the execution-engine state that compiled Fern code
// runs against: the virtual register file and the local-variable storage of
// the running execution context. The JIT invokes generated code with raw
// pointers into these slot arrays, so their layout is fixed: contiguous
// 64-bit Value slots.
package vm

const (
	// DefaultRegisterCount is the register file size used when a caller
	// does not specify one. The compiler never allocates more virtual
	// registers than this without asking for a larger machine.
	DefaultRegisterCount = 256

	MaxFrameDepth = 1024
)

// ExecutionContext holds the per-call state of one invocation: its local
// variable slots.
type ExecutionContext struct {
	Locals []Value
}

// Machine is the execution engine handle passed to generated code.
// It is not safe for concurrent use.
type Machine struct {
	registers []Value
	contexts  []*ExecutionContext
}

// NewMachine creates a Machine with the given register file size.
// A registerCount of zero selects DefaultRegisterCount.
func NewMachine(registerCount int) *Machine {
	if registerCount <= 0 {
		registerCount = DefaultRegisterCount
	}
	return &Machine{
		registers: make([]Value, registerCount),
	}
}

// Registers returns the register slot array. Generated code mutates these
// slots in place.
func (m *Machine) Registers() []Value {
	return m.registers
}

// PushExecutionContext enters a new call with the given number of local
// slots and returns it.
func (m *Machine) PushExecutionContext(localCount int) *ExecutionContext {
	if len(m.contexts) >= MaxFrameDepth {
		panic("vm: execution context stack overflow")
	}
	ctx := &ExecutionContext{Locals: make([]Value, localCount)}
	m.contexts = append(m.contexts, ctx)
	return ctx
}

// PopExecutionContext leaves the current call.
func (m *Machine) PopExecutionContext() {
	if len(m.contexts) == 0 {
		panic("vm: execution context stack underflow")
	}
	m.contexts = m.contexts[:len(m.contexts)-1]
}

// RunningExecutionContext returns the context of the innermost call, or nil
// if no call is active.
func (m *Machine) RunningExecutionContext() *ExecutionContext {
	if len(m.contexts) == 0 {
		return nil
	}
	return m.contexts[len(m.contexts)-1]
}
