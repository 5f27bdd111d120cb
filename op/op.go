// Package op defines opcodes used by the Fern compiler, interpreter, and JIT.
package op

// Code is a single-byte opcode that indicates an operation to execute.
// Operands follow the opcode in the instruction stream as 16-bit
// little-endian values, so an instruction occupies 1 + 2*OperandCount bytes.
type Code uint8

const (
	Invalid Code = 0

	// Moves
	LoadImmediate Code = 1 // dst, constant index
	Mov           Code = 2 // dst, src

	// Arithmetic
	Add Code = 10 // dst, lhs, rhs
	Sub Code = 11 // dst, lhs, rhs
	Mul Code = 12 // dst, lhs, rhs
	Div Code = 13 // dst, lhs, rhs
	Mod Code = 14 // dst, lhs, rhs
	Neg Code = 15 // dst, src

	// Comparison
	LessThan    Code = 20 // dst, lhs, rhs
	GreaterThan Code = 21 // dst, lhs, rhs
	Equals      Code = 22 // dst, lhs, rhs
	Not         Code = 23 // dst, src

	// Control flow. Jump targets are basic block indices; within a block
	// control only falls through, so every block ends in a jump or return.
	Jump            Code = 30 // target block
	JumpConditional Code = 31 // condition, true block, false block
	Return          Code = 32 // src

	// Variables
	GetLocal Code = 40 // dst, local index
	SetLocal Code = 41 // local index, src

	// Calls
	Call Code = 50 // dst, callee, first arg register, arg count

	// Miscellaneous
	Nop            Code = 60
	EnterScope     Code = 61 // scope index
	LeaveScope     Code = 62
	ThrowException Code = 63 // src
)

// Info contains information about an opcode.
type Info struct {
	Code         Code
	Name         string
	OperandCount int
}

var infos = make([]Info, 256)

func init() {
	type opInfo struct {
		op    Code
		name  string
		count int
	}
	ops := []opInfo{
		{LoadImmediate, "LOAD_IMMEDIATE", 2},
		{Mov, "MOV", 2},
		{Add, "ADD", 3},
		{Sub, "SUB", 3},
		{Mul, "MUL", 3},
		{Div, "DIV", 3},
		{Mod, "MOD", 3},
		{Neg, "NEG", 2},
		{LessThan, "LESS_THAN", 3},
		{GreaterThan, "GREATER_THAN", 3},
		{Equals, "EQUALS", 3},
		{Not, "NOT", 2},
		{Jump, "JUMP", 1},
		{JumpConditional, "JUMP_CONDITIONAL", 3},
		{Return, "RETURN", 1},
		{GetLocal, "GET_LOCAL", 2},
		{SetLocal, "SET_LOCAL", 2},
		{Call, "CALL", 4},
		{Nop, "NOP", 0},
		{EnterScope, "ENTER_SCOPE", 1},
		{LeaveScope, "LEAVE_SCOPE", 0},
		{ThrowException, "THROW_EXCEPTION", 1},
	}
	for _, o := range ops {
		infos[o.op] = Info{
			Name:         o.name,
			Code:         o.op,
			OperandCount: o.count,
		}
	}
}

// GetInfo returns information about the given opcode.
func GetInfo(op Code) Info {
	return infos[op]
}

// Width returns the encoded size in bytes of an instruction with the given
// opcode, including the opcode byte itself.
func Width(op Code) int {
	return 1 + 2*infos[op].OperandCount
}
