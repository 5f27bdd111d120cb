package bytecode

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/fernscript/fern/op"
)

// Instruction is a single decoded bytecode instruction. Operands are
// 16-bit values whose interpretation (register index, constant index,
// block index) depends on the opcode.
type Instruction struct {
	Opcode   op.Code
	Operands []uint16
}

// DecodeInstruction decodes the instruction starting at offset within the
// given instruction stream. It returns the instruction and its encoded
// width in bytes. Decoding a truncated or unknown instruction returns an
// error; a well-formed stream produced by the compiler never does.
func DecodeInstruction(stream []byte, offset int) (Instruction, int, error) {
	if offset < 0 || offset >= len(stream) {
		return Instruction{}, 0, fmt.Errorf("bytecode: offset %d out of range (stream size %d)", offset, len(stream))
	}
	opcode := op.Code(stream[offset])
	info := op.GetInfo(opcode)
	if info.Name == "" {
		return Instruction{}, 0, fmt.Errorf("bytecode: unknown opcode 0x%02x at offset %d", stream[offset], offset)
	}
	width := op.Width(opcode)
	if offset+width > len(stream) {
		return Instruction{}, 0, fmt.Errorf("bytecode: truncated %s instruction at offset %d", info.Name, offset)
	}
	var operands []uint16
	if info.OperandCount > 0 {
		operands = make([]uint16, info.OperandCount)
		for i := 0; i < info.OperandCount; i++ {
			operands[i] = binary.LittleEndian.Uint16(stream[offset+1+2*i:])
		}
	}
	return Instruction{Opcode: opcode, Operands: operands}, width, nil
}

// Width returns the encoded size of the instruction in bytes.
func (i Instruction) Width() int {
	return op.Width(i.Opcode)
}

// String returns a human-readable rendering of the instruction, e.g.
// "ADD r1, r2, r3" becomes "ADD 1, 2, 3".
func (i Instruction) String() string {
	info := op.GetInfo(i.Opcode)
	if len(i.Operands) == 0 {
		return info.Name
	}
	parts := make([]string, len(i.Operands))
	for idx, operand := range i.Operands {
		parts[idx] = fmt.Sprintf("%d", operand)
	}
	return info.Name + " " + strings.Join(parts, ", ")
}
