package bytecode

import (
	"encoding/binary"
	"fmt"

	"github.com/fernscript/fern/op"
)

// Encode appends the encoded form of one instruction to dst and returns the
// extended slice. It is used by the compiler when laying out block
// instruction streams.
func Encode(dst []byte, opcode op.Code, operands ...uint16) []byte {
	info := op.GetInfo(opcode)
	if info.Name == "" {
		panic(fmt.Sprintf("bytecode: encode of unknown opcode 0x%02x", uint8(opcode)))
	}
	if len(operands) != info.OperandCount {
		panic(fmt.Sprintf("bytecode: %s takes %d operands, got %d",
			info.Name, info.OperandCount, len(operands)))
	}
	dst = append(dst, byte(opcode))
	for _, operand := range operands {
		dst = binary.LittleEndian.AppendUint16(dst, operand)
	}
	return dst
}
