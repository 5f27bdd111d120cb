package bytecode

import "fmt"

// InstructionIterator is a cursor positioned at a specific instruction
// within a specific block of an Executable. It is a transient view: it
// borrows the Executable and must not outlive it.
type InstructionIterator struct {
	exe        *Executable
	blockIndex int
	offset     int
}

// NewInstructionIterator returns an iterator positioned at the given byte
// offset within the given block. The position must reference a valid
// instruction boundary; callers resolve positions from mapping tables or
// start at offset 0.
func NewInstructionIterator(exe *Executable, blockIndex, offset int) (*InstructionIterator, error) {
	if blockIndex < 0 || blockIndex >= exe.BlockCount() {
		return nil, fmt.Errorf("bytecode: block index %d out of range (block count %d)", blockIndex, exe.BlockCount())
	}
	if offset < 0 || offset >= exe.Block(blockIndex).Size() {
		return nil, fmt.Errorf("bytecode: offset %d out of range in block %d (size %d)",
			offset, blockIndex, exe.Block(blockIndex).Size())
	}
	return &InstructionIterator{exe: exe, blockIndex: blockIndex, offset: offset}, nil
}

// BlockIndex returns the index of the block the iterator is positioned in.
func (it *InstructionIterator) BlockIndex() int {
	return it.blockIndex
}

// Offset returns the byte offset of the current instruction within its block.
func (it *InstructionIterator) Offset() int {
	return it.offset
}

// Executable returns the executable the iterator refers into.
func (it *InstructionIterator) Executable() *Executable {
	return it.exe
}

// Done reports whether the iterator has moved past the end of its block.
func (it *InstructionIterator) Done() bool {
	return it.offset >= it.exe.Block(it.blockIndex).Size()
}

// Instruction decodes and returns the instruction at the current position.
func (it *InstructionIterator) Instruction() (Instruction, error) {
	instr, _, err := DecodeInstruction(it.exe.Block(it.blockIndex).InstructionStream(), it.offset)
	return instr, err
}

// Next advances the iterator past the current instruction. It returns an
// error if the current position does not hold a decodable instruction.
func (it *InstructionIterator) Next() error {
	_, width, err := DecodeInstruction(it.exe.Block(it.blockIndex).InstructionStream(), it.offset)
	if err != nil {
		return err
	}
	it.offset += width
	return nil
}
