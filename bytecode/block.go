package bytecode

// BasicBlock is a straight-line sequence of instructions with a single
// entry point, addressed by its index within an Executable. The instruction
// stream is byte-addressable: mapping tables and iterators refer to
// instructions by their byte offset from the start of the block.
// It is immutable after creation.
type BasicBlock struct {
	code     []byte
	location SourceLocation
}

// BlockParams contains parameters for creating a new BasicBlock.
type BlockParams struct {
	Code     []byte
	Location SourceLocation // location of the block's first instruction
}

// NewBasicBlock creates a new immutable BasicBlock from the given
// parameters. The code slice is copied to ensure immutability.
func NewBasicBlock(params BlockParams) *BasicBlock {
	code := make([]byte, len(params.Code))
	copy(code, params.Code)
	return &BasicBlock{
		code:     code,
		location: params.Location,
	}
}

// InstructionStream returns the raw encoded instruction stream.
// Callers must not modify the returned slice.
func (b *BasicBlock) InstructionStream() []byte {
	return b.code
}

// Size returns the instruction stream size in bytes.
func (b *BasicBlock) Size() int {
	return len(b.code)
}

// Location returns the source location of the block's first instruction.
func (b *BasicBlock) Location() SourceLocation {
	return b.location
}
