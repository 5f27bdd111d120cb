package bytecode

// Executable represents one compiled program unit: an ordered sequence of
// basic blocks plus naming and source metadata. It is immutable after
// creation and safe for concurrent use.
type Executable struct {
	name     string
	filename string
	blocks   []*BasicBlock
}

// ExecutableParams contains parameters for creating a new Executable.
type ExecutableParams struct {
	Name     string
	Filename string
	Blocks   []*BasicBlock
}

// NewExecutable creates a new immutable Executable from the given
// parameters. The block slice is copied; blocks themselves are already
// immutable.
func NewExecutable(params ExecutableParams) *Executable {
	blocks := make([]*BasicBlock, len(params.Blocks))
	copy(blocks, params.Blocks)
	return &Executable{
		name:     params.Name,
		filename: params.Filename,
		blocks:   blocks,
	}
}

// Name returns the name of the compiled unit (function or script name).
func (e *Executable) Name() string {
	return e.name
}

// Filename returns the source file the unit was compiled from.
func (e *Executable) Filename() string {
	return e.filename
}

// BlockCount returns the number of basic blocks.
func (e *Executable) BlockCount() int {
	return len(e.blocks)
}

// Block returns the basic block at the given index.
func (e *Executable) Block(index int) *BasicBlock {
	return e.blocks[index]
}
