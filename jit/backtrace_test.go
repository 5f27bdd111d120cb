package jit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBacktraceFixture(t *testing.T) (*NativeExecutable, uintptr) {
	t.Helper()
	stubCodeSegments(t)
	mapping := []BytecodeMapping{
		{NativeOffset: 0, BlockIndex: ScaffoldBlockIndex, BytecodeOffset: ScaffoldEntry},
		{NativeOffset: 4, BlockIndex: 0, BytecodeOffset: 0},
		{NativeOffset: 12, BlockIndex: 0, BytecodeOffset: 5},
		{NativeOffset: 20, BlockIndex: 9, BytecodeOffset: 0}, // outside the program's blocks
	}
	exe, err := NewNativeExecutable(make([]byte, 32), mapping)
	require.NoError(t, err)
	t.Cleanup(func() { exe.Close() })
	return exe, exe.base()
}

func TestResolveReturnAddresses(t *testing.T) {
	exe, base := newBacktraceFixture(t)
	program := testBytecodeExecutable()

	// Only one address falls inside the unit. Its return address minus one
	// lands at native offset 12, which maps to block 0, bytecode offset 5.
	addrs := []uintptr{0x1000, base - 8, base + 13, base + 200}
	it, ok := exe.resolveReturnAddresses(addrs, program)
	require.True(t, ok)
	assert.Equal(t, 0, it.BlockIndex())
	assert.Equal(t, 5, it.Offset())

	instr, err := it.Instruction()
	require.NoError(t, err)
	assert.Equal(t, "RETURN 1", instr.String())
}

func TestResolveReturnAddressesNoQualifyingFrame(t *testing.T) {
	exe, base := newBacktraceFixture(t)
	program := testBytecodeExecutable()

	tests := []struct {
		name  string
		addrs []uintptr
	}{
		{"empty stack", nil},
		{"nothing inside the unit", []uintptr{0x1000, base - 1, base + 32}},
		{"base itself is not a return address", []uintptr{base}},
		{"scaffold region only", []uintptr{base + 2}},
		{"entry refers to a block the program does not have", []uintptr{base + 25}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, ok := exe.resolveReturnAddresses(tt.addrs, program)
			assert.False(t, ok)
			assert.Nil(t, it)
		})
	}
}

func TestResolveReturnAddressesSkipsToNextFrame(t *testing.T) {
	exe, base := newBacktraceFixture(t)
	program := testBytecodeExecutable()

	// The innermost frame resolves into the scaffold region and the next
	// into an invalid block; the third qualifies.
	addrs := []uintptr{base + 3, base + 25, base + 6}
	it, ok := exe.resolveReturnAddresses(addrs, program)
	require.True(t, ok)
	assert.Equal(t, 0, it.BlockIndex())
	assert.Equal(t, 0, it.Offset())
}

func TestResolveReturnAddressesCachesOneCursor(t *testing.T) {
	exe, base := newBacktraceFixture(t)
	program := testBytecodeExecutable()

	first, ok := exe.resolveReturnAddresses([]uintptr{base + 6}, program)
	require.True(t, ok)
	assert.Same(t, first, exe.cursor)

	second, ok := exe.resolveReturnAddresses([]uintptr{base + 13}, program)
	require.True(t, ok)
	assert.Same(t, second, exe.cursor)
	assert.NotSame(t, first, second)
}

func TestInstructionStreamIteratorOutsideGeneratedCode(t *testing.T) {
	exe, _ := newBacktraceFixture(t)

	// No frame on the current (pure Go) stack lies inside the unit.
	it, ok := exe.InstructionStreamIterator(testBytecodeExecutable())
	assert.False(t, ok)
	assert.Nil(t, it)
}
