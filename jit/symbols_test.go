package jit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSymbolFixture(t *testing.T) (*NativeExecutable, symbolProvider, uint64) {
	t.Helper()
	stubCodeSegments(t)
	mapping := []BytecodeMapping{
		{NativeOffset: 0, BlockIndex: ScaffoldBlockIndex, BytecodeOffset: ScaffoldEntry},
		{NativeOffset: 8, BlockIndex: 0, BytecodeOffset: 0},
		{NativeOffset: 20, BlockIndex: 0, BytecodeOffset: 5},
	}
	exe, err := NewNativeExecutable(make([]byte, 32), mapping)
	require.NoError(t, err)
	t.Cleanup(func() { exe.Close() })
	return exe, symbolProvider{exe: exe}, uint64(exe.base())
}

func TestSymbolicateOutOfRange(t *testing.T) {
	_, provider, base := newSymbolFixture(t)

	for _, addr := range []uint64{0, 1, base - 1, base + 32, base + 100} {
		label, offset, ok := provider.symbolicate(addr)
		assert.False(t, ok, "address %#x", addr)
		assert.Empty(t, label)
		assert.Zero(t, offset)
	}
}

func TestSymbolicateLabels(t *testing.T) {
	_, provider, base := newSymbolFixture(t)

	tests := []struct {
		addr       uint64
		wantLabel  string
		wantOffset uint32
	}{
		{base, "entry", 0},
		{base + 3, "entry", 3},
		{base + 8, "Block 1", 0},  // block start, bytecode offset 0
		{base + 15, "Block 1", 7}, // inside the block-start region
		{base + 20, "1:5", 0},     // non-zero bytecode offset, hex rendering
		{base + 31, "1:5", 11},    // last byte of the buffer
	}
	for _, tt := range tests {
		label, offset, ok := provider.symbolicate(tt.addr)
		require.True(t, ok, "address %#x", tt.addr)
		assert.Equal(t, tt.wantLabel, label, "address %#x", tt.addr)
		assert.Equal(t, tt.wantOffset, offset, "address %#x", tt.addr)
	}
}

func TestSymLookup(t *testing.T) {
	_, provider, base := newSymbolFixture(t)

	name, regionBase := provider.symLookup(base + 15)
	assert.Equal(t, "Block 1", name)
	assert.Equal(t, base+8, regionBase)

	name, regionBase = provider.symLookup(base + 100)
	assert.Empty(t, name)
	assert.Zero(t, regionBase)
}
