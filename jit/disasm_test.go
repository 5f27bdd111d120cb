//go:build amd64

package jit

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// disasmFixture builds a unit containing real x86-64 instructions:
//
//	offset 0:  nop                    (scaffold entry)
//	offset 1:  movabs rax, imm64      (block 1 start; 10 bytes, wraps)
//	offset 11: call -16 -> offset 0   (block 1, bytecode offset 5)
//	offset 16: ret                    (block 2 start)
func disasmFixture(t *testing.T) *NativeExecutable {
	t.Helper()
	stubCodeSegments(t)
	code := []byte{
		0x90,
		0x48, 0xb8, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88,
		0xe8, 0xf0, 0xff, 0xff, 0xff,
		0xc3,
	}
	mapping := []BytecodeMapping{
		{NativeOffset: 0, BlockIndex: ScaffoldBlockIndex, BytecodeOffset: ScaffoldEntry},
		{NativeOffset: 1, BlockIndex: 0, BytecodeOffset: 0},
		{NativeOffset: 11, BlockIndex: 0, BytecodeOffset: 5},
		{NativeOffset: 16, BlockIndex: 1, BytecodeOffset: 0},
	}
	exe, err := NewNativeExecutable(code, mapping)
	require.NoError(t, err)
	t.Cleanup(func() { exe.Close() })
	return exe
}

func TestDumpDisassembly(t *testing.T) {
	exe := disasmFixture(t)
	program := testBytecodeExecutable()

	var buf bytes.Buffer
	exe.DumpDisassembly(&buf, program)
	out := buf.String()

	assert.Contains(t, out, "Disassembly of 'answer' (answer.fern:3:9):")

	// Every mapping entry's label appears exactly once, in ascending
	// native-offset order, with the bytecode instruction rendering.
	labels := []string{
		"entry:",
		"Block 1:",
		"1:0 LOAD_IMMEDIATE 1, 0:",
		"1:5 RETURN 1:",
		"Block 2:",
		"2:0 NOP:",
	}
	pos := -1
	for _, label := range labels {
		idx := strings.Index(out, label)
		require.GreaterOrEqual(t, idx, 0, "missing label %q in:\n%s", label, out)
		assert.Greater(t, idx, pos, "label %q out of order", label)
		assert.Equal(t, idx, strings.LastIndex(out, label), "label %q duplicated", label)
		pos = idx
	}

	// Each decoded instruction line starts with its virtual address and the
	// whole buffer is consumed: nop, movabs, call, ret.
	base := uint64(exe.base())
	for _, offset := range []uint64{0, 1, 11, 16} {
		assert.Contains(t, out, fmt.Sprintf("%012x  ", base+offset))
	}

	// The 10-byte movabs wraps: a continuation line holds the bytes past
	// the seventh, addressed at instruction start + 7.
	assert.Contains(t, out, fmt.Sprintf("%012x  48 b8 11 22 33 44 55", base+1))
	assert.Contains(t, out, fmt.Sprintf("%012x  66 77 88", base+1+7))

	// The call operand resolves through the symbol provider.
	assert.Contains(t, out, "entry(SB)")
}

func TestDumpDisassemblyColor(t *testing.T) {
	exe := disasmFixture(t)
	program := testBytecodeExecutable()

	var plain, colored bytes.Buffer
	exe.DumpDisassembly(&plain, program, WithColor(false))
	exe.DumpDisassembly(&colored, program, WithColor(true))

	assert.NotContains(t, plain.String(), "\x1b[")
	assert.Contains(t, colored.String(), "\x1b[33m")
}

func TestDumpDisassemblyStopsOnDecodeFailure(t *testing.T) {
	stubCodeSegments(t)
	// A ret followed by a byte sequence that does not decode.
	code := []byte{0xc3, 0x0f, 0x0b, 0xff}
	code[1], code[2], code[3] = 0x06, 0x06, 0x06 // invalid in 64-bit mode
	exe, err := NewNativeExecutable(code, minimalMapping)
	require.NoError(t, err)
	defer exe.Close()

	var buf bytes.Buffer
	exe.DumpDisassembly(&buf, testBytecodeExecutable())
	out := buf.String()

	// Decode failure ends the listing quietly after the valid prefix.
	assert.Contains(t, out, "entry:")
	assert.Contains(t, out, fmt.Sprintf("%012x  ", uint64(exe.base())))
}
