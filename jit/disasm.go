//go:build amd64

package jit

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/fernscript/fern/bytecode"
	"golang.org/x/arch/x86/x86asm"
)

// Raw instruction bytes wrap at this many per listing line.
const dumpBytesPerLine = 7

// DumpDisassembly writes a textual listing of the entire generated code
// buffer to w, with bytecode labels interleaved at the native offsets where
// mapping regions begin and call/jump operands annotated via the mapping
// table. The listing is a best-effort diagnostic: decode failure ends the
// stream, it never fails hard. Only implemented on x86-64.
func (e *NativeExecutable) DumpDisassembly(w io.Writer, exe *bytecode.Executable, opts ...DumpOption) {
	cfg := newDumpConfig(w, opts)
	labelColor := color.New(color.FgYellow)
	if cfg.color {
		labelColor.EnableColor()
	} else {
		labelColor.DisableColor()
	}
	label := labelColor.SprintFunc()

	if exe.BlockCount() > 0 {
		loc := exe.Block(0).Location()
		fmt.Fprintf(w, "Disassembly of '%s' (%s:%s):\n", exe.Name(), exe.Filename(), loc)
	} else {
		fmt.Fprintf(w, "Disassembly of '%s':\n", exe.Name())
	}

	provider := symbolProvider{exe: e}
	code := e.code
	base := uint64(e.base())
	mappingIndex := 0

	var b strings.Builder
	for offset := 0; offset < len(code); {
		virtualAddr := base + uint64(offset)

		// Mapping entries are consumed in ascending order in lock-step
		// with the instruction stream.
		for mappingIndex < len(e.mapping) && int(e.mapping[mappingIndex].NativeOffset) < offset {
			mappingIndex++
		}
		if mappingIndex < len(e.mapping) && int(e.mapping[mappingIndex].NativeOffset) == offset {
			e.dumpMappingLabel(w, e.mapping[mappingIndex], exe, label)
			mappingIndex++
		}

		inst, err := x86asm.Decode(code[offset:], 64)
		if err != nil {
			break
		}

		b.Reset()
		fmt.Fprintf(&b, "%012x  ", virtualAddr)
		for i := 0; i < dumpBytesPerLine; i++ {
			if i < inst.Len {
				fmt.Fprintf(&b, "%02x ", code[offset+i])
			} else {
				b.WriteString("   ")
			}
		}
		b.WriteString(" ")
		b.WriteString(x86asm.GoSyntax(inst, virtualAddr, provider.symLookup))
		fmt.Fprintln(w, b.String())

		for printed := dumpBytesPerLine; printed < inst.Len; printed += dumpBytesPerLine {
			b.Reset()
			fmt.Fprintf(&b, "%012x ", virtualAddr+uint64(printed))
			for i := printed; i < printed+dumpBytesPerLine && i < inst.Len; i++ {
				fmt.Fprintf(&b, " %02x", code[offset+i])
			}
			fmt.Fprintln(w, b.String())
		}

		offset += inst.Len
	}
	fmt.Fprintln(w)
}

// dumpMappingLabel emits the label line(s) for a mapping entry: the
// scaffold name, a block heading at block starts, and the bytecode
// instruction's own rendering when it decodes.
func (e *NativeExecutable) dumpMappingLabel(w io.Writer, entry BytecodeMapping, exe *bytecode.Executable, label func(...interface{}) string) {
	if entry.BlockIndex == ScaffoldBlockIndex {
		fmt.Fprintf(w, "%s:\n", label(entry.Label()))
		return
	}
	if int(entry.BlockIndex) >= exe.BlockCount() {
		// Entry points outside the executable; a generator bug, but the
		// listing stays best-effort.
		fmt.Fprintf(w, "%s:\n", label(entry.Label()))
		return
	}
	block := exe.Block(int(entry.BlockIndex))
	if entry.BytecodeOffset == 0 {
		fmt.Fprintf(w, "\n%s:\n", label(fmt.Sprintf("Block %d", entry.BlockIndex+1)))
	}
	position := fmt.Sprintf("%d:%x", entry.BlockIndex+1, entry.BytecodeOffset)
	instr, _, err := bytecode.DecodeInstruction(block.InstructionStream(), int(entry.BytecodeOffset))
	if err != nil {
		fmt.Fprintf(w, "%s:\n", label(position))
		return
	}
	fmt.Fprintf(w, "%s %s:\n", label(position), instr.String())
}
