package jit

// symbolProvider adapts the executable's mapping table lookup to the
// vocabulary a disassembler needs: absolute address in, label out. It
// borrows the executable and is scoped to a single disassembly call; it
// must not outlive the unit.
type symbolProvider struct {
	exe *NativeExecutable
}

// symbolicate resolves an absolute address to the label of the bytecode
// region containing it, along with the address's offset into that region.
// Addresses outside the code buffer yield ok == false with an empty label.
func (p symbolProvider) symbolicate(address uint64) (label string, regionOffset uint32, ok bool) {
	base := uint64(p.exe.base())
	if address < base || address-base >= uint64(p.exe.Size()) {
		return "", 0, false
	}
	nativeOffset := uint32(address - base)
	entry := p.exe.FindMappingEntry(nativeOffset)
	return entry.Label(), nativeOffset - entry.NativeOffset, true
}

// symLookup is the x86asm.GoSyntax symbol resolver signature: it returns
// the label and base address of the region containing addr, so call and
// jump operands render as "label+offset".
func (p symbolProvider) symLookup(addr uint64) (string, uint64) {
	label, regionOffset, ok := p.symbolicate(addr)
	if !ok {
		return "", 0
	}
	return label, addr - uint64(regionOffset)
}
