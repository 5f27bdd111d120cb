//go:build amd64

package unwind

import "unsafe"

// A frame larger than this means the chain left the stack; stop walking.
const maxFrameSize = 1 << 20

// framePointer returns the caller's RBP. Implemented in assembly.
func framePointer() uintptr

// Supported reports whether stack unwinding is available.
func Supported() bool {
	return true
}

// ReturnAddresses walks the frame-pointer chain and returns up to max
// return addresses, innermost first. The walk stops at the first frame
// that looks implausible rather than risking a wild read.
func ReturnAddresses(max int) []uintptr {
	if max <= 0 {
		max = DefaultDepth
	}
	addrs := make([]uintptr, 0, max)
	fp := framePointer()
	for len(addrs) < max {
		if fp == 0 || fp&7 != 0 {
			break
		}
		ret := *(*uintptr)(unsafe.Pointer(fp + 8))
		if ret == 0 {
			break
		}
		addrs = append(addrs, ret)
		next := *(*uintptr)(unsafe.Pointer(fp))
		if next <= fp || next-fp > maxFrameSize {
			break
		}
		fp = next
	}
	return addrs
}
