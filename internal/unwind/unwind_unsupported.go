//go:build !amd64

package unwind

// Supported reports whether stack unwinding is available.
func Supported() bool {
	return false
}

// ReturnAddresses always returns nil on this architecture.
func ReturnAddresses(max int) []uintptr {
	return nil
}
