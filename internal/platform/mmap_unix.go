//go:build unix

package platform

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

const mmapSupported = true

// MmapCodeSegment copies code into a fresh private anonymous mapping and
// returns it protected read+execute. The mapping is never left writable
// and executable at the same time.
func MmapCodeSegment(code []byte) ([]byte, error) {
	if len(code) == 0 {
		return nil, errors.New("platform: mmap of empty code segment")
	}
	buf, err := unix.Mmap(-1, 0, len(code),
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("platform: mmap code segment: %w", err)
	}
	copy(buf, code)
	if err := unix.Mprotect(buf, unix.PROT_READ|unix.PROT_EXEC); err != nil {
		// The region was never executable; tearing it down cannot leak
		// anything runnable.
		_ = unix.Munmap(buf)
		return nil, fmt.Errorf("platform: mprotect code segment: %w", err)
	}
	return buf, nil
}

// MunmapCodeSegment releases a mapping returned by MmapCodeSegment.
func MunmapCodeSegment(code []byte) error {
	if len(code) == 0 {
		return errors.New("platform: munmap of empty code segment")
	}
	return unix.Munmap(code)
}
