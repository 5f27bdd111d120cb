//go:build !unix

package platform

import "errors"

const mmapSupported = false

var errUnsupported = errors.New("platform: executable memory is not supported on this OS")

// MmapCodeSegment always fails on this OS.
func MmapCodeSegment(code []byte) ([]byte, error) {
	return nil, errUnsupported
}

// MunmapCodeSegment always fails on this OS.
func MunmapCodeSegment(code []byte) error {
	return errUnsupported
}
