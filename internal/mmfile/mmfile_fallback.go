//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package mmfile

import "os"

// Mapped reports whether Map uses a real memory mapping on this platform.
const Mapped = false

// Map reads the entire file when mmap is not available. The sequential hint is ignored.
func Map(path string, _ bool) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	return data, func() error { return nil }, nil
}
