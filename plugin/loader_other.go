//go:build !darwin && !freebsd && !linux && !windows

package plugin

import (
	"fmt"
	"unsafe"
)

func openLibrary(path string) (func() unsafe.Pointer, func() error, error) {
	return nil, nil, fmt.Errorf("%w: %s", ErrUnsupported, path)
}
