//go:build windows

package plugin

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// openLibrary loads path with LoadLibrary and binds EntryPoint.
func openLibrary(path string) (func() unsafe.Pointer, func() error, error) {
	dll, err := windows.LoadDLL(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w %s: %v", ErrOpen, path, err)
	}

	proc, err := dll.FindProc(EntryPoint)
	if err != nil {
		_ = dll.Release()
		return nil, nil, fmt.Errorf("%w: %s in %s", ErrMissingSymbol, EntryPoint, path)
	}

	call := func() unsafe.Pointer {
		r1, _, _ := proc.Call()
		// r1 addresses memory owned by the DLL, never the Go heap.
		return *(*unsafe.Pointer)(unsafe.Pointer(&r1))
	}
	return call, dll.Release, nil
}
