//go:build darwin || freebsd || linux

package plugin

import (
	"fmt"
	"unsafe"

	"github.com/ebitengine/purego"
)

// openLibrary dlopens path and binds EntryPoint.
func openLibrary(path string) (func() unsafe.Pointer, func() error, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_LOCAL)
	if err != nil {
		return nil, nil, fmt.Errorf("%w %s: %v", ErrOpen, path, err)
	}

	sym, err := purego.Dlsym(handle, EntryPoint)
	if err != nil || sym == 0 {
		_ = purego.Dlclose(handle)
		return nil, nil, fmt.Errorf("%w: %s in %s", ErrMissingSymbol, EntryPoint, path)
	}

	var call func() unsafe.Pointer
	purego.RegisterFunc(&call, sym)

	return call, func() error { return purego.Dlclose(handle) }, nil
}
