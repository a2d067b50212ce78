// Package plugin loads native fetch plugins.
//
// A plugin is a shared library (.so, .dylib, .dll) that exports a single
// function
//
//	const char *int_output(void);
//
// returning a NUL-terminated UTF-8 string owned by the plugin. The string is
// copied into Go memory as soon as the call returns and the foreign pointer
// is never used again. A pointer that does not point at readable memory
// cannot be detected here and crashes the process.
package plugin

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"
	"unsafe"
)

// EntryPoint is the symbol every plugin must export.
const EntryPoint = "int_output"

// MaxOutputLen caps how many bytes are scanned for the terminating NUL.
// Longer outputs are treated as malformed.
const MaxOutputLen = 64 << 10

var (
	// ErrOpen is returned when the file cannot be loaded as a shared library.
	ErrOpen = errors.New("cannot open plugin library")
	// ErrMissingSymbol is returned when the library does not export EntryPoint.
	ErrMissingSymbol = errors.New("plugin entry point not found")
	// ErrUnsupported is returned on platforms without dynamic loading support.
	ErrUnsupported = errors.New("native plugins are not supported on this platform")
)

// Plugin is a loaded plugin library bound to its entry point.
// Output may be called from any goroutine.
type Plugin struct {
	path   string
	name   string
	call   func() unsafe.Pointer
	unload func() error
}

// Open loads the shared library at path and resolves EntryPoint.
func Open(path string) (*Plugin, error) {
	call, unload, err := openLibrary(path)
	if err != nil {
		return nil, err
	}
	return newPlugin(path, call, unload), nil
}

func newPlugin(path string, call func() unsafe.Pointer, unload func() error) *Plugin {
	base := filepath.Base(path)
	return &Plugin{
		path:   path,
		name:   strings.TrimSuffix(base, filepath.Ext(base)),
		call:   call,
		unload: unload,
	}
}

// Name returns the file name of the plugin without its extension.
func (p *Plugin) Name() string {
	return p.name
}

// Path returns the file the plugin was loaded from.
func (p *Plugin) Path() string {
	return p.path
}

// Output invokes the plugin and returns a copy of the text it produced.
// A nil pointer, a buffer without a NUL within MaxOutputLen, or text that is
// not valid UTF-8 all yield "". Trailing line breaks are dropped since the
// output is drawn as a single row.
func (p *Plugin) Output() string {
	text, err := copyCString(p.call())
	if err != nil {
		return ""
	}
	return strings.TrimRight(text, "\r\n")
}

// Close releases the library. The Plugin must not be used afterwards.
func (p *Plugin) Close() error {
	if p.unload == nil {
		return nil
	}
	unload := p.unload
	p.unload = nil
	if err := unload(); err != nil {
		return fmt.Errorf("close plugin %s: %w", p.path, err)
	}
	return nil
}

var (
	errNilOutput       = errors.New("nil output pointer")
	errUnterminated    = errors.New("output is not NUL-terminated")
	errInvalidEncoding = errors.New("output is not valid UTF-8")
)

// copyCString copies the NUL-terminated string at base into a Go string.
func copyCString(base unsafe.Pointer) (string, error) {
	if base == nil {
		return "", errNilOutput
	}
	n := 0
	for *(*byte)(unsafe.Add(base, n)) != 0 {
		n++
		if n >= MaxOutputLen {
			return "", errUnterminated
		}
	}
	text := string(unsafe.Slice((*byte)(base), n))
	if !utf8.ValidString(text) {
		return "", errInvalidEncoding
	}
	return text, nil
}
