// Package fetch runs the information providers of one fetch pass
// concurrently and composes their results, together with the distro logo,
// into the lines printed to the terminal.
package fetch

import "context"

// FieldKind identifies a built-in display field.
type FieldKind int

const (
	FieldDistro FieldKind = iota
	FieldOS
	FieldKernel
	FieldUptime
	FieldHost
	FieldShell
	FieldCPU
	FieldMemory
)

var fieldNames = [...]string{
	FieldDistro: "distro",
	FieldOS:     "os",
	FieldKernel: "kernel",
	FieldUptime: "uptime",
	FieldHost:   "host",
	FieldShell:  "shell",
	FieldCPU:    "cpu",
	FieldMemory: "memory",
}

func (k FieldKind) String() string {
	if k < 0 || int(k) >= len(fieldNames) {
		return "unknown"
	}
	return fieldNames[k]
}

// Fields lists every FieldKind, the logo first.
var Fields = []FieldKind{FieldDistro, FieldOS, FieldKernel, FieldUptime, FieldHost, FieldShell, FieldCPU, FieldMemory}

// DisplayOrder is the order in which textual built-in fields are drawn.
// FieldDistro is absent: it is the logo, not a line of text.
var DisplayOrder = []FieldKind{FieldOS, FieldKernel, FieldUptime, FieldHost, FieldShell, FieldCPU, FieldMemory}

// ProviderFunc produces the text of one built-in field. It returns "" when
// the fact is not available on this host and never reports errors.
type ProviderFunc func(ctx context.Context) string

// Source is a plugin-supplied provider.
type Source interface {
	Name() string
	Output() string
}

// Selection holds the per-field toggles of one pass. Missing keys are off.
type Selection map[FieldKind]bool

// ResultSet is the outcome of one aggregation pass.
type ResultSet struct {
	// Fields maps each built-in that produced text to that text
	Fields map[FieldKind]string

	// Plugins holds the non-empty plugin outputs in discovery order
	Plugins []string
}

// Logo returns the rendered distro logo, if the pass produced one.
func (r ResultSet) Logo() (string, bool) {
	logo, ok := r.Fields[FieldDistro]
	return logo, ok && logo != ""
}
