// Package sysinfo provides the built-in information providers: the distro
// logo and one labeled line per host fact (OS, kernel, uptime, host model,
// shell, CPU, memory).
//
// Every provider swallows its own failures and returns an empty string when
// the fact cannot be determined on the current host.
package sysinfo

import (
	"context"

	"gofetch/fetch"
)

// Options tunes the built-in providers.
type Options struct {
	// Gap is the number of spaces between the distro logo and the text beside it
	Gap int
}

// Builtins returns the provider of every built-in field.
//
// Parameters:
//   - opts: Rendering options for providers that draw (the distro logo)
//
// Returns:
//   - A map holding exactly one provider per fetch.FieldKind
func Builtins(opts Options) map[fetch.FieldKind]fetch.ProviderFunc {
	return map[fetch.FieldKind]fetch.ProviderFunc{
		fetch.FieldDistro: func(ctx context.Context) string { return DistroLogo(ctx, opts.Gap) },
		fetch.FieldOS:     OS,
		fetch.FieldKernel: Kernel,
		fetch.FieldUptime: Uptime,
		fetch.FieldHost:   Host,
		fetch.FieldShell:  Shell,
		fetch.FieldCPU:    CPU,
		fetch.FieldMemory: Memory,
	}
}
