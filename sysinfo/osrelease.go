package sysinfo

import (
	"bufio"
	"io"
	"strings"
)

// osReleasePaths are the locations of os-release(5), in lookup order.
var osReleasePaths = []string{"/etc/os-release", "/usr/lib/os-release"}

// parseOSRelease reads KEY=value pairs in os-release(5) syntax.
// Comments and malformed lines are ignored; values may be quoted.
func parseOSRelease(r io.Reader) map[string]string {
	fields := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		fields[key] = strings.Trim(value, `"'`)
	}
	return fields
}

// releaseEdition picks the edition label from os-release fields: the
// variant when the distro declares one (Fedora Workstation, Server, ...),
// otherwise the release code name.
func releaseEdition(fields map[string]string) string {
	if v := fields["VARIANT"]; v != "" {
		return v
	}
	if v := fields["VERSION_CODENAME"]; v != "" {
		return v
	}
	return ""
}
