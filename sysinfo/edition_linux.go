package sysinfo

import "os"

func edition() string {
	for _, path := range osReleasePaths {
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		fields := parseOSRelease(f)
		_ = f.Close()
		return releaseEdition(fields)
	}
	return ""
}
