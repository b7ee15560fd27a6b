package daylog

import (
	"runtime"
	"strconv"
	"strings"
)

// callerTag captures the call-site location at the given stack depth and
// returns it as "pkg/file.go:line". Each wrapping layer adds one to skip,
// so the tag always points at the caller of the outermost level method.
func callerTag(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown"
	}
	return shortFile(file) + ":" + strconv.Itoa(line)
}

// shortFile trims an absolute source path down to its last two elements,
// enough to disambiguate files without leaking build-machine paths.
func shortFile(file string) string {
	idx := strings.LastIndexByte(file, '/')
	if idx < 0 {
		return file
	}
	if idx2 := strings.LastIndexByte(file[:idx], '/'); idx2 >= 0 {
		return file[idx2+1:]
	}
	return file
}
