package linelog

import (
	"path/filepath"
	"runtime"
	"strings"
)

// anonymousCaller is printed when no frame outside this package is found.
const anonymousCaller = "anonymous"

// pkgPrefix is the qualified name prefix of functions in this package,
// e.g. "github.com/bjaus/linelog.".
var pkgPrefix = func() string {
	pc, _, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return ""
	}
	name := fn.Name()
	lastSlash := strings.LastIndex(name, "/")
	dot := strings.Index(name[lastSlash+1:], ".")
	if dot < 0 {
		return ""
	}
	return name[:lastSlash+1+dot+1]
}()

// callerFile returns the base name of the source file of the first stack
// frame outside this package.
func callerFile() string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.File != "" && !inPackage(frame.Function) {
			return filepath.Base(frame.File)
		}
		if !more {
			return anonymousCaller
		}
	}
}

func inPackage(function string) bool {
	return pkgPrefix != "" && strings.HasPrefix(function, pkgPrefix)
}
