//go:build darwin || linux || freebsd

package dyn

import (
	"runtime"

	"github.com/ebitengine/purego"
)

// openLibrary loads a dynamic library on Unix-like systems.
func openLibrary(path string) (uintptr, error) {
	const rtldLazy = 0x1
	return purego.Dlopen(path, rtldLazy)
}

func defaultLibraryPath() string {
	switch runtime.GOOS {
	case "darwin":
		return "libSDL3.dylib"
	default:
		return "libSDL3.so.0"
	}
}
