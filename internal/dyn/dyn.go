// Package dyn loads the SDL3 shared library and resolves its symbols via purego.
// The library is opened once per process; every binding file in the root package
// registers its function pointers against the handle returned by Load.
package dyn

import (
	"fmt"
	"os"
	"sync"

	"github.com/ebitengine/purego"
	"github.com/sirupsen/logrus"
)

var (
	libHandle uintptr
	libOnce   sync.Once
	libErr    error
)

var diag logrus.FieldLogger = logrus.StandardLogger()

// SetLogger replaces the loader's diagnostic sink.
func SetLogger(l logrus.FieldLogger) {
	if l != nil {
		diag = l
	}
}

// Load opens the SDL3 shared library and returns its handle. Subsequent calls
// return the handle (or error) from the first attempt.
func Load() (uintptr, error) {
	libOnce.Do(func() {
		path := LibraryPath()
		diag.WithField("path", path).Debug("dyn: loading SDL3 library")

		libHandle, libErr = openLibrary(path)
		if libErr != nil {
			libErr = fmt.Errorf("dyn: failed to load SDL3 library from %s: %w", path, libErr)
			diag.WithField("path", path).WithError(libErr).Error("dyn: library load failed")
		}
	})
	return libHandle, libErr
}

// Register binds the foreign symbol name into the function pointer fptr.
// Panics if the symbol is missing, matching purego's contract; a missing symbol
// means the installed library predates the bound ABI.
func Register(fptr any, name string) {
	purego.RegisterLibFunc(fptr, libHandle, name)
}

// LibraryPath resolves the library location: explicit env override first, then
// the optional TOML config file, then the platform default soname.
func LibraryPath() string {
	if p := os.Getenv("SDL3_LIBRARY"); p != "" {
		return p
	}
	if p := configLibraryPath(); p != "" {
		return p
	}
	return defaultLibraryPath()
}
