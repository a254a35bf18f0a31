//go:build windows

package dyn

import "golang.org/x/sys/windows"

// openLibrary loads a DLL on Windows. The returned module handle is accepted
// by purego.RegisterLibFunc the same way a dlopen handle is on Unix.
func openLibrary(path string) (uintptr, error) {
	h, err := windows.LoadLibrary(path)
	return uintptr(h), err
}

func defaultLibraryPath() string {
	return "SDL3.dll"
}
