//go:build windows

package dl

import (
	"github.com/ebitengine/purego"
	"golang.org/x/sys/windows"
)

// Open maps the DLL at path into the process.
func Open(path string) (uintptr, error) {
	h, err := windows.LoadLibrary(path)
	if err != nil {
		return 0, err
	}
	return uintptr(h), nil
}

// Self returns a handle to the executable's own module. With the static
// build strategy the HDF5 import table entries are already mapped, so
// symbols resolve from here.
func Self() (uintptr, error) {
	h, err := windows.GetModuleHandle(nil)
	if err != nil {
		return 0, err
	}
	return uintptr(h), nil
}

// Lookup resolves a symbol name to its address in the given module.
func Lookup(handle uintptr, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(handle), name)
}

// Register binds a resolved function address to a typed Go function
// pointer.
func Register(fnptr any, addr uintptr) {
	purego.RegisterFunc(fnptr, addr)
}
