//go:build darwin || linux || freebsd

// Package dl wraps the platform's dynamic-loader primitives behind a
// uniform Open/Self/Lookup/Register surface. It performs no caching and
// no policy; both are layered above.
package dl

import "github.com/ebitengine/purego"

// Open maps the shared-library image at path into the process. The image
// stays mapped until process exit; there is deliberately no Close, since
// resolved addresses would dangle.
func Open(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

// Self returns a pseudo-handle resolving symbols from the images already
// linked into the process, used by the static-link build strategy.
func Self() (uintptr, error) {
	return purego.RTLD_DEFAULT, nil
}

// Lookup resolves a symbol name to its address in the given image.
func Lookup(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

// Register binds a resolved function address to a typed Go function
// pointer. fnptr must be a pointer to a func variable whose signature
// matches the C function's calling convention.
func Register(fnptr any, addr uintptr) {
	purego.RegisterFunc(fnptr, addr)
}
