// Package hdf5 binds the HDF5 C library to Go without cgo in the default
// build. The library image is located and opened at run time and every
// symbol is resolved by name; building with -tags h5static instead links
// libhdf5 at build time and resolves symbols from the process's own
// image. Callers see the same typed entry points either way.
//
// Call Initialize (or any lazy accessor) before using the entry points,
// and route every call into the library through Sync: HDF5 builds are
// commonly not threadsafe, and corrupting the library's global state is
// worse than losing parallelism.
package hdf5

import (
	"sync"
	"unsafe"
)

// Initialize locates, opens and initializes the HDF5 library. path may
// be empty, in which case the locator searches HDF5_LIB_PATH, HDF5_DIR,
// an optional hdf5.toml and the platform's conventional directories (the
// static build strategy ignores path entirely). The first call performs
// the work; subsequent calls return the recorded outcome and never
// re-initialize, even with a different path. After a failure, all calls
// report an error matching ErrPoisoned.
func Initialize(path string) error {
	return lib.initialize(path)
}

// IsInitialized reports whether the library has been successfully
// initialized.
func IsInitialized() bool {
	return lib.initialized()
}

// LibraryPath returns the resolved path of the loaded image, or "" when
// the library is not initialized. The static strategy reports
// "<static>".
func LibraryPath() string {
	return lib.libraryPath()
}

// Version returns the version triplet the loaded library reports,
// initializing the library first if needed.
func Version() (VersionInfo, error) {
	if err := lib.ensure(); err != nil {
		return VersionInfo{}, err
	}
	return lib.versionInfo(), nil
}

// Capability reports whether the loaded library's version is expected to
// provide the named capability (for example "swmr" or "chunk-query").
// False for unknown names and whenever the library cannot be
// initialized.
func Capability(name string) bool {
	if err := lib.ensure(); err != nil {
		return false
	}
	return lib.versionInfo().supports(name)
}

// Available reports whether the named function symbol was resolved in
// the loaded image. Required symbols are always available once
// Initialize succeeded; optional symbols depend on the library version.
// Callers must check Available before calling an optional entry point,
// since absent ones are nil.
func Available(name string) bool {
	if err := lib.ensure(); err != nil {
		return false
	}
	return lib.symbolAvailable(name)
}

// Threadsafe reports whether the loaded library was built with
// thread-safety enabled. Diagnostic only: Sync serializes calls
// unconditionally.
func Threadsafe() (bool, error) {
	ts, err := Sync(func() Htri {
		if H5is_library_threadsafe == nil {
			return 0
		}
		var flag Hbool
		if status := H5is_library_threadsafe(uintptr(unsafe.Pointer(&flag))); status < 0 {
			return 0
		}
		if flag != 0 {
			return 1
		}
		return 0
	})
	if err != nil {
		return false, err
	}
	return ts > 0, nil
}

// globalLock serializes calls into the library. Not reentrant: a Sync
// callback must not call Sync.
var globalLock sync.Mutex

// Sync ensures the library is initialized and runs f while holding the
// process-wide library lock. All calls into HDF5 entry points must go
// through it.
func Sync[T any](f func() T) (T, error) {
	var zero T
	if err := lib.ensure(); err != nil {
		return zero, err
	}
	globalLock.Lock()
	defer globalLock.Unlock()
	return f(), nil
}
