package hdf5

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/sirupsen/logrus"

	"github.com/agiangrant/hdf5/internal/dl"
)

// image is an opened shared-library view: the resolved path and a symbol
// lookup bound to its handle. Produced by the build strategy's openImage
// (runtime_load.go or static.go); everything past this seam is
// strategy-independent.
type image struct {
	path   string
	lookup func(name string) (uintptr, error)
}

// registerFunc binds a resolved address to a typed entry-point variable.
// Indirect so tests can observe registrations without touching purego.
var registerFunc = dl.Register

// libraryState is the process-wide state behind the binding: the guard,
// the loaded image, the symbol cache, the detected version and the
// optional-symbol availability record. It transitions Uninitialized →
// Initialized exactly once; a failed transition poisons it for the life
// of the process.
type libraryState struct {
	open func(cfg Config, path string) (image, error)
	boot func(rt *libraryState) error

	mu        sync.Mutex
	done      bool
	err       error
	path      string
	cache     *symbolCache
	version   VersionInfo
	available map[string]bool
}

var lib = &libraryState{open: openImage, boot: defaultBoot}

// initialize runs the one-shot initialization under the guard. The first
// caller performs the work while concurrent callers block; later calls
// return immediately with the recorded outcome. After a failure every
// call reports ErrPoisoned wrapping the original cause.
func (rt *libraryState) initialize(path string) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if rt.done {
		if rt.err != nil {
			return fmt.Errorf("%w (cause: %v)", ErrPoisoned, rt.err)
		}
		return nil
	}
	rt.err = rt.doInit(path)
	rt.done = true
	return rt.err
}

// ensure triggers default initialization on lazy first use.
func (rt *libraryState) ensure() error {
	return rt.initialize("")
}

// doInit is the full initialization sequence: load, resolve required,
// boot the library, query its version, then record optional symbols.
// Caller holds rt.mu.
func (rt *libraryState) doInit(path string) error {
	cfg := loadConfig()

	img, err := rt.open(cfg, path)
	if err != nil {
		return &InitError{Stage: "load", Err: err}
	}
	rt.path = img.path
	rt.cache = newSymbolCache(img.lookup)
	rt.available = make(map[string]bool)
	logrus.WithField("path", img.path).Debug("hdf5: library image opened")

	for i := range funcSymbols {
		s := &funcSymbols[i]
		if s.optional {
			continue
		}
		addr, err := rt.cache.resolve(s.name)
		if err != nil {
			return &InitError{Stage: "resolve", Err: err}
		}
		registerFunc(s.fn, addr)
	}

	if err := rt.boot(rt); err != nil {
		return err
	}

	for i := range funcSymbols {
		s := &funcSymbols[i]
		if !s.optional {
			continue
		}
		addr, err := rt.cache.resolve(s.name)
		if err != nil {
			rt.available[s.name] = false
			if rt.version.supports(s.capability) {
				logrus.WithFields(logrus.Fields{
					"symbol":  s.name,
					"version": rt.version,
				}).Warn("hdf5: symbol expected at this library version is missing")
			} else {
				logrus.WithField("symbol", s.name).Debug("hdf5: optional symbol absent")
			}
			continue
		}
		registerFunc(s.fn, addr)
		rt.available[s.name] = true
	}

	logrus.WithFields(logrus.Fields{
		"path":    rt.path,
		"version": rt.version,
	}).Debug("hdf5: library initialized")
	return nil
}

// defaultBoot runs the library's own one-time initialization and queries
// its version. H5dont_atexit comes first so the library does not
// invalidate identifiers still live on other threads during process
// exit.
func defaultBoot(rt *libraryState) error {
	H5dont_atexit()
	if status := H5open(); status < 0 {
		return &InitError{Stage: "boot", Err: ErrInitFailed}
	}

	var major, minor, patch uint32
	status := H5get_libversion(
		uintptr(unsafe.Pointer(&major)),
		uintptr(unsafe.Pointer(&minor)),
		uintptr(unsafe.Pointer(&patch)),
	)
	runtime.KeepAlive(&major)
	if status < 0 {
		return &InitError{Stage: "version", Err: ErrVersionUnqueryable}
	}
	rt.version = VersionInfo{Major: major, Minor: minor, Patch: patch}
	return nil
}

// resolve looks a symbol up through the cache. Callers must have run
// ensure first; a nil cache means initialization failed.
func (rt *libraryState) resolve(name string) (uintptr, error) {
	rt.mu.Lock()
	c := rt.cache
	rt.mu.Unlock()
	if c == nil {
		return 0, ErrPoisoned
	}
	return c.resolve(name)
}

func (rt *libraryState) versionInfo() VersionInfo {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.version
}

func (rt *libraryState) libraryPath() string {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.path
}

func (rt *libraryState) initialized() bool {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.done && rt.err == nil
}

func (rt *libraryState) symbolAvailable(name string) bool {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if !rt.done || rt.err != nil {
		return false
	}
	if avail, ok := rt.available[name]; ok {
		return avail
	}
	// Required symbols are always present once initialization succeeded.
	for i := range funcSymbols {
		if funcSymbols[i].name == name {
			return !funcSymbols[i].optional
		}
	}
	return false
}
