package hdf5

import (
	"errors"
	"fmt"
)

// Sentinel errors. Wrapped errors returned by Initialize and the lazy
// accessors always match one of these with errors.Is.
var (
	// ErrNotFound reports that no library image exists at the requested
	// path (or at any search candidate when no path was given).
	ErrNotFound = errors.New("hdf5: library not found")

	// ErrIncompatible reports that an image exists but the OS loader
	// refused it (wrong architecture, missing transitive dependency).
	ErrIncompatible = errors.New("hdf5: library image cannot be loaded")

	// ErrMissingSymbol reports a symbol absent from the loaded image.
	// Fatal for required symbols, recorded as unavailable for optional
	// ones.
	ErrMissingSymbol = errors.New("hdf5: missing symbol")

	// ErrInitFailed reports that H5open itself failed.
	ErrInitFailed = errors.New("hdf5: library initialization failed")

	// ErrPoisoned reports that a previous Initialize failed; the binding
	// refuses all further operation for the life of the process.
	ErrPoisoned = errors.New("hdf5: initialization previously failed")

	// ErrVersionUnqueryable reports that the library version could not
	// be determined. Treated as a required-symbol failure.
	ErrVersionUnqueryable = errors.New("hdf5: library version unqueryable")
)

// LoadError describes a failure to open a library image.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Path)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SymbolError describes a failed resolution of a named symbol.
type SymbolError struct {
	Name string
	Err  error
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Name)
}

func (e *SymbolError) Unwrap() error { return e.Err }

// InitError describes a failed or poisoned initialization. Stage names
// the step that failed first: "load", "resolve", "boot" or "version".
type InitError struct {
	Stage string
	Err   error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("hdf5: initialize failed at %s stage: %v", e.Stage, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }
