//go:build !h5static

package hdf5

import (
	"fmt"
	"os"

	"github.com/agiangrant/hdf5/internal/dl"
)

// openImage implements the runtime-loaded build strategy: locate a
// shared-library image on disk and map it into the process. The image
// stays mapped until process exit.
func openImage(cfg Config, path string) (image, error) {
	found := false
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return image{}, &LoadError{Path: path, Err: ErrNotFound}
		}
		found = true
	} else {
		path, found = locate(cfg)
	}

	handle, err := dl.Open(path)
	if err != nil {
		// A path that existed but would not load is an incompatible
		// image; when nothing was ever found on disk the loader's own
		// search failed too, so the library is simply not there.
		kind := ErrNotFound
		if found {
			kind = ErrIncompatible
		}
		return image{}, &LoadError{Path: path, Err: fmt.Errorf("%w: %v", kind, err)}
	}

	return image{
		path: path,
		lookup: func(name string) (uintptr, error) {
			return dl.Lookup(handle, name)
		},
	}, nil
}
