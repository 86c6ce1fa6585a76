//go:build h5static

package hdf5

/*
#cgo LDFLAGS: -lhdf5

extern int H5open(void);

// Anchor so the linker keeps the libhdf5 dependency.
void *hdf5_static_anchor(void) { return (void *)H5open; }
*/
import "C"

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/agiangrant/hdf5/internal/dl"
)

// staticPath is what LibraryPath reports under the static build
// strategy, where no file is opened at run time.
const staticPath = "<static>"

// openImage implements the static-link build strategy: libhdf5 is linked
// at build time, so its symbols already live in the process image and
// resolve from the loader's default scope. Any explicit path is ignored;
// opening cannot fail at the locate stage.
func openImage(_ Config, path string) (image, error) {
	if path != "" {
		logrus.WithField("path", path).Debug("hdf5: static build strategy ignores explicit library path")
	}

	handle, err := dl.Self()
	if err != nil {
		return image{}, &LoadError{Path: staticPath, Err: fmt.Errorf("%w: %v", ErrIncompatible, err)}
	}
	return image{
		path: staticPath,
		lookup: func(name string) (uintptr, error) {
			return dl.Lookup(handle, name)
		},
	}, nil
}
