package hdf5

import (
	"os"
	"path/filepath"
	"runtime"
)

// Environment variables consulted by the locator, in order.
const (
	// envLibPath points at the shared-library image itself.
	envLibPath = "HDF5_LIB_PATH"
	// envPrefix points at an installation prefix; the image is expected
	// under its lib/ directory.
	envPrefix = "HDF5_DIR"
)

// libraryName returns the platform spelling of the HDF5 image name.
func libraryName() string {
	switch runtime.GOOS {
	case "darwin", "ios":
		return "libhdf5.dylib"
	case "windows":
		return "hdf5.dll"
	default:
		return "libhdf5.so"
	}
}

// defaultSearchDirs are the platform's conventional library directories.
func defaultSearchDirs() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"/opt/homebrew/lib", "/usr/local/lib", "/usr/lib"}
	case "windows":
		return nil // rely on the loader's DLL search order
	default:
		return []string{
			"/usr/local/lib",
			"/usr/lib",
			"/usr/lib/x86_64-linux-gnu",
			"/usr/lib/aarch64-linux-gnu",
		}
	}
}

// candidatePaths builds the ordered list of image paths to probe when no
// explicit path was supplied: environment first, then config, then the
// platform defaults.
func candidatePaths(cfg Config) []string {
	name := libraryName()
	var candidates []string

	if p := os.Getenv(envLibPath); p != "" {
		candidates = append(candidates, p)
	}
	if prefix := os.Getenv(envPrefix); prefix != "" {
		candidates = append(candidates, filepath.Join(prefix, "lib", name))
	}
	if cfg.LibraryPath != "" {
		candidates = append(candidates, cfg.LibraryPath)
	}
	for _, dir := range cfg.SearchPaths {
		candidates = append(candidates, filepath.Join(dir, name))
	}
	for _, dir := range defaultSearchDirs() {
		candidates = append(candidates, filepath.Join(dir, name))
	}
	return candidates
}

// locate picks the first candidate that exists on disk. When nothing is
// found it falls back to the bare library name so the OS loader can run
// its own search; found reports whether a file was actually seen.
func locate(cfg Config) (path string, found bool) {
	for _, candidate := range candidatePaths(cfg) {
		if _, err := os.Stat(candidate); err == nil {
			if abs, err := filepath.Abs(candidate); err == nil {
				return abs, true
			}
			return candidate, true
		}
	}
	return libraryName(), false
}
