package hdf5

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLibraryName(t *testing.T) {
	name := libraryName()
	if name == "" {
		t.Fatal("libraryName() is empty")
	}
	if !strings.Contains(name, "hdf5") {
		t.Errorf("libraryName() = %q, expected it to name hdf5", name)
	}
}

func TestCandidatePathsOrder(t *testing.T) {
	t.Setenv(envLibPath, "/env/explicit/libhdf5.x")
	t.Setenv(envPrefix, "/env/prefix")
	cfg := Config{
		LibraryPath: "/cfg/libhdf5.x",
		SearchPaths: []string{"/cfg/dir"},
	}

	got := candidatePaths(cfg)
	want := []string{
		"/env/explicit/libhdf5.x",
		filepath.Join("/env/prefix", "lib", libraryName()),
		"/cfg/libhdf5.x",
		filepath.Join("/cfg/dir", libraryName()),
	}
	if len(got) < len(want) {
		t.Fatalf("candidatePaths returned %d entries, want at least %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("candidate[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	// Platform defaults come last.
	for _, dir := range defaultSearchDirs() {
		found := false
		expected := filepath.Join(dir, libraryName())
		for _, c := range got[len(want):] {
			if c == expected {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("platform default %q missing from candidates", expected)
		}
	}
}

func TestLocateFindsConfiguredDirectory(t *testing.T) {
	t.Setenv(envLibPath, "")
	t.Setenv(envPrefix, "")
	dir := t.TempDir()
	fake := filepath.Join(dir, libraryName())
	if err := os.WriteFile(fake, []byte{0}, 0o644); err != nil {
		t.Fatal(err)
	}

	path, found := locate(Config{SearchPaths: []string{dir}})
	if !found {
		t.Fatalf("locate did not find %q", fake)
	}
	if path != fake {
		t.Errorf("locate = %q, want %q", path, fake)
	}
}

func TestLocateEnvOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	envLib := filepath.Join(dir, "env-"+libraryName())
	cfgLib := filepath.Join(dir, libraryName())
	for _, p := range []string{envLib, cfgLib} {
		if err := os.WriteFile(p, []byte{0}, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	t.Setenv(envLibPath, envLib)
	t.Setenv(envPrefix, "")

	path, found := locate(Config{LibraryPath: cfgLib})
	if !found || path != envLib {
		t.Errorf("locate = (%q, %v), want env path %q", path, found, envLib)
	}
}
