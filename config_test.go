package hdf5

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

// chdir replaces t.Chdir, which needs a newer Go toolchain than 1.21.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func restoreLogLevel(t *testing.T) {
	t.Helper()
	level := logrus.GetLevel()
	t.Cleanup(func() { logrus.SetLevel(level) })
}

func TestLoadConfigMissingFile(t *testing.T) {
	chdir(t, t.TempDir())
	cfg := loadConfig()
	if cfg.LibraryPath != "" || len(cfg.SearchPaths) != 0 || cfg.LogLevel != "" {
		t.Errorf("loadConfig with no file = %+v, want zero Config", cfg)
	}
}

func TestLoadConfigParsesFile(t *testing.T) {
	restoreLogLevel(t)
	dir := t.TempDir()
	chdir(t, dir)
	doc := `
library_path = "/opt/hdf5/lib/libhdf5.so"
search_paths = ["/opt/hdf5/lib", "/usr/local/hdf5/lib"]
log_level = "debug"
`
	if err := os.WriteFile(filepath.Join(dir, "hdf5.toml"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := loadConfig()
	if cfg.LibraryPath != "/opt/hdf5/lib/libhdf5.so" {
		t.Errorf("LibraryPath = %q", cfg.LibraryPath)
	}
	if len(cfg.SearchPaths) != 2 || cfg.SearchPaths[0] != "/opt/hdf5/lib" {
		t.Errorf("SearchPaths = %v", cfg.SearchPaths)
	}
	if logrus.GetLevel() != logrus.DebugLevel {
		t.Errorf("log level = %v, want debug", logrus.GetLevel())
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	restoreLogLevel(t)
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, "hdf5.toml"), []byte("library_path = ["), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := loadConfig()
	if cfg.LibraryPath != "" || len(cfg.SearchPaths) != 0 || cfg.LogLevel != "" {
		t.Errorf("loadConfig with malformed file = %+v, want zero Config", cfg)
	}
}

func TestLoadConfigIgnoresBadLogLevel(t *testing.T) {
	restoreLogLevel(t)
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, "hdf5.toml"), []byte(`log_level = "loud"`), 0o644); err != nil {
		t.Fatal(err)
	}

	before := logrus.GetLevel()
	loadConfig()
	if logrus.GetLevel() != before {
		t.Errorf("log level changed to %v on an unknown name", logrus.GetLevel())
	}
}
