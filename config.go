package hdf5

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
)

// Config tunes library location and logging. It is read once, before the
// first open, from an optional hdf5.toml in the working directory or next
// to the executable. Environment variables and explicit Initialize
// arguments take precedence over the file.
type Config struct {
	// LibraryPath is an explicit path to the shared-library image.
	LibraryPath string `toml:"library_path"`
	// SearchPaths are extra directories probed before the platform
	// defaults.
	SearchPaths []string `toml:"search_paths"`
	// LogLevel sets the logrus level for this package ("debug", "info",
	// "warn", "error"). Empty leaves the global level untouched.
	LogLevel string `toml:"log_level"`
}

// loadConfig reads the first hdf5.toml found. A missing file yields the
// zero Config; a malformed file is reported at warn level and otherwise
// ignored, since the locator can still fall back to defaults.
func loadConfig() Config {
	var cfg Config
	for _, path := range configCandidates() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			logrus.WithField("path", path).Warnf("hdf5: ignoring malformed config: %v", err)
			return Config{}
		}
		logrus.WithField("path", path).Debug("hdf5: loaded config")
		break
	}
	if cfg.LogLevel != "" {
		if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
			logrus.SetLevel(level)
		}
	}
	return cfg
}

func configCandidates() []string {
	candidates := []string{"hdf5.toml"}
	if execPath, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(execPath), "hdf5.toml"))
	}
	return candidates
}
