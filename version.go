package hdf5

import (
	"fmt"

	"github.com/coreos/go-semver/semver"
)

// VersionInfo is the version triplet reported by the loaded library via
// H5get_libversion. Computed once per process, immutable thereafter.
type VersionInfo struct {
	Major uint32
	Minor uint32
	Patch uint32
}

func (v VersionInfo) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// AtLeast reports whether the detected library version is at least
// major.minor.patch.
func (v VersionInfo) AtLeast(major, minor, patch uint32) bool {
	return !v.semver().LessThan(semver.Version{
		Major: int64(major), Minor: int64(minor), Patch: int64(patch),
	})
}

func (v VersionInfo) semver() semver.Version {
	return semver.Version{Major: int64(v.Major), Minor: int64(v.Minor), Patch: int64(v.Patch)}
}

// capabilities maps a capability name to the minimum library version
// that provides it. Consulted before treating an absent optional symbol
// as unexpected, and exposed through Capability.
var capabilities = map[string]semver.Version{
	"swmr":                {Major: 1, Minor: 10, Patch: 0},
	"chunk-query":         {Major: 1, Minor: 10, Patch: 5},
	"object-info-v3":      {Major: 1, Minor: 12, Patch: 0},
	"iterate-v2":          {Major: 1, Minor: 12, Patch: 0},
	"reference-v2":        {Major: 1, Minor: 12, Patch: 0},
	"compiler-conversion": {Major: 1, Minor: 8, Patch: 0},
	"threadsafe-query":    {Major: 1, Minor: 8, Patch: 16},
	"filter-info":         {Major: 1, Minor: 8, Patch: 0},
}

// supports reports whether a library of version v is expected to provide
// the named capability. Unknown capability names report false.
func (v VersionInfo) supports(name string) bool {
	min, ok := capabilities[name]
	if !ok {
		return false
	}
	return !v.semver().LessThan(min)
}
