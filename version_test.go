package hdf5

import "testing"

func TestVersionString(t *testing.T) {
	v := VersionInfo{Major: 1, Minor: 12, Patch: 3}
	if got := v.String(); got != "1.12.3" {
		t.Errorf("String() = %q, want %q", got, "1.12.3")
	}
}

func TestVersionAtLeast(t *testing.T) {
	v := VersionInfo{Major: 1, Minor: 10, Patch: 5}
	tests := []struct {
		major, minor, patch uint32
		want                bool
	}{
		{1, 8, 0, true},
		{1, 10, 5, true},
		{1, 10, 6, false},
		{1, 12, 0, false},
		{2, 0, 0, false},
	}
	for _, tt := range tests {
		if got := v.AtLeast(tt.major, tt.minor, tt.patch); got != tt.want {
			t.Errorf("AtLeast(%d, %d, %d) = %v, want %v", tt.major, tt.minor, tt.patch, got, tt.want)
		}
	}
}

func TestVersionSupports(t *testing.T) {
	tests := []struct {
		name    string
		version VersionInfo
		cap     string
		want    bool
	}{
		{"swmr too old", VersionInfo{1, 8, 21}, "swmr", false},
		{"swmr exact", VersionInfo{1, 10, 0}, "swmr", true},
		{"chunk query just below", VersionInfo{1, 10, 4}, "chunk-query", false},
		{"chunk query exact", VersionInfo{1, 10, 5}, "chunk-query", true},
		{"object info v3", VersionInfo{1, 12, 0}, "object-info-v3", true},
		{"reference v2 too old", VersionInfo{1, 10, 7}, "reference-v2", false},
		{"compiler conversion", VersionInfo{1, 8, 0}, "compiler-conversion", true},
		{"unknown capability", VersionInfo{1, 14, 0}, "no-such-feature", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.version.supports(tt.cap); got != tt.want {
				t.Errorf("%v.supports(%q) = %v, want %v", tt.version, tt.cap, got, tt.want)
			}
		})
	}
}
