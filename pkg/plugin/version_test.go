package plugin

import (
	"strings"
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		version     string
		expectError bool
		want        Version
	}{
		{"0.1.0", false, Version{0, 1, 0}},
		{"2.5.3", false, Version{2, 5, 3}},
		{"10.99.42", false, Version{10, 99, 42}},
		{"invalid", true, Version{}},
		{"1", true, Version{}},
		{"1.2", true, Version{}},
		{"1.-2.0", true, Version{}},
	}

	for _, tt := range tests {
		v, err := ParseVersion(tt.version)
		if tt.expectError {
			if err == nil {
				t.Errorf("ParseVersion(%q) expected error but got none", tt.version)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseVersion(%q) unexpected error: %v", tt.version, err)
		}
		if v != tt.want {
			t.Errorf("ParseVersion(%q) = %s, want %s", tt.version, v, tt.want)
		}
	}
}

func TestCheckCompatible(t *testing.T) {
	tests := []struct {
		pluginVersion string
		errorContains string
	}{
		// Same version.
		{"0.1.0", ""},
		// Same major, higher minor or patch.
		{"0.1.7", ""},
		{"0.4.0", ""},
		// Older than the minimum.
		{"0.0.9", "too old"},
		// Different major version.
		{"1.0.0", "incompatible major version"},
		// Garbage.
		{"v1", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.pluginVersion, func(t *testing.T) {
			err := CheckCompatible(tt.pluginVersion)
			if tt.errorContains == "" {
				if err != nil {
					t.Errorf("CheckCompatible(%q) unexpected error: %v", tt.pluginVersion, err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.errorContains) {
				t.Errorf("CheckCompatible(%q) error = %v, want error containing %q", tt.pluginVersion, err, tt.errorContains)
			}
		})
	}
}
