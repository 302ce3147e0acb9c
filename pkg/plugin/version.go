package plugin

import (
	"fmt"
	"strconv"
	"strings"
)

// Version represents a parsed protocol version.
type Version struct {
	Major int
	Minor int
	Patch int
}

// ParseVersion parses a version string in "MAJOR.MINOR.PATCH" format.
func ParseVersion(version string) (Version, error) {
	parts := strings.Split(version, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("invalid version format: %s (expected MAJOR.MINOR.PATCH)", version)
	}

	var nums [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("invalid version component %q in %s", part, version)
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// String returns the string representation of the version.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// less reports whether v is older than o.
func (v Version) less(o Version) bool {
	if v.Major != o.Major {
		return v.Major < o.Major
	}
	if v.Minor != o.Minor {
		return v.Minor < o.Minor
	}
	return v.Patch < o.Patch
}

// CheckCompatible returns an error if a plugin speaking protocol version
// pluginVersion cannot be used by this version of gplgen.
// Rules:
// - Major version must match exactly (breaking changes).
// - The version must not be older than MinCompatibleVersion.
// - Higher minor and patch versions are accepted.
func CheckCompatible(pluginVersion string) error {
	v, err := ParseVersion(pluginVersion)
	if err != nil {
		return fmt.Errorf("failed to parse plugin version: %w", err)
	}

	current, err := ParseVersion(ProtocolVersion)
	if err != nil {
		return fmt.Errorf("failed to parse current protocol version: %w", err)
	}
	if v.Major != current.Major {
		return fmt.Errorf("incompatible major version: plugin is %s, gplgen requires %d.x.x", v, current.Major)
	}

	minimum, err := ParseVersion(MinCompatibleVersion)
	if err != nil {
		return fmt.Errorf("failed to parse minimum compatible version: %w", err)
	}
	if v.less(minimum) {
		return fmt.Errorf("plugin version %s is too old, minimum required is %s", v, MinCompatibleVersion)
	}

	return nil
}
