package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/blang/semver"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/buildver/pkg/domain/types"
)

// IncrementType selects which semantic version component to bump
type IncrementType string

const (
	IncrementMajor IncrementType = "major"
	IncrementMinor IncrementType = "minor"
	IncrementPatch IncrementType = "patch"
)

// labelIncrements lists release labels in priority order; the first one
// present wins.
var labelIncrements = []struct {
	label     string
	increment IncrementType
}{
	{"needs-release/major", IncrementMajor},
	{"needs-release/minor", IncrementMinor},
	{"needs-release/patch", IncrementPatch},
}

// IncrementForLabels derives the increment type from pull request labels.
// Without any release label the increment defaults to minor.
func IncrementForLabels(labels []string) IncrementType {
	present := make(map[string]bool, len(labels))
	for _, label := range labels {
		present[label] = true
	}
	for _, candidate := range labelIncrements {
		if present[candidate.label] {
			return candidate.increment
		}
	}
	return IncrementMinor
}

// Increment returns a copy of v bumped by the given type. Lower components
// reset to zero and pre-release or build metadata is discarded.
func Increment(v semver.Version, t IncrementType) semver.Version {
	switch t {
	case IncrementMajor:
		return semver.Version{Major: v.Major + 1}
	case IncrementPatch:
		return semver.Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
	default:
		return semver.Version{Major: v.Major, Minor: v.Minor + 1}
	}
}

// ParseVersion parses a version string, tolerating a leading "v"
func ParseVersion(s string) (semver.Version, error) {
	version, err := semver.Parse(strings.TrimPrefix(s, "v"))
	if err != nil {
		return semver.Version{}, goerr.Wrap(types.ErrInvalidVersion, fmt.Sprintf("failed to parse version %q", s), goerr.V("version", s))
	}
	return version, nil
}

// ShortSHA returns the 7 character commit hash abbreviation used as build
// metadata
func ShortSHA(sha string) string {
	if len(sha) < 7 {
		return sha
	}
	return sha[:7]
}

// VersionComponents is the resolved raw material for the final version string
type VersionComponents struct {
	// Version is the base semantic version for the build
	Version semver.Version

	// Timestamp is the commit timestamp; unused when IsExact is set
	Timestamp time.Time

	// ShortHash is appended as build metadata; empty for default branch builds
	ShortHash string

	// IsExact marks a tag build whose version is emitted verbatim
	IsExact bool
}
