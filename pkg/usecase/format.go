package usecase

import (
	"github.com/blang/semver"

	"github.com/m-mizutani/buildver/pkg/domain/model"
)

// Format renders the final version string.
//
// Exact tag builds keep the parsed version verbatim. Everything else gets an
// "alpha" pre-release carrying the commit timestamp as whole seconds, plus
// the short commit hash as build metadata for non-default-branch builds.
// Default branch builds omit the hash so that consumers treating build
// metadata as a "local version" suffix still accept the string.
func Format(components *model.VersionComponents) string {
	if components.IsExact {
		return components.Version.String()
	}

	// Zero-value or pre-epoch timestamps must not wrap into a huge number
	var seconds uint64
	if unix := components.Timestamp.Unix(); unix > 0 {
		seconds = uint64(unix)
	}

	version := semver.Version{
		Major: components.Version.Major,
		Minor: components.Version.Minor,
		Patch: components.Version.Patch,
		Pre: []semver.PRVersion{
			{VersionStr: "alpha"},
			{VersionNum: seconds, IsNum: true},
		},
	}
	if components.ShortHash != "" {
		version.Build = []string{components.ShortHash}
	}
	return version.String()
}
