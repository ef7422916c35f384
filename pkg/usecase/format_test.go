package usecase_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/blang/semver"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/buildver/pkg/domain/model"
	"github.com/m-mizutani/buildver/pkg/usecase"
)

func TestFormat(t *testing.T) {
	timestamp := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)

	t.Run("Exact version is rendered verbatim", func(t *testing.T) {
		version := semver.MustParse("2.0.0-rc.1+build.5")
		got := usecase.Format(&model.VersionComponents{
			Version: version,
			IsExact: true,
		})
		gt.Value(t, got).Equal("2.0.0-rc.1+build.5")
	})

	t.Run("Pre-release carries the commit timestamp", func(t *testing.T) {
		got := usecase.Format(&model.VersionComponents{
			Version:   semver.Version{Major: 1, Minor: 3},
			Timestamp: timestamp,
		})
		gt.Value(t, got).Equal(fmt.Sprintf("1.3.0-alpha.%d", timestamp.Unix()))
	})

	t.Run("Short hash becomes build metadata", func(t *testing.T) {
		got := usecase.Format(&model.VersionComponents{
			Version:   semver.Version{Major: 1, Minor: 3},
			Timestamp: timestamp,
			ShortHash: "0123456",
		})
		gt.Value(t, got).Equal(fmt.Sprintf("1.3.0-alpha.%d+0123456", timestamp.Unix()))
	})

	t.Run("Zero timestamp does not wrap", func(t *testing.T) {
		got := usecase.Format(&model.VersionComponents{
			Version: semver.Version{Major: 1, Minor: 3},
		})
		gt.Value(t, got).Equal("1.3.0-alpha.0")
	})

	t.Run("Pre-epoch timestamp does not wrap", func(t *testing.T) {
		got := usecase.Format(&model.VersionComponents{
			Version:   semver.Version{Major: 1, Minor: 3},
			Timestamp: time.Date(1969, 12, 31, 23, 59, 0, 0, time.UTC),
		})
		gt.Value(t, got).Equal("1.3.0-alpha.0")
	})

	t.Run("Sub-second precision is truncated", func(t *testing.T) {
		precise := timestamp.Add(500 * time.Millisecond)
		got := usecase.Format(&model.VersionComponents{
			Version:   semver.Version{Major: 0, Minor: 1},
			Timestamp: precise,
		})
		gt.Value(t, got).Equal(fmt.Sprintf("0.1.0-alpha.%d", timestamp.Unix()))
	})
}
