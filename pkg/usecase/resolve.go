package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/blang/semver"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/buildver/pkg/domain/model"
	"github.com/m-mizutani/buildver/pkg/domain/types"
)

// resolve produces the version components for a classified build
func (uc *versionUseCase) resolve(ctx context.Context, build *model.BuildContext, scenario model.Scenario) (*model.VersionComponents, error) {
	switch scenario {
	case model.ScenarioTag:
		return uc.resolveTag(build)
	case model.ScenarioVersionBranch:
		return uc.resolveVersionBranch(ctx, build)
	case model.ScenarioDefaultBranch:
		return uc.resolveDefaultBranch(ctx, build)
	case model.ScenarioOtherBranch:
		return uc.resolveOtherBranch(ctx, build)
	case model.ScenarioPullRequest:
		return uc.resolvePullRequest(ctx, build)
	case model.ScenarioScheduled:
		return uc.resolveScheduled(ctx, build)
	default:
		return nil, goerr.Wrap(types.ErrUnsupportedEvent, "no resolution for scenario "+scenario.String())
	}
}

// resolveTag treats the pushed tag as the literal proposed version. No lookup
// and no increment happens; an unparsable tag fails the build.
func (uc *versionUseCase) resolveTag(build *model.BuildContext) (*model.VersionComponents, error) {
	tag, _ := build.TagName()
	version, err := model.ParseVersion(tag)
	if err != nil {
		return nil, err
	}

	return &model.VersionComponents{
		Version: version,
		IsExact: true,
	}, nil
}

// resolveVersionBranch pins the version to <major>.0.0 from the branch name.
// The latest release lookup and label logic are bypassed entirely.
func (uc *versionUseCase) resolveVersionBranch(ctx context.Context, build *model.BuildContext) (*model.VersionComponents, error) {
	major, ok := VersionBranch(build)
	if !ok {
		return nil, goerr.New("branch is not a version branch", goerr.V("ref", build.Ref))
	}

	timestamp, _, err := uc.commitInfo(ctx, build)
	if err != nil {
		return nil, err
	}

	return &model.VersionComponents{
		Version:   semver.Version{Major: major},
		Timestamp: timestamp,
		ShortHash: model.ShortSHA(build.SHA),
	}, nil
}

// resolveDefaultBranch increments the latest release by the type derived from
// the originating pull request, when the head commit message references one.
func (uc *versionUseCase) resolveDefaultBranch(ctx context.Context, build *model.BuildContext) (*model.VersionComponents, error) {
	latest, timestamp, message, err := uc.latestAndCommit(ctx, build)
	if err != nil {
		return nil, err
	}

	increment := model.IncrementMinor
	var pinned *semver.Version

	if number, ok := model.PullRequestNumber(message); ok {
		pr, err := uc.client.GetPullRequest(ctx, build.Owner, build.Repo, number)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to fetch originating pull request", goerr.V("number", number))
		}

		if major, ok := versionBranchMajor(pr.BaseRef); ok {
			pinned = &semver.Version{Major: major}
		} else if isUpgradeMajorBranch(pr.HeadRef) {
			increment = model.IncrementMajor
		} else {
			increment = model.IncrementForLabels(pr.Labels)
		}
	}

	version := model.Increment(latest, increment)
	if pinned != nil {
		version = *pinned
	}

	return &model.VersionComponents{
		Version:   version,
		Timestamp: timestamp,
	}, nil
}

// resolveOtherBranch always increments minor. Labels and commit messages are
// not consulted for arbitrary branches.
func (uc *versionUseCase) resolveOtherBranch(ctx context.Context, build *model.BuildContext) (*model.VersionComponents, error) {
	latest, timestamp, _, err := uc.latestAndCommit(ctx, build)
	if err != nil {
		return nil, err
	}

	return &model.VersionComponents{
		Version:   model.Increment(latest, model.IncrementMinor),
		Timestamp: timestamp,
		ShortHash: model.ShortSHA(build.SHA),
	}, nil
}

// resolvePullRequest derives the version from the pull request itself: a
// version branch base pins the major, an upgrade branch head forces a major
// increment, otherwise the labels decide.
func (uc *versionUseCase) resolvePullRequest(ctx context.Context, build *model.BuildContext) (*model.VersionComponents, error) {
	pr := build.PullRequest
	if pr == nil {
		return nil, goerr.New("pull request payload is missing", goerr.V("repo", fmt.Sprintf("%s/%s", build.Owner, build.Repo)))
	}

	commitCh := uc.fetchCommit(ctx, build)

	var version semver.Version
	if major, ok := versionBranchMajor(pr.BaseRef); ok {
		version = semver.Version{Major: major}
	} else if isUpgradeMajorBranch(pr.HeadRef) {
		version = model.Increment(uc.latestRelease(ctx, build), model.IncrementMajor)
	} else {
		version = model.Increment(uc.latestRelease(ctx, build), model.IncrementForLabels(pr.Labels))
	}

	commit := <-commitCh
	if commit.err != nil {
		return nil, commit.err
	}

	return &model.VersionComponents{
		Version:   version,
		Timestamp: commit.timestamp,
		ShortHash: model.ShortSHA(build.SHA),
	}, nil
}

// resolveScheduled increments minor on the latest release. An explicit major
// override that differs from the resolved major replaces the whole version
// with <override>.0.0.
func (uc *versionUseCase) resolveScheduled(ctx context.Context, build *model.BuildContext) (*model.VersionComponents, error) {
	latest, timestamp, _, err := uc.latestAndCommit(ctx, build)
	if err != nil {
		return nil, err
	}

	version := model.Increment(latest, model.IncrementMinor)
	if build.MajorOverride != nil && *build.MajorOverride != version.Major {
		version = semver.Version{Major: *build.MajorOverride}
	}

	components := &model.VersionComponents{
		Version:   version,
		Timestamp: timestamp,
	}
	if branch, ok := build.BranchName(); !ok || branch != build.DefaultBranch {
		components.ShortHash = model.ShortSHA(build.SHA)
	}
	return components, nil
}

type commitResult struct {
	timestamp time.Time
	message   string
	err       error
}

// fetchCommit starts the commit metadata lookup in the background. The
// channel is buffered so the goroutine never leaks even if the result is
// discarded.
func (uc *versionUseCase) fetchCommit(ctx context.Context, build *model.BuildContext) <-chan commitResult {
	ch := make(chan commitResult, 1)
	go func() {
		timestamp, message, err := uc.commitInfo(ctx, build)
		ch <- commitResult{timestamp: timestamp, message: message, err: err}
	}()
	return ch
}

// latestAndCommit fetches the latest release and the commit metadata
// concurrently; both are read-only and order-independent.
func (uc *versionUseCase) latestAndCommit(ctx context.Context, build *model.BuildContext) (semver.Version, time.Time, string, error) {
	commitCh := uc.fetchCommit(ctx, build)
	latest := uc.latestRelease(ctx, build)

	commit := <-commitCh
	if commit.err != nil {
		return semver.Version{}, time.Time{}, "", commit.err
	}
	return latest, commit.timestamp, commit.message, nil
}

// commitInfo returns the commit timestamp and message, preferring the event
// payload and falling back to a repository lookup. A lookup failure is fatal:
// the timestamp orders published versions, so substituting a synthetic value
// would silently reorder them.
func (uc *versionUseCase) commitInfo(ctx context.Context, build *model.BuildContext) (time.Time, string, error) {
	if head := build.HeadCommit; head != nil && head.Timestamp != "" {
		timestamp, err := time.Parse(time.RFC3339, head.Timestamp)
		if err != nil {
			return time.Time{}, "", goerr.Wrap(types.ErrInvalidCommitDate, fmt.Sprintf("failed to parse commit timestamp %q", head.Timestamp))
		}
		return timestamp, head.Message, nil
	}

	commit, err := uc.client.GetCommit(ctx, build.Owner, build.Repo, build.SHA)
	if err != nil {
		return time.Time{}, "", goerr.Wrap(err, "failed to fetch commit metadata", goerr.V("sha", build.SHA))
	}
	return commit.CommitterDate, commit.Message, nil
}

// latestRelease looks up the release marked "latest". The lookup never fails
// the build: a missing or unparsable release degrades to 0.0.0.
func (uc *versionUseCase) latestRelease(ctx context.Context, build *model.BuildContext) semver.Version {
	logger := ctxlog.From(ctx)

	release, err := uc.client.GetLatestRelease(ctx, build.Owner, build.Repo)
	if err != nil {
		logger.Warn("No latest release found, starting from 0.0.0",
			"error", err,
			"owner", build.Owner,
			"repo", build.Repo,
		)
		return semver.Version{}
	}

	version, err := model.ParseVersion(release.TagName)
	if err != nil {
		logger.Warn("Latest release tag is not a semantic version, starting from 0.0.0",
			"tag", release.TagName,
			"error", err,
		)
		return semver.Version{}
	}
	return version
}
