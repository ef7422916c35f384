package usecase

import (
	"regexp"
	"strconv"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/buildver/pkg/domain/model"
	"github.com/m-mizutani/buildver/pkg/domain/types"
)

var (
	// versionBranchRe matches branches like "v7" that pin a major version
	versionBranchRe = regexp.MustCompile(`^v(\d+)$`)

	// upgradeBranchRe matches the branch naming convention that forces a
	// major increment
	upgradeBranchRe = regexp.MustCompile(`^upgrade-.+-major$`)
)

// Classify picks the build scenario for an event. Scenarios are checked in
// priority order: tag push, branch push (version branch, default branch,
// other branch), pull request, then scheduled or dispatch builds.
func Classify(build *model.BuildContext) (model.Scenario, error) {
	switch build.EventName {
	case model.EventPush:
		if _, ok := build.TagName(); ok {
			return model.ScenarioTag, nil
		}
		if branch, ok := build.BranchName(); ok {
			return classifyBranch(build, branch), nil
		}
		return model.ScenarioUnknown, goerr.Wrap(types.ErrUnsupportedEvent, "push ref is neither a tag nor a branch", goerr.V("ref", build.Ref))

	case model.EventWorkflowDispatch:
		if branch, ok := build.BranchName(); ok {
			return classifyBranch(build, branch), nil
		}
		return model.ScenarioUnknown, goerr.Wrap(types.ErrUnsupportedEvent, "workflow_dispatch requires a branch ref", goerr.V("ref", build.Ref))

	case model.EventPullRequest:
		return model.ScenarioPullRequest, nil

	case model.EventSchedule, model.EventRepositoryDispatch:
		return model.ScenarioScheduled, nil

	default:
		return model.ScenarioUnknown, goerr.Wrap(types.ErrUnsupportedEvent, "unsupported event: "+string(build.EventName), goerr.V("event", build.EventName))
	}
}

func classifyBranch(build *model.BuildContext, branch string) model.Scenario {
	if versionBranchRe.MatchString(branch) {
		return model.ScenarioVersionBranch
	}
	if branch == build.DefaultBranch {
		return model.ScenarioDefaultBranch
	}
	return model.ScenarioOtherBranch
}

// VersionBranch reports the major version pinned by the build's branch. For
// pull requests the base ref is inspected, otherwise the pushed branch.
func VersionBranch(build *model.BuildContext) (uint64, bool) {
	if build.EventName == model.EventPullRequest {
		if build.PullRequest == nil {
			return 0, false
		}
		return versionBranchMajor(build.PullRequest.BaseRef)
	}
	if branch, ok := build.BranchName(); ok {
		return versionBranchMajor(branch)
	}
	return 0, false
}

func versionBranchMajor(name string) (uint64, bool) {
	m := versionBranchRe.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	major, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return major, true
}

func isUpgradeMajorBranch(name string) bool {
	return upgradeBranchRe.MatchString(name)
}
