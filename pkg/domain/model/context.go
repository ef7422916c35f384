package model

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/buildver/pkg/domain/types"
)

// EventName identifies the kind of event that triggered a build
type EventName string

const (
	EventPush               EventName = "push"
	EventPullRequest        EventName = "pull_request"
	EventWorkflowDispatch   EventName = "workflow_dispatch"
	EventSchedule           EventName = "schedule"
	EventRepositoryDispatch EventName = "repository_dispatch"
)

// Ref prefixes as delivered by the runner environment
const (
	RefTagPrefix    = "refs/tags/"
	RefBranchPrefix = "refs/heads/"
)

// HeadCommit carries the head commit metadata embedded in push event payloads
type HeadCommit struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"` // RFC3339
}

// PullRequestContext carries the pull request fields embedded in
// pull_request event payloads
type PullRequestContext struct {
	Number  int      `json:"number"`
	HeadRef string   `json:"head_ref"`
	BaseRef string   `json:"base_ref"`
	Labels  []string `json:"labels"`
}

// BuildContext describes one triggering event. It is constructed once at the
// boundary and never mutated afterwards.
type BuildContext struct {
	EventName     EventName `json:"event_name"`
	Ref           string    `json:"ref"`
	SHA           string    `json:"sha"`
	Owner         string    `json:"owner"`
	Repo          string    `json:"repo"`
	DefaultBranch string    `json:"default_branch"`

	// HeadCommit is set for push events only
	HeadCommit *HeadCommit `json:"head_commit,omitempty"`

	// PullRequest is set for pull_request events only
	PullRequest *PullRequestContext `json:"pull_request,omitempty"`

	// MajorOverride pins the major version for scheduled and dispatch builds
	MajorOverride *uint64 `json:"major_override,omitempty"`
}

// BranchName returns the branch name when the ref points at a branch
func (x *BuildContext) BranchName() (string, bool) {
	if !strings.HasPrefix(x.Ref, RefBranchPrefix) {
		return "", false
	}
	return strings.TrimPrefix(x.Ref, RefBranchPrefix), true
}

// TagName returns the tag name when the ref points at a tag
func (x *BuildContext) TagName() (string, bool) {
	if !strings.HasPrefix(x.Ref, RefTagPrefix) {
		return "", false
	}
	return strings.TrimPrefix(x.Ref, RefTagPrefix), true
}

// Merge commits on the default branch reference their originating pull
// request as "(#123)".
var prNumberRe = regexp.MustCompile(`\(#(\d+)\)`)

// PullRequestNumber extracts the originating pull request number from a
// commit message
func PullRequestNumber(message string) (int, bool) {
	m := prNumberRe.FindStringSubmatch(message)
	if m == nil {
		return 0, false
	}
	number, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return number, true
}

// ParseMajorOverride parses an explicit major version input. An empty string
// means no override; anything else must be a non-negative integer.
func ParseMajorOverride(input string) (*uint64, error) {
	if input == "" {
		return nil, nil
	}
	major, err := strconv.ParseUint(input, 10, 64)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidMajorVersion, "major version must be a non-negative integer", goerr.V("input", input))
	}
	return &major, nil
}
