// Package actions assembles a BuildContext from the values a CI runner
// provides: event name, ref, commit SHA, and the JSON payload describing the
// triggering event.
package actions

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/buildver/pkg/domain/model"
)

// Input collects the raw runner-provided values before validation
type Input struct {
	EventName     string
	Ref           string
	SHA           string
	Repository    string // "owner/name"
	DefaultBranch string
	PayloadPath   string // path to the event payload JSON, optional
	MajorVersion  string // explicit major version override, optional
}

// Build validates the input and assembles an immutable BuildContext,
// hydrating event-specific fields from the payload file when one is provided
func Build(in Input) (*model.BuildContext, error) {
	owner, repo, ok := strings.Cut(in.Repository, "/")
	if !ok || owner == "" || repo == "" {
		return nil, goerr.New("repository must be in owner/name form", goerr.V("repository", in.Repository))
	}

	override, err := model.ParseMajorOverride(in.MajorVersion)
	if err != nil {
		return nil, err
	}

	build := &model.BuildContext{
		EventName:     model.EventName(in.EventName),
		Ref:           in.Ref,
		SHA:           in.SHA,
		Owner:         owner,
		Repo:          repo,
		DefaultBranch: in.DefaultBranch,
		MajorOverride: override,
	}

	if in.PayloadPath != "" {
		if err := hydrateFromPayload(build, in.PayloadPath); err != nil {
			return nil, err
		}
	}

	return build, nil
}

// hydrateFromPayload fills the event-specific fields from the payload JSON.
// Schedule and dispatch payloads carry nothing the calculation needs.
func hydrateFromPayload(build *model.BuildContext, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return goerr.Wrap(err, "failed to read event payload", goerr.V("path", path))
	}

	switch build.EventName {
	case model.EventPush:
		var event github.PushEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			return goerr.Wrap(err, "failed to parse push event payload", goerr.V("path", path))
		}

		if head := event.GetHeadCommit(); head != nil {
			commit := &model.HeadCommit{Message: head.GetMessage()}
			if ts := head.GetTimestamp(); !ts.IsZero() {
				commit.Timestamp = ts.Format(time.RFC3339)
			}
			build.HeadCommit = commit
		}
		if branch := event.GetRepo().GetDefaultBranch(); branch != "" {
			build.DefaultBranch = branch
		}

	case model.EventPullRequest:
		var event github.PullRequestEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			return goerr.Wrap(err, "failed to parse pull request event payload", goerr.V("path", path))
		}

		pr := event.GetPullRequest()
		if pr == nil {
			return goerr.New("event payload has no pull_request object", goerr.V("path", path))
		}

		labels := make([]string, 0, len(pr.Labels))
		for _, label := range pr.Labels {
			labels = append(labels, label.GetName())
		}

		build.PullRequest = &model.PullRequestContext{
			Number:  pr.GetNumber(),
			HeadRef: pr.GetHead().GetRef(),
			BaseRef: pr.GetBase().GetRef(),
			Labels:  labels,
		}
		if branch := event.GetRepo().GetDefaultBranch(); branch != "" {
			build.DefaultBranch = branch
		}
	}

	return nil
}
