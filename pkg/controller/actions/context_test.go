package actions_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/buildver/pkg/controller/actions"
	"github.com/m-mizutani/buildver/pkg/domain/model"
	"github.com/m-mizutani/buildver/pkg/domain/types"
)

const testSHA = "0123456789abcdef0123456789abcdef01234567"

func writePayload(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "event.json")
	gt.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestBuild(t *testing.T) {
	t.Run("Minimal input", func(t *testing.T) {
		build, err := actions.Build(actions.Input{
			EventName:     "push",
			Ref:           "refs/heads/main",
			SHA:           testSHA,
			Repository:    "octo/example",
			DefaultBranch: "main",
		})
		gt.NoError(t, err)
		gt.Value(t, build.EventName).Equal(model.EventPush)
		gt.Value(t, build.Owner).Equal("octo")
		gt.Value(t, build.Repo).Equal("example")
		gt.Value(t, build.HeadCommit).Nil()
		gt.Value(t, build.MajorOverride).Nil()
	})

	t.Run("Major version override", func(t *testing.T) {
		build, err := actions.Build(actions.Input{
			EventName:     "schedule",
			Ref:           "refs/heads/main",
			SHA:           testSHA,
			Repository:    "octo/example",
			DefaultBranch: "main",
			MajorVersion:  "5",
		})
		gt.NoError(t, err)
		gt.Value(t, build.MajorOverride).NotNil()
		gt.Value(t, *build.MajorOverride).Equal(uint64(5))
	})

	t.Run("Invalid major version override", func(t *testing.T) {
		_, err := actions.Build(actions.Input{
			EventName:    "schedule",
			Ref:          "refs/heads/main",
			SHA:          testSHA,
			Repository:   "octo/example",
			MajorVersion: "five",
		})
		gt.Error(t, err)
		gt.Value(t, errors.Is(err, types.ErrInvalidMajorVersion)).Equal(true)
	})

	t.Run("Malformed repository", func(t *testing.T) {
		for _, repository := range []string{"", "octo", "octo/", "/example"} {
			_, err := actions.Build(actions.Input{
				EventName:  "push",
				Ref:        "refs/heads/main",
				SHA:        testSHA,
				Repository: repository,
			})
			gt.Error(t, err)
		}
	})
}

func TestBuild_PushPayload(t *testing.T) {
	path := writePayload(t, `{
		"head_commit": {
			"message": "Add label based release control (#42)",
			"timestamp": "2024-05-01T10:30:00Z"
		},
		"repository": {
			"default_branch": "develop"
		}
	}`)

	build, err := actions.Build(actions.Input{
		EventName:     "push",
		Ref:           "refs/heads/develop",
		SHA:           testSHA,
		Repository:    "octo/example",
		DefaultBranch: "main",
		PayloadPath:   path,
	})
	gt.NoError(t, err)
	gt.Value(t, build.HeadCommit).NotNil()
	gt.Value(t, build.HeadCommit.Message).Equal("Add label based release control (#42)")
	gt.Value(t, build.HeadCommit.Timestamp).Equal("2024-05-01T10:30:00Z")
	gt.Value(t, build.DefaultBranch).Equal("develop")
}

func TestBuild_PullRequestPayload(t *testing.T) {
	path := writePayload(t, `{
		"pull_request": {
			"number": 42,
			"head": {"ref": "feature-x"},
			"base": {"ref": "main"},
			"labels": [
				{"name": "needs-release/patch"},
				{"name": "documentation"}
			]
		},
		"repository": {
			"default_branch": "main"
		}
	}`)

	build, err := actions.Build(actions.Input{
		EventName:     "pull_request",
		Ref:           "refs/pull/42/merge",
		SHA:           testSHA,
		Repository:    "octo/example",
		DefaultBranch: "main",
		PayloadPath:   path,
	})
	gt.NoError(t, err)
	gt.Value(t, build.PullRequest).NotNil()
	gt.Value(t, build.PullRequest.Number).Equal(42)
	gt.Value(t, build.PullRequest.HeadRef).Equal("feature-x")
	gt.Value(t, build.PullRequest.BaseRef).Equal("main")
	gt.Value(t, build.PullRequest.Labels).Equal([]string{"needs-release/patch", "documentation"})
}

func TestBuild_PayloadErrors(t *testing.T) {
	t.Run("Missing payload file", func(t *testing.T) {
		_, err := actions.Build(actions.Input{
			EventName:   "push",
			Ref:         "refs/heads/main",
			SHA:         testSHA,
			Repository:  "octo/example",
			PayloadPath: filepath.Join(t.TempDir(), "missing.json"),
		})
		gt.Error(t, err)
	})

	t.Run("Payload without pull_request object", func(t *testing.T) {
		_, err := actions.Build(actions.Input{
			EventName:   "pull_request",
			Ref:         "refs/pull/42/merge",
			SHA:         testSHA,
			Repository:  "octo/example",
			PayloadPath: writePayload(t, `{}`),
		})
		gt.Error(t, err)
	})

	t.Run("Schedule payload is ignored", func(t *testing.T) {
		build, err := actions.Build(actions.Input{
			EventName:   "schedule",
			Ref:         "refs/heads/main",
			SHA:         testSHA,
			Repository:  "octo/example",
			PayloadPath: writePayload(t, `{"schedule": "0 9 * * 1"}`),
		})
		gt.NoError(t, err)
		gt.Value(t, build.HeadCommit).Nil()
		gt.Value(t, build.PullRequest).Nil()
	})
}
