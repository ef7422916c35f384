package interfaces

import (
	"context"

	"github.com/m-mizutani/buildver/pkg/domain/model"
)

// RepositoryClient defines the read-only repository hosting API operations
// needed for version calculation
type RepositoryClient interface {
	// GetLatestRelease returns the release marked "latest" for the repository
	GetLatestRelease(ctx context.Context, owner, repo string) (*model.Release, error)

	// GetCommit returns the message and committer date of a commit
	GetCommit(ctx context.Context, owner, repo, sha string) (*model.Commit, error)

	// GetPullRequest returns head/base refs and labels of a pull request
	GetPullRequest(ctx context.Context, owner, repo string, number int) (*model.PullRequest, error)
}
