package github

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v75/github"

	"github.com/m-mizutani/buildver/pkg/domain/interfaces"
	"github.com/m-mizutani/buildver/pkg/domain/model"
)

type client struct {
	githubClient *github.Client
}

// NewClient creates a new GitHub client. An empty token yields an anonymous
// client, which is enough for public repositories.
func NewClient(token string) interfaces.RepositoryClient {
	githubClient := github.NewClient(nil)
	if token != "" {
		githubClient = githubClient.WithAuthToken(token)
	}

	return &client{
		githubClient: githubClient,
	}
}

// NewAppClient creates a new GitHub client with App authentication
func NewAppClient(appID, installationID int64, privateKey []byte) (interfaces.RepositoryClient, error) {
	itr, err := ghinstallation.New(http.DefaultTransport, appID, installationID, privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub App transport: %w", err)
	}

	return &client{
		githubClient: github.NewClient(&http.Client{Transport: itr}),
	}, nil
}

// GetLatestRelease returns the release marked "latest" for the repository
func (c *client) GetLatestRelease(ctx context.Context, owner, repo string) (*model.Release, error) {
	release, _, err := c.githubClient.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest release for %s/%s: %w", owner, repo, err)
	}

	return &model.Release{
		TagName: release.GetTagName(),
	}, nil
}

// GetCommit returns the message and committer date of a commit
func (c *client) GetCommit(ctx context.Context, owner, repo, sha string) (*model.Commit, error) {
	commit, _, err := c.githubClient.Repositories.GetCommit(ctx, owner, repo, sha, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch commit %s/%s@%s: %w", owner, repo, sha, err)
	}

	return &model.Commit{
		Message:       commit.GetCommit().GetMessage(),
		CommitterDate: commit.GetCommit().GetCommitter().GetDate().Time,
	}, nil
}

// GetPullRequest returns head/base refs and labels of a pull request
func (c *client) GetPullRequest(ctx context.Context, owner, repo string, number int) (*model.PullRequest, error) {
	pr, _, err := c.githubClient.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pull request %s/%s#%d: %w", owner, repo, number, err)
	}

	labels := make([]string, 0, len(pr.Labels))
	for _, label := range pr.Labels {
		labels = append(labels, label.GetName())
	}

	return &model.PullRequest{
		Number:  pr.GetNumber(),
		HeadRef: pr.GetHead().GetRef(),
		BaseRef: pr.GetBase().GetRef(),
		Labels:  labels,
	}, nil
}
