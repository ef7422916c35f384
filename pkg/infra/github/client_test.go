package github_test

import (
	"context"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	githubinfra "github.com/m-mizutani/buildver/pkg/infra/github"
)

func TestNewClient(t *testing.T) {
	t.Run("With token", func(t *testing.T) {
		client := githubinfra.NewClient("dummy-token")
		gt.Value(t, client).NotNil()
	})

	t.Run("Anonymous", func(t *testing.T) {
		client := githubinfra.NewClient("")
		gt.Value(t, client).NotNil()
	})
}

func TestNewAppClient(t *testing.T) {
	t.Run("Invalid private key", func(t *testing.T) {
		_, err := githubinfra.NewAppClient(12345, 67890, []byte("not a pem key"))
		gt.Error(t, err)
	})

	t.Run("With credentials from environment", func(t *testing.T) {
		appID := os.Getenv("TEST_GITHUB_APP_ID")
		installationID := os.Getenv("TEST_GITHUB_INSTALLATION_ID")
		privateKey := os.Getenv("TEST_GITHUB_PRIVATE_KEY")

		if appID == "" || installationID == "" || privateKey == "" {
			t.Skip("Test GitHub App credentials not provided via environment variables")
		}

		appIDInt, err := strconv.ParseInt(appID, 10, 64)
		gt.NoError(t, err)

		installationIDInt, err := strconv.ParseInt(installationID, 10, 64)
		gt.NoError(t, err)

		client, err := githubinfra.NewAppClient(appIDInt, installationIDInt, []byte(privateKey))
		gt.NoError(t, err)
		gt.Value(t, client).NotNil()
	})
}

func TestClient_WithRealAPI(t *testing.T) {
	// Integration test against the real API, gated on an opt-in repository
	repository := os.Getenv("TEST_GITHUB_REPOSITORY")
	if repository == "" {
		t.Skip("TEST_GITHUB_REPOSITORY not provided")
	}

	owner, repo, ok := strings.Cut(repository, "/")
	gt.Value(t, ok).Equal(true)

	ctx := context.Background()
	client := githubinfra.NewClient(os.Getenv("TEST_GITHUB_TOKEN"))

	release, err := client.GetLatestRelease(ctx, owner, repo)
	gt.NoError(t, err)
	gt.Value(t, release.TagName).NotEqual("")
}
