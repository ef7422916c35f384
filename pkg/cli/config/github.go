package config

import "github.com/urfave/cli/v3"

// GitHub holds credentials for the repository hosting API. Token
// authentication is the common path; the App fields are an alternative for
// installations that avoid personal tokens.
type GitHub struct {
	Token          string
	AppID          int64
	InstallationID int64
	PrivateKey     string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub API token (optional for public repositories)",
			Destination: &c.Token,
			Sources:     cli.EnvVars("BUILDVER_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID (enables App authentication)",
			Destination: &c.AppID,
			Sources:     cli.EnvVars("BUILDVER_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-installation-id",
			Usage:       "GitHub App installation ID",
			Destination: &c.InstallationID,
			Sources:     cli.EnvVars("BUILDVER_GITHUB_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-private-key",
			Usage:       "GitHub App private key (PEM)",
			Destination: &c.PrivateKey,
			Sources:     cli.EnvVars("BUILDVER_GITHUB_PRIVATE_KEY"),
		},
	}
}
