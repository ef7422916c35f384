package config

import "github.com/urfave/cli/v3"

// Event holds the build event description. Every value is sourced from the
// standard runner environment when available, so a bare invocation inside a
// workflow needs no flags at all.
type Event struct {
	Name          string
	Ref           string
	SHA           string
	Repository    string
	DefaultBranch string
	PayloadPath   string
	MajorVersion  string
}

// Flags returns CLI flags for event configuration
func (c *Event) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "event",
			Usage:       "Event name that triggered the build (push, pull_request, ...)",
			Required:    true,
			Destination: &c.Name,
			Sources:     cli.EnvVars("BUILDVER_EVENT", "GITHUB_EVENT_NAME"),
		},
		&cli.StringFlag{
			Name:        "ref",
			Usage:       "Git ref of the build (refs/tags/... or refs/heads/...)",
			Destination: &c.Ref,
			Sources:     cli.EnvVars("BUILDVER_REF", "GITHUB_REF"),
		},
		&cli.StringFlag{
			Name:        "sha",
			Usage:       "Commit SHA of the build",
			Destination: &c.SHA,
			Sources:     cli.EnvVars("BUILDVER_SHA", "GITHUB_SHA"),
		},
		&cli.StringFlag{
			Name:        "repository",
			Usage:       "Repository in owner/name form",
			Required:    true,
			Destination: &c.Repository,
			Sources:     cli.EnvVars("BUILDVER_REPOSITORY", "GITHUB_REPOSITORY"),
		},
		&cli.StringFlag{
			Name:        "default-branch",
			Usage:       "Default branch of the repository",
			Value:       "main",
			Destination: &c.DefaultBranch,
			Sources:     cli.EnvVars("BUILDVER_DEFAULT_BRANCH"),
		},
		&cli.StringFlag{
			Name:        "event-payload",
			Usage:       "Path to the event payload JSON file",
			Destination: &c.PayloadPath,
			Sources:     cli.EnvVars("BUILDVER_EVENT_PAYLOAD", "GITHUB_EVENT_PATH"),
		},
		&cli.StringFlag{
			Name:        "major-version",
			Usage:       "Explicit major version override for scheduled builds",
			Destination: &c.MajorVersion,
			Sources:     cli.EnvVars("BUILDVER_MAJOR_VERSION"),
		},
	}
}
